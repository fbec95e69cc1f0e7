package app

import (
	"context"
	"errors"

	"github.com/kaimono-dev/storefront/internal/clock"
	"github.com/kaimono-dev/storefront/internal/domain"
)

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetProductForUpdate(ctx context.Context, productID int64) (domain.Product, error)
	UpdateProductStock(ctx context.Context, productID int64, newStock int) error
	CreateOrder(ctx context.Context, order domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type OrderService struct {
	repo  OrderRepository
	clock clock.Clock
}

func NewOrderService(repo OrderRepository, clk clock.Clock) *OrderService {
	return &OrderService{
		repo:  repo,
		clock: clk,
	}
}

type PlaceOrderInput struct {
	ProductID *int64
	Quantity  *int
}

// PlaceOrder records an order and decrements product stock in one
// transaction. The product row is locked (SELECT ... FOR UPDATE) for the
// duration of the transaction, so concurrent placements against the same
// product serialize and cannot decrement stock past zero.
//
// Every failure is returned as a *domain.OrderError. Validation failures
// and insufficient stock keep their own kinds; a missing product and any
// fault inside the transaction both collapse to transaction_failed, which
// is the externally observed behavior callers depend on.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) error {
	validated, fields := ValidateOrderRequest(OrderRequest(in))
	if fields != nil {
		return domain.NewValidationError(fields)
	}

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		product, err := s.findProduct(txCtx, validated.ProductID)
		if err != nil {
			return err
		}

		if product.Stock < validated.Quantity {
			return domain.NewInsufficientStockError(product.Stock, validated.Quantity)
		}

		newStock := product.Stock - validated.Quantity
		if err := s.repo.UpdateProductStock(txCtx, validated.ProductID, newStock); err != nil {
			return err
		}

		return s.repo.CreateOrder(txCtx, domain.Order{
			ProductID: validated.ProductID,
			Quantity:  validated.Quantity,
			OrderedAt: s.clock.Now(),
		})
	})
	if err != nil {
		var oerr *domain.OrderError
		if errors.As(err, &oerr) && oerr.Kind == domain.OrderErrorInsufficientStock {
			return oerr
		}
		// Lookup failures and write faults share one outward code.
		return domain.NewTransactionFailedError(validated.ProductID, validated.Quantity)
	}
	return nil
}

// ListOrders returns the order history, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderService) findProduct(ctx context.Context, productID int64) (domain.Product, error) {
	product, err := s.repo.GetProductForUpdate(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.Product{}, domain.NewProductNotFoundError(productID)
		}
		return domain.Product{}, err
	}
	return product, nil
}
