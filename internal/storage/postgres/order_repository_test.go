package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/kaimono-dev/storefront/internal/app"
	"github.com/kaimono-dev/storefront/internal/clock"
	"github.com/kaimono-dev/storefront/internal/domain"
	"github.com/kaimono-dev/storefront/internal/storage/postgres"
	"github.com/kaimono-dev/storefront/internal/testutil"
	"github.com/shopspring/decimal"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func TestOrderRepository_PlaceOrderFlow(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewOrderRepository(pool)
	svc := app.NewOrderService(repo, clock.NewSystem())

	productID := testutil.InsertProduct(t, ctx, pool, "MacBook Pro", decimal.NewFromInt(198000), 10)

	if err := svc.PlaceOrder(ctx, app.PlaceOrderInput{ProductID: int64p(productID), Quantity: intp(3)}); err != nil {
		t.Fatalf("place order: %v", err)
	}

	if got := testutil.ProductStock(t, ctx, pool, productID); got != 7 {
		t.Fatalf("expected stock 7, got %d", got)
	}
	if got := testutil.CountOrders(t, ctx, pool, productID); got != 1 {
		t.Fatalf("expected 1 order, got %d", got)
	}

	var orderedAtNull bool
	if err := pool.QueryRow(ctx, `SELECT ordered_at IS NULL FROM order_histories WHERE product_id = $1`, productID).Scan(&orderedAtNull); err != nil {
		t.Fatalf("query ordered_at: %v", err)
	}
	if orderedAtNull {
		t.Fatalf("expected ordered_at to be set")
	}
}

func TestOrderRepository_InsufficientStock(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewOrderRepository(pool)
	svc := app.NewOrderService(repo, clock.NewSystem())

	productID := testutil.InsertProduct(t, ctx, pool, "iPad Air", decimal.NewFromInt(92800), 10)

	err := svc.PlaceOrder(ctx, app.PlaceOrderInput{ProductID: int64p(productID), Quantity: intp(15)})
	oerr, ok := err.(*domain.OrderError)
	if !ok || oerr.Kind != domain.OrderErrorInsufficientStock {
		t.Fatalf("expected insufficient_stock, got %v", err)
	}
	if oerr.CurrentStock != 10 || oerr.RequestedQuantity != 15 {
		t.Fatalf("unexpected context %+v", oerr)
	}

	if got := testutil.ProductStock(t, ctx, pool, productID); got != 10 {
		t.Fatalf("expected stock unchanged at 10, got %d", got)
	}
	if got := testutil.CountOrders(t, ctx, pool, productID); got != 0 {
		t.Fatalf("expected no orders, got %d", got)
	}
}

func TestOrderRepository_UnknownProduct(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewOrderRepository(pool)
	svc := app.NewOrderService(repo, clock.NewSystem())

	err := svc.PlaceOrder(ctx, app.PlaceOrderInput{ProductID: int64p(424242), Quantity: intp(1)})
	oerr, ok := err.(*domain.OrderError)
	if !ok || oerr.Kind != domain.OrderErrorTransactionFailed {
		t.Fatalf("expected transaction_failed, got %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_histories`).Scan(&count); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orders, got %d", count)
	}
}

func TestOrderRepository_ConcurrentPlacementsSerialize(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewOrderRepository(pool)
	svc := app.NewOrderService(repo, clock.NewSystem())

	productID := testutil.InsertProduct(t, ctx, pool, "AirPods Pro", decimal.NewFromInt(39800), 1)

	const attempts = 4
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.PlaceOrder(ctx, app.PlaceOrderInput{ProductID: int64p(productID), Quantity: intp(1)})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		oerr, ok := err.(*domain.OrderError)
		if !ok || oerr.Kind != domain.OrderErrorInsufficientStock {
			t.Fatalf("expected insufficient_stock for losers, got %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly 1 success, got %d", successes)
	}
	if got := testutil.ProductStock(t, ctx, pool, productID); got != 0 {
		t.Fatalf("expected stock 0, got %d", got)
	}
	if got := testutil.CountOrders(t, ctx, pool, productID); got != 1 {
		t.Fatalf("expected exactly 1 order, got %d", got)
	}
}

func TestOrderRepository_ListOrders(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewOrderRepository(pool)
	svc := app.NewOrderService(repo, clock.NewSystem())

	productID := testutil.InsertProduct(t, ctx, pool, "Apple Watch Series 9", decimal.NewFromInt(59800), 30)

	for _, qty := range []int{1, 2, 3} {
		if err := svc.PlaceOrder(ctx, app.PlaceOrderInput{ProductID: int64p(productID), Quantity: intp(qty)}); err != nil {
			t.Fatalf("place order qty %d: %v", qty, err)
		}
	}

	orders, err := repo.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].OrderedAt.After(orders[i-1].OrderedAt) {
			t.Fatalf("expected newest-first ordering")
		}
	}
}

func TestOrderRepository_UpdateProductStock_CheckConstraint(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewOrderRepository(pool)
	productID := testutil.InsertProduct(t, ctx, pool, "iPhone 15 Pro", decimal.NewFromInt(159800), 5)

	err := repo.UpdateProductStock(ctx, productID, -1)
	if err != domain.ErrStockConstraintViolate {
		t.Fatalf("expected ErrStockConstraintViolate, got %v", err)
	}
	if got := testutil.ProductStock(t, ctx, pool, productID); got != 5 {
		t.Fatalf("expected stock unchanged at 5, got %d", got)
	}
}
