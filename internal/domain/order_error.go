package domain

import "fmt"

// OrderErrorKind classifies the failure modes of order placement.
type OrderErrorKind string

const (
	OrderErrorValidation        OrderErrorKind = "validation_error"
	OrderErrorInsufficientStock OrderErrorKind = "insufficient_stock"
	OrderErrorProductNotFound   OrderErrorKind = "product_not_found"
	OrderErrorTransactionFailed OrderErrorKind = "transaction_failed"
)

// Stable error codes surfaced to clients, rendered as localization keys.
const (
	CodeValidationError   = "NEW_ORDER_SERVICE_VALIDATION_ERROR"
	CodeInsufficientStock = "NEW_ORDER_SERVICE_RUNTIME_INSUFFICIENT_STOCK"
	CodeProductNotFound   = "NEW_ORDER_SERVICE_RUNTIME_PRODUCT_NOT_FOUND"
	CodeTransactionFailed = "NEW_ORDER_SERVICE_RUNTIME_TRANSACTION_FAILED"
)

// OrderError is the structured failure value returned by order placement.
// Exactly one kind applies per value; the context fields populated depend
// on the kind.
type OrderError struct {
	Kind OrderErrorKind
	Code string

	// Fields maps field names to validation messages (validation_error).
	Fields map[string][]string

	// Stock context (insufficient_stock).
	CurrentStock      int
	RequestedQuantity int

	// Request context (product_not_found, transaction_failed).
	ProductID int64
	Quantity  int
}

func (e *OrderError) Error() string {
	switch e.Kind {
	case OrderErrorValidation:
		return fmt.Sprintf("order validation failed: %v", e.Fields)
	case OrderErrorInsufficientStock:
		return fmt.Sprintf("insufficient stock: have %d, requested %d", e.CurrentStock, e.RequestedQuantity)
	case OrderErrorProductNotFound:
		return fmt.Sprintf("product %d not found", e.ProductID)
	default:
		return fmt.Sprintf("order transaction failed for product %d quantity %d", e.ProductID, e.Quantity)
	}
}

func NewValidationError(fields map[string][]string) *OrderError {
	return &OrderError{
		Kind:   OrderErrorValidation,
		Code:   CodeValidationError,
		Fields: fields,
	}
}

func NewInsufficientStockError(currentStock, requestedQuantity int) *OrderError {
	return &OrderError{
		Kind:              OrderErrorInsufficientStock,
		Code:              CodeInsufficientStock,
		CurrentStock:      currentStock,
		RequestedQuantity: requestedQuantity,
	}
}

func NewProductNotFoundError(productID int64) *OrderError {
	return &OrderError{
		Kind:      OrderErrorProductNotFound,
		Code:      CodeProductNotFound,
		ProductID: productID,
	}
}

func NewTransactionFailedError(productID int64, quantity int) *OrderError {
	return &OrderError{
		Kind:      OrderErrorTransactionFailed,
		Code:      CodeTransactionFailed,
		ProductID: productID,
		Quantity:  quantity,
	}
}
