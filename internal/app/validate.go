package app

// OrderRequest carries raw order input as it arrives at the boundary.
// A nil field means the value was absent from the request.
type OrderRequest struct {
	ProductID *int64
	Quantity  *int
}

// ValidatedOrder is the normalized form of a request that passed validation.
type ValidatedOrder struct {
	ProductID int64
	Quantity  int
}

const (
	fieldProductID = "product_id"
	fieldQuantity  = "quantity"

	msgMissing            = "is missing"
	msgMustBeGreaterThan0 = "must be greater than 0"
)

// ValidateOrderRequest checks shape and range of an order request before any
// store access. It is a pure function: no side effects, no I/O. On success
// the returned map is nil; on failure it maps field names to the messages
// for every rule that fired, in rule order. Both fields are validated
// independently, so both may report at once.
func ValidateOrderRequest(req OrderRequest) (ValidatedOrder, map[string][]string) {
	fields := map[string][]string{}

	if req.ProductID == nil {
		fields[fieldProductID] = append(fields[fieldProductID], msgMissing)
	} else if *req.ProductID <= 0 {
		fields[fieldProductID] = append(fields[fieldProductID], msgMustBeGreaterThan0)
	}

	if req.Quantity == nil {
		fields[fieldQuantity] = append(fields[fieldQuantity], msgMissing)
	} else if *req.Quantity <= 0 {
		fields[fieldQuantity] = append(fields[fieldQuantity], msgMustBeGreaterThan0)
	}

	if len(fields) > 0 {
		return ValidatedOrder{}, fields
	}
	return ValidatedOrder{ProductID: *req.ProductID, Quantity: *req.Quantity}, nil
}
