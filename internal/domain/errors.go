package domain

import "errors"

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrProductNameRequired    = errors.New("product name required")
	ErrProductNameTooLong     = errors.New("product name too long")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidStock           = errors.New("invalid stock")
	ErrDescriptionTooLong     = errors.New("description too long")
	ErrInvalidID              = errors.New("invalid id")
	ErrStockConstraintViolate = errors.New("stock constraint violated")
)
