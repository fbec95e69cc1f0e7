package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kaimono-dev/storefront/internal/app"
	"github.com/kaimono-dev/storefront/internal/domain"
)

// OrderPlacer is the minimal interface needed to place and list orders.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in app.PlaceOrderInput) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// HandleOrders returns an HTTP handler for placing orders and listing the
// order history.
func HandleOrders(svc OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			orders, err := svc.ListOrders(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]orderResponse, 0, len(orders))
			for _, o := range orders {
				resp = append(resp, orderResponse{
					ID:        o.ID,
					ProductID: o.ProductID,
					Quantity:  o.Quantity,
					OrderedAt: o.OrderedAt,
				})
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req placeOrderRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			err := svc.PlaceOrder(r.Context(), app.PlaceOrderInput{
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
			})
			if err != nil {
				writeOrderError(w, err)
				return
			}

			w.WriteHeader(http.StatusNoContent)
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// writeOrderError renders a *domain.OrderError with its stable code so
// clients can use the code as a localization key.
func writeOrderError(w http.ResponseWriter, err error) {
	var oerr *domain.OrderError
	if !errors.As(err, &oerr) {
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	resp := placeOrderErrorResponse{
		Error: oerr.Error(),
		Code:  oerr.Code,
	}

	var status int
	switch oerr.Kind {
	case domain.OrderErrorValidation:
		status = http.StatusBadRequest
		resp.Errors = oerr.Fields
	case domain.OrderErrorInsufficientStock:
		status = http.StatusConflict
		resp.CurrentStock = &oerr.CurrentStock
		resp.RequestedQuantity = &oerr.RequestedQuantity
	default:
		status = http.StatusUnprocessableEntity
		resp.ProductID = &oerr.ProductID
		resp.Quantity = &oerr.Quantity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

type placeOrderRequest struct {
	ProductID *int64 `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

type placeOrderErrorResponse struct {
	Error             string              `json:"error"`
	Code              string              `json:"code"`
	Errors            map[string][]string `json:"errors,omitempty"`
	CurrentStock      *int                `json:"current_stock,omitempty"`
	RequestedQuantity *int                `json:"requested_quantity,omitempty"`
	ProductID         *int64              `json:"product_id,omitempty"`
	Quantity          *int                `json:"quantity,omitempty"`
}

type orderResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	OrderedAt time.Time `json:"ordered_at"`
}
