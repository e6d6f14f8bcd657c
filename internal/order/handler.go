package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vesture-be/internal/cart"
	"vesture-be/internal/user"
	"vesture-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func requireUser(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func isAdmin(r *http.Request) bool {
	return utils.GetUserRoleFromContext(r.Context()) == string(user.RoleAdmin)
}

type checkoutRequest struct {
	CouponCode      string          `json:"coupon_code,omitempty"`
	PaymentMethod   string          `json:"payment_method"`
	TransactionID   *string         `json:"transaction_id,omitempty"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
}

// Checkout handles POST /orders/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Checkout(r.Context(), userID, CheckoutParams{
		CouponCode:      req.CouponCode,
		PaymentMethod:   PaymentMethod(req.PaymentMethod),
		TransactionID:   req.TransactionID,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		var rejected *CouponRejectedError
		switch {
		case errors.As(err, &rejected):
			utils.WriteJSONError(w, rejected.Message, http.StatusBadRequest)
		case errors.Is(err, cart.ErrCartEmpty),
			errors.Is(err, ErrInvalidPaymentMethod),
			errors.Is(err, ErrIncompleteAddress):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			utils.WriteJSONError(w, "failed to place order", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, o)
}

// ListMine handles GET /orders
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.svc.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		utils.WriteJSONError(w, "failed to list orders", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}

// Detail handles GET /orders/{orderID}
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	o, err := h.svc.GetDetail(r.Context(), chi.URLParam(r, "orderID"), userID, isAdmin(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrForbidden):
			utils.WriteJSONError(w, "forbidden", http.StatusForbidden)
		default:
			utils.WriteJSONError(w, "failed to load order", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, o)
}

// AdminList handles GET /admin/orders
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := ListOptions{}
	q := r.URL.Query()

	opts.Limit, _ = strconv.Atoi(q.Get("limit"))
	opts.Offset, _ = strconv.Atoi(q.Get("offset"))

	if s := q.Get("status"); s != "" {
		status := Status(s)
		if !ValidStatus(status) {
			utils.WriteJSONError(w, ErrInvalidStatus.Error(), http.StatusBadRequest)
			return
		}
		opts.Status = &status
	}
	if u := q.Get("user_id"); u != "" {
		id, err := utils.ToUint(u)
		if err != nil {
			utils.WriteJSONError(w, "invalid user_id", http.StatusBadRequest)
			return
		}
		opts.UserID = &id
	}

	orders, err := h.svc.ListAll(r.Context(), opts)
	if err != nil {
		utils.WriteJSONError(w, "failed to list orders", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /admin/orders/{orderID}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "orderID"), Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrOrderNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to update status", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, o)
}
