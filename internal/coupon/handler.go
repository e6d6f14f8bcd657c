package coupon

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vesture-be/internal/metrics"
	"vesture-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type validateRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
}

// Validate handles POST /coupons/validate. A rejected coupon is a 200
// with valid=false, not an error status.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Validate(r.Context(), req.Code, req.Subtotal)
	if err != nil {
		utils.WriteJSONError(w, "failed to validate coupon", http.StatusInternalServerError)
		return
	}

	if result.Valid {
		metrics.CouponValidations.WithLabelValues("accepted").Inc()
	} else {
		metrics.CouponValidations.WithLabelValues("rejected").Inc()
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// List handles GET /admin/coupons
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.svc.List(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to list coupons", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, coupons)
}

type createCouponRequest struct {
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  float64    `json:"discount_value"`
	MaxDiscount    *float64   `json:"max_discount,omitempty"`
	MinOrderAmount *float64   `json:"min_order_amount,omitempty"`
	MaxUsage       *int       `json:"max_usage,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

// Create handles POST /admin/coupons
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	c, err := h.svc.Create(r.Context(), NewCouponInput{
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		DiscountType:   DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		MaxDiscount:    req.MaxDiscount,
		MinOrderAmount: req.MinOrderAmount,
		MaxUsage:       req.MaxUsage,
		ExpiryDate:     req.ExpiryDate,
		IsActive:       isActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrCodeExists):
			utils.WriteJSONError(w, err.Error(), http.StatusConflict)
		default:
			utils.WriteJSONError(w, "failed to create coupon", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, c)
}

type updateCouponRequest struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	DiscountType   *string    `json:"discount_type,omitempty"`
	DiscountValue  *float64   `json:"discount_value,omitempty"`
	MaxDiscount    *float64   `json:"max_discount,omitempty"`
	MinOrderAmount *float64   `json:"min_order_amount,omitempty"`
	MaxUsage       *int       `json:"max_usage,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

// Update handles PUT /admin/coupons/{couponID}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := UpdateCouponInput{
		CouponID:       chi.URLParam(r, "couponID"),
		Name:           req.Name,
		Description:    req.Description,
		DiscountValue:  req.DiscountValue,
		MaxDiscount:    req.MaxDiscount,
		MinOrderAmount: req.MinOrderAmount,
		MaxUsage:       req.MaxUsage,
		ExpiryDate:     req.ExpiryDate,
		IsActive:       req.IsActive,
	}
	if req.DiscountType != nil {
		dt := DiscountType(*req.DiscountType)
		input.DiscountType = &dt
	}

	c, err := h.svc.Update(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrCouponNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to update coupon", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, c)
}

// Deactivate handles DELETE /admin/coupons/{couponID}
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Deactivate(r.Context(), chi.URLParam(r, "couponID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrCouponNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to deactivate coupon", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "coupon deactivated"})
}
