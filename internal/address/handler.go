package address

import (
	"encoding/json"
	"errors"
	"net/http"

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

// List handles GET /addresses
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	addrs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		utils.WriteJSONError(w, "failed to list addresses", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, addrs)
}

type addressRequest struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	Landmark     *string `json:"landmark,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Pincode      string  `json:"pincode"`
	AddressType  string  `json:"address_type,omitempty"`
	SetAsDefault bool    `json:"set_as_default,omitempty"`
}

// Create handles POST /addresses
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	addr, err := h.svc.Create(r.Context(), userID, CreateAddressInput{
		Name:         req.Name,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		Landmark:     req.Landmark,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		AddressType:  req.AddressType,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "failed to create address", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, addr)
}

// Update handles PUT /addresses/{addressID}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	addr, err := h.svc.Update(r.Context(), userID, UpdateAddressInput{
		AddressID:    chi.URLParam(r, "addressID"),
		Name:         req.Name,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		Landmark:     req.Landmark,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		AddressType:  req.AddressType,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAddressNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to update address", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, addr)
}

// Delete handles DELETE /addresses/{addressID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "addressID")); err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to delete address", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "address deleted"})
}

// SetDefault handles PUT /addresses/{addressID}/default
func (h *Handler) SetDefault(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.SetDefaultAddress(r.Context(), userID, chi.URLParam(r, "addressID")); err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to set default address", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "default address set"})
}
