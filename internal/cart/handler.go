package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"vesture-be/internal/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type cartResponse struct {
	Items     []Line  `json:"items"`
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
}

func toCartResponse(lines []Line) cartResponse {
	return cartResponse{
		Items:     lines,
		ItemCount: ItemCount(lines),
		Subtotal:  Subtotal(lines),
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// Get handles GET /cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	lines, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		utils.WriteJSONError(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, toCartResponse(lines))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// AddItem handles POST /cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	lines, err := h.svc.AddItem(r.Context(), userID, AddItemParams{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSizeRequired), errors.Is(err, ErrSizeUnavailable):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProductNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to add item", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, toCartResponse(lines))
}

type updateQuantityRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantity handles PUT /cart/items
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	lines, err := h.svc.UpdateQuantity(r.Context(), userID, UpdateQuantityParams{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrCartItemNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to update quantity", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, toCartResponse(lines))
}

type removeItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color,omitempty"`
}

// RemoveItem handles DELETE /cart/items
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	lines, err := h.svc.RemoveItem(r.Context(), userID, Key{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		utils.WriteJSONError(w, "failed to remove item", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, toCartResponse(lines))
}

// Clear handles DELETE /cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Clear(r.Context(), userID); err != nil {
		utils.WriteJSONError(w, "failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}
