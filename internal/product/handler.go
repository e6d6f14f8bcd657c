package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vesture-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /products
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := ListOptions{OnlyActive: true, SortField: q.Get("sort")}
	if c := q.Get("category"); c != "" {
		opts.Category = &c
	}
	if s := q.Get("search"); s != "" {
		opts.Search = &s
	}
	opts.SortAsc = q.Get("dir") == "asc"
	if l, err := strconv.ParseUint(q.Get("limit"), 10, 16); err == nil {
		limit := uint16(l)
		opts.Limit = &limit
	}
	if p, err := strconv.ParseUint(q.Get("page"), 10, 16); err == nil {
		page := uint16(p)
		opts.Page = &page
	}

	products, err := h.svc.List(r.Context(), opts)
	if err != nil {
		utils.WriteJSONError(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.GetByID(r.Context(), id, true)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to get product", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

type productRequest struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors,omitempty"`
	Stock         int      `json:"stock"`
}

// Create handles POST /admin/products
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), NewProductInput{
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Image:         req.Image,
		Images:        req.Images,
		Category:      req.Category,
		Description:   req.Description,
		Sizes:         req.Sizes,
		Colors:        req.Colors,
		Stock:         req.Stock,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "failed to create product", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, p)
}

type updateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Images        []string `json:"images,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// Update handles PUT /admin/products/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Update(r.Context(), UpdateProductInput{
		ProductID:     chi.URLParam(r, "id"),
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Image:         req.Image,
		Images:        req.Images,
		Category:      req.Category,
		Description:   req.Description,
		Sizes:         req.Sizes,
		Colors:        req.Colors,
		Stock:         req.Stock,
		IsActive:      req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrInvalidInput):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			utils.WriteJSONError(w, "failed to update product", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /admin/products/{id} (soft delete)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to delete product", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "product deactivated"})
}
