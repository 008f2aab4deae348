package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

type ProductHandler struct {
	catalogSvc service.CatalogService
}

func NewProductHandler(catalogSvc service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc}
}

type createProductRequest struct {
	Name                  string               `json:"name"`
	Description           string               `json:"description"`
	PricingRules          []domain.PricingRule `json:"pricing_rules"`
	Available             int                  `json:"available"`
	ReplacementValueCents int64                `json:"replacement_value_cents"`
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	products, total, err := h.catalogSvc.ListProducts(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, productListResponse{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, service.ErrValidation)
		return
	}

	product, err := h.catalogSvc.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	product := &domain.Product{
		Name:                  req.Name,
		Description:           req.Description,
		PricingRules:          req.PricingRules,
		Inventory:             domain.Inventory{Available: req.Available},
		ReplacementValueCents: req.ReplacementValueCents,
	}
	if err := h.catalogSvc.AddProduct(r.Context(), userIDFromContext(r.Context()), product); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func paginationParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	return page, pageSize
}
