package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

type RentalOrderHandler struct {
	rentalSvc service.RentalOrderService
}

func NewRentalOrderHandler(rentalSvc service.RentalOrderService) *RentalOrderHandler {
	return &RentalOrderHandler{rentalSvc: rentalSvc}
}

type quotationLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type createQuotationRequest struct {
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email"`
	Lines         []quotationLineRequest `json:"lines"`
}

type updatePricesRequest struct {
	PriceList string `json:"price_list"`
}

type rentalOrderListResponse struct {
	RentalOrders []domain.RentalOrder `json:"rental_orders"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

func (h *RentalOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuotationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	lines := make([]service.QuotationLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.QuotationLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	order, err := h.rentalSvc.CreateQuotation(r.Context(), userIDFromContext(r.Context()), req.CustomerName, req.CustomerEmail, lines)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *RentalOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.rentalSvc.GetRentalOrder(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *RentalOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	orders, total, err := h.rentalSvc.ListRentalOrders(r.Context(), userIDFromContext(r.Context()), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentalOrderListResponse{RentalOrders: orders, Total: total, Page: page, PageSize: pageSize})
}

func (h *RentalOrderHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req quotationLineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.rentalSvc.AddLine(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"],
		service.QuotationLine{ProductID: req.ProductID, Quantity: req.Quantity})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *RentalOrderHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		respondError(w, err)
		return
	}

	order, err := h.rentalSvc.RemoveLine(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"], index)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *RentalOrderHandler) UpdateLineQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.rentalSvc.UpdateLineQuantity(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"], index, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *RentalOrderHandler) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	var req updatePricesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.rentalSvc.UpdatePrices(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"], req.PriceList)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *RentalOrderHandler) Send(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.SendQuotation)
}

func (h *RentalOrderHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.ConfirmQuotation)
}

func (h *RentalOrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rentalSvc.CancelRentalOrder)
}

type rentalTransitionFunc func(ctx context.Context, vendorID int64, id string) (*domain.RentalOrder, error)

func (h *RentalOrderHandler) transition(w http.ResponseWriter, r *http.Request, fn rentalTransitionFunc) {
	order, err := fn(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func lineIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return 0, service.ErrValidation
	}
	return index, nil
}
