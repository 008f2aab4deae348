package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

const rentalDateLayout = "2006-01-02"

type CartHandler struct {
	cartSvc service.CartService
}

func NewCartHandler(cartSvc service.CartService) *CartHandler {
	return &CartHandler{cartSvc: cartSvc}
}

type addCartItemRequest struct {
	ProductID   int64  `json:"product_id"`
	Quantity    int    `json:"quantity"`
	RentalStart string `json:"rental_start"`
	RentalEnd   string `json:"rental_end"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.GetCart(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	start, end, err := parseRentalRange(req.RentalStart, req.RentalEnd)
	if err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartSvc.AddItem(r.Context(), userIDFromContext(r.Context()), req.ProductID, req.Quantity, start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartSvc.UpdateQuantity(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["itemID"], req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.RemoveItem(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["itemID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartSvc.ClearCart(r.Context(), userIDFromContext(r.Context())); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartSvc.ApplyCoupon(r.Context(), userIDFromContext(r.Context()), req.Code)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.RemoveCoupon(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartSvc.Summary(r.Context(), userIDFromContext(r.Context()), r.URL.Query().Get("delivery_method"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func parseRentalRange(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, domain.ErrMissingRentalDates
	}
	start, err := time.Parse(rentalDateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrMissingRentalDates
	}
	end, err := time.Parse(rentalDateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrMissingRentalDates
	}
	return start, end, nil
}
