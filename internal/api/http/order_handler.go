package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

type OrderHandler struct {
	checkoutSvc service.CheckoutService
	orderSvc    service.OrderService
}

func NewOrderHandler(checkoutSvc service.CheckoutService, orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{checkoutSvc: checkoutSvc, orderSvc: orderSvc}
}

type checkoutItemRequest struct {
	ProductID   int64  `json:"product_id"`
	Quantity    int    `json:"quantity"`
	RentalStart string `json:"rental_start"`
	RentalEnd   string `json:"rental_end"`
}

type placeOrderRequest struct {
	Items           []checkoutItemRequest `json:"items"`
	BillingAddress  string                `json:"billing_address"`
	DeliveryAddress string                `json:"delivery_address"`
	DeliveryMethod  string                `json:"delivery_method"`
	PaymentMethod   string                `json:"payment_method"`
	CouponCode      string                `json:"coupon_code"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type orderListResponse struct {
	Orders   []domain.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	input := service.CheckoutInput{
		BillingAddress:  req.BillingAddress,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryMethod:  req.DeliveryMethod,
		PaymentMethod:   req.PaymentMethod,
		CouponCode:      req.CouponCode,
	}
	for _, item := range req.Items {
		start, end, err := parseRentalRange(item.RentalStart, item.RentalEnd)
		if err != nil {
			respondError(w, err)
			return
		}
		input.Items = append(input.Items, service.CheckoutItem{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			RentalStart: start,
			RentalEnd:   end,
		})
	}

	order, err := h.checkoutSvc.PlaceOrder(r.Context(), userIDFromContext(r.Context()), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, service.ErrValidation)
		return
	}

	order, err := h.orderSvc.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims != nil && claims.Role != string(domain.UserRoleVendor) && order.UserID != claims.UserID {
		respondError(w, service.ErrUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	orders, total, err := h.orderSvc.ListOrders(r.Context(), domain.OrderStatus(r.URL.Query().Get("status")), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orderListResponse{Orders: orders, Total: total, Page: page, PageSize: pageSize})
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	orders, total, err := h.orderSvc.ListMyOrders(r.Context(), userIDFromContext(r.Context()), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orderListResponse{Orders: orders, Total: total, Page: page, PageSize: pageSize})
}

func (h *OrderHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, service.ErrValidation)
		return
	}

	var req changeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.orderSvc.ChangeStatus(r.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
