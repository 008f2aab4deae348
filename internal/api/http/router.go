package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/security"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

// Services bundles everything the router needs to serve the API.
type Services struct {
	Auth        service.AuthService
	Catalog     service.CatalogService
	Cart        service.CartService
	Checkout    service.CheckoutService
	Orders      service.OrderService
	RentalOrder service.RentalOrderService
	Tokens      security.TokenManager
}

// NewRouter builds the full API route table.
func NewRouter(svcs Services) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	productHandler := NewProductHandler(svcs.Catalog)
	cartHandler := NewCartHandler(svcs.Cart)
	orderHandler := NewOrderHandler(svcs.Checkout, svcs.Orders)
	rentalHandler := NewRentalOrderHandler(svcs.RentalOrder)
	authMW := NewAuthMiddleware(svcs.Tokens)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/products", productHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", productHandler.Get).Methods(http.MethodGet)

	// Authenticated routes.
	auth := api.NewRoute().Subrouter()
	auth.Use(authMW.Authenticate)

	auth.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	auth.HandleFunc("/products", RequireVendor(productHandler.Create)).Methods(http.MethodPost)

	auth.HandleFunc("/cart", cartHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/cart", cartHandler.Clear).Methods(http.MethodDelete)
	auth.HandleFunc("/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	auth.HandleFunc("/cart/items/{itemID}", cartHandler.UpdateItem).Methods(http.MethodPatch)
	auth.HandleFunc("/cart/items/{itemID}", cartHandler.RemoveItem).Methods(http.MethodDelete)
	auth.HandleFunc("/cart/coupon", cartHandler.ApplyCoupon).Methods(http.MethodPost)
	auth.HandleFunc("/cart/coupon", cartHandler.RemoveCoupon).Methods(http.MethodDelete)
	auth.HandleFunc("/cart/summary", cartHandler.Summary).Methods(http.MethodGet)

	auth.HandleFunc("/orders", orderHandler.Place).Methods(http.MethodPost)
	auth.HandleFunc("/orders", RequireVendor(orderHandler.List)).Methods(http.MethodGet)
	auth.HandleFunc("/my/orders", orderHandler.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/orders/{id:[0-9]+}", orderHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/orders/{id:[0-9]+}/status", RequireVendor(orderHandler.ChangeStatus)).Methods(http.MethodPatch)

	rental := auth.PathPrefix("/rental-orders").Subrouter()
	rental.HandleFunc("", RequireVendor(rentalHandler.Create)).Methods(http.MethodPost)
	rental.HandleFunc("", RequireVendor(rentalHandler.List)).Methods(http.MethodGet)
	rental.HandleFunc("/{id}", RequireVendor(rentalHandler.Get)).Methods(http.MethodGet)
	rental.HandleFunc("/{id}/lines", RequireVendor(rentalHandler.AddLine)).Methods(http.MethodPost)
	rental.HandleFunc("/{id}/lines/{index:[0-9]+}", RequireVendor(rentalHandler.UpdateLineQuantity)).Methods(http.MethodPatch)
	rental.HandleFunc("/{id}/lines/{index:[0-9]+}", RequireVendor(rentalHandler.RemoveLine)).Methods(http.MethodDelete)
	rental.HandleFunc("/{id}/prices", RequireVendor(rentalHandler.UpdatePrices)).Methods(http.MethodPost)
	rental.HandleFunc("/{id}/send", RequireVendor(rentalHandler.Send)).Methods(http.MethodPost)
	rental.HandleFunc("/{id}/confirm", RequireVendor(rentalHandler.Confirm)).Methods(http.MethodPost)
	rental.HandleFunc("/{id}/cancel", RequireVendor(rentalHandler.Cancel)).Methods(http.MethodPost)

	return r
}
