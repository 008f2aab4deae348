package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/pricing"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/security"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps domain and service errors onto HTTP statuses. Every
// error reaches the client as a structured JSON body, never a bare alert.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, sql.ErrNoRows),
		errors.Is(err, pricing.ErrCouponNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrOrderLineNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrPricingLocked),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidStage),
		errors.Is(err, domain.ErrLastOrderLine),
		errors.Is(err, service.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, domain.ErrMissingRentalDates),
		errors.Is(err, domain.ErrInvalidRentalRange),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNoOrderLines),
		errors.Is(err, domain.ErrUnknownPriceList):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		respondJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", service.ErrValidation)
	}
	return nil
}
