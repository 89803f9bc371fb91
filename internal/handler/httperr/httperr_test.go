//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/handler/httperr"
	"rental-storefront/internal/infra/backend"
	"rental-storefront/internal/pkg/errs"
	"rental-storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"expired session", errs.Wrap(usecase.ErrSessionExpired, "get"), http.StatusUnauthorized, "Session expired"},
		{"login required", reservation.ErrNotAuthenticated, http.StatusUnauthorized, "Login required"},
		{"blank credentials", errs.Mark(usecase.ErrInvalidCredentials, errs.ErrValidation), http.StatusBadRequest, "Email and password are required"},
		{"rejected credentials without message", errs.Mark(&backend.APIError{Status: http.StatusUnauthorized}, usecase.ErrInvalidCredentials), http.StatusUnauthorized, usecase.MsgLoginFailed},
		{"date validation", errs.Mark(&reservation.ValidationError{Cause: reservation.ErrStartBeforeToday}, errs.ErrValidation), http.StatusUnprocessableEntity, reservation.ErrStartBeforeToday.Error()},
		{"product not found", errs.Mark(usecase.ErrProductNotFound, errs.ErrNotFound), http.StatusNotFound, "Product not found"},
		{"invalid transition", errs.Wrap(reservation.ErrInvalidTransition, "retry"), http.StatusConflict, ""},
		{"detached backend", usecase.ErrBackendUnavailable, http.StatusServiceUnavailable, "Backend not available"},
		{"backend error with message", errs.Wrap(&backend.APIError{Status: http.StatusInternalServerError, Message: "boom"}, "history"), http.StatusBadGateway, "boom"},
		{"store failure", errs.Mark(errors.New("conn reset"), errs.ErrStoreOperationFailed), http.StatusServiceUnavailable, "Session store unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}
}
