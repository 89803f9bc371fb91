package usecase

import (
	"errors"
	"strings"

	"rental-storefront/internal/domain/reservation"
)

var (
	ErrSessionExpired       = errors.New("session expired")
	ErrNotAuthenticated     = reservation.ErrNotAuthenticated
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrProductNotFound      = errors.New("product not found")
	ErrWorkflowNotFound     = errors.New("reservation workflow not found")
	ErrToggleInFlight       = errors.New("favorite toggle already in progress for this product")
	ErrFavoriteSyncFailed   = errors.New("favorite change was rolled back")
	ErrBackendUnavailable   = errors.New("backend not configured")
)

// User-facing fallbacks when the backend gives no message.
const (
	MsgLoginFailed          = "Error al iniciar sesión"
	MsgRegisterFailed       = "Error al registrar"
	MsgReservationsDetached = "El servicio de reservas no está disponible en este momento."
)

// InputError lists request fields that are blank or malformed.
type InputError struct {
	MissingFields []string
	InvalidFields []string
}

func (e *InputError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.InvalidFields, ", "))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *InputError) Fields() (missing, invalid []string) {
	return e.MissingFields, e.InvalidFields
}
