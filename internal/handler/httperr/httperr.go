package httperr

import (
	"errors"
	"net/http"

	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/pkg/errs"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldDetail lists the offending request fields of a validation failure.
type FieldDetail struct {
	MissingFields []string `json:"missingFields,omitempty"`
	InvalidFields []string `json:"invalidFields,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type fieldError interface {
	Fields() (missing, invalid []string)
}

// Abort maps a usecase error onto a status and a user-facing message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)

	var detail any
	var fe fieldError
	if errors.As(err, &fe) {
		missing, invalid := fe.Fields()
		detail = FieldDetail{MissingFields: missing, InvalidFields: invalid}
	}
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrSessionExpired):
		return http.StatusUnauthorized, "Session expired"
	case errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusUnauthorized, "Session not found"
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Login required"
	case errs.Is(err, usecase.ErrInvalidCredentials):
		if errs.Is(err, errs.ErrValidation) {
			return http.StatusBadRequest, "Email and password are required"
		}
		if msg, ok := usecase.RemoteMessage(err); ok {
			return http.StatusUnauthorized, msg
		}
		return http.StatusUnauthorized, usecase.MsgLoginFailed
	case errs.Is(err, usecase.ErrAuthenticationFailed):
		return http.StatusUnauthorized, usecase.MsgLoginFailed
	case errs.Is(err, errs.ErrValidation):
		var rv *reservation.ValidationError
		if errors.As(err, &rv) && rv.Cause != nil {
			return http.StatusUnprocessableEntity, rv.Cause.Error()
		}
		return http.StatusUnprocessableEntity, "Invalid request data"
	case errs.Is(err, errs.ErrNotFound):
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			return http.StatusNotFound, "Product not found"
		case errors.Is(err, usecase.ErrWorkflowNotFound):
			return http.StatusNotFound, "Reservation not found"
		}
		return http.StatusNotFound, "Not found"
	case errors.Is(err, reservation.ErrInvalidTransition):
		return http.StatusConflict, "Reservation is not in a state that allows this action"
	case errors.Is(err, usecase.ErrToggleInFlight):
		return http.StatusConflict, "Favorite update already in progress"
	case errs.Is(err, usecase.ErrFavoriteSyncFailed):
		return http.StatusBadGateway, "Could not update favorites"
	case errors.Is(err, usecase.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, "Backend not available"
	case errs.Is(err, errs.ErrRequestFailed):
		if msg, ok := usecase.RemoteMessage(err); ok {
			return http.StatusBadGateway, msg
		}
		return http.StatusBadGateway, "Backend request failed"
	case errs.Is(err, errs.ErrStoreOperationFailed):
		return http.StatusServiceUnavailable, "Session store unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
