package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain and application errors to HTTP status codes.
// Unknown errors become 500 without leaking internals to the client.
func respondError(ctx echo.Context, err error) error {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: message})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, shipment.ErrStatusUnchanged),
		errors.Is(err, commands.ErrShipmentAlreadyAssigned),
		errors.Is(err, commands.ErrAssignmentConflict),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrCarrierUnavailable),
		errors.Is(err, services.ErrInsufficientCapacity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
