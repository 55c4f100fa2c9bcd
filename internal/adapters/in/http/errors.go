package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ErrorResponse is the uniform error payload of every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates the error taxonomy into an HTTP status.
//
//   - not found                        -> 404
//   - stale write, rejected transition,
//     exhausted capacity               -> 409
//   - unsatisfied stage gate,
//     finalized object                 -> 422
//   - bad input                        -> 400
//
// Anything unclassified is a 500; the message is the error text either way.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorResponse{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyPacked),
		errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, officer.ErrCapacityExceeded),
		errors.Is(err, services.ErrNoSuitableVehicle),
		errors.Is(err, services.ErrNoAvailableDriver):
		return http.StatusConflict

	case errors.Is(err, errs.ErrObjectFinalized),
		errors.Is(err, order.ErrIncompletePacking),
		errors.Is(err, order.ErrIncompleteVerification),
		errors.Is(err, order.ErrIncompleteProof),
		errors.Is(err, order.ErrNotConfirmed):
		return http.StatusUnprocessableEntity

	case errors.As(err, &validationErrs),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidItemIndex):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondBadRequest is for bind and parse failures before a command exists.
func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
