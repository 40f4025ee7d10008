package http

import (
	"errors"
	"net/http"

	"storefront/internal/adapters/out/identity"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/inflight"

	"github.com/labstack/echo/v4"
)

// respondError translates a use case error into an HTTP status and the
// {success, message} envelope. RemoteFailureError hides the backend detail
// behind its UserMessage; everything else is safe to show as-is.
func respondError(c echo.Context, err error) error {
	var remoteErr *errs.RemoteFailureError
	if errors.As(err, &remoteErr) {
		return c.JSON(http.StatusBadGateway, errorResponse{Message: remoteErr.UserMessage()})
	}

	return c.JSON(statusFor(err), errorResponse{Message: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, identity.ErrInvalidCredential):
		return http.StatusUnauthorized

	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, review.ErrDuplicateReview),
		errors.Is(err, review.ErrNotDelivered),
		errors.Is(err, inflight.ErrOperationInFlight):
		return http.StatusConflict

	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
