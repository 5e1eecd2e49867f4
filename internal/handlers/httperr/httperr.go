// Package httperr maps service layer errors onto Huma HTTP errors.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-server/internal/service"
)

// FromService translates the service error taxonomy into an HTTP status.
// Conflicts surface as 400 to match the public contract; anything outside
// the taxonomy becomes a 500 with the given message.
func FromService(err error, message string) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return huma.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return huma.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
