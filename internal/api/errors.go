package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
)

// Client-facing messages for errors that are not domain failures.
const (
	msgInvalidInput   = "Invalid input"
	msgDuplicateKey   = "Duplicate key value"
	msgInternalError  = "Internal Server Error"
	msgNotFound       = "Endpoint not found"
	msgMethodNotAllow = "Method not allowed"
)

// MapErrorToStatusCode maps an error to its HTTP status code. Store codes
// are checked first, then domain failures; anything else is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	}

	if status, ok := failureStatus(err); ok {
		return status
	}

	return http.StatusInternalServerError
}

// failureStatus returns the status for a domain failure of a known kind.
func failureStatus(err error) (int, bool) {
	f, ok := domain.AsFailure(err)
	if !ok {
		return 0, false
	}
	switch f.Kind {
	case domain.KindInvalid:
		return http.StatusBadRequest, true
	case domain.KindNotFound:
		return http.StatusNotFound, true
	}
	return 0, false
}

// GetSafeErrorMessage returns the message shown to clients for err. Domain
// failures carry their own message; everything else gets a fixed string so
// internal details never leak.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return msgInternalError
	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidInput
	case errors.Is(err, store.ErrDuplicate):
		return msgDuplicateKey
	}

	if _, ok := failureStatus(err); ok {
		f, _ := domain.AsFailure(err)
		return f.Msg
	}

	return msgInternalError
}

// HandleAPIError writes the normalised error response for err.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// NotFoundHandler answers requests for unknown routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowedHandler answers known routes requested with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllow)
}
