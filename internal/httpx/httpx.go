// Package httpx holds the helpers shared by every HTTP handler: injected
// response writers, path and body decoding, and service error mapping.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
)

type RespondJSONFunc func(w http.ResponseWriter, status int, payload interface{})

// RespondErrorFunc writes the error envelope. The optional list carries
// per-item validation messages.
type RespondErrorFunc func(w http.ResponseWriter, status int, message string, errors ...[]string)

var ErrInvalidBody = errors.New("Cuerpo de la petición inválido")

// PathID parses the named path wildcard as a positive integer id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("%s es obligatorio", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s debe ser un entero positivo", name)
	}
	return id, nil
}

// DecodeJSON decodes the request body into dst. Any decoding failure,
// including a type mismatch reported by a field's UnmarshalJSON, is returned
// as a ValidationError.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return appErrors.NewValidationError(ErrInvalidBody.Error())
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErrors.NewValidationError(fmt.Sprintf("%s: %v", ErrInvalidBody.Error(), err))
	}
	return nil
}

// ServiceError writes the response for an error returned by a service.
// Validation failures map to 400 and missing rows to 404 using the error's
// own message; anything else is reported as 500 with the fallback message.
// It returns false for the 500 case so callers can log the cause.
func ServiceError(w http.ResponseWriter, respondError RespondErrorFunc, err error, fallback string) bool {
	var (
		validationErrs *appErrors.ValidationErrors
		validationErr  *appErrors.ValidationError
		notFound       *appErrors.NotFoundError
	)
	switch {
	case errors.As(err, &validationErrs):
		respondError(w, http.StatusBadRequest, "Se encontraron errores de validación", validationErrs.Messages())
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Msg)
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Msg)
	default:
		respondError(w, http.StatusInternalServerError, fallback)
		return false
	}
	return true
}

// StatusRecorder remembers the status code written through it.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (r *StatusRecorder) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}
