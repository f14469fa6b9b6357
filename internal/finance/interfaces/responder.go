package interfaces

import (
	"net/http"

	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
)

// responder carries the injected response writers shared by every handler.
type responder struct {
	respondJSON  httpx.RespondJSONFunc
	respondError httpx.RespondErrorFunc
	logger       logging.Logger
}

func newResponder(respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) responder {
	if respondJSON == nil {
		panic("RespondJSON function must not be nil")
	}
	if respondError == nil {
		panic("RespondError function must not be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return responder{respondJSON: respondJSON, respondError: respondError, logger: logger}
}

// fail maps a service error onto the response and logs unexpected ones.
func (h responder) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if !httpx.ServiceError(w, h.respondError, err, fallback) {
		h.logger.Error(r.Context(), fallback, "error", err, "path", r.URL.Path)
	}
}

// pathID writes a 400 and returns false when the wildcard is not a valid id.
func (h responder) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := httpx.PathID(r, name)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

func (h responder) created(w http.ResponseWriter, message string, id int64) {
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensaje": message,
		"id":      id,
	})
}

func (h responder) message(w http.ResponseWriter, message string) {
	h.respondJSON(w, http.StatusOK, map[string]string{"mensaje": message})
}
