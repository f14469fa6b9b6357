package auth

import (
	"errors"
	"net/http"

	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
	"github.com/sebuszqo/LanaApp/internal/user"
)

type Handler struct {
	authService  Service
	respondJSON  httpx.RespondJSONFunc
	respondError httpx.RespondErrorFunc
	logger       logging.Logger
}

func NewHandler(authService Service, respondJSON httpx.RespondJSONFunc, respondError httpx.RespondErrorFunc, logger logging.Logger) *Handler {
	if authService == nil {
		panic("auth service must not be nil")
	}
	if respondJSON == nil || respondError == nil {
		panic("respond functions must not be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handler{
		authService:  authService,
		respondJSON:  respondJSON,
		respondError: respondError,
		logger:       logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        *user.User `json:"user"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	loggedUser, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo iniciar sesión")
		return
	}

	h.respondJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        loggedUser,
	})
}

// HandleCurrentUser serves both /verify-token and /usuario-actual; the
// middleware has already authenticated the caller.
func (h *Handler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := UserFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.respondError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, currentUser)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := h.authService.Logout(r.Context(), token); err != nil {
		h.logger.Error(r.Context(), "could not revoke token", "error", err)
		h.respondError(w, http.StatusInternalServerError, "No se pudo cerrar la sesión")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Logout exitoso"})
}
