package api

import (
	"net/http"
	"strings"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/session"
)

// AuthHandler handles login and logout requests.
type AuthHandler struct {
	deps AuthDependencies
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(deps AuthDependencies) *AuthHandler {
	return &AuthHandler{deps: deps}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l loginRequest) validate() error {
	if strings.TrimSpace(l.Email) == "" || l.Password == "" {
		return ErrBadRequest
	}
	return nil
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	sess, err := h.deps.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: sess.Token(), User: sess.Principal()})
}

// HandleLogout handles POST /auth/logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	h.deps.Logout(r.Context(), sess)
	w.WriteHeader(http.StatusNoContent)
}
