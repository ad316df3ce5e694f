// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/talentforge/skillboard/internal/adapters/gateway"
	service "github.com/talentforge/skillboard/internal/app"
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/roster"
	"github.com/talentforge/skillboard/internal/notify"
	"github.com/talentforge/skillboard/internal/session"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	AuthDependencies
	UsersDependencies
	SkillsDependencies
	ScoresDependencies
	NotificationsDependencies
}

// AuthDependencies defines the interface for session operations.
type AuthDependencies interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(ctx context.Context, sess *session.Session)
	Authenticate(token string) (*session.Session, bool)
}

// UsersDependencies defines the interface for roster and account operations.
type UsersDependencies interface {
	Roster(ctx context.Context, sess *session.Session, f roster.Filter) ([]model.User, error)
	Departments(ctx context.Context, sess *session.Session) ([]string, error)
	User(ctx context.Context, sess *session.Session, id string) (model.Employee, error)
	CreateUser(ctx context.Context, sess *session.Session, u model.User) (model.User, error)
	UpdateUser(ctx context.Context, sess *session.Session, id string, u model.User) (model.User, error)
	DeleteUser(ctx context.Context, sess *session.Session, id string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps Dependencies

	healthHandler        *HealthHandler
	authHandler          *AuthHandler
	usersHandler         *UsersHandler
	skillsHandler        *SkillsHandler
	scoresHandler        *ScoresHandler
	notificationsHandler *NotificationsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		deps:                 deps,
		healthHandler:        NewHealthHandler(),
		authHandler:          NewAuthHandler(deps),
		usersHandler:         NewUsersHandler(deps),
		skillsHandler:        NewSkillsHandler(deps),
		scoresHandler:        NewScoresHandler(deps),
		notificationsHandler: NewNotificationsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Every route except login and
// health runs behind the session middleware.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	auth := func(next sessionHandler) http.HandlerFunc {
		return sessionMiddleware(s.deps, next)
	}

	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))

	mux.HandleFunc("POST /auth/login", MetricsMiddleware(s.authHandler.HandleLogin, "auth_login"))
	mux.HandleFunc("POST /auth/logout", MetricsMiddleware(auth(s.authHandler.HandleLogout), "auth_logout"))

	mux.HandleFunc("GET /users", MetricsMiddleware(auth(s.usersHandler.HandleList), "users_list"))
	mux.HandleFunc("POST /users", MetricsMiddleware(auth(s.usersHandler.HandleCreate), "users_create"))
	mux.HandleFunc("GET /users/{id}", MetricsMiddleware(auth(s.usersHandler.HandleGet), "users_get"))
	mux.HandleFunc("PUT /users/{id}", MetricsMiddleware(auth(s.usersHandler.HandleUpdate), "users_update"))
	mux.HandleFunc("DELETE /users/{id}", MetricsMiddleware(auth(s.usersHandler.HandleDelete), "users_delete"))
	mux.HandleFunc("GET /departments", MetricsMiddleware(auth(s.usersHandler.HandleDepartments), "departments"))
	mux.HandleFunc("GET /employees/{id}/summary", MetricsMiddleware(auth(s.scoresHandler.HandleSummary), "employee_summary"))

	mux.HandleFunc("GET /skills", MetricsMiddleware(auth(s.skillsHandler.HandleList), "skills_list"))
	mux.HandleFunc("POST /skills", MetricsMiddleware(auth(s.skillsHandler.HandleCreate), "skills_create"))
	mux.HandleFunc("PUT /skills/{id}", MetricsMiddleware(auth(s.skillsHandler.HandleUpdate), "skills_update"))
	mux.HandleFunc("DELETE /skills/{id}", MetricsMiddleware(auth(s.skillsHandler.HandleDelete), "skills_delete"))

	mux.HandleFunc("GET /scores/employee/{id}", MetricsMiddleware(auth(s.scoresHandler.HandleByEmployee), "scores_by_employee"))
	mux.HandleFunc("POST /scores", MetricsMiddleware(auth(s.scoresHandler.HandleCreate), "scores_create"))
	mux.HandleFunc("PUT /scores/{id}", MetricsMiddleware(auth(s.scoresHandler.HandleUpdate), "scores_update"))
	mux.HandleFunc("DELETE /scores/{id}", MetricsMiddleware(auth(s.scoresHandler.HandleDelete), "scores_delete"))

	mux.HandleFunc("GET /notifications", MetricsMiddleware(auth(s.notificationsHandler.HandleList), "notifications_list"))
	mux.HandleFunc("GET /notifications/unread", MetricsMiddleware(auth(s.notificationsHandler.HandleUnread), "notifications_unread"))
	mux.HandleFunc("POST /notifications/read-all", MetricsMiddleware(auth(s.notificationsHandler.HandleReadAll), "notifications_read_all"))
	mux.HandleFunc("POST /notifications/{id}/read", MetricsMiddleware(auth(s.notificationsHandler.HandleRead), "notifications_read"))
	mux.HandleFunc("DELETE /notifications/{id}", MetricsMiddleware(auth(s.notificationsHandler.HandleDelete), "notifications_delete"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps the discriminated error taxonomy onto HTTP statuses.
// Every failed operation surfaces as an explicit error body, never as an
// empty success.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated", err)
	case errors.Is(err, gateway.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, gateway.ErrNotFound), errors.Is(err, notify.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, gateway.ErrValidation), errors.Is(err, model.ErrInvalid):
		writeError(w, http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, gateway.ErrTransport):
		writeError(w, http.StatusBadGateway, "upstream_unreachable", err)
	case errors.Is(err, gateway.ErrRemote):
		writeError(w, http.StatusBadGateway, "upstream_error", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ErrBadRequest
	}
	return nil
}
