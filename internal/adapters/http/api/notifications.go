package api

import (
	"context"
	"net/http"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/session"
)

// NotificationsDependencies defines the interface for inbox operations.
// Every operation is scoped to the calling principal's own inbox.
type NotificationsDependencies interface {
	Notifications(ctx context.Context, sess *session.Session) ([]model.Notification, error)
	UnreadNotifications(ctx context.Context, sess *session.Session) (int, error)
	MarkNotificationRead(ctx context.Context, sess *session.Session, id string) error
	MarkAllNotificationsRead(ctx context.Context, sess *session.Session) (int, error)
	DeleteNotification(ctx context.Context, sess *session.Session, id string) error
}

// NotificationsHandler handles inbox requests.
type NotificationsHandler struct {
	deps NotificationsDependencies
}

// NewNotificationsHandler creates a new notifications handler.
func NewNotificationsHandler(deps NotificationsDependencies) *NotificationsHandler {
	return &NotificationsHandler{deps: deps}
}

// HandleList handles GET /notifications requests.
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	notes, err := h.deps.Notifications(r.Context(), sess)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if notes == nil {
		notes = []model.Notification{}
	}
	writeJSON(w, http.StatusOK, notes)
}

type unreadResponse struct {
	Unread int `json:"unread"`
}

// HandleUnread handles GET /notifications/unread requests.
func (h *NotificationsHandler) HandleUnread(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	unread, err := h.deps.UnreadNotifications(r.Context(), sess)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unreadResponse{Unread: unread})
}

// HandleRead handles POST /notifications/{id}/read requests.
func (h *NotificationsHandler) HandleRead(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := h.deps.MarkNotificationRead(r.Context(), sess, r.PathValue("id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type readAllResponse struct {
	Changed int `json:"changed"`
}

// HandleReadAll handles POST /notifications/read-all requests.
func (h *NotificationsHandler) HandleReadAll(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	changed, err := h.deps.MarkAllNotificationsRead(r.Context(), sess)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, readAllResponse{Changed: changed})
}

// HandleDelete handles DELETE /notifications/{id} requests.
func (h *NotificationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := h.deps.DeleteNotification(r.Context(), sess, r.PathValue("id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
