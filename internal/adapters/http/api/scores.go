package api

import (
	"context"
	"net/http"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/progress"
	"github.com/talentforge/skillboard/internal/session"
)

// ScoresDependencies defines the interface for assessment operations.
type ScoresDependencies interface {
	EmployeeScores(ctx context.Context, sess *session.Session, employeeID string) ([]model.Score, error)
	EmployeeSummary(ctx context.Context, sess *session.Session, employeeID string) (progress.Summary, error)
	RecordScore(ctx context.Context, sess *session.Session, s model.Score) (model.Score, error)
	UpdateScore(ctx context.Context, sess *session.Session, id string, s model.Score) (model.Score, error)
	DeleteScore(ctx context.Context, sess *session.Session, id string) error
}

// ScoresHandler handles assessment score requests.
type ScoresHandler struct {
	deps ScoresDependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps ScoresDependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// HandleByEmployee handles GET /scores/employee/{id} requests.
func (h *ScoresHandler) HandleByEmployee(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	scores, err := h.deps.EmployeeScores(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	if scores == nil {
		scores = []model.Score{}
	}
	writeJSON(w, http.StatusOK, scores)
}

// HandleSummary handles GET /employees/{id}/summary requests.
func (h *ScoresHandler) HandleSummary(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	summary, err := h.deps.EmployeeSummary(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleCreate handles POST /scores requests.
func (h *ScoresHandler) HandleCreate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var s model.Score
	if err := decodeBody(r, &s); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	created, err := h.deps.RecordScore(r.Context(), sess, s)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /scores/{id} requests.
func (h *ScoresHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var s model.Score
	if err := decodeBody(r, &s); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	updated, err := h.deps.UpdateScore(r.Context(), sess, r.PathValue("id"), s)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /scores/{id} requests.
func (h *ScoresHandler) HandleDelete(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := h.deps.DeleteScore(r.Context(), sess, r.PathValue("id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
