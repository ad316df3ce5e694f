package api

import (
	"context"
	"net/http"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/session"
)

// SkillsDependencies defines the interface for skill catalog operations.
type SkillsDependencies interface {
	SkillCatalog(ctx context.Context, sess *session.Session) (map[string][]model.Skill, error)
	CreateSkill(ctx context.Context, sess *session.Session, s model.Skill) (model.Skill, error)
	UpdateSkill(ctx context.Context, sess *session.Session, id string, s model.Skill) (model.Skill, error)
	DeleteSkill(ctx context.Context, sess *session.Session, id string) error
}

// SkillsHandler handles skill catalog requests.
type SkillsHandler struct {
	deps SkillsDependencies
}

// NewSkillsHandler creates a new skills handler.
func NewSkillsHandler(deps SkillsDependencies) *SkillsHandler {
	return &SkillsHandler{deps: deps}
}

// HandleList handles GET /skills requests. Skills come back grouped by
// category, the shape the catalog view renders.
func (h *SkillsHandler) HandleList(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	grouped, err := h.deps.SkillCatalog(r.Context(), sess)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grouped)
}

// HandleCreate handles POST /skills requests.
func (h *SkillsHandler) HandleCreate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var s model.Skill
	if err := decodeBody(r, &s); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	created, err := h.deps.CreateSkill(r.Context(), sess, s)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /skills/{id} requests.
func (h *SkillsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var s model.Skill
	if err := decodeBody(r, &s); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	updated, err := h.deps.UpdateSkill(r.Context(), sess, r.PathValue("id"), s)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /skills/{id} requests.
func (h *SkillsHandler) HandleDelete(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := h.deps.DeleteSkill(r.Context(), sess, r.PathValue("id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
