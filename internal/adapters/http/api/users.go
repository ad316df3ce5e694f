package api

import (
	"net/http"
	"strconv"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/role"
	"github.com/talentforge/skillboard/internal/domain/roster"
	"github.com/talentforge/skillboard/internal/session"
)

// UsersHandler handles roster and account requests.
type UsersHandler struct {
	deps UsersDependencies
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(deps UsersDependencies) *UsersHandler {
	return &UsersHandler{deps: deps}
}

// filterFromQuery builds a roster filter from query params, falling back to
// the defaults for anything absent.
func filterFromQuery(r *http.Request) (roster.Filter, error) {
	f := roster.NewFilter()
	q := r.URL.Query()

	f.Search = q.Get("search")
	f.Department = q.Get("department")

	if raw := q.Get("role"); raw != "" && raw != roster.RoleAll {
		parsed, err := role.Parse(raw)
		if err != nil {
			return f, ErrBadRequest
		}
		f.Role = string(parsed)
	}
	if raw := q.Get("experienceMin"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return f, ErrBadRequest
		}
		f.ExperienceMin = n
	}
	// An absent upper bound is marked negative so the service can substitute
	// its configured maximum; an explicit value, zero included, is kept.
	f.ExperienceMax = -1
	if raw := q.Get("experienceMax"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return f, ErrBadRequest
		}
		f.ExperienceMax = n
	}
	if raw := q.Get("sortBy"); raw != "" {
		switch raw {
		case roster.ByName, roster.ByEmail, roster.ByExperience, roster.ByDepartment:
			f.SortBy = raw
		default:
			return f, ErrBadRequest
		}
	}
	if raw := q.Get("sortOrder"); raw != "" {
		switch raw {
		case roster.Asc, roster.Desc:
			f.SortOrder = raw
		default:
			return f, ErrBadRequest
		}
	}
	return f, nil
}

// HandleList handles GET /users requests with filter and sort query params.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	users, err := h.deps.Roster(r.Context(), sess, f)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// HandleDepartments handles GET /departments requests.
func (h *UsersHandler) HandleDepartments(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	departments, err := h.deps.Departments(r.Context(), sess)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if departments == nil {
		departments = []string{}
	}
	writeJSON(w, http.StatusOK, departments)
}

// HandleGet handles GET /users/{id} requests. The response is the full
// employee record with scores and notifications attached.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	emp, err := h.deps.User(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// HandleCreate handles POST /users requests.
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var u model.User
	if err := decodeBody(r, &u); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	created, err := h.deps.CreateUser(r.Context(), sess, u)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /users/{id} requests.
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var u model.User
	if err := decodeBody(r, &u); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	updated, err := h.deps.UpdateUser(r.Context(), sess, r.PathValue("id"), u)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /users/{id} requests.
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := h.deps.DeleteUser(r.Context(), sess, r.PathValue("id")); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
