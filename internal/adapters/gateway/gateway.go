// Package gateway abstracts remote access to the canonical backend.
// Two implementations exist behind the same contracts: an HTTP client for a
// real backend and an in-memory fixture used in mock mode. The choice is
// made once at process start and never branched on per call.
package gateway

import (
	"context"

	"github.com/talentforge/skillboard/internal/domain/model"
)

// TokenSource supplies the bearer token for a call. The token is read
// before every request, never cached by the gateway, so callers keep
// session state explicit instead of ambient.
type TokenSource interface {
	Token() string
}

// Anonymous is the TokenSource for unauthenticated calls.
var Anonymous TokenSource = anonymous{}

type anonymous struct{}

func (anonymous) Token() string { return "" }

// LoginResult carries the principal and opaque token of a successful login.
type LoginResult struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Auth handles identity establishment against the backend.
type Auth interface {
	// Login exchanges credentials for a principal and token.
	// A rejected credential pair surfaces as ErrUnauthorized.
	Login(ctx context.Context, email, password string) (LoginResult, error)

	// Logout is a best-effort notification; session teardown happens
	// client-side regardless of its outcome.
	Logout(ctx context.Context, ts TokenSource) error
}

// Users provides CRUD access to user accounts.
type Users interface {
	// List returns the union of employees and trainers. Managers and
	// super-users are not separately enumerated by the backend; see
	// WithManagers for the documented gap.
	List(ctx context.Context, ts TokenSource) ([]model.User, error)
	Employees(ctx context.Context, ts TokenSource) ([]model.User, error)
	Trainers(ctx context.Context, ts TokenSource) ([]model.User, error)
	Get(ctx context.Context, ts TokenSource, id string) (model.Employee, error)
	Create(ctx context.Context, ts TokenSource, u model.User) (model.User, error)
	Update(ctx context.Context, ts TokenSource, id string, u model.User) (model.User, error)
	Delete(ctx context.Context, ts TokenSource, id string) error
}

// Skills provides CRUD access to the skill catalog.
type Skills interface {
	List(ctx context.Context, ts TokenSource) ([]model.Skill, error)
	Get(ctx context.Context, ts TokenSource, id string) (model.Skill, error)
	Create(ctx context.Context, ts TokenSource, s model.Skill) (model.Skill, error)
	Update(ctx context.Context, ts TokenSource, id string, s model.Skill) (model.Skill, error)
	Delete(ctx context.Context, ts TokenSource, id string) error
}

// Scores provides CRUD access to assessment scores.
type Scores interface {
	List(ctx context.Context, ts TokenSource) ([]model.Score, error)
	Get(ctx context.Context, ts TokenSource, id string) (model.Score, error)
	ByEmployee(ctx context.Context, ts TokenSource, employeeID string) ([]model.Score, error)
	AverageByEmployee(ctx context.Context, ts TokenSource, employeeID string) (float64, error)
	Create(ctx context.Context, ts TokenSource, s model.Score) (model.Score, error)
	Update(ctx context.Context, ts TokenSource, id string, s model.Score) (model.Score, error)
	Delete(ctx context.Context, ts TokenSource, id string) error
}

// Set bundles the per-family gateways behind one value so callers receive
// a single dependency regardless of the selected implementation.
type Set struct {
	Auth   Auth
	Users  Users
	Skills Skills
	Scores Scores
}
