package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/progress"
	"github.com/talentforge/skillboard/internal/domain/role"
)

// DemoPassword is the credential every seeded fixture account accepts.
const DemoPassword = "password123"

// Fixture is the in-memory backend substitute used in mock mode. It keeps
// full CRUD semantics behind the same contracts as the HTTP gateway so the
// rest of the system cannot tell the two apart. All operations resolve
// immediately; the mutex only guards against concurrent handler access.
type Fixture struct {
	mu       sync.RWMutex
	password string

	users      []model.User
	skills     []model.Skill
	scores     []model.Score
	notes      []model.Notification
	seenTokens map[string]string // token -> user id, for logout bookkeeping
}

// FixtureOption applies a configuration option to the Fixture.
type FixtureOption func(*Fixture)

// WithDemoPassword overrides the password seeded accounts accept.
func WithDemoPassword(password string) FixtureOption {
	return func(f *Fixture) {
		if password != "" {
			f.password = password
		}
	}
}

// WithSeed replaces the default demo data.
func WithSeed(users []model.User, skills []model.Skill, scores []model.Score, notes []model.Notification) FixtureOption {
	return func(f *Fixture) {
		f.users = users
		f.skills = skills
		f.scores = scores
		f.notes = notes
	}
}

// NewFixture builds a seeded fixture store.
func NewFixture(opts ...FixtureOption) *Fixture {
	f := &Fixture{
		password:   DemoPassword,
		users:      seedUsers(),
		skills:     seedSkills(),
		scores:     seedScores(),
		notes:      seedNotifications(),
		seenTokens: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFixtureSet wires all entity families onto one shared fixture store.
func NewFixtureSet(opts ...FixtureOption) Set {
	f := NewFixture(opts...)
	return Set{
		Auth:   &fixtureAuth{f: f},
		Users:  &fixtureUsers{f: f},
		Skills: &fixtureSkills{f: f},
		Scores: &fixtureScores{f: f},
	}
}

// Notifications returns a copy of the seeded notifications for a user, in
// insertion order. The app service uses this to prime its inbox.
func (f *Fixture) Notifications(userID string) []model.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []model.Notification
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// fixtureAuth implements Auth against the seeded accounts.
type fixtureAuth struct {
	f *Fixture
}

func (a *fixtureAuth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	a.f.mu.Lock()
	defer a.f.mu.Unlock()
	if password != a.f.password {
		return LoginResult{}, fmt.Errorf("%w: login rejected", ErrUnauthorized)
	}
	for _, u := range a.f.users {
		if strings.EqualFold(u.Email, email) {
			token := "mock-" + uuid.NewString()
			a.f.seenTokens[token] = u.ID
			return LoginResult{User: u.Redacted(), Token: token}, nil
		}
	}
	return LoginResult{}, fmt.Errorf("%w: login rejected", ErrUnauthorized)
}

func (a *fixtureAuth) Logout(ctx context.Context, ts TokenSource) error {
	a.f.mu.Lock()
	defer a.f.mu.Unlock()
	delete(a.f.seenTokens, ts.Token())
	return nil
}

// fixtureUsers implements Users against the seeded store.
type fixtureUsers struct {
	f *Fixture
}

func (g *fixtureUsers) byRole(r role.Role) []model.User {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()
	var out []model.User
	for _, u := range g.f.users {
		if u.Role == r {
			out = append(out, u.Redacted())
		}
	}
	return out
}

func (g *fixtureUsers) Employees(ctx context.Context, ts TokenSource) ([]model.User, error) {
	return g.byRole(role.Employee), nil
}

func (g *fixtureUsers) Trainers(ctx context.Context, ts TokenSource) ([]model.User, error) {
	return g.byRole(role.Trainer), nil
}

// List mirrors the backend union: employees plus trainers, managers left
// out to match the documented contract gap.
func (g *fixtureUsers) List(ctx context.Context, ts TokenSource) ([]model.User, error) {
	employees, _ := g.Employees(ctx, ts)
	trainers, _ := g.Trainers(ctx, ts)
	return append(employees, trainers...), nil
}

func (g *fixtureUsers) Get(ctx context.Context, ts TokenSource, id string) (model.Employee, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()
	for _, u := range g.f.users {
		if u.ID != id {
			continue
		}
		var scores []model.Score
		for _, s := range g.f.scores {
			if s.EmployeeID == id {
				scores = append(scores, s)
			}
		}
		var notes []model.Notification
		for _, n := range g.f.notes {
			if n.UserID == id {
				notes = append(notes, n)
			}
		}
		avg := progress.AverageScore(scores)
		return model.Employee{
			User:               u.Redacted(),
			SkillLevel:         progress.LevelForScore(avg),
			InterviewReadiness: progress.ReadinessForAverage(avg),
			Scores:             scores,
			Notifications:      notes,
		}, nil
	}
	return model.Employee{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
}

func (g *fixtureUsers) Create(ctx context.Context, ts TokenSource, u model.User) (model.User, error) {
	if err := u.ValidateNew(); err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	for _, existing := range g.f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return model.User{}, fmt.Errorf("%w: email already registered", ErrValidation)
		}
	}
	u.ID = uuid.NewString()
	g.f.users = append(g.f.users, u)
	return u.Redacted(), nil
}

// Update merges the payload into the stored record: fields absent from the
// payload keep their stored values, so a partial body can never blank a
// required field or the role.
func (g *fixtureUsers) Update(ctx context.Context, ts TokenSource, id string, u model.User) (model.User, error) {
	if u.Role != "" && !role.Valid(u.Role) {
		return model.User{}, fmt.Errorf("%w: role %q", ErrValidation, u.Role)
	}
	if u.Experience < 0 {
		return model.User{}, fmt.Errorf("%w: negative experience", ErrValidation)
	}
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	for i, existing := range g.f.users {
		if existing.ID != id {
			continue
		}
		merged := existing
		if u.Name != "" {
			merged.Name = u.Name
		}
		if u.Email != "" {
			merged.Email = u.Email
		}
		if u.Role != "" {
			merged.Role = u.Role
		}
		if u.Department != "" {
			merged.Department = u.Department
		}
		if u.Experience != 0 {
			merged.Experience = u.Experience
		}
		if u.Avatar != "" {
			merged.Avatar = u.Avatar
		}
		if u.Password != "" {
			merged.Password = u.Password
		}
		g.f.users[i] = merged
		return merged.Redacted(), nil
	}
	return model.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
}

// Delete removes the account and cascades to its scores and notifications:
// the employee record shares its owner's lifetime.
func (g *fixtureUsers) Delete(ctx context.Context, ts TokenSource, id string) error {
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	for i, existing := range g.f.users {
		if existing.ID != id {
			continue
		}
		g.f.users = append(g.f.users[:i], g.f.users[i+1:]...)
		scores := g.f.scores[:0]
		for _, s := range g.f.scores {
			if s.EmployeeID != id {
				scores = append(scores, s)
			}
		}
		g.f.scores = scores
		notes := g.f.notes[:0]
		for _, n := range g.f.notes {
			if n.UserID != id {
				notes = append(notes, n)
			}
		}
		g.f.notes = notes
		return nil
	}
	return fmt.Errorf("%w: user %s", ErrNotFound, id)
}

// fixtureSkills implements Skills against the seeded store.
type fixtureSkills struct {
	f *Fixture
}

func (g *fixtureSkills) List(ctx context.Context, ts TokenSource) ([]model.Skill, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()
	out := make([]model.Skill, len(g.f.skills))
	copy(out, g.f.skills)
	return out, nil
}

func (g *fixtureSkills) Get(ctx context.Context, ts TokenSource, id string) (model.Skill, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()
	for _, s := range g.f.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Skill{}, fmt.Errorf("%w: skill %s", ErrNotFound, id)
}

func (g *fixtureSkills) Create(ctx context.Context, ts TokenSource, s model.Skill) (model.Skill, error) {
	if err := s.Validate(); err != nil {
		return model.Skill{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	s.ID = uuid.NewString()
	g.f.skills = append(g.f.skills, s)
	return s, nil
}

// Update merges like the user path: an empty field keeps its stored value,
// so the name can never be blanked below what Create accepts.
func (g *fixtureSkills) Update(ctx context.Context, ts TokenSource, id string, s model.Skill) (model.Skill, error) {
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	for i, existing := range g.f.skills {
		if existing.ID != id {
			continue
		}
		merged := existing
		if s.Name != "" {
			merged.Name = s.Name
		}
		if s.Category != "" {
			merged.Category = s.Category
		}
		if s.Description != "" {
			merged.Description = s.Description
		}
		g.f.skills[i] = merged
		return merged, nil
	}
	return model.Skill{}, fmt.Errorf("%w: skill %s", ErrNotFound, id)
}

func (g *fixtureSkills) Delete(ctx context.Context, ts TokenSource, id string) error {
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	for i, existing := range g.f.skills {
		if existing.ID == id {
			g.f.skills = append(g.f.skills[:i], g.f.skills[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: skill %s", ErrNotFound, id)
}

// fixtureScores implements Scores against the seeded store.
type fixtureScores struct {
	f *Fixture
}

func (g *fixtureScores) List(ctx context.Context, ts TokenSource) ([]model.Score, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()
	out := make([]model.Score, len(g.f.scores))
	copy(out, g.f.scores)
	return out, nil
}

func (g *fixtureScores) Get(ctx context.Context, ts TokenSource, id string) (model.Score, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()
	for _, s := range g.f.scores {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Score{}, fmt.Errorf("%w: score %s", ErrNotFound, id)
}

func (g *fixtureScores) ByEmployee(ctx context.Context, ts TokenSource, employeeID string) ([]model.Score, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()
	var out []model.Score
	for _, s := range g.f.scores {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (g *fixtureScores) AverageByEmployee(ctx context.Context, ts TokenSource, employeeID string) (float64, error) {
	scores, _ := g.ByEmployee(ctx, ts, employeeID)
	return float64(progress.AverageScore(scores)), nil
}

func (g *fixtureScores) Create(ctx context.Context, ts TokenSource, s model.Score) (model.Score, error) {
	if err := s.Validate(); err != nil {
		return model.Score{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	s.ID = uuid.NewString()
	g.f.scores = append(g.f.scores, s)
	return s, nil
}

func (g *fixtureScores) Update(ctx context.Context, ts TokenSource, id string, s model.Score) (model.Score, error) {
	if err := s.Validate(); err != nil {
		return model.Score{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	for i, existing := range g.f.scores {
		if existing.ID != id {
			continue
		}
		s.ID = id
		g.f.scores[i] = s
		return s, nil
	}
	return model.Score{}, fmt.Errorf("%w: score %s", ErrNotFound, id)
}

func (g *fixtureScores) Delete(ctx context.Context, ts TokenSource, id string) error {
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	for i, existing := range g.f.scores {
		if existing.ID == id {
			g.f.scores = append(g.f.scores[:i], g.f.scores[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: score %s", ErrNotFound, id)
}
