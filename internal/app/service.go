// Package service provides the core business service that implements
// the dependencies required by the HTTP API: session handling, canonical
// collection caching, role gating and the shared projection engine.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/talentforge/skillboard/internal/adapters/gateway"
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/progress"
	"github.com/talentforge/skillboard/internal/domain/role"
	"github.com/talentforge/skillboard/internal/domain/roster"
	"github.com/talentforge/skillboard/internal/notify"
	"github.com/talentforge/skillboard/internal/session"
	"github.com/talentforge/skillboard/pkg/logger"
	"github.com/talentforge/skillboard/pkg/metrics"
)

// Service implements the API dependencies for the skills dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	gw       gateway.Set
	sessions *session.Manager
	inbox    *notify.Inbox

	// Canonical collections, refreshed after every mutation. The UI never
	// merges optimistic results into these.
	users  []model.User
	skills []model.Skill

	// Monotonic fetch sequences. A refresh whose sequence is no longer
	// current is discarded so a slow response cannot overwrite newer state.
	userSeq  atomic.Uint64
	skillSeq atomic.Uint64

	// Inbox priming bookkeeping per user id.
	seeded map[string]bool

	// Configuration
	experienceMax int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSessionManager sets the session manager.
func WithSessionManager(m *session.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.sessions = m
		}
	}
}

// WithInbox sets the notification inbox.
func WithInbox(inbox *notify.Inbox) Option {
	return func(s *Service) {
		if inbox != nil {
			s.inbox = inbox
		}
	}
}

// WithExperienceMax caps the experience filter range.
func WithExperienceMax(max int) Option {
	return func(s *Service) {
		if max > 0 {
			s.experienceMax = max
		}
	}
}

// New constructs a Service over the selected gateway implementation.
func New(gw gateway.Set, opts ...Option) *Service {
	s := &Service{
		gw:            gw,
		inbox:         notify.NewInbox(),
		seeded:        make(map[string]bool),
		experienceMax: roster.DefaultExperienceMax,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = session.NewManager(gw.Auth)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Start restores persisted sessions. Collection caches stay empty until
// the first authenticated read forces a fetch, so a dead backend surfaces
// as an explicit load error rather than a silently empty list.
func (s *Service) Start(ctx context.Context) error {
	if err := s.sessions.Restore(ctx); err != nil {
		return fmt.Errorf("restore sessions: %w", err)
	}
	s.logger.Info(ctx, "skillboard service started",
		logger.Int("sessions", s.sessions.Count()))
	return nil
}

// Login establishes a session through the gateway.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Session, error) {
	return s.sessions.Login(ctx, email, password)
}

// Logout tears the session down.
func (s *Service) Logout(ctx context.Context, sess *session.Session) {
	s.sessions.Logout(ctx, sess)
}

// Authenticate resolves a bearer token to a live session.
func (s *Service) Authenticate(token string) (*session.Session, bool) {
	return s.sessions.Lookup(token)
}

// SessionPending reports whether session restore is still resolving.
func (s *Service) SessionPending() bool {
	return s.sessions.Pending()
}

// require gates an operation on the principal's role.
func require(sess *session.Session, min role.Role) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	if !role.CanAccessRoute(sess.Role(), min) {
		return fmt.Errorf("%w: %s requires %s", ErrForbidden, sess.Role(), min)
	}
	return nil
}

// refreshUsers re-fetches the canonical user collection. Stale responses
// are dropped by sequence comparison.
func (s *Service) refreshUsers(ctx context.Context, ts gateway.TokenSource) error {
	seq := s.userSeq.Add(1)
	users, err := s.gw.Users.List(ctx, ts)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.userSeq.Load() {
		metrics.RecordStaleFetchDropped()
		return nil
	}
	s.users = users
	metrics.UpdateRosterSize(len(users))
	return nil
}

// refreshSkills re-fetches the canonical skill collection.
func (s *Service) refreshSkills(ctx context.Context, ts gateway.TokenSource) error {
	seq := s.skillSeq.Add(1)
	skills, err := s.gw.Skills.List(ctx, ts)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.skillSeq.Load() {
		metrics.RecordStaleFetchDropped()
		return nil
	}
	s.skills = skills
	return nil
}

// cachedUsers returns the canonical users, fetching on first use.
func (s *Service) cachedUsers(ctx context.Context, ts gateway.TokenSource) ([]model.User, error) {
	s.mu.RLock()
	users := s.users
	s.mu.RUnlock()
	if users != nil {
		return users, nil
	}
	if err := s.refreshUsers(ctx, ts); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users, nil
}

// Roster projects the canonical user collection through the shared
// filter/sort engine. Any authenticated principal may read it.
func (s *Service) Roster(ctx context.Context, sess *session.Session, f roster.Filter) ([]model.User, error) {
	if err := require(sess, ""); err != nil {
		return nil, err
	}
	users, err := s.cachedUsers(ctx, sess)
	if err != nil {
		return nil, err
	}
	// A negative upper bound means the caller left the range untouched; an
	// explicit zero is honored as-is.
	if f.ExperienceMax < 0 {
		f.ExperienceMax = s.experienceMax
	}
	start := time.Now()
	out := roster.Project(users, f)
	metrics.RecordProjectionDuration(float64(time.Since(start).Microseconds()) / 1e3)
	return out, nil
}

// Departments lists the distinct departments for filter dropdowns.
func (s *Service) Departments(ctx context.Context, sess *session.Session) ([]string, error) {
	if err := require(sess, ""); err != nil {
		return nil, err
	}
	users, err := s.cachedUsers(ctx, sess)
	if err != nil {
		return nil, err
	}
	return roster.Departments(users), nil
}

// User fetches one canonical employee record, scores and notifications
// included. Principals may read themselves; trainers and above anyone.
func (s *Service) User(ctx context.Context, sess *session.Session, id string) (model.Employee, error) {
	if err := s.requireSelfOr(sess, id, role.Trainer); err != nil {
		return model.Employee{}, err
	}
	return s.gw.Users.Get(ctx, sess, id)
}

// CreateUser adds an account. Managers and above only.
func (s *Service) CreateUser(ctx context.Context, sess *session.Session, u model.User) (model.User, error) {
	if err := require(sess, role.Manager); err != nil {
		return model.User{}, err
	}
	created, err := s.gw.Users.Create(ctx, sess, u)
	if err != nil {
		return model.User{}, err
	}
	s.refreshAfterMutation(ctx, sess, "user create")
	return created, nil
}

// UpdateUser edits an account: principals may edit themselves, managers
// anyone. Role changes are a manager action even on one's own account.
func (s *Service) UpdateUser(ctx context.Context, sess *session.Session, id string, u model.User) (model.User, error) {
	if sess == nil {
		return model.User{}, ErrUnauthenticated
	}
	if sess.Principal().ID != id {
		if err := require(sess, role.Manager); err != nil {
			return model.User{}, err
		}
	} else if u.Role != "" && u.Role != sess.Principal().Role {
		if err := require(sess, role.Manager); err != nil {
			return model.User{}, err
		}
	}
	updated, err := s.gw.Users.Update(ctx, sess, id, u)
	if err != nil {
		return model.User{}, err
	}
	s.refreshAfterMutation(ctx, sess, "user update")
	return updated, nil
}

// DeleteUser removes an account and, with it, the owned employee record.
// Super-users only.
func (s *Service) DeleteUser(ctx context.Context, sess *session.Session, id string) error {
	if err := require(sess, role.SuperUser); err != nil {
		return err
	}
	if err := s.gw.Users.Delete(ctx, sess, id); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx, sess, "user delete")
	return nil
}

// refreshAfterMutation re-fetches the canonical users so the next derived
// view reflects the write. Failures leave the previous collection visible
// and are logged, not surfaced: the mutation itself already succeeded.
func (s *Service) refreshAfterMutation(ctx context.Context, ts gateway.TokenSource, op string) {
	if err := s.refreshUsers(ctx, ts); err != nil {
		s.logger.Warn(ctx, "post-mutation refresh failed",
			logger.String("op", op), logger.Error(err))
	}
}

// Skills returns the raw skill catalog.
func (s *Service) Skills(ctx context.Context, sess *session.Session) ([]model.Skill, error) {
	if err := require(sess, ""); err != nil {
		return nil, err
	}
	s.mu.RLock()
	skills := s.skills
	s.mu.RUnlock()
	if skills != nil {
		return skills, nil
	}
	if err := s.refreshSkills(ctx, sess); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skills, nil
}

// SkillCatalog groups the catalog by category for the skills view.
func (s *Service) SkillCatalog(ctx context.Context, sess *session.Session) (map[string][]model.Skill, error) {
	skills, err := s.Skills(ctx, sess)
	if err != nil {
		return nil, err
	}
	return progress.GroupByCategory(skills), nil
}

// CreateSkill adds a catalog entry. Managers and above curate the catalog.
func (s *Service) CreateSkill(ctx context.Context, sess *session.Session, sk model.Skill) (model.Skill, error) {
	if err := require(sess, role.Manager); err != nil {
		return model.Skill{}, err
	}
	created, err := s.gw.Skills.Create(ctx, sess, sk)
	if err != nil {
		return model.Skill{}, err
	}
	if err := s.refreshSkills(ctx, sess); err != nil {
		s.logger.Warn(ctx, "post-mutation refresh failed",
			logger.String("op", "skill create"), logger.Error(err))
	}
	return created, nil
}

// UpdateSkill edits a catalog entry. Managers and above.
func (s *Service) UpdateSkill(ctx context.Context, sess *session.Session, id string, sk model.Skill) (model.Skill, error) {
	if err := require(sess, role.Manager); err != nil {
		return model.Skill{}, err
	}
	updated, err := s.gw.Skills.Update(ctx, sess, id, sk)
	if err != nil {
		return model.Skill{}, err
	}
	if err := s.refreshSkills(ctx, sess); err != nil {
		s.logger.Warn(ctx, "post-mutation refresh failed",
			logger.String("op", "skill update"), logger.Error(err))
	}
	return updated, nil
}

// DeleteSkill removes a catalog entry. Managers and above.
func (s *Service) DeleteSkill(ctx context.Context, sess *session.Session, id string) error {
	if err := require(sess, role.Manager); err != nil {
		return err
	}
	if err := s.gw.Skills.Delete(ctx, sess, id); err != nil {
		return err
	}
	if err := s.refreshSkills(ctx, sess); err != nil {
		s.logger.Warn(ctx, "post-mutation refresh failed",
			logger.String("op", "skill delete"), logger.Error(err))
	}
	return nil
}

// EmployeeScores lists an employee's score history. Employees may read
// their own; trainers and above anyone's.
func (s *Service) EmployeeScores(ctx context.Context, sess *session.Session, employeeID string) ([]model.Score, error) {
	if err := s.requireSelfOr(sess, employeeID, role.Trainer); err != nil {
		return nil, err
	}
	return s.gw.Scores.ByEmployee(ctx, sess, employeeID)
}

// EmployeeSummary computes the derived dashboard view of one employee:
// average, level band, readiness and latest score per skill.
func (s *Service) EmployeeSummary(ctx context.Context, sess *session.Session, employeeID string) (progress.Summary, error) {
	scores, err := s.EmployeeScores(ctx, sess, employeeID)
	if err != nil {
		return progress.Summary{}, err
	}
	return progress.Summarize(scores), nil
}

// RecordScore stores a new assessment. Trainers and above.
func (s *Service) RecordScore(ctx context.Context, sess *session.Session, sc model.Score) (model.Score, error) {
	if err := require(sess, role.Trainer); err != nil {
		return model.Score{}, err
	}
	return s.gw.Scores.Create(ctx, sess, sc)
}

// UpdateScore corrects an assessment. Trainers and above.
func (s *Service) UpdateScore(ctx context.Context, sess *session.Session, id string, sc model.Score) (model.Score, error) {
	if err := require(sess, role.Trainer); err != nil {
		return model.Score{}, err
	}
	return s.gw.Scores.Update(ctx, sess, id, sc)
}

// DeleteScore removes an assessment. Trainers and above.
func (s *Service) DeleteScore(ctx context.Context, sess *session.Session, id string) error {
	if err := require(sess, role.Trainer); err != nil {
		return err
	}
	return s.gw.Scores.Delete(ctx, sess, id)
}

// requireSelfOr admits the subject themselves or any principal at or above
// min.
func (s *Service) requireSelfOr(sess *session.Session, subjectID string, min role.Role) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	if sess.Principal().ID == subjectID {
		return nil
	}
	return require(sess, min)
}

// primeInbox seeds a user's inbox from the canonical employee record the
// first time their notifications are read.
func (s *Service) primeInbox(ctx context.Context, sess *session.Session, userID string) {
	s.mu.Lock()
	done := s.seeded[userID]
	if !done {
		s.seeded[userID] = true
	}
	s.mu.Unlock()
	if done {
		return
	}
	emp, err := s.gw.Users.Get(ctx, sess, userID)
	if err != nil {
		s.logger.Debug(ctx, "inbox priming skipped",
			logger.String("user", userID), logger.Error(err))
		return
	}
	s.inbox.Seed(userID, emp.Notifications)
}

// Notifications lists the principal's own inbox.
func (s *Service) Notifications(ctx context.Context, sess *session.Session) ([]model.Notification, error) {
	if err := require(sess, ""); err != nil {
		return nil, err
	}
	userID := sess.Principal().ID
	s.primeInbox(ctx, sess, userID)
	return s.inbox.List(userID), nil
}

// UnreadNotifications counts the principal's unread entries.
func (s *Service) UnreadNotifications(ctx context.Context, sess *session.Session) (int, error) {
	if err := require(sess, ""); err != nil {
		return 0, err
	}
	userID := sess.Principal().ID
	s.primeInbox(ctx, sess, userID)
	return s.inbox.UnreadCount(userID), nil
}

// MarkNotificationRead flips one of the principal's notifications.
func (s *Service) MarkNotificationRead(ctx context.Context, sess *session.Session, id string) error {
	if err := require(sess, ""); err != nil {
		return err
	}
	return s.inbox.MarkRead(sess.Principal().ID, id)
}

// MarkAllNotificationsRead flips all of the principal's notifications.
func (s *Service) MarkAllNotificationsRead(ctx context.Context, sess *session.Session) (int, error) {
	if err := require(sess, ""); err != nil {
		return 0, err
	}
	return s.inbox.MarkAllRead(sess.Principal().ID), nil
}

// DeleteNotification removes one of the principal's notifications.
func (s *Service) DeleteNotification(ctx context.Context, sess *session.Session, id string) error {
	if err := require(sess, ""); err != nil {
		return err
	}
	return s.inbox.Delete(sess.Principal().ID, id)
}
