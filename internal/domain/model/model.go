// Package model contains domain records passed between layers.
// Field shapes mirror the backend's JSON contract.
package model

import (
	"fmt"
	"strings"

	"github.com/talentforge/skillboard/internal/domain/role"
)

// User is a dashboard account of any role.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       role.Role `json:"role"`
	Department string    `json:"department,omitempty"`
	Experience int       `json:"experience,omitempty"` // years, >= 0
	Avatar     string    `json:"avatar,omitempty"`

	// Password is write-only: present on create requests, never on reads.
	Password string `json:"password,omitempty"`
}

// Readiness is the derived interview-readiness status of an employee.
type Readiness string

// Readiness values.
const (
	Ready      Readiness = "ready"
	InProgress Readiness = "in-progress"
	NotReady   Readiness = "not-ready"
)

// Employee is a User of role employee enriched with derived skill state.
// It shares the User's lifetime: deleted with its owning account.
type Employee struct {
	User
	SkillLevel         string         `json:"skillLevel"`
	InterviewReadiness Readiness      `json:"interviewReadiness"`
	Scores             []Score        `json:"scores"`
	Notifications      []Notification `json:"notifications"`
}

// Skill is a trainable ability, grouped by free-text category.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Score records one assessment of an employee on a named skill.
// Skill is matched against Skill.Name by value, not by id.
type Score struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Skill      string `json:"skill"`
	Score      int    `json:"score"` // 0..100
	Date       string `json:"date"`  // ISO date, lexicographically ordered
	TrainerID  string `json:"trainerId"`
	Feedback   string `json:"feedback,omitempty"`
}

// NotificationType classifies a notification.
type NotificationType string

// Notification types.
const (
	TypeFeedback     NotificationType = "feedback"
	TypeStatusChange NotificationType = "status_change"
	TypeLearningPath NotificationType = "learning_path"
	TypeAssessment   NotificationType = "assessment"
)

// Notification is an inbox entry owned by a user. The core only flips its
// read state or deletes it; creation happens upstream.
type Notification struct {
	ID      string           `json:"id"`
	UserID  string           `json:"userId"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    string           `json:"date"`
	Read    bool             `json:"read"`
}

// ValidateNew checks the minimum fields a user create requires.
// Missing fields are a validation failure, never silently defaulted.
func (u User) ValidateNew() error {
	switch {
	case strings.TrimSpace(u.Name) == "":
		return fmt.Errorf("%w: missing name", ErrInvalid)
	case strings.TrimSpace(u.Email) == "":
		return fmt.Errorf("%w: missing email", ErrInvalid)
	case strings.TrimSpace(u.Password) == "":
		return fmt.Errorf("%w: missing password", ErrInvalid)
	}
	if !role.Valid(u.Role) {
		return fmt.Errorf("%w: role %q", ErrInvalid, u.Role)
	}
	if u.Experience < 0 {
		return fmt.Errorf("%w: negative experience", ErrInvalid)
	}
	return nil
}

// Redacted returns a copy of u with the write-only password cleared.
func (u User) Redacted() User {
	u.Password = ""
	return u
}

// Validate checks a skill create/update payload.
func (s Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: missing skill name", ErrInvalid)
	}
	return nil
}

// Validate checks a score create/update payload.
func (s Score) Validate() error {
	switch {
	case strings.TrimSpace(s.EmployeeID) == "":
		return fmt.Errorf("%w: missing employeeId", ErrInvalid)
	case strings.TrimSpace(s.Skill) == "":
		return fmt.Errorf("%w: missing skill", ErrInvalid)
	case strings.TrimSpace(s.Date) == "":
		return fmt.Errorf("%w: missing date", ErrInvalid)
	}
	if s.Score < 0 || s.Score > 100 {
		return fmt.Errorf("%w: score %d outside [0,100]", ErrInvalid, s.Score)
	}
	return nil
}
