// Package role implements the monotonic role hierarchy used for
// authorization decisions across the dashboard.
package role

import (
	"fmt"
	"strings"
)

// Role identifies a principal's position in the access hierarchy.
type Role string

// The four recognized roles, ordered by increasing privilege.
const (
	Employee  Role = "employee"
	Trainer   Role = "trainer"
	Manager   Role = "manager"
	SuperUser Role = "super-user"
)

// ranks is closed over exactly the four roles. Unknown values are rejected
// at the entity boundary by Parse and never reach the gate.
var ranks = map[Role]int{
	Employee:  1,
	Trainer:   2,
	Manager:   3,
	SuperUser: 4,
}

// Parse validates a raw role string, case-insensitively.
// Returns ErrUnknownRole for anything outside the four recognized values.
func Parse(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ranks[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the four recognized roles.
func Valid(r Role) bool {
	_, ok := ranks[r]
	return ok
}

// Rank returns the numeric privilege rank of r, or 0 for unknown roles.
func Rank(r Role) int {
	return ranks[r]
}

// AtLeast reports whether actual carries at least the privilege of required.
func AtLeast(actual, required Role) bool {
	return ranks[actual] >= ranks[required] && ranks[actual] > 0
}

// CanAccessRoute reports whether a principal with the given role may enter a
// route. A route with no required role admits any authenticated principal.
func CanAccessRoute(actual Role, required Role) bool {
	if required == "" {
		return Valid(actual)
	}
	return AtLeast(actual, required)
}
