// Package roster implements the shared filter/sort pipeline over user
// collections. Every list view projects through this package so predicate
// and ordering rules cannot drift between call sites.
package roster

import (
	"sort"
	"strings"

	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/role"
)

// Sortable field names accepted by Filter.SortBy.
const (
	ByName       = "name"
	ByEmail      = "email"
	ByExperience = "experience"
	ByDepartment = "department"
)

// Sort orders.
const (
	Asc  = "asc"
	Desc = "desc"
)

// RoleAll disables the role predicate, as does the empty string.
const RoleAll = "all"

// Default experience bounds for a cleared filter.
const (
	DefaultExperienceMin = 0
	DefaultExperienceMax = 50
)

// Filter is the ephemeral specification of one list view's search, filter
// and sort parameters. It is owned by the view that built it and never
// persisted.
type Filter struct {
	Search        string `json:"search"`
	Role          string `json:"role"` // role value, "all", or ""
	Department    string `json:"department"`
	ExperienceMin int    `json:"experienceMin"`
	ExperienceMax int    `json:"experienceMax"`
	SortBy        string `json:"sortBy"`
	SortOrder     string `json:"sortOrder"`
}

// NewFilter returns a cleared filter: every predicate disabled, sorted by
// name ascending.
func NewFilter() Filter {
	return Filter{
		Role:          RoleAll,
		ExperienceMin: DefaultExperienceMin,
		ExperienceMax: DefaultExperienceMax,
		SortBy:        ByName,
		SortOrder:     Asc,
	}
}

// Matches reports whether u passes every enabled predicate. Predicates are
// AND-combined; a disabled predicate matches everything.
func (f Filter) Matches(u model.User) bool {
	if s := strings.ToLower(f.Search); s != "" {
		if !strings.Contains(strings.ToLower(u.Name), s) &&
			!strings.Contains(strings.ToLower(u.Email), s) {
			return false
		}
	}
	if r := strings.ToLower(f.Role); r != "" && r != RoleAll {
		if r != strings.ToLower(string(u.Role)) {
			return false
		}
	}
	if d := fold(f.Department); d != "" {
		if d != fold(u.Department) {
			return false
		}
	}
	// Missing experience counts as zero.
	return u.Experience >= f.ExperienceMin && u.Experience <= f.ExperienceMax
}

// Project filters and stably sorts users per f without mutating the input.
// Records with equal sort keys keep their input order regardless of the
// sort direction.
func Project(users []model.User, f Filter) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	less := lessFunc(f.SortBy)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.SortOrder == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Departments returns the distinct non-empty departments in first-seen
// order, for building filter dropdowns.
func Departments(users []model.User) []string {
	seen := make(map[string]struct{}, len(users))
	var out []string
	for _, u := range users {
		if u.Department == "" {
			continue
		}
		if _, ok := seen[u.Department]; ok {
			continue
		}
		seen[u.Department] = struct{}{}
		out = append(out, u.Department)
	}
	return out
}

// CountByRole tallies users per role for dashboard summary cards.
func CountByRole(users []model.User) map[role.Role]int {
	counts := make(map[role.Role]int)
	for _, u := range users {
		counts[u.Role]++
	}
	return counts
}

// lessFunc returns a strict-less comparator for the named field.
// String fields compare case-insensitively; missing values compare as the
// field type's zero value. Unknown fields disable sorting.
func lessFunc(field string) func(a, b model.User) bool {
	switch field {
	case ByName:
		return func(a, b model.User) bool { return fold(a.Name) < fold(b.Name) }
	case ByEmail:
		return func(a, b model.User) bool { return fold(a.Email) < fold(b.Email) }
	case ByExperience:
		return func(a, b model.User) bool { return a.Experience < b.Experience }
	case ByDepartment:
		return func(a, b model.User) bool { return fold(a.Department) < fold(b.Department) }
	default:
		return nil
	}
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
