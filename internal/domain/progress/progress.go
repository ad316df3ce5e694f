// Package progress computes derived skill state from score histories:
// averages, level bands, interview readiness and per-skill latest scores.
package progress

import (
	"math"

	"github.com/talentforge/skillboard/internal/domain/model"
)

// Level band labels, inclusive on each lower bound.
const (
	LevelExpert       = "Expert"
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
	LevelBeginner     = "Beginner"
	LevelNovice       = "Novice"
)

// Band thresholds.
const (
	expertFloor       = 90
	advancedFloor     = 75
	intermediateFloor = 60
	beginnerFloor     = 40

	readyFloor      = 80
	inProgressFloor = 60
)

// AverageScore returns the arithmetic mean of the scores, rounded to the
// nearest integer. An empty history averages to 0 by definition.
func AverageScore(scores []model.Score) int {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s.Score
	}
	return int(math.Round(float64(total) / float64(len(scores))))
}

// LevelForScore bands a score into its skill-level label.
func LevelForScore(score int) string {
	switch {
	case score >= expertFloor:
		return LevelExpert
	case score >= advancedFloor:
		return LevelAdvanced
	case score >= intermediateFloor:
		return LevelIntermediate
	case score >= beginnerFloor:
		return LevelBeginner
	default:
		return LevelNovice
	}
}

// ReadinessForAverage derives interview readiness from an average score.
func ReadinessForAverage(avg int) model.Readiness {
	switch {
	case avg >= readyFloor:
		return model.Ready
	case avg >= inProgressFloor:
		return model.InProgress
	default:
		return model.NotReady
	}
}

// GroupByCategory buckets skills by category, keeping insertion order
// within each bucket. A skill with no category lands under "Other".
func GroupByCategory(skills []model.Skill) map[string][]model.Skill {
	groups := make(map[string][]model.Skill)
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		groups[category] = append(groups[category], s)
	}
	return groups
}

// LatestForSkill selects the most recent score for the named skill by exact
// name match. Equal dates resolve to the earlier input entry, so the result
// is deterministic for a given input order. Returns false when the skill
// has no scores.
func LatestForSkill(scores []model.Score, skillName string) (model.Score, bool) {
	var latest model.Score
	found := false
	for _, s := range scores {
		if s.Skill != skillName {
			continue
		}
		if !found || s.Date > latest.Date {
			latest = s
			found = true
		}
	}
	return latest, found
}

// SkillSummary is the latest standing on one skill.
type SkillSummary struct {
	Skill  string      `json:"skill"`
	Score  int         `json:"score"`
	Level  string      `json:"level"`
	Date   string      `json:"date"`
	Latest model.Score `json:"-"`
}

// Summary bundles the derived employee state the dashboard renders.
type Summary struct {
	Average   int             `json:"average"`
	Level     string          `json:"level"`
	Readiness model.Readiness `json:"readiness"`
	Skills    []SkillSummary  `json:"skills"`
}

// Summarize computes the full derived view of a score history. Skills
// appear in first-assessed order, each carrying its latest score.
func Summarize(scores []model.Score) Summary {
	avg := AverageScore(scores)
	sum := Summary{
		Average:   avg,
		Level:     LevelForScore(avg),
		Readiness: ReadinessForAverage(avg),
	}
	seen := make(map[string]struct{}, len(scores))
	for _, s := range scores {
		if _, ok := seen[s.Skill]; ok {
			continue
		}
		seen[s.Skill] = struct{}{}
		latest, _ := LatestForSkill(scores, s.Skill)
		sum.Skills = append(sum.Skills, SkillSummary{
			Skill:  s.Skill,
			Score:  latest.Score,
			Level:  LevelForScore(latest.Score),
			Date:   latest.Date,
			Latest: latest,
		})
	}
	return sum
}
