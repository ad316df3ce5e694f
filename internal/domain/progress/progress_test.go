package progress_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/progress"
)

func TestAverageScore(t *testing.T) {
	Convey("Given score histories", t, func() {
		Convey("Then an empty history averages to zero, not an error", func() {
			So(progress.AverageScore(nil), ShouldEqual, 0)
		})

		Convey("Then the mean is rounded to the nearest integer", func() {
			So(progress.AverageScore([]model.Score{{Score: 80}, {Score: 90}}), ShouldEqual, 85)
			So(progress.AverageScore([]model.Score{{Score: 80}, {Score: 85}, {Score: 85}}), ShouldEqual, 83)
			So(progress.AverageScore([]model.Score{{Score: 1}, {Score: 2}}), ShouldEqual, 2)
		})
	})
}

func TestLevelForScore(t *testing.T) {
	Convey("Given the level bands", t, func() {
		Convey("Then each lower bound is inclusive", func() {
			So(progress.LevelForScore(90), ShouldEqual, progress.LevelExpert)
			So(progress.LevelForScore(89), ShouldEqual, progress.LevelAdvanced)
			So(progress.LevelForScore(75), ShouldEqual, progress.LevelAdvanced)
			So(progress.LevelForScore(74), ShouldEqual, progress.LevelIntermediate)
			So(progress.LevelForScore(60), ShouldEqual, progress.LevelIntermediate)
			So(progress.LevelForScore(59), ShouldEqual, progress.LevelBeginner)
			So(progress.LevelForScore(40), ShouldEqual, progress.LevelBeginner)
			So(progress.LevelForScore(39), ShouldEqual, progress.LevelNovice)
			So(progress.LevelForScore(0), ShouldEqual, progress.LevelNovice)
		})
	})
}

func TestReadinessForAverage(t *testing.T) {
	Convey("Given the readiness thresholds", t, func() {
		So(progress.ReadinessForAverage(80), ShouldEqual, model.Ready)
		So(progress.ReadinessForAverage(79), ShouldEqual, model.InProgress)
		So(progress.ReadinessForAverage(60), ShouldEqual, model.InProgress)
		So(progress.ReadinessForAverage(59), ShouldEqual, model.NotReady)
	})
}

func TestGroupByCategory(t *testing.T) {
	Convey("Given a skill catalog", t, func() {
		skills := []model.Skill{
			{ID: "1", Name: "Go", Category: "Backend"},
			{ID: "2", Name: "React", Category: "Frontend"},
			{ID: "3", Name: "PostgreSQL", Category: "Backend"},
		}

		Convey("Then skills bucket by category in insertion order", func() {
			groups := progress.GroupByCategory(skills)
			So(groups, ShouldHaveLength, 2)
			So(groups["Backend"][0].Name, ShouldEqual, "Go")
			So(groups["Backend"][1].Name, ShouldEqual, "PostgreSQL")
			So(groups["Frontend"], ShouldHaveLength, 1)
		})

		Convey("Then a missing category defaults to Other", func() {
			groups := progress.GroupByCategory([]model.Skill{{Name: "X", Category: ""}})
			So(groups, ShouldHaveLength, 1)
			So(groups["Other"][0].Name, ShouldEqual, "X")
		})
	})
}

func TestLatestForSkill(t *testing.T) {
	Convey("Given a score history across skills", t, func() {
		scores := []model.Score{
			{ID: "a", Skill: "Go", Score: 60, Date: "2024-01-10"},
			{ID: "b", Skill: "React", Score: 70, Date: "2024-02-01"},
			{ID: "c", Skill: "Go", Score: 80, Date: "2024-03-05"},
		}

		Convey("Then the maximum date wins", func() {
			latest, ok := progress.LatestForSkill(scores, "Go")
			So(ok, ShouldBeTrue)
			So(latest.ID, ShouldEqual, "c")
		})

		Convey("Then skill names match exactly", func() {
			_, ok := progress.LatestForSkill(scores, "go")
			So(ok, ShouldBeFalse)
		})

		Convey("Then equal dates resolve to the earlier input entry", func() {
			tied := []model.Score{
				{ID: "x", Skill: "Go", Date: "2024-01-01"},
				{ID: "y", Skill: "Go", Date: "2024-01-01"},
			}
			latest, ok := progress.LatestForSkill(tied, "Go")
			So(ok, ShouldBeTrue)
			So(latest.ID, ShouldEqual, "x")
		})

		Convey("Then an unseen skill reports absence", func() {
			_, ok := progress.LatestForSkill(scores, "Rust")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given an employee's score history", t, func() {
		scores := []model.Score{
			{ID: "a", Skill: "Go", Score: 70, Date: "2024-01-10"},
			{ID: "b", Skill: "React", Score: 90, Date: "2024-02-01"},
			{ID: "c", Skill: "Go", Score: 92, Date: "2024-03-05"},
		}

		Convey("When summarizing", func() {
			sum := progress.Summarize(scores)

			Convey("Then the average drives level and readiness", func() {
				So(sum.Average, ShouldEqual, 84) // (70+90+92)/3 rounded
				So(sum.Level, ShouldEqual, progress.LevelAdvanced)
				So(sum.Readiness, ShouldEqual, model.Ready)
			})

			Convey("Then skills appear once, in first-assessed order, at their latest score", func() {
				So(sum.Skills, ShouldHaveLength, 2)
				So(sum.Skills[0].Skill, ShouldEqual, "Go")
				So(sum.Skills[0].Score, ShouldEqual, 92)
				So(sum.Skills[0].Level, ShouldEqual, progress.LevelExpert)
				So(sum.Skills[1].Skill, ShouldEqual, "React")
				So(sum.Skills[1].Score, ShouldEqual, 90)
			})
		})

		Convey("When the history is empty", func() {
			sum := progress.Summarize(nil)
			So(sum.Average, ShouldEqual, 0)
			So(sum.Level, ShouldEqual, progress.LevelNovice)
			So(sum.Readiness, ShouldEqual, model.NotReady)
			So(sum.Skills, ShouldBeEmpty)
		})
	})
}
