package roster_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/role"
	"github.com/talentforge/skillboard/internal/domain/roster"
)

func sampleUsers() []model.User {
	return []model.User{
		{ID: "1", Name: "John Smith", Email: "john.employee@company.com", Role: role.Employee, Department: "Engineering", Experience: 3},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah.trainer@company.com", Role: role.Trainer, Department: "Training", Experience: 8},
		{ID: "3", Name: "Mike Wilson", Email: "mike.manager@company.com", Role: role.Manager, Department: "Management", Experience: 12},
		{ID: "4", Name: "System Administrator", Email: "admin@company.com", Role: role.SuperUser, Department: "IT Administration", Experience: 15},
	}
}

func names(users []model.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func TestProjectFiltering(t *testing.T) {
	Convey("Given the demo roster", t, func() {
		users := sampleUsers()

		Convey("When every predicate is cleared", func() {
			out := roster.Project(users, roster.NewFilter())

			Convey("Then the projection is a permutation of the input", func() {
				So(out, ShouldHaveLength, len(users))
			})
		})

		Convey("When searching by name substring", func() {
			f := roster.NewFilter()
			f.Search = "john"
			out := roster.Project(users, f)

			Convey("Then name and email both match case-insensitively", func() {
				// "john" hits John Smith by name/email and Sarah Johnson
				// through the "Johnson" surname.
				So(names(out), ShouldResemble, []string{"John Smith", "Sarah Johnson"})
			})
		})

		Convey("When searching by email substring", func() {
			f := roster.NewFilter()
			f.Search = "ADMIN@"
			out := roster.Project(users, f)
			So(names(out), ShouldResemble, []string{"System Administrator"})
		})

		Convey("When filtering by role", func() {
			f := roster.NewFilter()
			f.Role = "manager"
			out := roster.Project(users, f)
			So(names(out), ShouldResemble, []string{"Mike Wilson"})

			Convey("And the sentinel values disable the predicate", func() {
				for _, sentinel := range []string{"all", ""} {
					f.Role = sentinel
					So(roster.Project(users, f), ShouldHaveLength, 4)
				}
			})
		})

		Convey("When the backend reports a mixed-case role", func() {
			f := roster.NewFilter()
			f.Role = "manager"
			out := roster.Project([]model.User{
				{Name: "Mia Torres", Email: "mia@x.com", Role: "Manager", Experience: 5},
			}, f)

			Convey("Then the predicate folds both sides", func() {
				So(names(out), ShouldResemble, []string{"Mia Torres"})
			})
		})

		Convey("When filtering by department", func() {
			f := roster.NewFilter()
			f.Department = "  engineering "
			out := roster.Project(users, f)

			Convey("Then both sides are trimmed and case-folded", func() {
				So(names(out), ShouldResemble, []string{"John Smith"})
			})
		})

		Convey("When filtering by experience range", func() {
			f := roster.NewFilter()
			f.ExperienceMin = 8
			f.ExperienceMax = 12
			out := roster.Project(users, f)

			Convey("Then the bounds are inclusive", func() {
				So(names(out), ShouldResemble, []string{"Sarah Johnson", "Mike Wilson"})
			})
		})

		Convey("When a user has no recorded experience", func() {
			f := roster.NewFilter()
			f.ExperienceMin = 1
			out := roster.Project([]model.User{{Name: "New Hire", Email: "n@x.com"}}, f)

			Convey("Then missing experience counts as zero and is excluded", func() {
				So(out, ShouldBeEmpty)
			})
		})

		Convey("When predicates are combined", func() {
			f := roster.NewFilter()
			f.Search = "company.com"
			f.Role = "trainer"
			out := roster.Project(users, f)

			Convey("Then they AND together", func() {
				So(names(out), ShouldResemble, []string{"Sarah Johnson"})
			})
		})
	})
}

func TestProjectSorting(t *testing.T) {
	Convey("Given two users out of name order", t, func() {
		users := []model.User{
			{Name: "Bo", Email: "b@x.com", Role: role.Employee, Experience: 2},
			{Name: "Al", Email: "a@x.com", Role: role.Manager, Experience: 9},
		}

		Convey("When sorting by name ascending", func() {
			out := roster.Project(users, roster.NewFilter())
			So(names(out), ShouldResemble, []string{"Al", "Bo"})
		})

		Convey("When sorting by name descending", func() {
			f := roster.NewFilter()
			f.SortOrder = roster.Desc
			out := roster.Project(users, f)
			So(names(out), ShouldResemble, []string{"Bo", "Al"})
		})

		Convey("When filtering to managers only", func() {
			f := roster.NewFilter()
			f.Role = "manager"
			out := roster.Project(users, f)
			So(names(out), ShouldResemble, []string{"Al"})
		})

		Convey("When sorting by experience", func() {
			f := roster.NewFilter()
			f.SortBy = roster.ByExperience
			out := roster.Project(users, f)

			Convey("Then comparison is numeric, not lexical", func() {
				So(names(out), ShouldResemble, []string{"Bo", "Al"})
			})
		})
	})

	Convey("Given users with equal sort keys", t, func() {
		users := []model.User{
			{ID: "1", Name: "Sam", Email: "sam1@x.com", Department: "QA"},
			{ID: "2", Name: "Sam", Email: "sam2@x.com", Department: "QA"},
			{ID: "3", Name: "Sam", Email: "sam3@x.com", Department: "QA"},
		}

		ids := func(out []model.User) []string {
			got := make([]string, 0, len(out))
			for _, u := range out {
				got = append(got, u.ID)
			}
			return got
		}

		Convey("Then ascending order preserves input order on ties", func() {
			f := roster.NewFilter()
			So(ids(roster.Project(users, f)), ShouldResemble, []string{"1", "2", "3"})
		})

		Convey("Then descending order preserves input order on ties too", func() {
			f := roster.NewFilter()
			f.SortOrder = roster.Desc
			So(ids(roster.Project(users, f)), ShouldResemble, []string{"1", "2", "3"})
		})

		Convey("Then case folding applies to string keys", func() {
			mixed := []model.User{
				{ID: "1", Name: "beatrice", Email: "b@x.com"},
				{ID: "2", Name: "Albert", Email: "a@x.com"},
			}
			So(ids(roster.Project(mixed, roster.NewFilter())), ShouldResemble, []string{"2", "1"})
		})

		Convey("Then a missing department sorts as the empty string", func() {
			mixed := []model.User{
				{ID: "1", Name: "A", Email: "a@x.com", Department: "Sales"},
				{ID: "2", Name: "B", Email: "b@x.com"},
			}
			f := roster.NewFilter()
			f.SortBy = roster.ByDepartment
			So(ids(roster.Project(mixed, f)), ShouldResemble, []string{"2", "1"})
		})
	})
}

func TestProjectPurity(t *testing.T) {
	Convey("Given a projection over the demo roster", t, func() {
		users := sampleUsers()
		f := roster.NewFilter()
		f.SortOrder = roster.Desc

		Convey("Then projecting twice yields identical output", func() {
			first := roster.Project(users, f)
			second := roster.Project(users, f)
			So(second, ShouldResemble, first)
		})

		Convey("Then the input collection is never mutated", func() {
			before := names(users)
			_ = roster.Project(users, f)
			So(names(users), ShouldResemble, before)
		})
	})
}

func TestDepartments(t *testing.T) {
	Convey("Given a roster with duplicate and missing departments", t, func() {
		users := []model.User{
			{Name: "A", Department: "Engineering"},
			{Name: "B", Department: ""},
			{Name: "C", Department: "Training"},
			{Name: "D", Department: "Engineering"},
		}

		Convey("Then distinct non-empty departments come back in first-seen order", func() {
			So(roster.Departments(users), ShouldResemble, []string{"Engineering", "Training"})
		})
	})
}

func TestCountByRole(t *testing.T) {
	Convey("Given the demo roster", t, func() {
		counts := roster.CountByRole(sampleUsers())
		So(counts[role.Employee], ShouldEqual, 1)
		So(counts[role.Trainer], ShouldEqual, 1)
		So(counts[role.Manager], ShouldEqual, 1)
		So(counts[role.SuperUser], ShouldEqual, 1)
	})
}
