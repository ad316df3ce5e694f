package gateway_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/talentforge/skillboard/internal/adapters/gateway"
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/role"
)

func TestFixtureAuth(t *testing.T) {
	Convey("Given the seeded fixture gateway", t, func() {
		ctx := context.Background()
		set := gateway.NewFixtureSet()

		Convey("When logging in with a seeded email and the demo password", func() {
			res, err := set.Auth.Login(ctx, "john.employee@company.com", gateway.DemoPassword)

			Convey("Then the principal and an opaque token come back", func() {
				So(err, ShouldBeNil)
				So(res.User.Name, ShouldEqual, "John Smith")
				So(res.User.Role, ShouldEqual, role.Employee)
				So(res.User.Password, ShouldBeEmpty)
				So(res.Token, ShouldNotBeEmpty)
			})
		})

		Convey("When logging in with a wrong password", func() {
			_, err := set.Auth.Login(ctx, "john.employee@company.com", "nope")
			So(errors.Is(err, gateway.ErrUnauthorized), ShouldBeTrue)
		})

		Convey("When logging in with an unknown email", func() {
			_, err := set.Auth.Login(ctx, "ghost@company.com", gateway.DemoPassword)
			So(errors.Is(err, gateway.ErrUnauthorized), ShouldBeTrue)
		})

		Convey("When the demo password is overridden", func() {
			custom := gateway.NewFixtureSet(gateway.WithDemoPassword("hunter2"))
			_, err := custom.Auth.Login(ctx, "admin@company.com", gateway.DemoPassword)
			So(err, ShouldNotBeNil)
			_, err = custom.Auth.Login(ctx, "admin@company.com", "hunter2")
			So(err, ShouldBeNil)
		})
	})
}

func TestFixtureUsers(t *testing.T) {
	Convey("Given the seeded fixture gateway", t, func() {
		ctx := context.Background()
		set := gateway.NewFixtureSet()
		ts := gateway.Anonymous

		Convey("Then List unions employees and trainers only", func() {
			users, err := set.Users.List(ctx, ts)
			So(err, ShouldBeNil)
			So(users, ShouldHaveLength, 2)
			// Managers and super-users are not enumerated by the backend
			// contract; the fixture preserves that gap.
			for _, u := range users {
				So(u.Role, ShouldBeIn, role.Employee, role.Trainer)
			}
		})

		Convey("When fetching the demo employee", func() {
			emp, err := set.Users.Get(ctx, ts, "1")

			Convey("Then scores, notifications and derived state ride along", func() {
				So(err, ShouldBeNil)
				So(emp.Scores, ShouldHaveLength, 2)
				So(emp.Notifications, ShouldHaveLength, 2)
				// (85+78)/2 rounds to 82 -> Advanced, ready.
				So(emp.SkillLevel, ShouldEqual, "Advanced")
				So(emp.InterviewReadiness, ShouldEqual, model.Ready)
			})
		})

		Convey("When fetching an unknown id", func() {
			_, err := set.Users.Get(ctx, ts, "404")
			So(errors.Is(err, gateway.ErrNotFound), ShouldBeTrue)
		})

		Convey("When creating a user", func() {
			created, err := set.Users.Create(ctx, ts, model.User{
				Name:     "Emily Chen",
				Email:    "emily@company.com",
				Role:     role.Employee,
				Password: "s3cret",
			})

			Convey("Then it gets an id and loses its password", func() {
				So(err, ShouldBeNil)
				So(created.ID, ShouldNotBeEmpty)
				So(created.Password, ShouldBeEmpty)
			})

			Convey("And it appears in subsequent lists", func() {
				So(err, ShouldBeNil)
				users, err := set.Users.List(ctx, ts)
				So(err, ShouldBeNil)
				So(users, ShouldHaveLength, 3)
			})
		})

		Convey("When creating a user with missing required fields", func() {
			_, err := set.Users.Create(ctx, ts, model.User{Name: "No Email", Role: role.Employee, Password: "x"})
			So(errors.Is(err, gateway.ErrValidation), ShouldBeTrue)
		})

		Convey("When creating a user with a duplicate email", func() {
			_, err := set.Users.Create(ctx, ts, model.User{
				Name:     "Clone",
				Email:    "John.Employee@company.com",
				Role:     role.Employee,
				Password: "x",
			})
			So(errors.Is(err, gateway.ErrValidation), ShouldBeTrue)
		})

		Convey("When updating a user", func() {
			updated, err := set.Users.Update(ctx, ts, "1", model.User{
				Name:       "John A. Smith",
				Email:      "john.employee@company.com",
				Role:       role.Employee,
				Department: "Platform",
				Experience: 4,
			})
			So(err, ShouldBeNil)
			So(updated.ID, ShouldEqual, "1")
			So(updated.Department, ShouldEqual, "Platform")
		})

		Convey("When updating a user with a partial payload", func() {
			updated, err := set.Users.Update(ctx, ts, "1", model.User{Department: "Platform"})

			Convey("Then untouched fields keep their stored values", func() {
				So(err, ShouldBeNil)
				So(updated.Department, ShouldEqual, "Platform")
				So(updated.Name, ShouldEqual, "John Smith")
				So(updated.Email, ShouldEqual, "john.employee@company.com")
				So(updated.Role, ShouldEqual, role.Employee)
			})
		})

		Convey("When updating a user with a role outside the enum", func() {
			_, err := set.Users.Update(ctx, ts, "1", model.User{Role: "ceo"})

			Convey("Then the write is rejected and nothing is stored", func() {
				So(errors.Is(err, gateway.ErrValidation), ShouldBeTrue)
				kept, err := set.Users.Get(ctx, ts, "1")
				So(err, ShouldBeNil)
				So(kept.Role, ShouldEqual, role.Employee)
			})
		})

		Convey("When deleting a user", func() {
			So(set.Users.Delete(ctx, ts, "1"), ShouldBeNil)

			Convey("Then the account is gone", func() {
				_, err := set.Users.Get(ctx, ts, "1")
				So(errors.Is(err, gateway.ErrNotFound), ShouldBeTrue)
			})

			Convey("Then its scores cascade away with it", func() {
				scores, err := set.Scores.ByEmployee(ctx, ts, "1")
				So(err, ShouldBeNil)
				So(scores, ShouldBeEmpty)
			})
		})
	})
}

func TestFixtureSkillsAndScores(t *testing.T) {
	Convey("Given the seeded fixture gateway", t, func() {
		ctx := context.Background()
		set := gateway.NewFixtureSet()
		ts := gateway.Anonymous

		Convey("Then the seeded skill catalog lists six skills", func() {
			skills, err := set.Skills.List(ctx, ts)
			So(err, ShouldBeNil)
			So(skills, ShouldHaveLength, 6)
		})

		Convey("When creating, updating and deleting a skill", func() {
			created, err := set.Skills.Create(ctx, ts, model.Skill{Name: "Go", Category: "Backend"})
			So(err, ShouldBeNil)
			So(created.ID, ShouldNotBeEmpty)

			updated, err := set.Skills.Update(ctx, ts, created.ID, model.Skill{Name: "Go", Category: "Programming"})
			So(err, ShouldBeNil)
			So(updated.Category, ShouldEqual, "Programming")

			So(set.Skills.Delete(ctx, ts, created.ID), ShouldBeNil)
			_, err = set.Skills.Get(ctx, ts, created.ID)
			So(errors.Is(err, gateway.ErrNotFound), ShouldBeTrue)
		})

		Convey("When updating a skill with a partial payload", func() {
			created, err := set.Skills.Create(ctx, ts, model.Skill{Name: "Go", Category: "Backend"})
			So(err, ShouldBeNil)

			updated, err := set.Skills.Update(ctx, ts, created.ID, model.Skill{Category: "Programming"})

			Convey("Then the stored name survives", func() {
				So(err, ShouldBeNil)
				So(updated.Name, ShouldEqual, "Go")
				So(updated.Category, ShouldEqual, "Programming")
			})
		})

		Convey("When creating a score outside the valid range", func() {
			_, err := set.Scores.Create(ctx, ts, model.Score{
				EmployeeID: "1",
				Skill:      "React",
				Score:      101,
				Date:       "2024-05-01",
				TrainerID:  "2",
			})
			So(errors.Is(err, gateway.ErrValidation), ShouldBeTrue)
		})

		Convey("When recording a valid score", func() {
			created, err := set.Scores.Create(ctx, ts, model.Score{
				EmployeeID: "1",
				Skill:      "React",
				Score:      92,
				Date:       "2024-05-01",
				TrainerID:  "2",
			})
			So(err, ShouldBeNil)

			Convey("Then the employee's average shifts", func() {
				avg, err := set.Scores.AverageByEmployee(ctx, ts, "1")
				So(err, ShouldBeNil)
				So(avg, ShouldEqual, 85) // (85+78+92)/3 rounded
			})

			Convey("Then it can be corrected and removed", func() {
				fixed := created
				fixed.Score = 88
				updated, err := set.Scores.Update(ctx, ts, created.ID, fixed)
				So(err, ShouldBeNil)
				So(updated.Score, ShouldEqual, 88)

				So(set.Scores.Delete(ctx, ts, created.ID), ShouldBeNil)
				_, err = set.Scores.Get(ctx, ts, created.ID)
				So(errors.Is(err, gateway.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}
