package model_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/talentforge/skillboard/internal/domain/model"
	"github.com/talentforge/skillboard/internal/domain/role"
)

func TestUserValidateNew(t *testing.T) {
	Convey("Given a user create payload", t, func() {
		valid := model.User{
			Name:     "John Smith",
			Email:    "john.employee@company.com",
			Role:     role.Employee,
			Password: "password123",
		}

		Convey("Then a complete payload validates", func() {
			So(valid.ValidateNew(), ShouldBeNil)
		})

		Convey("Then each missing required field fails before any call is made", func() {
			missingName := valid
			missingName.Name = " "
			So(missingName.ValidateNew(), ShouldNotBeNil)

			missingEmail := valid
			missingEmail.Email = ""
			So(missingEmail.ValidateNew(), ShouldNotBeNil)

			missingPassword := valid
			missingPassword.Password = ""
			So(missingPassword.ValidateNew(), ShouldNotBeNil)
		})

		Convey("Then an unrecognized role is rejected at the boundary", func() {
			bad := valid
			bad.Role = "admin"
			So(bad.ValidateNew(), ShouldNotBeNil)
		})

		Convey("Then negative experience is rejected", func() {
			bad := valid
			bad.Experience = -1
			So(bad.ValidateNew(), ShouldNotBeNil)
		})
	})
}

func TestUserRedacted(t *testing.T) {
	Convey("Given a user carrying a write-only password", t, func() {
		u := model.User{ID: "1", Email: "a@x.com", Password: "secret"}

		Convey("Then Redacted strips it without touching the original", func() {
			r := u.Redacted()
			So(r.Password, ShouldBeEmpty)
			So(r.ID, ShouldEqual, "1")
			So(u.Password, ShouldEqual, "secret")
		})
	})
}

func TestScoreValidate(t *testing.T) {
	Convey("Given score payloads", t, func() {
		valid := model.Score{
			EmployeeID: "1",
			Skill:      "React Development",
			Score:      85,
			Date:       "2024-01-15",
			TrainerID:  "2",
		}

		Convey("Then an in-range score validates", func() {
			So(valid.Validate(), ShouldBeNil)
		})

		Convey("Then the 0..100 bounds are inclusive", func() {
			low := valid
			low.Score = 0
			So(low.Validate(), ShouldBeNil)

			high := valid
			high.Score = 100
			So(high.Validate(), ShouldBeNil)
		})

		Convey("Then out-of-range scores are rejected", func() {
			over := valid
			over.Score = 101
			So(over.Validate(), ShouldNotBeNil)

			under := valid
			under.Score = -1
			So(under.Validate(), ShouldNotBeNil)
		})

		Convey("Then missing references are rejected", func() {
			noEmployee := valid
			noEmployee.EmployeeID = ""
			So(noEmployee.Validate(), ShouldNotBeNil)

			noSkill := valid
			noSkill.Skill = ""
			So(noSkill.Validate(), ShouldNotBeNil)
		})
	})
}

func TestSkillValidate(t *testing.T) {
	Convey("Given skill payloads", t, func() {
		So(model.Skill{Name: "Go", Category: "Backend"}.Validate(), ShouldBeNil)
		So(model.Skill{Name: "  "}.Validate(), ShouldNotBeNil)
	})
}
