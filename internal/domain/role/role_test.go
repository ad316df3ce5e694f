package role_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/talentforge/skillboard/internal/domain/role"
)

func TestParse(t *testing.T) {
	Convey("Given raw role strings", t, func() {
		Convey("When parsing recognized values", func() {
			for raw, want := range map[string]role.Role{
				"employee":   role.Employee,
				"trainer":    role.Trainer,
				"manager":    role.Manager,
				"super-user": role.SuperUser,
				" Manager ":  role.Manager,
				"EMPLOYEE":   role.Employee,
			} {
				r, err := role.Parse(raw)
				So(err, ShouldBeNil)
				So(r, ShouldEqual, want)
			}
		})

		Convey("When parsing unrecognized values", func() {
			for _, raw := range []string{"", "admin", "superuser", "root"} {
				_, err := role.Parse(raw)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown role")
			}
		})
	})
}

func TestAtLeast(t *testing.T) {
	Convey("Given the fixed role hierarchy", t, func() {
		Convey("Then higher ranks satisfy lower requirements", func() {
			So(role.AtLeast(role.Manager, role.Trainer), ShouldBeTrue)
			So(role.AtLeast(role.SuperUser, role.Employee), ShouldBeTrue)
		})

		Convey("Then lower ranks fail higher requirements", func() {
			So(role.AtLeast(role.Employee, role.Manager), ShouldBeFalse)
			So(role.AtLeast(role.Trainer, role.SuperUser), ShouldBeFalse)
		})

		Convey("Then every role satisfies itself", func() {
			for _, r := range []role.Role{role.Employee, role.Trainer, role.Manager, role.SuperUser} {
				So(role.AtLeast(r, r), ShouldBeTrue)
			}
		})

		Convey("Then an unknown role satisfies nothing", func() {
			So(role.AtLeast(role.Role("admin"), role.Employee), ShouldBeFalse)
		})
	})
}

func TestCanAccessRoute(t *testing.T) {
	Convey("Given route access requirements", t, func() {
		Convey("A route with no required role admits any authenticated principal", func() {
			So(role.CanAccessRoute(role.Employee, ""), ShouldBeTrue)
			So(role.CanAccessRoute(role.SuperUser, ""), ShouldBeTrue)
		})

		Convey("A gated route applies the hierarchy", func() {
			So(role.CanAccessRoute(role.Trainer, role.Manager), ShouldBeFalse)
			So(role.CanAccessRoute(role.Manager, role.Manager), ShouldBeTrue)
		})

		Convey("An unauthenticated or invalid role is admitted nowhere", func() {
			So(role.CanAccessRoute(role.Role(""), ""), ShouldBeFalse)
			So(role.CanAccessRoute(role.Role("ghost"), role.Employee), ShouldBeFalse)
		})
	})
}
