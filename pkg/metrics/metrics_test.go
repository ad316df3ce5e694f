package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/talentforge/skillboard/pkg/metrics"
)

func TestManagerRegistration(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithPrometheusRegistry(registry),
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("suite"),
		)
		So(m, ShouldNotBeNil)

		Convey("Then the registry accepts a gather pass", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			// Counters without observations gather lazily; no families is
			// fine, a gather error is not.
			So(families, ShouldNotBeNil)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then recording helpers do not panic and land in the registry", func() {
			metrics.RecordGatewayCall("users", "list", "ok")
			metrics.RecordHTTPRequest("users", "GET", "200")
			metrics.RecordHTTPRequestDuration("users", "GET", "200", 12.5)
			metrics.RecordProjectionDuration(0.4)
			metrics.RecordStaleFetchDropped()
			metrics.UpdateActiveSessions(2)
			metrics.UpdateUnreadNotifications(5)
			metrics.UpdateRosterSize(4)
			metrics.UpdateSystemMemoryUsage(1024)
			metrics.UpdateSystemGoroutineCount(8)

			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
