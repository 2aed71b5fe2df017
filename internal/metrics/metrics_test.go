package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRequestStartedRecordsRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/get_orders", "200"))

	done := RequestStarted()
	if got := testutil.ToFloat64(httpInFlight); got < 1 {
		t.Fatalf("expected in-flight gauge to be incremented, got %v", got)
	}
	done("get", "/get_orders", http.StatusOK)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/get_orders", "200"))
	if after != before+1 {
		t.Fatalf("expected counter to grow by one, got %v -> %v", before, after)
	}
}

func TestRequestStartedLabelsUnmatchedRoutes(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	RequestStarted()("GET", "", http.StatusNotFound)
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")); got != before+1 {
		t.Fatalf("expected unmatched counter to grow, got %v", got)
	}
}

func TestDomainCounters(t *testing.T) {
	orders := testutil.ToFloat64(ordersCreated)
	selfies := testutil.ToFloat64(selfiesStored)
	failed := testutil.ToFloat64(geoLookups.WithLabelValues(GeoFailed))

	OrderCreated()
	SelfieStored()
	GeoLookup(GeoFailed)

	if testutil.ToFloat64(ordersCreated) != orders+1 {
		t.Error("expected orders counter to grow")
	}
	if testutil.ToFloat64(selfiesStored) != selfies+1 {
		t.Error("expected selfies counter to grow")
	}
	if testutil.ToFloat64(geoLookups.WithLabelValues(GeoFailed)) != failed+1 {
		t.Error("expected geo failure counter to grow")
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	OrderCreated()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "krs_orders_created_total") {
		t.Fatal("expected orders counter in exposition")
	}
}
