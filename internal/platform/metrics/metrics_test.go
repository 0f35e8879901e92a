package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentCountsRequests(t *testing.T) {
	m := New()
	h := m.Instrument(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/heroes", nil))
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("201", "post")); got != 3 {
		t.Fatalf("expected 3 requests, got %v", got)
	}
	if n := testutil.CollectAndCount(m.duration); n != 1 {
		t.Fatalf("expected one duration series, got %d", n)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.Instrument(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{`http_requests_total{code="404",method="get"} 1`, "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in exposition", want)
		}
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Instrument(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if strings.Contains(rec.Body.String(), `http_requests_total{`) {
		t.Fatal("expected requests on one instance not to show up in another")
	}
}
