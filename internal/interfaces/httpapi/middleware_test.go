package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChain_FirstMiddlewareIsOutermost(t *testing.T) {
	var order []string
	tag := func(name string) middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	chain(okHandler(), tag("tracing"), tag("logging"), tag("cors")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))

	if got := strings.Join(order, ","); got != "tracing,logging,cors" {
		t.Fatalf("unexpected middleware order: %s", got)
	}
}

func TestIsProbePath(t *testing.T) {
	tests := map[string]bool{
		"/healthz":                true,
		" /READYZ ":               true,
		"/livez":                  true,
		"/v1/leagues":             false,
		"/v1/leagues/nba/matches": false,
		"/docs":                   false,
	}
	for path, want := range tests {
		if got := isProbePath(path); got != want {
			t.Fatalf("isProbePath(%q)=%v want=%v", path, got, want)
		}
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{name: "configured origin", allowed: []string{"https://scores.example.com"}, method: http.MethodGet, origin: "https://scores.example.com", wantStatus: http.StatusOK, wantAllowed: "https://scores.example.com"},
		{name: "unknown origin", allowed: []string{"https://scores.example.com"}, method: http.MethodGet, origin: "https://evil.example.com", wantStatus: http.StatusOK},
		{name: "wildcard preflight", allowed: []string{" ", "*"}, method: http.MethodOptions, origin: "https://scores.example.com", wantStatus: http.StatusNoContent, wantAllowed: "*"},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodGet, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/leagues/top/matches", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if tt.wantAllowed != "" && rec.Header().Get("Access-Control-Allow-Methods") != "GET,OPTIONS" {
				t.Fatalf("unexpected Access-Control-Allow-Methods: %q", rec.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}

func TestRequestLogging_SkipsProbesAndRecordsStatus(t *testing.T) {
	core, logs := observer.New(logging.LevelInfo)
	logger := logging.FromZap(zap.New(core))

	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := requestLogging(logger)(teapot)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/leagues/nba/matches?date=2024-03-15", nil))

	entries := logs.FilterMessage(accessLogMessage).All()
	if len(entries) != 1 {
		t.Fatalf("expected one access log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/v1/leagues/nba/matches" || fields["query"] != "date=2024-03-15" {
		t.Fatalf("unexpected access log fields: %+v", fields)
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("unexpected status field: %#v", fields["status"])
	}
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	core, logs := observer.New(logging.LevelError)
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	recoverPanic(logging.FromZap(zap.New(core)))(boom).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
}

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	for name, want := range map[string]bool{
		"httpapi.Handler.ListMatches": true,
		"httpapi.Handler.OpenAPI":     true,
		"httpapi.writeJSON":           false,
		"httpapi.mapError":            false,
	} {
		if got := shouldCreateHTTPAPISpan(name); got != want {
			t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", name, got, want)
		}
	}
}
