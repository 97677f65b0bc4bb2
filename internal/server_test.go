package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fited/internal/analytics"
	"github.com/2beens/fited/internal/catalog"
	"github.com/2beens/fited/internal/config"
	"github.com/2beens/fited/internal/mood"
	"github.com/2beens/fited/internal/session"
	"github.com/2beens/fited/internal/telemetry/metrics"

	"github.com/go-redis/redismock/v8"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	rdb, _ := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, rdb.Close())
	})

	store := session.NewStore(session.NewRepoMock())
	require.NoError(t, store.Initialize(context.Background()))

	exerciseCatalog := catalog.New()

	return &Server{
		config: &config.Config{
			LoginRateLimitAllowedPerMin: 15,
		},
		versionInfo:     "test-version",
		redisClient:     rdb,
		store:           store,
		exerciseCatalog: exerciseCatalog,
		analyzer:        analytics.NewAnalyzer(exerciseCatalog),
		moodTracker:     mood.NewTracker(),
		metricsManager:  metrics.NewTestManager(),
		otelShutdown:    func() {},
	}
}

func TestServer_RouterSetup(t *testing.T) {
	s := newTestServer(t)
	r := s.routerSetup()
	require.NotNil(t, r)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"root": {
			name:   "root",
			path:   "/",
			method: "GET",
		},
		"version": {
			name:   "version",
			path:   "/version",
			method: "GET",
		},
		"list-exercises": {
			name:   "list-exercises",
			path:   "/exercises",
			method: "GET",
		},
		"exercise-categories": {
			name:   "exercise-categories",
			path:   "/exercises/categories",
			method: "GET",
		},
		"login": {
			name:   "login",
			path:   "/a/login",
			method: "POST",
		},
		"signup": {
			name:   "signup",
			path:   "/a/signup",
			method: "POST",
		},
		"update-progress": {
			name:   "update-progress",
			path:   "/progress",
			method: "POST",
		},
		"analytics-summary": {
			name:   "analytics-summary",
			path:   "/analytics/summary",
			method: "GET",
		},
		"calculate-bmi": {
			name:   "calculate-bmi",
			path:   "/bmi",
			method: "POST",
		},
		"log-mood": {
			name:   "log-mood",
			path:   "/mood",
			method: "POST",
		},
		"recent-moods": {
			name:   "recent-moods",
			path:   "/mood/recent",
			method: "GET",
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			req, err := http.NewRequest(route.method, route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			route := r.Get(route.name)
			require.NotNil(t, route)
			isMatch := route.Match(req, routeMatch)
			assert.True(t, isMatch, caseName)
		})
	}
}

func TestServer_Root(t *testing.T) {
	s := newTestServer(t)
	r := s.routerSetup()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "test")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I'm OK, thanks ;)", rr.Body.String())
}

func TestServer_Version(t *testing.T) {
	s := newTestServer(t)
	r := s.routerSetup()

	req := httptest.NewRequest("GET", "/version", nil)
	req.Header.Set("Origin", "test")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "test-version", rr.Body.String())
}

func TestServer_UnknownPath(t *testing.T) {
	s := newTestServer(t)
	r := s.routerSetup()

	req := httptest.NewRequest("GET", "/nope", nil)
	req.Header.Set("Origin", "test")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
