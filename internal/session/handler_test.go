package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/2beens/fited/internal/catalog"
	"github.com/2beens/fited/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequestRateLimiter struct {
	// key to limit map
	Limits map[string]int
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	res := &redis_rate.Result{}

	foundLimit, ok := l.Limits[key]
	if !ok || foundLimit == 0 {
		return res, nil
	}

	res.Allowed = l.Limits[key]
	l.Limits[key]--

	return res, nil
}

func setupSessionRouterForTests(
	t *testing.T,
	reqRateLimiter *testRequestRateLimiter,
) (*mux.Router, *Store) {
	t.Helper()

	store := NewStore(NewRepoMock())
	require.NoError(t, store.Initialize(context.Background()))

	r := mux.NewRouter()
	handler := NewHandler(store, catalog.New(), metrics.NewTestManager())
	handler.SetupRoutes(r, reqRateLimiter, 15, metrics.NewTestManager())

	return r, store
}

func unlimited() *testRequestRateLimiter {
	return &testRequestRateLimiter{
		Limits: map[string]int{"auth": 1000},
	}
}

func TestNewSessionHandler_Routes(t *testing.T) {
	mainRouter := mux.NewRouter()
	store := NewStore(NewRepoMock())
	handler := NewHandler(store, catalog.New(), metrics.NewTestManager())
	handler.SetupRoutes(mainRouter, nil, 15, metrics.NewTestManager())
	require.NotNil(t, handler)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
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
		"logout": {
			name:   "logout",
			path:   "/a/logout",
			method: "GET",
		},
		"logout-options": {
			name:   "logout",
			path:   "/a/logout",
			method: "OPTIONS",
		},
		"me": {
			name:   "me",
			path:   "/a/me",
			method: "GET",
		},
		"update-progress": {
			name:   "update-progress",
			path:   "/progress",
			method: "POST",
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			req, err := http.NewRequest(route.method, route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			route := mainRouter.Get(route.name)
			require.NotNil(t, route)
			isMatch := route.Match(req, routeMatch)
			assert.True(t, isMatch, caseName)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	r, _ := setupSessionRouterForTests(t, unlimited())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/a/login", nil)
	req.PostForm = url.Values{}
	req.PostForm.Add("email", "john.doe@student.edu")
	req.PostForm.Add("password", "password123")
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var user User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "John Doe", user.Name)
}

func TestHandler_Login_JSONBody(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	body := `{"email":"sarah.wilson@student.edu","password":"password123"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/a/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, store.CurrentUser())
	assert.Equal(t, "2", store.CurrentUser().ID)
}

func TestHandler_Login_WrongCredentials(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/a/login", nil)
	req.PostForm = url.Values{}
	req.PostForm.Add("email", "john.doe@student.edu")
	req.PostForm.Add("password", "nope")
	req.Header.Set("Origin", "test")
	// failed attempts get their source ip logged
	req.Header.Set("X-Real-Ip", "8.8.8.8")

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Nil(t, store.CurrentUser())
}

func TestHandler_Login_RateLimited(t *testing.T) {
	reqRateLimiter := &testRequestRateLimiter{
		Limits: map[string]int{"auth": 1},
	}
	r, _ := setupSessionRouterForTests(t, reqRateLimiter)

	makeReq := func() *http.Request {
		req := httptest.NewRequest("POST", "/a/login", nil)
		req.PostForm = url.Values{}
		req.PostForm.Add("email", "john.doe@student.edu")
		req.PostForm.Add("password", "password123")
		req.Header.Set("Origin", "test")
		return req
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, makeReq())
	require.Equal(t, http.StatusOK, rr.Code)

	// next one is over the limit
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, makeReq())
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "retry after"))
}

func TestHandler_Signup(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	body := `{
		"email": "new.kid@student.edu",
		"password": "s3cret",
		"name": "New Kid",
		"age": 21,
		"weight": 68,
		"height": 172,
		"fitnessLevel": "beginner"
	}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/a/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var user User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "new.kid@student.edu", user.Email)
	assert.Len(t, store.Users(), 4)
}

func TestHandler_Signup_EmailTaken(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	body := `{"email":"mike.chen@student.edu","password":"whatever","name":"Impostor"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/a/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Len(t, store.Users(), 3)
}

func TestHandler_LogoutAndMe(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	// anonymous: /a/me says no
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/a/me", nil)
	req.Header.Set("Origin", "test")
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	loggedIn, err := store.Login(context.Background(), "john.doe@student.edu", "password123")
	require.NoError(t, err)
	require.True(t, loggedIn)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/a/me", nil)
	req.Header.Set("Origin", "test")
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var user User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "1", user.ID)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/a/logout", nil)
	req.Header.Set("Origin", "test")
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "logged-out", rr.Body.String())
	assert.Nil(t, store.CurrentUser())
}

func TestHandler_UpdateProgress(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	loggedIn, err := store.Login(context.Background(), "john.doe@student.edu", "password123")
	require.NoError(t, err)
	require.True(t, loggedIn)

	// exercise 2 (squats): 5 min * 6 cal/min = 30
	body := `{"exerciseId":"2"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp updateProgressResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Completed)
	assert.Equal(t, 30, resp.CaloriesBurned)
	require.NotNil(t, resp.User)
	assert.Contains(t, resp.User.CompletedExercises, "2")
	assert.Equal(t, 450+30, resp.User.TotalCaloriesBurned)
	assert.Equal(t, 6, resp.User.StreakDays)
}

func TestHandler_UpdateProgress_AlreadyCompleted(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	loggedIn, err := store.Login(context.Background(), "john.doe@student.edu", "password123")
	require.NoError(t, err)
	require.True(t, loggedIn)

	body := `{"exerciseId":"1"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp updateProgressResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Completed)
	assert.Zero(t, resp.CaloriesBurned)
	assert.Equal(t, 450, resp.User.TotalCaloriesBurned)
	assert.Equal(t, 5, resp.User.StreakDays)
}

func TestHandler_UpdateProgress_Anonymous(t *testing.T) {
	r, _ := setupSessionRouterForTests(t, unlimited())

	body := `{"exerciseId":"2"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "no can do\n", rr.Body.String())
}

func TestHandler_UpdateProgress_UnknownExercise(t *testing.T) {
	r, store := setupSessionRouterForTests(t, unlimited())

	loggedIn, err := store.Login(context.Background(), "john.doe@student.edu", "password123")
	require.NoError(t, err)
	require.True(t, loggedIn)

	body := `{"exerciseId":"999"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
