package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/2beens/fited/internal/catalog"
	"github.com/2beens/fited/internal/middleware"
	"github.com/2beens/fited/internal/telemetry/metrics"
	"github.com/2beens/fited/internal/telemetry/tracing"
	"github.com/2beens/fited/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	store          *Store
	catalog        *catalog.Catalog
	metricsManager *metrics.Manager
}

func NewHandler(
	store *Store,
	exerciseCatalog *catalog.Catalog,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		store:          store,
		catalog:        exerciseCatalog,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/progress", handler.handleUpdateProgress).Methods("POST", "OPTIONS").Name("update-progress")

	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/signup", handler.handleSignup).
		Methods("POST", "OPTIONS").Name("signup")
	authSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")
	authSubrouter.
		HandleFunc("/me", handler.handleMe).
		Methods("GET", "OPTIONS").Name("me")

	// rate limit the auth endpoints to prevent abuse
	authSubrouter.Use(middleware.RateLimit(rateLimiter, "auth", loginRateLimitAllowedPerMin, metricsManager))
	authSubrouter.Use(middleware.Cors())
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	loggedIn, err := handler.store.Login(ctx, loginReq.Email, loginReq.Password)
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("login: %s", err))
		log.Errorf("login for %s failed: %s", loginReq.Email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if !loggedIn {
		reqIp, _ := pkg.ReadUserIP(r)
		log.Tracef("failed login attempt for %s from: %s", loginReq.Email, reqIp)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	handler.metricsManager.CounterLogins.Inc()
	log.Tracef("new login success: %s", loginReq.Email)
	handler.writeCurrentUser(w, span)
}

func (handler *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.signup")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var params SignupParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("signup, unmarshal json params: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}

	if params.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if params.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	created, err := handler.store.Signup(ctx, params)
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("signup: %s", err))
		log.Errorf("signup for %s failed: %s", params.Email, err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}
	if !created {
		http.Error(w, "error, email already taken", http.StatusConflict)
		return
	}

	handler.metricsManager.CounterSignups.Inc()
	log.Tracef("new signup success: %s", params.Email)
	handler.writeCurrentUser(w, span)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := handler.store.Logout(ctx); err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("logout: %s", err))
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.me")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	if handler.store.CurrentUser() == nil {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.writeCurrentUser(w, span)
}

type updateProgressResponse struct {
	Completed      bool  `json:"completed"`
	CaloriesBurned int   `json:"caloriesBurned"`
	User           *User `json:"user"`
}

func (handler *Handler) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sessionHandler.updateProgress")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type progressRequest struct {
		ExerciseID string `json:"exerciseId"`
	}

	var progressReq progressRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&progressReq); err != nil {
			log.Errorf("update progress, unmarshal json params: %s", err)
			http.Error(w, "update progress failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("update progress failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		progressReq.ExerciseID = r.Form.Get("exerciseId")
	}

	if progressReq.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	if handler.store.CurrentUser() == nil {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exercise, ok := handler.catalog.Get(progressReq.ExerciseID)
	if !ok {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	span.SetAttributes(attribute.String("exercise.id", exercise.ID))

	completed, err := handler.store.UpdateProgress(ctx, exercise.ID, exercise.Calories())
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("update progress: %s", err))
		log.Errorf("update progress for exercise %s failed: %s", exercise.ID, err)
		http.Error(w, "update progress failed", http.StatusInternalServerError)
		return
	}

	if completed {
		handler.metricsManager.CounterCompletions.Inc()
	}

	caloriesBurned := 0
	if completed {
		caloriesBurned = exercise.Calories()
	}

	respJson, err := json.Marshal(updateProgressResponse{
		Completed:      completed,
		CaloriesBurned: caloriesBurned,
		User:           handler.store.CurrentUser(),
	})
	if err != nil {
		log.Errorf("failed to marshal update progress response: %s", err)
		http.Error(w, "update progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) writeCurrentUser(w http.ResponseWriter, span trace.Span) {
	user := handler.store.CurrentUser()
	userJson, err := json.Marshal(user)
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("marshal user: %s", err))
		log.Errorf("failed to marshal current user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userJson)
}
