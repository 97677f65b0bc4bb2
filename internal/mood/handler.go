package mood

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/fited/internal/session"
	"github.com/2beens/fited/internal/telemetry/tracing"
	"github.com/2beens/fited/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const defaultRecentLimit = 5

type userProvider interface {
	CurrentUser() *session.User
}

type Handler struct {
	users   userProvider
	tracker *Tracker
}

func NewHandler(users userProvider, tracker *Tracker) *Handler {
	return &Handler{
		users:   users,
		tracker: tracker,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/mood", handler.handleLog).Methods("POST", "OPTIONS").Name("log-mood")
	router.HandleFunc("/mood/recent", handler.handleRecent).Methods("GET", "OPTIONS").Name("recent-moods")
}

func (handler *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.mood.log")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	user := handler.users.CurrentUser()
	if user == nil {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type logRequest struct {
		Mood Type   `json:"mood"`
		Note string `json:"note"`
	}

	var logReq logRequest
	if err := json.NewDecoder(r.Body).Decode(&logReq); err != nil {
		log.Tracef("log mood, unmarshal json params: %s", err)
		http.Error(w, "log mood failed", http.StatusBadRequest)
		return
	}

	if !logReq.Mood.Valid() {
		http.Error(w, "error, unknown mood", http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("mood", string(logReq.Mood)))

	entry := handler.tracker.Log(user.ID, logReq.Mood, logReq.Note)
	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal mood entry: %s", err)
		http.Error(w, "log mood failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entryJson)
}

func (handler *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.mood.recent")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	user := handler.users.CurrentUser()
	if user == nil {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := defaultRecentLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entriesJson, err := json.Marshal(handler.tracker.Recent(user.ID, limit))
	if err != nil {
		log.Errorf("failed to marshal mood entries: %s", err)
		http.Error(w, "get recent moods failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entriesJson)
}
