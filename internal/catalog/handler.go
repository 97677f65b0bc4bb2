package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fited/internal/telemetry/tracing"
	"github.com/2beens/fited/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.handleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises/categories", handler.handleCategories).Methods("GET", "OPTIONS").Name("exercise-categories")
	router.HandleFunc("/exercises/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	filter := Filter{
		Query:      r.URL.Query().Get("query"),
		Category:   r.URL.Query().Get("category"),
		Difficulty: Difficulty(r.URL.Query().Get("difficulty")),
	}

	exercises := handler.catalog.List(filter)
	if exercises == nil {
		exercises = []Exercise{}
	}

	resp, err := json.Marshal(ListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	})
	if err != nil {
		log.Errorf("failed to marshal exercises list: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	exercise, ok := handler.catalog.Get(id)
	if !ok {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}

func (handler *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.categories")
	defer span.End()

	categoriesJson, err := json.Marshal(handler.catalog.Categories())
	if err != nil {
		log.Errorf("failed to marshal exercise categories: %s", err)
		http.Error(w, "failed to get categories", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, categoriesJson)
}
