package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/fited/internal/session"
	"github.com/2beens/fited/internal/telemetry/tracing"
	"github.com/2beens/fited/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type userProvider interface {
	CurrentUser() *session.User
}

type Handler struct {
	users    userProvider
	analyzer *Analyzer
}

func NewHandler(users userProvider, analyzer *Analyzer) *Handler {
	return &Handler{
		users:    users,
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/analytics/summary", handler.handleSummary).Methods("GET", "OPTIONS").Name("analytics-summary")
	router.HandleFunc("/analytics/export", handler.handleExport).Methods("GET", "OPTIONS").Name("analytics-export")
	router.HandleFunc("/bmi", handler.handleCalculateBMI).Methods("POST", "OPTIONS").Name("calculate-bmi")
}

func (handler *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.summary")
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

	span.SetAttributes(attribute.String("user.id", user.ID))

	summaryJson, err := json.Marshal(handler.analyzer.Summary(*user))
	if err != nil {
		log.Errorf("failed to marshal summary for user %s: %s", user.ID, err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.export")
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

	span.SetAttributes(attribute.String("user.id", user.ID))

	export := handler.analyzer.Export(*user)
	exportJson, err := json.Marshal(export)
	if err != nil {
		log.Errorf("failed to marshal export for user %s: %s", user.ID, err)
		http.Error(w, "failed to export analytics", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("fited-analytics-%s.json", export.ExportDate.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exportJson)
}

func (handler *Handler) handleCalculateBMI(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.bmi")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type bmiRequest struct {
		Weight float64         `json:"weight"`
		Height float64         `json:"height"`
		Unit   MeasurementUnit `json:"unit"`
	}

	var bmiReq bmiRequest
	if err := json.NewDecoder(r.Body).Decode(&bmiReq); err != nil {
		log.Tracef("calculate bmi, unmarshal json params: %s", err)
		http.Error(w, "calculate bmi failed", http.StatusBadRequest)
		return
	}

	if bmiReq.Unit == "" {
		bmiReq.Unit = UnitMetric
	}

	result, err := CalculateBMI(bmiReq.Weight, bmiReq.Height, bmiReq.Unit)
	if err != nil {
		if errors.Is(err, ErrInvalidMeasurement) || errors.Is(err, ErrUnknownUnit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("calculate bmi: %s", err)
		http.Error(w, "calculate bmi failed", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal bmi result: %s", err)
		http.Error(w, "calculate bmi failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}
