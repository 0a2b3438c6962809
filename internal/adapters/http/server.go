// Package httpadapter exposes the assessment and ranking services over
// a JSON HTTP API.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"kepler/internal/domain"
	"kepler/internal/engine"
	"kepler/internal/ports"
	"kepler/internal/services/assessments"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "kepler_http_request_duration_seconds",
	Help:    "HTTP request latency by route and status class.",
	Buckets: prometheus.DefBuckets,
}, []string{"route", "status"})

type Server struct {
	assessor ports.Assessor
	ranker   ports.Ranker
	log      *zap.Logger
}

func New(assessor ports.Assessor, ranker ports.Ranker, log *zap.Logger) *Server {
	return &Server{assessor: assessor, ranker: ranker, log: log}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/assessments", s.handleCreateAssessment)
		r.Get("/assessments/{id}/report", s.handleReport)
		r.Put("/assessments/{id}/requirements/{reqID}", s.handleRecordStatus)
		r.Post("/jurisdictions/rank", s.handleRankJurisdictions)
	})
	return r
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.WithLabelValues(route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
		s.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createAssessmentRequest struct {
	OperatorName string                 `json:"operator_name"`
	Profile      engine.OperatorProfile `json:"profile"`
}

type createAssessmentResponse struct {
	ID     string               `json:"id"`
	Result engine.UnifiedResult `json:"result"`
}

func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.OperatorName == "" {
		writeError(w, http.StatusBadRequest, "operator_name is required")
		return
	}
	id, result, err := s.assessor.Create(r.Context(), req.OperatorName, req.Profile)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createAssessmentResponse{ID: id, Result: result})
}

// assessmentID validates the id path parameter. Malformed ids 404
// without touching storage.
func assessmentID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return "", false
	}
	return id, true
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id, ok := assessmentID(w, r)
	if !ok {
		return
	}
	result, err := s.assessor.Report(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type recordStatusRequest struct {
	Status        engine.Status `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	EvidenceNotes string        `json:"evidence_notes,omitempty"`
	TargetDate    *time.Time    `json:"target_date,omitempty"`
}

func (s *Server) handleRecordStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := assessmentID(w, r)
	if !ok {
		return
	}
	var req recordStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	err := s.assessor.RecordStatus(r.Context(), id, engine.RequirementStatus{
		RequirementID: chi.URLParam(r, "reqID"),
		Status:        req.Status,
		Notes:         req.Notes,
		EvidenceNotes: req.EvidenceNotes,
		TargetDate:    req.TargetDate,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type rankRequest struct {
	Candidates  []string           `json:"candidates"`
	Preferences engine.Preferences `json:"preferences"`
}

type rankResponse struct {
	Rankings []engine.JurisdictionScore `json:"rankings"`
}

func (s *Server) handleRankJurisdictions(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ranked, err := s.ranker.Rank(r.Context(), req.Candidates, req.Preferences)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rankResponse{Rankings: ranked})
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "assessment not found")
	case errors.Is(err, engine.ErrInvalidProfile),
		errors.Is(err, assessments.ErrInvalidStatus),
		errors.Is(err, assessments.ErrUnknownRequirement):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.log.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
