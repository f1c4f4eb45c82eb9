package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/orato-ai/orato/internal/app/analysis"
	"github.com/orato-ai/orato/internal/app/evaluation"
	"github.com/orato-ai/orato/internal/app/feedback"
	"github.com/orato-ai/orato/internal/domain"
	"github.com/orato-ai/orato/internal/observability"
)

const (
	apiVersion = "1.0.0"

	// Uploaded recordings are short practice clips; 15 MiB is generous.
	maxAudioUploadBytes = 15 << 20
)

type Server struct {
	eval     *evaluation.Service
	analysis *analysis.Service
	feedback *feedback.Service

	aiConfigured bool
}

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Evaluation   *evaluation.Service
	Analysis     *analysis.Service
	Feedback     *feedback.Service
	AIConfigured bool

	// AllowedOrigin restricts CORS; "*" leaves it open.
	AllowedOrigin string
}

func NewServer(d Deps) http.Handler {
	s := &Server{
		eval:         d.Evaluation,
		analysis:     d.Analysis,
		feedback:     d.Feedback,
		aiConfigured: d.AIConfigured,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /api/analyze-audio", s.handleAnalyzeAudio)
	mux.HandleFunc("POST /api/feedback", s.handleFeedback)
	mux.HandleFunc("/", s.handleNotFound)

	return chainMiddlewares(mux,
		withCORS(d.AllowedOrigin),
		withLogging,
		withRequestID,
	)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type evaluateRequest struct {
	Transcript    string         `json:"transcript"`
	HasFace       bool           `json:"hasFace"`
	HasVoice      bool           `json:"hasVoice"`
	AudioFeatures map[string]any `json:"audioFeatures"`
}

type evaluationBody struct {
	Clarity            int    `json:"clarity"`
	Confidence         int    `json:"confidence"`
	ClarityFeedback    string `json:"clarityFeedback"`
	ConfidenceFeedback string `json:"confidenceFeedback"`
	Analysis           string `json:"analysis"`
}

type evaluateResponse struct {
	Success    bool           `json:"success"`
	Mode       string         `json:"mode"`
	Evaluation evaluationBody `json:"evaluation"`
}

type feedbackRequest struct {
	Clarity    int    `json:"clarity"`
	Confidence int    `json:"confidence"`
	Mode       string `json:"mode"`
}

type feedbackResponse struct {
	Success  bool         `json:"success"`
	Feedback feedbackBody `json:"feedback"`
}

type feedbackBody struct {
	ClarityTip    string `json:"clarityTip"`
	ConfidenceTip string `json:"confidenceTip"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"geminiConfigured": s.aiConfigured,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"message":         "Orato API is running",
		"geminiAvailable": s.aiConfigured,
		"version":         apiVersion,
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	res, err := s.eval.Evaluate(r.Context(), evaluation.EvaluateInput{
		Transcript:    req.Transcript,
		HasFace:       req.HasFace,
		HasVoice:      req.HasVoice,
		AudioFeatures: req.AudioFeatures,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Success: true,
		Mode:    string(res.Mode),
		Evaluation: evaluationBody{
			Clarity:            res.Clarity,
			Confidence:         res.Confidence,
			ClarityFeedback:    res.ClarityFeedback,
			ConfidenceFeedback: res.ConfidenceFeedback,
			Analysis:           res.Analysis,
		},
	})
}

func (s *Server) handleAnalyzeAudio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUploadBytes)
	if err := r.ParseMultipartForm(maxAudioUploadBytes); err != nil {
		badRequest(w, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		badRequest(w, "audio file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequest(w, "could not read audio file")
		return
	}

	text, err := s.analysis.AnalyzeAudio(r.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": text,
	})
}

// handleFeedback always answers 200: a malformed body degrades to zero-value
// input and the service itself never fails.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.LoggerFromContext(r.Context()).Warn("malformed feedback body", "error", err)
		req = feedbackRequest{}
	}

	tips := s.feedback.Tips(r.Context(), req.Clarity, req.Confidence, domain.Mode(req.Mode))

	writeJSON(w, http.StatusOK, feedbackResponse{
		Success: true,
		Feedback: feedbackBody{
			ClarityTip:    tips.ClarityTip,
			ConfidenceTip: tips.ConfidenceTip,
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"error":   "Endpoint not found",
	})
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   msg,
	})
}

// writeError maps the domain error taxonomy to status codes. Upstream detail
// is logged server-side and never leaks to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := observability.LoggerFromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrValidation):
		badRequest(w, err.Error())
	case errors.Is(err, domain.ErrModelUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"success": false,
			"error":   "AI evaluation is not configured: missing Gemini API key",
		})
	default:
		log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "AI evaluation failed",
		})
	}
}
