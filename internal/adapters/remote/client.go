// Package remote is an HTTP client for an Orato evaluation backend. Capture
// sessions use it as their primary evaluator.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orato-ai/orato/internal/domain"
)

// EvalClient implements domain.Evaluator against POST /api/evaluate.
type EvalClient struct {
	baseURL string
	c       *http.Client
}

var _ domain.Evaluator = (*EvalClient)(nil)

func NewEvalClient(baseURL string) *EvalClient {
	return &EvalClient{
		baseURL: baseURL,
		c:       &http.Client{Timeout: 60 * time.Second},
	}
}

type evaluateRequest struct {
	Transcript    string         `json:"transcript,omitempty"`
	HasFace       bool           `json:"hasFace"`
	HasVoice      bool           `json:"hasVoice"`
	AudioFeatures map[string]any `json:"audioFeatures,omitempty"`
}

type evaluateResponse struct {
	Success    bool   `json:"success"`
	Mode       string `json:"mode"`
	Error      string `json:"error"`
	Evaluation struct {
		Clarity            int    `json:"clarity"`
		Confidence         int    `json:"confidence"`
		ClarityFeedback    string `json:"clarityFeedback"`
		ConfidenceFeedback string `json:"confidenceFeedback"`
		Analysis           string `json:"analysis"`
	} `json:"evaluation"`
}

func (e *EvalClient) Evaluate(ctx context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	body, err := json.Marshal(evaluateRequest{
		Transcript:    req.Transcript,
		HasFace:       req.HasFace,
		HasVoice:      req.HasVoice,
		AudioFeatures: req.AudioFeatures,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/evaluate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.c.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("evaluate %s: %s", resp.Status, string(raw))
	}

	var out evaluateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("evaluate decode: %w", err)
	}
	if !out.Success {
		return nil, fmt.Errorf("evaluate rejected: %s", out.Error)
	}

	return &domain.EvaluationResult{
		Clarity:            out.Evaluation.Clarity,
		Confidence:         out.Evaluation.Confidence,
		ClarityFeedback:    out.Evaluation.ClarityFeedback,
		ConfidenceFeedback: out.Evaluation.ConfidenceFeedback,
		Analysis:           out.Evaluation.Analysis,
		Mode:               domain.Mode(out.Mode),
	}, nil
}

// Probe checks the backend's health endpoint. Used once at startup to decide
// whether capture sessions may use the remote path at all.
func (e *EvalClient) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := e.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health probe: %s", resp.Status)
	}
	return nil
}
