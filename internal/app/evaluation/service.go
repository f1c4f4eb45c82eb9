// Package evaluation scores a speaking attempt by prompting the AI model and
// post-processing its reply according to the modality rules.
package evaluation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/orato-ai/orato/internal/domain"
	"github.com/orato-ai/orato/internal/modeltext"
	"github.com/orato-ai/orato/internal/observability"
)

type Service struct {
	model domain.ModelClient // nil when no credential was configured
}

func NewService(model domain.ModelClient) *Service {
	return &Service{model: model}
}

type EvaluateInput struct {
	Transcript    string
	HasFace       bool
	HasVoice      bool
	AudioFeatures map[string]any
}

// modelScores is the JSON contract the model is instructed to follow.
type modelScores struct {
	Clarity            int    `json:"clarity"`
	Confidence         int    `json:"confidence"`
	ClarityFeedback    string `json:"clarityFeedback"`
	ConfidenceFeedback string `json:"confidenceFeedback"`
	Analysis           string `json:"analysis"`
}

// Evaluate runs one evaluation: validate, derive the mode, make a single
// model call, decode its JSON, then apply the modality overrides and the
// final clamp. The overrides win over whatever the model produced.
func (s *Service) Evaluate(ctx context.Context, in EvaluateInput) (*domain.EvaluationResult, error) {
	log := observability.LoggerFromContext(ctx)

	if strings.TrimSpace(in.Transcript) == "" && !in.HasVoice {
		return nil, fmt.Errorf("%w: transcript or voice input is required", domain.ErrValidation)
	}
	if s.model == nil {
		return nil, domain.ErrModelUnavailable
	}

	mode := domain.DeriveMode(in.HasFace, in.HasVoice)
	req := domain.EvaluationRequest{
		Transcript:    in.Transcript,
		HasFace:       in.HasFace,
		HasVoice:      in.HasVoice,
		AudioFeatures: in.AudioFeatures,
	}

	raw, err := s.model.EvaluateSpeech(ctx, req)
	if err != nil {
		log.Error("model evaluation call failed", "error", err, "mode", mode)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	var scores modelScores
	if err := modeltext.Decode(raw, &scores); err != nil {
		log.Error("could not decode model evaluation", "error", err, "raw_length", len(raw))
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	result := &domain.EvaluationResult{
		Clarity:            scores.Clarity,
		Confidence:         scores.Confidence,
		ClarityFeedback:    scores.ClarityFeedback,
		ConfidenceFeedback: scores.ConfidenceFeedback,
		Analysis:           scores.Analysis,
		Mode:               mode,
	}
	applyModeOverrides(result)

	result.Clarity = domain.ClampScore(result.Clarity)
	result.Confidence = domain.ClampScore(result.Confidence)

	log.Info("evaluation completed",
		"mode", mode, "clarity", result.Clarity, "confidence", result.Confidence)
	return result, nil
}

// applyModeOverrides enforces the scoring rules regardless of model output.
// The rules also appear in the prompt text; this is the authoritative copy.
func applyModeOverrides(r *domain.EvaluationResult) {
	switch r.Mode {
	case domain.ModeVoiceOnly:
		r.Confidence = int(math.Round(float64(r.Confidence) * 0.5))
		r.ConfidenceFeedback = domain.FeedbackVoiceOnlyConfidence
	case domain.ModeNoVoice:
		r.Clarity = 0
		r.Confidence = 0
		r.ClarityFeedback = domain.FeedbackNoVoiceClarity
		r.ConfidenceFeedback = domain.FeedbackNoVoiceConfidence
	}
}
