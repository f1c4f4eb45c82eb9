// Package localeval scores a speaking attempt without the AI backend, using
// simple randomized arithmetic gated by the two detection booleans. It is the
// degraded-mode counterpart of the evaluation service.
package localeval

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/orato-ai/orato/internal/domain"
)

// Evaluator implements domain.Evaluator with randomized offline scoring.
type Evaluator struct{}

var _ domain.Evaluator = (*Evaluator)(nil)

func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate never fails; the error return exists to satisfy domain.Evaluator.
//
// Note: the no-voice case deliberately returns nonzero randomized scores,
// unlike the backend's force-to-zero rule. See DESIGN.md before unifying.
func (e *Evaluator) Evaluate(_ context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	mode := domain.DeriveMode(req.HasFace, req.HasVoice)

	var clarity, confidence int
	switch mode {
	case domain.ModeNoVoice:
		clarity = 5 + rand.IntN(3)    // [5,7]
		confidence = 3 + rand.IntN(3) // [3,5]
	default:
		clarity = scoreClarity(req.HasVoice)
		confidence = scoreConfidence(req.HasFace, req.HasVoice)
		if mode == domain.ModeVoiceOnly {
			confidence = int(math.Round(float64(confidence) * 0.5))
		}
	}

	result := &domain.EvaluationResult{
		Clarity:    domain.ClampScore(clarity),
		Confidence: domain.ClampScore(confidence),
		Analysis:   "Offline estimate; connect to the evaluation service for a full analysis.",
		Mode:       mode,
	}
	result.ClarityFeedback, result.ConfidenceFeedback = feedbackFor(mode)
	return result, nil
}

func scoreClarity(hasVoice bool) int {
	base := 5 + rand.Float64()*3
	if hasVoice {
		base += 2
	}
	return int(math.Round(base))
}

func scoreConfidence(hasFace, hasVoice bool) int {
	var base float64
	if hasFace {
		base += 4 + rand.Float64()*3
	}
	if hasVoice {
		base += 2 + rand.Float64()*2
	}
	return int(math.Round(base))
}

// feedbackFor mirrors the server-side fallback rule: fixed sentences when a
// modality is missing, random picks from the shared lists otherwise.
func feedbackFor(mode domain.Mode) (clarityFb, confidenceFb string) {
	switch mode {
	case domain.ModeNoVoice:
		return domain.FeedbackNoVoiceClarity, domain.FeedbackNoVoiceConfidence
	case domain.ModeVoiceOnly:
		return pick(domain.ClarityTips), domain.FeedbackVoiceOnlyConfidence
	default:
		return pick(domain.ClarityTips), pick(domain.ConfidenceTips)
	}
}

func pick(list []string) string {
	return list[rand.IntN(len(list))]
}
