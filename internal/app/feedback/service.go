// Package feedback produces two improvement tips for an existing evaluation.
// The AI path is best-effort: any failure routes to a deterministic fallback,
// so callers always get tips and never an error.
package feedback

import (
	"context"
	"math/rand/v2"

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

type modelTips struct {
	ClarityTip    string `json:"clarityTip"`
	ConfidenceTip string `json:"confidenceTip"`
}

// Tips returns two tips for the given scores. The unconfigured-client path
// and every AI failure path converge on the same fallback function.
func (s *Service) Tips(ctx context.Context, clarity, confidence int, mode domain.Mode) domain.Tips {
	log := observability.LoggerFromContext(ctx)

	if s.model == nil {
		return fallbackTips(mode)
	}

	raw, err := s.model.SuggestTips(ctx, clarity, confidence, mode)
	if err != nil {
		log.Warn("tips model call failed, using fallback", "error", err)
		return fallbackTips(mode)
	}

	var tips modelTips
	if err := modeltext.Decode(raw, &tips); err != nil {
		log.Warn("could not decode model tips, using fallback", "error", err)
		return fallbackTips(mode)
	}
	if tips.ClarityTip == "" || tips.ConfidenceTip == "" {
		log.Warn("model tips incomplete, using fallback")
		return fallbackTips(mode)
	}

	return domain.Tips{ClarityTip: tips.ClarityTip, ConfidenceTip: tips.ConfidenceTip}
}

// fallbackTips is the deterministic rule shared by the unconfigured and the
// failure paths.
func fallbackTips(mode domain.Mode) domain.Tips {
	switch mode {
	case domain.ModeNoVoice:
		return domain.Tips{
			ClarityTip:    domain.TipNoVoiceClarity,
			ConfidenceTip: domain.TipNoVoiceConfidence,
		}
	case domain.ModeVoiceOnly:
		return domain.Tips{
			ClarityTip:    pick(domain.ClarityTips),
			ConfidenceTip: domain.TipVoiceOnlyCamera,
		}
	default:
		return domain.Tips{
			ClarityTip:    pick(domain.ClarityTips),
			ConfidenceTip: pick(domain.ConfidenceTips),
		}
	}
}

func pick(list []string) string {
	return list[rand.IntN(len(list))]
}
