// Package analysis forwards a raw audio recording to the AI model for
// open-ended textual analysis. The model's reply is passed through unmodified.
package analysis

import (
	"context"
	"fmt"

	"github.com/orato-ai/orato/internal/domain"
	"github.com/orato-ai/orato/internal/observability"
)

type Service struct {
	model domain.ModelClient // nil when no credential was configured
}

func NewService(model domain.ModelClient) *Service {
	return &Service{model: model}
}

func (s *Service) AnalyzeAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	log := observability.LoggerFromContext(ctx)

	if len(data) == 0 {
		return "", fmt.Errorf("%w: audio data is required", domain.ErrValidation)
	}
	if s.model == nil {
		return "", domain.ErrModelUnavailable
	}

	text, err := s.model.AnalyzeAudio(ctx, data, mimeType)
	if err != nil {
		log.Error("audio analysis call failed", "error", err, "bytes", len(data))
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	log.Info("audio analysis completed", "bytes", len(data), "mime_type", mimeType)
	return text, nil
}
