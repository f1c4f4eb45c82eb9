package llm

import (
	"context"
	"fmt"

	"github.com/orato-ai/orato/internal/domain"
)

// MockModel is a deterministic ModelClient for local development and tests.
// Replies mimic the real model's habit of fencing JSON inside prose.
type MockModel struct{}

var _ domain.ModelClient = (*MockModel)(nil)

func NewMockModel() *MockModel {
	return &MockModel{}
}

func (m *MockModel) EvaluateSpeech(_ context.Context, req domain.EvaluationRequest) (string, error) {
	return "Here is my assessment:\n```json\n" +
		`{"clarity": 7, "confidence": 6, "clarityFeedback": "Your pacing was steady and easy to follow.", "confidenceFeedback": "You held a consistent, assured tone.", "analysis": "A solid practice attempt with room to vary emphasis on key points."}` +
		"\n```", nil
}

func (m *MockModel) SuggestTips(_ context.Context, clarity, confidence int, _ domain.Mode) (string, error) {
	return fmt.Sprintf("```json\n{\"clarityTip\": \"Pause after your main point (clarity was %d/10).\", \"confidenceTip\": \"Start with a deep breath (confidence was %d/10).\"}\n```", clarity, confidence), nil
}

func (m *MockModel) AnalyzeAudio(_ context.Context, data []byte, _ string) (string, error) {
	return fmt.Sprintf("The recording (%d bytes) has even pacing and clear articulation; try projecting a little more toward the end of sentences.", len(data)), nil
}
