package llm_test

import (
	"strings"
	"testing"

	"github.com/orato-ai/orato/internal/adapters/llm"
	"github.com/orato-ai/orato/internal/domain"
)

func TestBuildEvaluationPromptEmbedsInputs(t *testing.T) {
	p := llm.BuildEvaluationPrompt(domain.ModeVoiceOnly, "Hello everyone", map[string]any{"avgLevel": 22.5})

	for _, want := range []string{
		"Detected mode: Only Voice",
		"Hello everyone",
		`"avgLevel":22.5`,
		"halve the confidence score",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildEvaluationPromptUsesPlaceholderForEmptyTranscript(t *testing.T) {
	p := llm.BuildEvaluationPrompt(domain.ModeNoVoice, "   ", nil)

	if !strings.Contains(p, "(no transcript available)") {
		t.Errorf("expected transcript placeholder, got:\n%s", p)
	}
	if !strings.Contains(p, "Audio features: {}") {
		t.Errorf("expected empty feature map, got:\n%s", p)
	}
}

func TestBuildTipsPromptEmbedsScores(t *testing.T) {
	p := llm.BuildTipsPrompt(8, 7, domain.ModeFaceAndVoice)

	for _, want := range []string{"Clarity score: 8/10", "Confidence score: 7/10", "Human Face + Voice", "clarityTip"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
