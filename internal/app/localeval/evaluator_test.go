package localeval_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orato-ai/orato/internal/app/localeval"
	"github.com/orato-ai/orato/internal/domain"
)

const iterations = 300

func evaluate(t *testing.T, hasFace, hasVoice bool) *domain.EvaluationResult {
	t.Helper()
	res, err := localeval.New().Evaluate(context.Background(), domain.EvaluationRequest{
		Transcript: "practice run",
		HasFace:    hasFace,
		HasVoice:   hasVoice,
	})
	require.NoError(t, err)
	return res
}

func TestFaceAndVoiceScoreRanges(t *testing.T) {
	for range iterations {
		res := evaluate(t, true, true)
		assert.Equal(t, domain.ModeFaceAndVoice, res.Mode)
		// clarity = round(5 + rand*3 + 2) ∈ [7,10]
		assert.GreaterOrEqual(t, res.Clarity, 7)
		assert.LessOrEqual(t, res.Clarity, 10)
		// confidence = round(4 + rand*3 + 2 + rand*2) ∈ [6,10] after clamp
		assert.GreaterOrEqual(t, res.Confidence, 6)
		assert.LessOrEqual(t, res.Confidence, 10)
	}
}

func TestVoiceOnlyHalvesConfidence(t *testing.T) {
	for range iterations {
		res := evaluate(t, false, true)
		assert.Equal(t, domain.ModeVoiceOnly, res.Mode)
		// confidence base = round-halved (2 + rand*2) ∈ [1,2]
		assert.GreaterOrEqual(t, res.Confidence, 1)
		assert.LessOrEqual(t, res.Confidence, 2)
		assert.Equal(t, domain.FeedbackVoiceOnlyConfidence, res.ConfidenceFeedback)
		assert.Contains(t, domain.ClarityTips, res.ClarityFeedback)
	}
}

func TestNoVoiceBoundedRanges(t *testing.T) {
	for _, hasFace := range []bool{false, true} {
		for range iterations {
			res := evaluate(t, hasFace, false)
			assert.Equal(t, domain.ModeNoVoice, res.Mode)
			assert.GreaterOrEqual(t, res.Clarity, 5)
			assert.LessOrEqual(t, res.Clarity, 7)
			assert.GreaterOrEqual(t, res.Confidence, 3)
			assert.LessOrEqual(t, res.Confidence, 5)
			assert.Equal(t, domain.FeedbackNoVoiceClarity, res.ClarityFeedback)
			assert.Equal(t, domain.FeedbackNoVoiceConfidence, res.ConfidenceFeedback)
		}
	}
}

func TestScoresAlwaysInRange(t *testing.T) {
	combos := []struct{ face, voice bool }{
		{true, true}, {false, true}, {true, false}, {false, false},
	}
	for _, c := range combos {
		for range iterations {
			res := evaluate(t, c.face, c.voice)
			assert.GreaterOrEqual(t, res.Clarity, 0)
			assert.LessOrEqual(t, res.Clarity, 10)
			assert.GreaterOrEqual(t, res.Confidence, 0)
			assert.LessOrEqual(t, res.Confidence, 10)
		}
	}
}
