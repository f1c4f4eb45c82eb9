package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/orato-ai/orato/internal/domain"
)

const noTranscriptPlaceholder = "(no transcript available)"

const evaluationRubric = `
You are an impartial speaking coach for a practice application.
Evaluate one speaking attempt and reply with a single JSON object, nothing else:

{"clarity": <integer 0-10>, "confidence": <integer 0-10>, "clarityFeedback": "<one sentence>", "confidenceFeedback": "<one sentence>", "analysis": "<2-3 sentences about the overall delivery>"}

Scoring rules:
- Clarity measures how understandable the speech is: articulation, pacing, structure.
- Confidence measures how assured the delivery is: steadiness, energy, presence.
- If neither a face nor a voice was detected, both scores MUST be 0.
- If only a voice was detected (no face visible), halve the confidence score.
- Be encouraging but honest; feedback sentences must be concrete and actionable.
`

const tipsInstructions = `
You are a speaking coach. Given the scores below, reply with a single JSON
object containing exactly two short, actionable tips, nothing else:

{"clarityTip": "<one sentence>", "confidenceTip": "<one sentence>"}
`

// AudioAnalysisInstruction is the fixed prompt sent alongside a raw audio
// upload for open-ended analysis.
const AudioAnalysisInstruction = `You are a speaking coach. Listen to this recording of a speaking practice attempt and describe, in a short paragraph, the speaker's pacing, articulation, energy, and one concrete thing to improve. Reply with plain text only.`

// BuildEvaluationPrompt renders the evaluation rubric with the derived mode,
// the transcript (or a placeholder), and the JSON-encoded audio features.
func BuildEvaluationPrompt(mode domain.Mode, transcript string, features map[string]any) string {
	if strings.TrimSpace(transcript) == "" {
		transcript = noTranscriptPlaceholder
	}

	featureJSON := "{}"
	if len(features) > 0 {
		if b, err := json.Marshal(features); err == nil {
			featureJSON = string(b)
		}
	}

	var b strings.Builder
	b.WriteString(evaluationRubric)
	fmt.Fprintf(&b, "\nDetected mode: %s\n", mode)
	fmt.Fprintf(&b, "Transcript:\n%s\n", transcript)
	fmt.Fprintf(&b, "Audio features: %s\n", featureJSON)
	return b.String()
}

// BuildTipsPrompt renders the two-tip request for an existing evaluation.
func BuildTipsPrompt(clarity, confidence int, mode domain.Mode) string {
	var b strings.Builder
	b.WriteString(tipsInstructions)
	fmt.Fprintf(&b, "\nMode: %s\nClarity score: %d/10\nConfidence score: %d/10\n", mode, clarity, confidence)
	return b.String()
}
