package domain

import "context"

// ModelClient defines how the application talks to a generative-AI model.
// Adapters own prompt construction; callers receive the model's raw text.
type ModelClient interface {
	// EvaluateSpeech asks the model to score a speaking attempt and returns
	// its raw reply, which is expected (but not guaranteed) to contain JSON.
	EvaluateSpeech(ctx context.Context, req EvaluationRequest) (string, error)

	// SuggestTips asks the model for two improvement tips as a JSON object.
	SuggestTips(ctx context.Context, clarity, confidence int, mode Mode) (string, error)

	// AnalyzeAudio forwards raw audio for open-ended textual analysis.
	AnalyzeAudio(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Evaluator scores a speaking attempt. Implemented by the remote API client
// and by the local randomized evaluator.
type Evaluator interface {
	Evaluate(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error)
}

// LevelSource yields frequency-domain magnitude frames (0–255 per bin) from a
// live audio input.
type LevelSource interface {
	Frame(ctx context.Context) ([]float64, error)
	Close() error
}

// FaceDetector runs single-face detection over the current video frame.
type FaceDetector interface {
	Detect(ctx context.Context) (Detection, error)
	Close() error
}
