package domain

// Mode describes which input modalities were available for an evaluation.
// It is derived from the two detection booleans, never stored.
type Mode string

const (
	ModeFaceAndVoice Mode = "Human Face + Voice"
	ModeVoiceOnly    Mode = "Only Voice"
	ModeNoVoice      Mode = "No Voice"
)

// DeriveMode maps the two detection booleans to an evaluation mode.
// A face with no voice is not a distinct case: it collapses to ModeNoVoice.
func DeriveMode(hasFace, hasVoice bool) Mode {
	switch {
	case hasFace && hasVoice:
		return ModeFaceAndVoice
	case hasVoice:
		return ModeVoiceOnly
	default:
		return ModeNoVoice
	}
}

// Emotion is the band a speaker's audio level falls into.
type Emotion string

const (
	EmotionNeutral   Emotion = "Neutral" // idle, nothing sampled yet
	EmotionSilent    Emotion = "Silent"
	EmotionSoft      Emotion = "Soft"
	EmotionCalm      Emotion = "Calm"
	EmotionConfident Emotion = "Confident"
	EmotionEnergetic Emotion = "Energetic"
)

// Audio-level thresholds on the 0–60 scale separating the emotion bands.
const (
	LevelSilent    = 3.0
	LevelSoft      = 10.0
	LevelCalm      = 25.0
	LevelConfident = 40.0
)

// EmotionForLevel returns the emotion band for an audio level on the 0–60
// scale. Levels at or below LevelSilent also mean no voice was detected.
func EmotionForLevel(level float64) Emotion {
	switch {
	case level <= LevelSilent:
		return EmotionSilent
	case level <= LevelSoft:
		return EmotionSoft
	case level <= LevelCalm:
		return EmotionCalm
	case level <= LevelConfident:
		return EmotionConfident
	default:
		return EmotionEnergetic
	}
}

// EvaluationRequest is the input bundle for one evaluation. It is built fresh
// per call and immutable once sent.
type EvaluationRequest struct {
	Transcript    string
	HasFace       bool
	HasVoice      bool
	AudioFeatures map[string]any
}

// EvaluationResult holds the scored outcome of a speaking attempt.
// Both scores are integers clamped to [0,10] after modality adjustment.
type EvaluationResult struct {
	Clarity            int
	Confidence         int
	ClarityFeedback    string
	ConfidenceFeedback string
	Analysis           string
	Mode               Mode
}

// Tips is a pair of improvement suggestions.
type Tips struct {
	ClarityTip    string
	ConfidenceTip string
}

// CaptureState is the live state of one capture session. It is mutated
// continuously by the session's sampling loops and accumulates evaluation
// totals until the session stops.
type CaptureState struct {
	IsRecording     bool
	FaceDetected    bool
	VoiceDetected   bool
	CurrentLevel    float64
	CurrentEmotion  Emotion
	EvaluationCount int
	TotalClarity    int
	TotalConfidence int
}

// Point is a pixel coordinate in a video frame.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned bounding box in a video frame.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Detection is the outcome of one face-detector pass over a frame.
type Detection struct {
	Found     bool
	Box       Rect
	Landmarks []Point
}

// ClampScore clamps a score to the [0,10] integer range.
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
