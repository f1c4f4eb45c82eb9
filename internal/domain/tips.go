package domain

// Canonical feedback vocabulary. The feedback service's fallback and the
// local evaluator pick from the same lists so degraded modes stay consistent.

// ClarityTips are generic clarity suggestions, picked uniformly at random.
var ClarityTips = []string{
	"Slow down slightly and articulate the ends of your words.",
	"Pause briefly between ideas instead of using filler words.",
	"Keep sentences short; one idea per sentence lands better.",
	"Emphasize key words to give your speech a clear rhythm.",
	"Open with your main point, then add supporting detail.",
	"Record yourself and listen for words you tend to swallow.",
}

// ConfidenceTips are generic confidence suggestions, picked uniformly at random.
var ConfidenceTips = []string{
	"Keep your chin level and look straight into the camera.",
	"Take one deep breath before you start speaking.",
	"Smile briefly at the start; it relaxes your voice.",
	"Sit upright and keep your shoulders loose.",
	"Project your voice as if speaking to the back of a room.",
	"Hold eye contact with the lens for a full sentence at a time.",
}

// Fixed sentences used when a modality was missing.
const (
	TipNoVoiceClarity    = "Make sure your microphone is working and speak clearly into it."
	TipNoVoiceConfidence = "Enable your camera and microphone so your delivery can be assessed."
	TipVoiceOnlyCamera   = "Turn on your camera so facial expression can factor into your confidence score."

	FeedbackNoVoiceClarity      = "No speech was detected, so clarity could not be assessed."
	FeedbackNoVoiceConfidence   = "No face or voice was detected, so confidence could not be assessed."
	FeedbackVoiceOnlyConfidence = "Confidence was scored from voice alone; enable your camera for a full assessment."
)
