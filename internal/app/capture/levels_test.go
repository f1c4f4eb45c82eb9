package capture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orato-ai/orato/internal/app/capture"
)

func TestLevelFromFrameEmptyIsSilence(t *testing.T) {
	assert.Zero(t, capture.LevelFromFrame(nil))
	assert.Zero(t, capture.LevelFromFrame([]float64{}))
}

func TestLevelFromFrameUniformSignalUsesAverage(t *testing.T) {
	// avg == peak, so avgScaled > 0.7*peakScaled and the average wins.
	frame := []float64{127.5, 127.5, 127.5, 127.5}
	got := capture.LevelFromFrame(frame)
	assert.InDelta(t, 30.0, got, 0.001) // 127.5/255*60
}

func TestLevelFromFrameSpikySignalUsesWeightedPeak(t *testing.T) {
	// One loud bin among silence: weighted peak dominates the tiny average.
	frame := []float64{0, 0, 0, 255}
	got := capture.LevelFromFrame(frame)
	assert.InDelta(t, 42.0, got, 0.001) // 0.7 * 60
}

func TestLevelFromFrameFullScale(t *testing.T) {
	frame := []float64{255, 255}
	assert.InDelta(t, 60.0, capture.LevelFromFrame(frame), 0.001)
}
