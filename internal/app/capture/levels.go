package capture

// Audio-level derivation from a frequency-domain magnitude frame.
// Magnitudes are 0–255 per bin; the output lives on the 0–60 scale the
// emotion bands are defined over.

const (
	maxBinMagnitude = 255.0
	levelScaleMax   = 60.0
	peakWeight      = 0.7
)

// LevelFromFrame maps a magnitude frame to the 0–60 level scale using
// final = max(avgScaled, peakWeight × peakScaled). An empty frame is silence.
func LevelFromFrame(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}

	var sum, peak float64
	for _, m := range frame {
		sum += m
		if m > peak {
			peak = m
		}
	}
	avg := sum / float64(len(frame))

	avgScaled := avg / maxBinMagnitude * levelScaleMax
	peakScaled := peak / maxBinMagnitude * levelScaleMax

	if weighted := peakWeight * peakScaled; weighted > avgScaled {
		return weighted
	}
	return avgScaled
}
