package domain_test

import (
	"testing"

	"github.com/orato-ai/orato/internal/domain"
)

func TestDeriveMode(t *testing.T) {
	cases := []struct {
		hasFace, hasVoice bool
		want              domain.Mode
	}{
		{true, true, domain.ModeFaceAndVoice},
		{false, true, domain.ModeVoiceOnly},
		{true, false, domain.ModeNoVoice},
		{false, false, domain.ModeNoVoice},
	}

	for _, c := range cases {
		got := domain.DeriveMode(c.hasFace, c.hasVoice)
		if got != c.want {
			t.Errorf("DeriveMode(%v, %v) = %q, want %q", c.hasFace, c.hasVoice, got, c.want)
		}
	}
}

func TestClampScoreIsTotal(t *testing.T) {
	for n := -50; n <= 50; n++ {
		got := domain.ClampScore(n)
		if got < 0 || got > 10 {
			t.Fatalf("ClampScore(%d) = %d, out of [0,10]", n, got)
		}
	}
	if domain.ClampScore(7) != 7 {
		t.Errorf("ClampScore(7) changed an in-range value")
	}
}

func TestEmotionForLevelBoundaries(t *testing.T) {
	cases := []struct {
		level float64
		want  domain.Emotion
	}{
		{0, domain.EmotionSilent},
		{3, domain.EmotionSilent},
		{3.01, domain.EmotionSoft},
		{10, domain.EmotionSoft},
		{10.5, domain.EmotionCalm},
		{25, domain.EmotionCalm},
		{26, domain.EmotionConfident},
		{40, domain.EmotionConfident},
		{41, domain.EmotionEnergetic},
		{60, domain.EmotionEnergetic},
	}

	for _, c := range cases {
		if got := domain.EmotionForLevel(c.level); got != c.want {
			t.Errorf("EmotionForLevel(%v) = %q, want %q", c.level, got, c.want)
		}
	}
}
