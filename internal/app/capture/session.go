// Package capture runs live capture sessions: an audio-level sampling loop
// and a face-detection polling loop feeding a shared state snapshot, plus
// remote-first evaluation with a transparent local fallback.
package capture

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orato-ai/orato/internal/domain"
	"github.com/orato-ai/orato/internal/observability"
)

// Config controls the sampling cadence of a session's two loops.
type Config struct {
	// LevelInterval is the audio sampling period (display-refresh cadence).
	LevelInterval time.Duration
	// FaceInterval is the face-detection polling period.
	FaceInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.LevelInterval <= 0 {
		c.LevelInterval = 16 * time.Millisecond
	}
	if c.FaceInterval <= 0 {
		c.FaceInterval = 100 * time.Millisecond
	}
	return c
}

// Session is one live capture session. Both loops check the session context
// before waiting for the next tick and again before applying a completed
// sample, so in-flight work never mutates state after Stop.
type Session struct {
	id     string
	cfg    Config
	levels domain.LevelSource
	faces  domain.FaceDetector
	remote domain.Evaluator // may be nil (no backend reachable at startup)
	local  domain.Evaluator

	cancel context.CancelFunc
	group  *errgroup.Group

	mu       sync.Mutex
	state    domain.CaptureState
	lastFace domain.Detection

	stopOnce sync.Once
}

func (s *Session) ID() string { return s.id }

func (s *Session) start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	s.group = g

	s.mu.Lock()
	s.state.IsRecording = true
	s.state.CurrentEmotion = domain.EmotionNeutral
	s.mu.Unlock()

	g.Go(func() error { return s.levelLoop(ctx) })
	g.Go(func() error { return s.faceLoop(ctx) })
}

// levelLoop samples a magnitude frame each tick, derives the audio level and
// emotion band, and flips voiceDetected. Last sample wins; no history.
func (s *Session) levelLoop(ctx context.Context) error {
	log := observability.LoggerFromContext(ctx).With("session_id", s.id)
	ticker := time.NewTicker(s.cfg.LevelInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		frame, err := s.levels.Frame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("audio frame read failed", "error", err)
			continue
		}
		level := LevelFromFrame(frame)

		if ctx.Err() != nil {
			return nil
		}
		s.mu.Lock()
		s.state.CurrentLevel = level
		s.state.VoiceDetected = level > domain.LevelSilent
		s.state.CurrentEmotion = domain.EmotionForLevel(level)
		s.mu.Unlock()
	}
}

// faceLoop runs one detection per tick. Detector failures are logged and do
// not stop the loop.
func (s *Session) faceLoop(ctx context.Context) error {
	log := observability.LoggerFromContext(ctx).With("session_id", s.id)
	ticker := time.NewTicker(s.cfg.FaceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		det, err := s.faces.Detect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("face detection failed", "error", err)
			continue
		}

		if ctx.Err() != nil {
			return nil
		}
		s.mu.Lock()
		s.state.FaceDetected = det.Found
		s.lastFace = det
		s.mu.Unlock()
	}
}

// State returns a snapshot of the live capture state.
func (s *Session) State() domain.CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastDetection returns the most recent face-detector result.
func (s *Session) LastDetection() domain.Detection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFace
}

// Evaluate scores the current attempt. The remote evaluator is tried first;
// on any error the local evaluator serves this single call (the next call
// re-attempts the remote path). Totals accumulate across evaluations within
// the session.
func (s *Session) Evaluate(ctx context.Context, transcript string, features map[string]any) (*domain.EvaluationResult, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", s.id)

	s.mu.Lock()
	req := domain.EvaluationRequest{
		Transcript:    transcript,
		HasFace:       s.state.FaceDetected,
		HasVoice:      s.state.VoiceDetected,
		AudioFeatures: features,
	}
	s.mu.Unlock()

	var (
		res *domain.EvaluationResult
		err error
	)
	if s.remote != nil {
		res, err = s.remote.Evaluate(ctx, req)
	}
	if s.remote == nil || err != nil {
		if err != nil {
			log.Warn("remote evaluation failed, using local evaluator", "error", err)
		}
		res, err = s.local.Evaluate(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.state.EvaluationCount++
	s.state.TotalClarity += res.Clarity
	s.state.TotalConfidence += res.Confidence
	s.mu.Unlock()

	return res, nil
}

// stop cancels both loops, waits for them, and releases the media sources.
// Safe to call more than once.
func (s *Session) stop() domain.CaptureState {
	s.stopOnce.Do(func() {
		s.cancel()
		_ = s.group.Wait()

		_ = s.levels.Close()
		_ = s.faces.Close()

		s.mu.Lock()
		s.state.IsRecording = false
		s.mu.Unlock()
	})
	return s.State()
}
