package capture

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/orato-ai/orato/internal/domain"
	"github.com/orato-ai/orato/internal/observability"
)

// Prober reports whether the remote evaluation backend is reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

// Manager owns the registry of live capture sessions.
type Manager struct {
	remote domain.Evaluator // may be nil
	local  domain.Evaluator
	cfg    Config

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(remote, local domain.Evaluator, cfg Config) *Manager {
	return &Manager{
		remote:   remote,
		local:    local,
		cfg:      cfg.withDefaults(),
		sessions: make(map[string]*Session),
	}
}

// NewManagerWithProbe builds a Manager whose remote evaluator is dropped when
// the startup health probe fails; every evaluation then uses the local path
// until the process restarts.
func NewManagerWithProbe(ctx context.Context, remote domain.Evaluator, prober Prober, local domain.Evaluator, cfg Config) *Manager {
	if remote != nil && prober != nil {
		if err := prober.Probe(ctx); err != nil {
			observability.LoggerFromContext(ctx).Warn(
				"evaluation backend unreachable, sessions will score locally", "error", err)
			remote = nil
		}
	}
	return NewManager(remote, local, cfg)
}

// Start creates a session around the given media sources and launches its
// sampling loops. The session runs until Stop.
func (m *Manager) Start(ctx context.Context, levels domain.LevelSource, faces domain.FaceDetector) (*Session, error) {
	if levels == nil || faces == nil {
		return nil, fmt.Errorf("%w: both media sources are required", domain.ErrValidation)
	}

	s := &Session{
		id:     uuid.NewString(),
		cfg:    m.cfg,
		levels: levels,
		faces:  faces,
		remote: m.remote,
		local:  m.local,
	}
	s.start(ctx)

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	observability.LoggerFromContext(ctx).Info("capture session started", "session_id", s.id)
	return s, nil
}

// Get returns a live session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("capture session %q not found", id)
	}
	return s, nil
}

// Stop halts a session's loops, releases its sources, removes it from the
// registry, and returns the final state snapshot.
func (m *Manager) Stop(ctx context.Context, id string) (domain.CaptureState, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return domain.CaptureState{}, fmt.Errorf("capture session %q not found", id)
	}

	final := s.stop()
	observability.LoggerFromContext(ctx).Info("capture session stopped",
		"session_id", id, "evaluations", final.EvaluationCount)
	return final, nil
}
