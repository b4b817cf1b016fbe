package impl

import (
	"sync"

	domainerrors "dietlog/internal/domain/errors"
)

// SubmitGate lets one submission per form key run at a time.
type SubmitGate struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmitGate() *SubmitGate {
	return &SubmitGate{inFlight: make(map[string]struct{})}
}

// Acquire returns ErrSubmitInProgress while the same key is held.
func (g *SubmitGate) Acquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return nil, domainerrors.ErrSubmitInProgress
	}
	g.inFlight[key] = struct{}{}

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()

		delete(g.inFlight, key)
	}, nil
}
