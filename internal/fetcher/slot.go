package fetcher

import (
	"context"
	"sync"

	"github.com/StounhandJ/vidsaver/internal/media"
)

// Slot is the single "current download" token: starting a new attempt
// cancels the previous one, and progress callbacks of superseded attempts
// are dropped instead of racing with the current one for the same transient
// path.
type Slot struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func NewSlot() *Slot {
	return &Slot{}
}

// Start claims the slot for a new attempt. It returns a context derived
// from parent that is canceled when a later attempt starts, and a progress
// wrapper that goes silent once the attempt is superseded.
func (s *Slot) Start(parent context.Context, onProgress ProgressFunc) (context.Context, ProgressFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	s.gen++
	gen := s.gen

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	wrapped := func(p media.Progress) {
		if onProgress == nil {
			return
		}

		s.mu.Lock()
		stale := s.gen != gen
		s.mu.Unlock()

		if !stale {
			onProgress(p)
		}
	}

	return ctx, wrapped
}
