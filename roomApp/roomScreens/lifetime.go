package roomScreens

import (
	"context"
	"sync"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
)

// Directory is the one call a screen needs from the room API.
type Directory interface {
	GetRooms(ctx context.Context) ([]roomStructs.Room, error)
}

type Phase int

const (
	Loading Phase = iota
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "loading"
	}
}

// lifetime ties a screen's single fetch to the screen. After dispose the
// fetch context is cancelled and a late result is never committed.
type lifetime struct {
	mu       sync.Mutex
	mounted  bool
	disposed bool
	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
}

// start hands out the fetch context on the first mount only.
func (l *lifetime) start(parent context.Context) (context.Context, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mounted || l.disposed {
		return nil, false
	}
	l.mounted = true
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	return ctx, true
}

// commit applies a state change under the lock if the screen is still alive.
func (l *lifetime) commit(apply func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disposed {
		return false
	}
	apply()
	return true
}

func (l *lifetime) settle() {
	l.doneOnce.Do(func() { close(l.done) })
}

// Done is closed once the fetch has settled, or on dispose if the screen
// was never mounted.
func (l *lifetime) Done() <-chan struct{} {
	return l.done
}

// Alive reports whether the screen has not been disposed.
func (l *lifetime) Alive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.disposed
}

func (l *lifetime) Dispose() {
	l.mu.Lock()
	l.disposed = true
	mounted := l.mounted
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if !mounted {
		l.settle()
	}
}
