package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-survive/internal/player"
)

const shelterFull = "The shelter is full. Try again later.\n"

// ConnectionManager hands every accepted connection a game of its own.
type ConnectionManager struct {
	pm *player.PlayerManager
	// slots bounds concurrent games; nil means unlimited.
	slots chan struct{}
}

type ConnectionManagerOpt func(*ConnectionManager)

// WithMaxSessions limits how many games run at once. Zero means no limit.
func WithMaxSessions(n int) ConnectionManagerOpt {
	return func(m *ConnectionManager) {
		if n > 0 {
			m.slots = make(chan struct{}, n)
		}
	}
}

func NewConnectionManager(pm *player.PlayerManager, opts ...ConnectionManagerOpt) *ConnectionManager {
	m := &ConnectionManager{
		pm: pm,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AcceptConnection plays a game over conn, or turns the survivor away when
// every slot is taken.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if m.slots != nil {
		select {
		case m.slots <- struct{}{}:
			defer func() { <-m.slots }()
		default:
			slog.InfoContext(ctx, "turning away survivor, no free slots", "max", cap(m.slots))
			_, _ = io.WriteString(conn, shelterFull)
			return
		}
	}

	if err := m.pm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "survivor session", "error", err)
	}
}
