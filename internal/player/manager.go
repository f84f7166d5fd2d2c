package player

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/pixil98/go-survive/internal/commands"
	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/driver"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/storage"
	"github.com/pixil98/go-survive/internal/term"
	"github.com/pixil98/go-survive/internal/world"
)

// PlayerManager starts a game for every connection it is handed.
type PlayerManager struct {
	cmdHandler *commands.Handler
	world      *world.World
	saves      *storage.Saves
	feed       commands.MomentPublisher
	config     commands.Config
	seed       int64

	termOpts   []term.Option
	viewOpts   []display.Option
	driverOpts []driver.TurnDriverOpt

	mu      sync.Mutex
	players map[string]*Player
}

type PlayerManagerOpt func(*PlayerManager)

func WithFeed(f commands.MomentPublisher) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.feed = f
	}
}

func WithConfig(c commands.Config) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.config = c
	}
}

// WithSeed makes every session's dice deterministic.
func WithSeed(seed int64) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.seed = seed
	}
}

func WithTermOptions(opts ...term.Option) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.termOpts = append(m.termOpts, opts...)
	}
}

func WithDisplayOptions(opts ...display.Option) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.viewOpts = append(m.viewOpts, opts...)
	}
}

func WithDriverOptions(opts ...driver.TurnDriverOpt) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.driverOpts = append(m.driverOpts, opts...)
	}
}

func NewPlayerManager(cmd *commands.Handler, w *world.World, saves *storage.Saves, opts ...PlayerManagerOpt) *PlayerManager {
	pm := &PlayerManager{
		cmdHandler: cmd,
		world:      w,
		saves:      saves,
		players:    map[string]*Player{},
	}
	for _, opt := range opts {
		opt(pm)
	}
	return pm
}

func (m *PlayerManager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Active is how many games are being played.
func (m *PlayerManager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.players)
}

// RunSession plays a game over conn until the survivor leaves.
func (m *PlayerManager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	t := term.New(conn, m.termOpts...)
	defer t.Close()
	return m.RunTerm(ctx, t)
}

// TermOptions are the options RunSession builds its terminals with.
func (m *PlayerManager) TermOptions() []term.Option {
	return m.termOpts
}

// RunTerm plays a game on a terminal the caller owns, so it can deliver
// interrupts of its own.
func (m *PlayerManager) RunTerm(ctx context.Context, t *term.Term) error {
	sess := commands.NewSession(t, m.world, m.saves,
		commands.WithRand(game.NewRand(m.seed)),
		commands.WithFeed(m.feed),
		commands.WithConfig(m.config),
		commands.WithRenderer(display.New(t, m.viewOpts...)),
	)
	p := NewPlayer(sess, m.cmdHandler, m.driverOpts...)

	m.mu.Lock()
	m.players[sess.ID] = p
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		delete(m.players, sess.ID)
		m.mu.Unlock()
	}()

	slog.InfoContext(ctx, "session started", "session", sess.ID)
	return p.Play(ctx)
}
