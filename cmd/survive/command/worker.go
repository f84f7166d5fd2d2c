package command

import (
	"context"
	"fmt"
	"io"

	"github.com/pixil98/go-service"

	"github.com/pixil98/go-survive/internal/commands"
	"github.com/pixil98/go-survive/internal/console"
	"github.com/pixil98/go-survive/internal/listener"
	"github.com/pixil98/go-survive/internal/messaging"
)

func BuildWorkers(config any) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	workers := service.WorkerList{}

	saves, closer, err := cfg.Saves.BuildSaves(context.Background())
	if err != nil {
		return nil, err
	}
	if closer != nil {
		workers["saves"] = closerWorker{c: closer}
	}

	// Moments only leave the process when the feed is enabled.
	var feed commands.MomentPublisher
	if cfg.Nats.Enabled {
		srv, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = srv
		feed = messaging.NewMomentFeed(srv)
	}

	pm, err := cfg.Game.BuildPlayerManager(cfg.World.BuildWorld(), saves, feed, cfg.Mode == ModeConsole)
	if err != nil {
		return nil, fmt.Errorf("creating player manager: %w", err)
	}

	switch cfg.Mode {
	case ModeConsole:
		workers["console"] = console.NewConsole(pm)
	case ModeTUI:
		workers["tui"] = console.NewTUI(pm)
	case ModeServer:
		cm := listener.NewConnectionManager(pm, listener.WithMaxSessions(cfg.MaxSessions))
		listeners := make(service.WorkerList, len(cfg.Listeners))
		for i, l := range cfg.Listeners {
			w, err := l.BuildListener(cm)
			if err != nil {
				return nil, fmt.Errorf("creating listener %d: %w", i, err)
			}
			listeners[fmt.Sprintf("%s-%d", l.Protocol, l.Port)] = w
		}
		workers["listeners"] = &listeners
		workers["players"] = pm
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	return workers, nil
}

// closerWorker holds a resource open until the other workers stop.
type closerWorker struct {
	c io.Closer
}

func (w closerWorker) Start(ctx context.Context) error {
	<-ctx.Done()
	return w.c.Close()
}
