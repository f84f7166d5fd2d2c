package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-survive/internal/commands"
	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/player"
	"github.com/pixil98/go-survive/internal/storage"
	"github.com/pixil98/go-survive/internal/term"
	"github.com/pixil98/go-survive/internal/world"
)

type GameConfig struct {
	Seed        int64  `json:"seed"`
	TurnsPerDay int    `json:"turns_per_day"`
	TypeDelay   string `json:"type_delay"`
	SkipIntro   bool   `json:"skip_intro"`
	Color       bool   `json:"color"`
}

func (c *GameConfig) validate() error {
	el := errors.NewErrorList()

	if c.TurnsPerDay < 0 {
		el.Add(fmt.Errorf("turns_per_day cannot be negative"))
	}
	if c.TypeDelay != "" {
		d, err := time.ParseDuration(c.TypeDelay)
		if err != nil {
			el.Add(fmt.Errorf("parsing type_delay: %w", err))
		} else if d < 0 {
			el.Add(fmt.Errorf("type_delay cannot be negative"))
		}
	}

	return el.Err()
}

// BuildPlayerManager wires the game settings into a manager that starts a
// game per connection.
func (c *GameConfig) BuildPlayerManager(w *world.World, saves *storage.Saves, feed commands.MomentPublisher, clear bool) (*player.PlayerManager, error) {
	termOpts := []term.Option{term.WithClearScreen(clear)}
	if c.TypeDelay != "" {
		d, err := time.ParseDuration(c.TypeDelay)
		if err != nil {
			return nil, fmt.Errorf("parsing type_delay: %w", err)
		}
		termOpts = append(termOpts, term.WithTypeDelay(d))
	}

	var viewOpts []display.Option
	if c.Color {
		viewOpts = append(viewOpts, display.WithColor())
	}

	turnsPerDay := c.TurnsPerDay
	if turnsPerDay == 0 {
		turnsPerDay = game.DefaultTurnsPerDay
	}

	opts := []player.PlayerManagerOpt{
		player.WithSeed(c.Seed),
		player.WithConfig(commands.Config{TurnsPerDay: turnsPerDay, SkipIntro: c.SkipIntro}),
		player.WithTermOptions(termOpts...),
		player.WithDisplayOptions(viewOpts...),
	}
	if feed != nil {
		opts = append(opts, player.WithFeed(feed))
	}

	return player.NewPlayerManager(commands.NewHandler(), w, saves, opts...), nil
}
