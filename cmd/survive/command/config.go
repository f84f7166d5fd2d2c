package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Mode string

const (
	ModeConsole Mode = "console"
	ModeTUI     Mode = "tui"
	ModeServer  Mode = "server"
)

func (m Mode) valid() bool {
	switch m {
	case ModeConsole, ModeTUI, ModeServer:
		return true
	default:
		return false
	}
}

// Interactive reports whether the game owns the local terminal.
func (m Mode) Interactive() bool {
	return m == ModeConsole || m == ModeTUI
}

type Config struct {
	Mode      Mode             `json:"mode"`
	World     WorldConfig      `json:"world"`
	Saves     SavesConfig      `json:"saves"`
	Game      GameConfig       `json:"game"`
	Listeners []ListenerConfig `json:"listeners"`
	// MaxSessions caps concurrent games in server mode. Zero is unlimited.
	MaxSessions int        `json:"max_sessions"`
	Nats        NatsConfig `json:"nats"`
	Log         LogConfig  `json:"log"`
}

// NewConfig returns the values a config file starts from: a single game on
// the console with saves in ./saves.
func NewConfig() *Config {
	return &Config{
		Mode:  ModeConsole,
		Saves: SavesConfig{Backend: SavesBackendFile, Path: "saves"},
		Game:  GameConfig{TypeDelay: "30ms"},
	}
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if !c.Mode.valid() {
		el.Add(fmt.Errorf("mode must be one of console, tui or server, got %q", c.Mode))
	}
	if c.Mode == ModeServer && len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("server mode needs at least one listener"))
	}
	if c.MaxSessions < 0 {
		el.Add(fmt.Errorf("max_sessions cannot be negative"))
	}

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.World.validate())
	el.Add(c.Saves.validate())
	el.Add(c.Game.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Log.validate())

	return el.Err()
}
