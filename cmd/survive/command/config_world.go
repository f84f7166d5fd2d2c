package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-survive/internal/world"
)

type WorldConfig struct {
	// Path is a location file or a directory of them. Empty uses the built-in world.
	Path string `json:"path"`
}

func (c *WorldConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("world path: %w", err)
	}
	return nil
}

func (c *WorldConfig) provider() world.Provider {
	if c.Path == "" {
		return world.EmbeddedProvider{}
	}
	return world.FileProvider{Path: c.Path}
}

// BuildWorld loads the world. Broken world data is logged and the game falls
// back to the default single location world rather than refusing to start.
func (c *WorldConfig) BuildWorld() *world.World {
	w, err := world.Load(c.provider())
	if err != nil {
		slog.Warn("world data unusable, playing the default world", "path", c.Path, "error", err)
	}
	return w
}
