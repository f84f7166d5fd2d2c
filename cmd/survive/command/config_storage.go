package command

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-survive/internal/storage"
)

type SavesBackend string

const (
	SavesBackendFile  SavesBackend = "file"
	SavesBackendRedis SavesBackend = "redis"
)

const redisDialTimeout = 5 * time.Second

type SavesConfig struct {
	Backend  SavesBackend `json:"backend"`
	Path     string       `json:"path"`
	RedisURL string       `json:"redis_url"`
	Prefix   string       `json:"prefix"`
}

func (c *SavesConfig) validate() error {
	el := errors.NewErrorList()

	switch c.Backend {
	case SavesBackendFile, "":
		if c.Path == "" {
			el.Add(fmt.Errorf("saves path is required for the file backend"))
		}
	case SavesBackendRedis:
		if c.RedisURL == "" {
			el.Add(fmt.Errorf("saves redis_url is required for the redis backend"))
		}
	default:
		el.Add(fmt.Errorf("unknown saves backend %q", c.Backend))
	}

	return el.Err()
}

// BuildSaves opens the save backend. The closer, when not nil, releases it.
func (c *SavesConfig) BuildSaves(ctx context.Context) (*storage.Saves, io.Closer, error) {
	switch c.Backend {
	case SavesBackendRedis:
		ctx, cancel := context.WithTimeout(ctx, redisDialTimeout)
		defer cancel()
		st, err := storage.DialRedis(ctx, c.RedisURL, c.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("creating redis save store: %w", err)
		}
		return storage.NewSaves(st), st, nil
	default:
		st, err := storage.NewFileStore(c.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("creating file save store: %w", err)
		}
		return storage.NewSaves(st), nil, nil
	}
}
