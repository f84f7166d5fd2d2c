package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-survive/internal/messaging"
)

// NatsConfig controls the embedded server that carries the moment feed.
// Subscribers read survive.<session>.moments from it.
type NatsConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	// Port -1 picks a free port.
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
}

func (n *NatsConfig) validate() error {
	_, err := n.options()
	return err
}

func (n *NatsConfig) options() ([]messaging.NatsServerOpt, error) {
	el := errors.NewErrorList()

	var opts []messaging.NatsServerOpt
	if n.StartTimeout != "" {
		d, err := time.ParseDuration(n.StartTimeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing start_timeout: %w", err))
		} else {
			opts = append(opts, messaging.WithStartTimeout(d))
		}
	}
	if n.Port < -1 || n.Port > 65535 {
		el.Add(fmt.Errorf("nats port %d is out of range", n.Port))
	}
	if n.Host != "" || n.Port != 0 {
		opts = append(opts, messaging.WithListenAddr(n.Host, n.Port))
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (n *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	opts, err := n.options()
	if err != nil {
		return nil, err
	}
	return messaging.NewNatsServer(opts...)
}
