package messaging

import (
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
)

// NatsServerOpt configures the embedded moment server. Options run in order
// and the first error stops NewNatsServer.
type NatsServerOpt func(*NatsServer) error

// WithStartTimeout bounds how long Start waits for the server to accept clients.
func WithStartTimeout(d time.Duration) NatsServerOpt {
	return func(n *NatsServer) error {
		if d <= 0 {
			return fmt.Errorf("start timeout must be positive, got %s", d)
		}
		n.startupTimeout = d
		return nil
	}
}

// WithListenAddr sets where subscribers connect. An empty host keeps loopback,
// port 0 keeps the NATS default and port -1 picks a free port.
func WithListenAddr(host string, port int) NatsServerOpt {
	return func(n *NatsServer) error {
		if port < server.RANDOM_PORT || port > 65535 {
			return fmt.Errorf("nats port %d is out of range", port)
		}
		if host != "" {
			n.host = host
		}
		n.port = port
		return nil
	}
}

// WithRandomPort listens on a free port; ClientURL reports which.
func WithRandomPort() NatsServerOpt {
	return WithListenAddr("", server.RANDOM_PORT)
}

// WithClientName names the server's own publishing connection.
func WithClientName(name string) NatsServerOpt {
	return func(n *NatsServer) error {
		if name == "" {
			return fmt.Errorf("client name cannot be empty")
		}
		n.clientName = name
		return nil
	}
}
