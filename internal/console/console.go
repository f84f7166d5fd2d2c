// Package console plays a single game on the local terminal, either as a
// plain line based session on stdin and stdout or as a full-screen TUI.
package console

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pixil98/go-survive/internal/player"
	"github.com/pixil98/go-survive/internal/term"
)

type readWriter struct {
	io.Reader
	io.Writer
}

// Console runs one session on a local reader and writer. SIGINT interrupts
// the current prompt instead of ending the process.
type Console struct {
	pm  *player.PlayerManager
	in  io.Reader
	out io.Writer

	signals chan os.Signal
}

type ConsoleOpt func(*Console)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) ConsoleOpt {
	return func(c *Console) {
		c.in = in
		c.out = out
	}
}

// WithSignals supplies the channel interrupts arrive on instead of
// subscribing to SIGINT.
func WithSignals(ch chan os.Signal) ConsoleOpt {
	return func(c *Console) {
		c.signals = ch
	}
}

func NewConsole(pm *player.PlayerManager, opts ...ConsoleOpt) *Console {
	c := &Console{
		pm:  pm,
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start plays until the survivor quits, input closes or ctx ends.
func (c *Console) Start(ctx context.Context) error {
	t := term.New(readWriter{Reader: c.in, Writer: c.out}, c.pm.TermOptions()...)
	defer t.Close()

	sigs := c.signals
	if sigs == nil {
		sigs = make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		defer signal.Stop(sigs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go forwardInterrupts(ctx, sigs, t)

	if err := c.pm.RunTerm(ctx, t); err != nil {
		return err
	}
	slog.InfoContext(ctx, "console session finished")
	return nil
}

func forwardInterrupts(ctx context.Context, sigs <-chan os.Signal, t *term.Term) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigs:
			t.Interrupt()
		}
	}
}
