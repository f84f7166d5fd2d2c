// Package term is the line based input and output port a game session talks through.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ErrInterrupted is returned by reads aborted by an interrupt. The current
// prompt is abandoned and nothing the caller was doing has taken effect.
var ErrInterrupted = errors.New("input interrupted")

const clearScreen = "\033[H\033[2J"

// Term reads lines from and writes text to a single connection. One
// goroutine pumps input into a channel; every other method must be called
// from the goroutine that owns the session.
type Term struct {
	w io.Writer

	lines      chan string
	inputErr   chan error
	interrupts chan struct{}
	done       chan struct{}
	closeOnce  sync.Once

	typeDelay time.Duration
	clear     bool
}

type Option func(*Term)

// WithTypeDelay sets the per-character delay used by TypeOut.
func WithTypeDelay(d time.Duration) Option {
	return func(t *Term) {
		t.typeDelay = d
	}
}

// WithClearScreen enables ANSI screen clearing.
func WithClearScreen(enabled bool) Option {
	return func(t *Term) {
		t.clear = enabled
	}
}

// New starts reading lines from rw.
func New(rw io.ReadWriter, opts ...Option) *Term {
	t := &Term{
		w:          rw,
		lines:      make(chan string),
		inputErr:   make(chan error, 1),
		interrupts: make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}

	go t.pump(rw)
	return t
}

func (t *Term) pump(r io.Reader) {
	defer close(t.lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case t.lines <- strings.TrimRight(scanner.Text(), "\r"):
		case <-t.done:
			return
		}
	}
	t.inputErr <- scanner.Err()
}

// Close stops delivering input. It does not close the underlying connection.
func (t *Term) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

// Interrupt aborts the read in progress, or the next one if none is waiting.
func (t *Term) Interrupt() {
	select {
	case t.interrupts <- struct{}{}:
	default:
	}
}

// ReadLine waits for the next line of input, trimmed of surrounding space.
// It returns io.EOF once the input is closed.
func (t *Term) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.interrupts:
		return "", ErrInterrupted
	case line, ok := <-t.lines:
		if !ok {
			select {
			case err := <-t.inputErr:
				if err != nil {
					return "", err
				}
			default:
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// Write sends raw bytes to the connection.
func (t *Term) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// Printf writes formatted text. Write failures surface on the next read as a
// closed connection, so they are not reported here.
func (t *Term) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(t.w, format, a...)
}

// Println writes a line of text.
func (t *Term) Println(a ...any) {
	_, _ = fmt.Fprintln(t.w, a...)
}

// Clear clears the screen when clearing is enabled, otherwise prints a blank line.
func (t *Term) Clear() {
	if t.clear {
		_, _ = io.WriteString(t.w, clearScreen)
		return
	}
	t.Println()
}

// TypeOut writes text one character at a time. When skippable, pressing
// Enter or interrupting prints the remainder at once. The skip listener only
// flips a flag; it never writes.
func (t *Term) TypeOut(ctx context.Context, text string, skippable bool) error {
	if t.typeDelay <= 0 {
		_, err := io.WriteString(t.w, text)
		return err
	}

	var skip atomic.Bool
	done := make(chan struct{})
	var wg sync.WaitGroup
	if skippable {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case <-done:
			case <-t.interrupts:
				skip.Store(true)
			case <-t.lines:
				skip.Store(true)
			}
		}()
	}
	defer func() {
		close(done)
		wg.Wait()
	}()

	runes := []rune(text)
	for i, r := range runes {
		if skip.Load() {
			_, err := io.WriteString(t.w, string(runes[i:]))
			return err
		}
		if _, err := io.WriteString(t.w, string(r)); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.typeDelay):
		}
	}
	return nil
}
