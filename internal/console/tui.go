package console

import (
	"context"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/sync/errgroup"

	"github.com/pixil98/go-survive/internal/player"
	"github.com/pixil98/go-survive/internal/term"
)

// TUI runs one session in a full-screen terminal UI: a scrolling story pane
// above a single line input. Ctrl+C interrupts the current prompt and Esc
// leaves the game.
type TUI struct {
	pm     *player.PlayerManager
	screen tcell.Screen
}

type TUIOpt func(*TUI)

// WithScreen draws on s instead of the real terminal.
func WithScreen(s tcell.Screen) TUIOpt {
	return func(t *TUI) {
		t.screen = s
	}
}

func NewTUI(pm *player.PlayerManager, opts ...TUIOpt) *TUI {
	t := &TUI{pm: pm}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start shows the UI and plays until the survivor quits or ctx ends.
func (u *TUI) Start(ctx context.Context) error {
	app := tview.NewApplication()
	if u.screen != nil {
		app.SetScreen(u.screen)
	}

	// Plain text only: menus are full of "[1]" style labels that would
	// otherwise read as color tags.
	story := tview.NewTextView().
		SetDynamicColors(false).
		SetScrollable(true).
		SetWordWrap(true).
		SetChangedFunc(func() { app.Draw() })
	story.SetBorder(true).SetTitle(" Zombie Survival ")
	story.ScrollToEnd()

	pr, pw := io.Pipe()
	input := tview.NewInputField().SetLabel("> ")
	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		line := input.GetText()
		input.SetText("")
		go func() { _, _ = io.WriteString(pw, line+"\n") }()
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(story, 0, 1, false).
		AddItem(input, 1, 0, true)

	t := term.New(readWriter{Reader: pr, Writer: story},
		append(u.pm.TermOptions(), term.WithClearScreen(false))...)
	defer t.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			t.Interrupt()
			return nil
		case tcell.KeyEscape:
			cancel()
			return nil
		}
		return ev
	})

	// The game, the screen and the watcher stop together: whichever ends
	// first cancels the others.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return u.pm.RunTerm(gctx, t)
	})
	g.Go(func() error {
		<-gctx.Done()
		app.Stop()
		return pw.CloseWithError(io.EOF)
	})
	g.Go(func() error {
		defer cancel()
		return app.SetRoot(layout, true).SetFocus(input).Run()
	})

	err := g.Wait()
	slog.InfoContext(ctx, "tui session finished")
	return err
}
