package player

import (
	"context"
	"errors"
	"io"

	"github.com/pixil98/go-survive/internal/display"
)

// intro types out the title and opening story once per game. Enter skips
// to the end of each part.
func (p *Player) intro(ctx context.Context) error {
	s := p.sess
	if s.State.IntroShown || s.Config.SkipIntro {
		return nil
	}

	s.Term.Clear()
	s.Println("Press Enter at any time to skip the introduction...")
	s.Println()

	for _, text := range []string{display.TitleArt(), "\n" + display.IntroText()} {
		if err := s.Term.TypeOut(ctx, text, true); err != nil {
			return err
		}
	}

	s.State.IntroShown = true
	s.Println()
	return s.Pause(ctx)
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe)
}
