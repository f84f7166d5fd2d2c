package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pixil98/go-survive/internal/combat"
	"github.com/pixil98/go-survive/internal/commands"
	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/driver"
	"github.com/pixil98/go-survive/internal/events"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/term"
	"github.com/pixil98/go-survive/internal/world"
)

// Player runs the turn loop for one session.
type Player struct {
	sess       *commands.Session
	cmdHandler *commands.Handler
	driverOpts []driver.TurnDriverOpt
}

func NewPlayer(sess *commands.Session, cmd *commands.Handler, opts ...driver.TurnDriverOpt) *Player {
	return &Player{
		sess:       sess,
		cmdHandler: cmd,
		driverOpts: opts,
	}
}

// Session is the game currently being played. It changes on restart.
func (p *Player) Session() *commands.Session {
	return p.sess
}

// Play shows the intro and runs turns until the survivor quits, declines a
// new game after dying or the context ends. Each turn runs: game over check,
// survival decay, fatigue collapse, world events, zombie encounter and then
// the survivor's command.
func (p *Player) Play(ctx context.Context) error {
	if err := p.intro(ctx); err != nil {
		return ignoreEnd(err)
	}

	d := driver.NewTurnDriver([]driver.Phase{
		driver.PhaseFunc(p.checkGameOver),
		driver.PhaseFunc(p.decay),
		driver.PhaseFunc(p.checkCollapse),
		driver.PhaseFunc(p.checkEvents),
		driver.PhaseFunc(p.checkEncounter),
		driver.PhaseFunc(p.command),
	}, p.driverOpts...)

	err := d.Start(ctx)
	slog.InfoContext(ctx, "session ended",
		"session", p.sess.ID, "turns", d.Turns(), "days", p.sess.State.DaysSurvived)
	return ignoreEnd(err)
}

// ignoreEnd treats a closed connection or cancelled context as a normal exit.
func ignoreEnd(err error) error {
	if errors.Is(err, context.Canceled) || isEOF(err) {
		return nil
	}
	return err
}

func (p *Player) checkGameOver(ctx context.Context) error {
	s := p.sess
	over, cause := s.State.GameOver()
	if !over {
		return nil
	}

	slog.InfoContext(ctx, "survivor died", "session", s.ID, "cause", string(cause), "days", s.State.DaysSurvived)

	s.Term.Clear()
	text, err := display.GameOver(s.State, cause)
	if err != nil {
		return err
	}
	s.Println(text)
	s.Println("What would you like to do?")
	s.Println("[1] Start a new game")
	s.Println("[2] Quit game")

	choice, err := s.Term.Prompt(ctx, "\nEnter your choice: ", term.WithValidator(term.NumberInRange(1, 2)))
	if err != nil {
		return err
	}
	if n, _ := strconv.Atoi(choice); n != 1 {
		return driver.ErrStop
	}

	p.sess = s.Restart()
	if err := p.intro(ctx); err != nil {
		return err
	}
	return driver.ErrEndTurn
}

func (p *Player) decay(ctx context.Context) error {
	s := p.sess
	s.State.Decay(1)
	s.Announce(ctx, s.State.SyncDays(s.Config.TurnsPerDay))
	return nil
}

func (p *Player) checkCollapse(ctx context.Context) error {
	s := p.sess
	here, ok := s.Location()
	if !ok {
		return fmt.Errorf("survivor is at unknown location %q", s.State.Location)
	}

	res := s.State.CheckFatigueCollapse(here.Surroundings(), s.Rand)
	if !res.Collapsed {
		return nil
	}
	s.Announce(ctx, []game.Moment{res.Moment()})
	if err := s.Pause(ctx); err != nil {
		return err
	}
	return driver.ErrEndTurn
}

func (p *Player) checkEvents(ctx context.Context) error {
	s := p.sess
	e := s.Events.Check(s.State, s.Rand)
	if e == nil {
		return nil
	}

	slog.InfoContext(ctx, "world event", "session", s.ID, "event", e.ID)
	s.Println()
	for _, line := range events.Present(s.State, *e) {
		s.Println(s.View.Warn(line))
	}
	return s.Pause(ctx)
}

func (p *Player) checkEncounter(ctx context.Context) error {
	s := p.sess
	here, ok := s.Location()
	if !ok {
		return nil
	}

	chance := events.EncounterChance(s.State, here.ZombieChanceOr(world.DefaultEncounterChance))
	z := combat.Roll(s.Rand, here.Name, chance)
	if z == nil {
		return nil
	}
	if err := commands.Fight(ctx, s, z); err != nil {
		return err
	}
	if over, _ := s.State.GameOver(); over {
		return driver.ErrEndTurn
	}
	return nil
}

// command shows the location and carries out one command. Input that could
// not be understood and interrupted prompts do not use up the turn.
func (p *Player) command(ctx context.Context) error {
	for {
		s := p.sess
		if err := p.showLocation(); err != nil {
			return err
		}

		line, err := p.readChoice(ctx)
		if errors.Is(err, term.ErrInterrupted) {
			continue
		}
		if err != nil {
			return err
		}

		err = p.cmdHandler.Dispatch(ctx, s, line)
		var userErr *commands.UserError
		switch {
		case errors.Is(err, term.ErrInterrupted):
			continue
		case errors.As(err, &userErr):
			s.Println(s.View.Bad(userErr.Message))
			if pErr := s.Pause(ctx); pErr != nil {
				return pErr
			}
			if errors.Is(err, game.ErrInput) {
				continue
			}
		case err != nil:
			return fmt.Errorf("command failed: %w", err)
		}

		if s.Quitting() {
			return driver.ErrStop
		}
		return nil
	}
}

func (p *Player) readChoice(ctx context.Context) (string, error) {
	for {
		line, err := p.sess.Term.Prompt(ctx, "\nEnter your choice: ")
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		p.sess.Println("Please enter a valid choice.")
	}
}

func (p *Player) showLocation() error {
	s := p.sess
	here, ok := s.Location()
	if !ok {
		return fmt.Errorf("survivor is at unknown location %q", s.State.Location)
	}

	s.Term.Clear()
	if summary := s.TakeLastEncounter(); summary != "" {
		s.Println(display.Rule(60))
		s.Println("  " + summary)
		s.Println(display.Rule(60))
		s.Println()
	}

	s.Println(s.View.Heading(here.Name))
	s.Println()
	s.Println(display.Wrap(here.Description))
	s.Println()

	s.Println(s.View.StatusBar(s.State.Vitals))
	if w := s.View.Warnings(s.State.Vitals.Warnings()); w != "" {
		s.Println(w)
	}

	s.Println("What do you want to do?")
	for i, a := range here.Actions {
		s.Printf("[%d] %s\n", i+1, a.Name)
	}
	s.Println()
	s.Println("[0] Global Commands (status, inventory, save, load, help, quit)")
	return nil
}
