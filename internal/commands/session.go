package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/events"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/storage"
	"github.com/pixil98/go-survive/internal/term"
	"github.com/pixil98/go-survive/internal/world"
)

// MomentPublisher receives the notable moments of a session as they happen.
type MomentPublisher interface {
	PublishMoments(ctx context.Context, sessionID string, moments []game.Moment) error
}

// Config holds the per-game tunables.
type Config struct {
	TurnsPerDay int
	SkipIntro   bool
}

// Session is one playthrough: the live state and everything the handlers
// need to act on it. A session is driven by a single goroutine.
type Session struct {
	ID     string
	State  *game.State
	World  *world.World
	Events *events.Scheduler
	Term   *term.Term
	View   *display.Renderer
	Rand   game.Rand
	Saves  *storage.Saves
	Feed   MomentPublisher
	Config Config

	quit          bool
	lastEncounter string
}

type SessionOpt func(*Session)

func WithRand(r game.Rand) SessionOpt {
	return func(s *Session) {
		s.Rand = r
	}
}

func WithState(st *game.State) SessionOpt {
	return func(s *Session) {
		s.State = st
	}
}

func WithFeed(p MomentPublisher) SessionOpt {
	return func(s *Session) {
		s.Feed = p
	}
}

func WithConfig(c Config) SessionOpt {
	return func(s *Session) {
		s.Config = c
	}
}

func WithRenderer(v *display.Renderer) SessionOpt {
	return func(s *Session) {
		s.View = v
	}
}

func WithScheduler(sc *events.Scheduler) SessionOpt {
	return func(s *Session) {
		s.Events = sc
	}
}

// NewSession starts a brand new game on t.
func NewSession(t *term.Term, w *world.World, saves *storage.Saves, opts ...SessionOpt) *Session {
	s := &Session{
		ID:    uuid.NewString(),
		Term:  t,
		World: w,
		Saves: saves,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.State == nil {
		s.State = game.New()
	}
	if s.Rand == nil {
		s.Rand = game.NewRand(0)
	}
	if s.Events == nil {
		s.Events = events.NewScheduler()
	}
	if s.View == nil {
		s.View = display.New(t)
	}
	if s.Config.TurnsPerDay <= 0 {
		s.Config.TurnsPerDay = game.DefaultTurnsPerDay
	}
	s.placeSurvivor()
	return s
}

// Restart returns a fresh session on the same connection and services.
func (s *Session) Restart() *Session {
	return NewSession(s.Term, s.World, s.Saves,
		WithRand(s.Rand),
		WithFeed(s.Feed),
		WithConfig(s.Config),
		WithRenderer(s.View),
		WithScheduler(s.Events),
	)
}

// Location returns the survivor's current location.
func (s *Session) Location() (*world.Location, bool) {
	return s.World.Get(s.State.Location)
}

// Replace swaps in a loaded game wholesale.
func (s *Session) Replace(st *game.State) {
	s.State = st
	s.lastEncounter = ""
	s.placeSurvivor()
}

// placeSurvivor moves a survivor whose location is not part of this world
// to the first location that is.
func (s *Session) placeSurvivor() {
	if s.World.Has(s.State.Location) {
		return
	}
	all := s.World.All()
	if len(all) == 0 {
		return
	}
	slog.Warn("location not in world, relocating survivor",
		"session", s.ID, "location", s.State.Location, "to", all[0].Name)
	s.State.Location = all[0].Name
}

func (s *Session) Quit()          { s.quit = true }
func (s *Session) Quitting() bool { return s.quit }

// SetLastEncounter records an encounter summary to show above the next location screen.
func (s *Session) SetLastEncounter(summary string) {
	s.lastEncounter = summary
}

// TakeLastEncounter returns and clears the encounter summary.
func (s *Session) TakeLastEncounter() string {
	summary := s.lastEncounter
	s.lastEncounter = ""
	return summary
}

// Println writes a line to the survivor.
func (s *Session) Println(a ...any) {
	s.Term.Println(a...)
}

// Printf writes formatted text to the survivor.
func (s *Session) Printf(format string, a ...any) {
	s.Term.Printf(format, a...)
}

// Pause waits for the survivor to press Enter.
func (s *Session) Pause(ctx context.Context) error {
	return s.Term.Pause(ctx)
}

// Announce shows moments to the survivor and forwards them to the feed.
func (s *Session) Announce(ctx context.Context, moments []game.Moment) {
	if len(moments) == 0 {
		return
	}
	s.Println()
	s.Println(s.View.Moments(moments))

	if s.Feed == nil {
		return
	}
	if err := s.Feed.PublishMoments(ctx, s.ID, moments); err != nil {
		slog.WarnContext(ctx, "failed to publish moments", "session", s.ID, "error", err)
	}
}

// Gain awards experience and announces what it unlocked.
func (s *Session) Gain(ctx context.Context, amount int, skill game.Skill) {
	s.Announce(ctx, s.State.GainExperience(amount, skill))
}

// Pickup adds a found item and unlocks any hidden location it opens.
func (s *Session) Pickup(ctx context.Context, item string) error {
	if err := s.State.Pickup(item); err != nil {
		return err
	}
	s.Announce(ctx, s.unlockHidden(item))
	return nil
}

func (s *Session) unlockHidden(item string) []game.Moment {
	var moments []game.Moment
	here, _ := s.Location()
	for _, l := range s.World.HiddenUnlockedBy(item, s.State.DiscoveredLocations) {
		s.State.DiscoverLocation(l.Name)
		text := fmt.Sprintf("The %s unlocks access to: %s. This location is now available for travel!", item, l.Name)
		if here != nil && here.Town == l.Town {
			text += fmt.Sprintf(" You can now access it from nearby areas in %s.", l.Town)
		}
		moments = append(moments, game.Moment{Kind: game.MomentDiscovery, Name: l.Name, Text: text})
	}
	return moments
}
