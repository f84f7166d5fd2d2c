package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-survive/internal/game"
)

// Summary describes a save for a selection list.
type Summary struct {
	Slot     string
	Location string
	Day      int
	Health   int
	SavedAt  string
	// Err is set when the save could not be read.
	Err error
}

// Saves writes and reads whole games through a SlotStore.
type Saves struct {
	store SlotStore
	now   func() time.Time
}

// NewSaves creates the save service.
func NewSaves(store SlotStore) *Saves {
	return &Saves{store: store, now: time.Now}
}

// Save writes s to slot, replacing any previous save there.
func (sv *Saves) Save(ctx context.Context, slot string, s *game.State) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	data, err := json.MarshalIndent(Capture(s, sv.now()), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding save: %w", game.ErrIO, err)
	}
	if err := sv.store.Write(ctx, slot, data); err != nil {
		return err
	}

	slog.Info("game saved", "slot", slot, "location", s.Location, "turn", s.TurnCount)
	return nil
}

// Load reads the game in slot. It returns a new state and never touches the
// running one, so a failed load leaves the current game exactly as it was.
func (sv *Saves) Load(ctx context.Context, slot string) (*game.State, error) {
	data, err := sv.store.Read(ctx, slot)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("save %q: %w", slot, err)
	}

	slog.Info("game loaded", "slot", slot, "location", s.Location)
	return s, nil
}

// List summarises every save. Unreadable saves are listed with Err set.
func (sv *Saves) List(ctx context.Context) ([]Summary, error) {
	slots, err := sv.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(slots))
	for _, slot := range slots {
		sum := Summary{Slot: slot}
		data, err := sv.store.Read(ctx, slot)
		if err == nil {
			snap := defaultSnapshot()
			err = json.Unmarshal(data, &snap)
			sum.Location = snap.CurrentLocation
			sum.Day = snap.DaysSurvived
			sum.Health = int(snap.Health)
			sum.SavedAt = snap.SaveTime
		}
		sum.Err = err
		out = append(out, sum)
	}
	return out, nil
}
