package listener

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-survive/internal/commands"
	"github.com/pixil98/go-survive/internal/player"
	"github.com/pixil98/go-survive/internal/storage"
	"github.com/pixil98/go-survive/internal/world"
)

func newTestManager(t *testing.T) *player.PlayerManager {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return player.NewPlayerManager(commands.NewHandler(), world.Default(), storage.NewSaves(store),
		player.WithSeed(1),
		player.WithConfig(commands.Config{SkipIntro: true}),
	)
}

type bufConn struct {
	in  *strings.Reader
	out bytes.Buffer
}

func (c *bufConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *bufConn) Write(p []byte) (int, error) { return c.out.Write(p) }

func TestConnectionManager_AcceptConnection(t *testing.T) {
	tests := map[string]struct {
		max      int
		occupied int
		expFull  bool
	}{
		"unlimited": {},
		"free slot": {
			max:      2,
			occupied: 1,
		},
		"shelter full": {
			max:      1,
			occupied: 1,
			expFull:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pm := newTestManager(t)
			cm := NewConnectionManager(pm, WithMaxSessions(tt.max))
			for range tt.occupied {
				cm.slots <- struct{}{}
			}

			conn := &bufConn{in: strings.NewReader("")}
			cm.AcceptConnection(context.Background(), conn)

			testutil.AssertEqual(t, "turned away", conn.out.String() == shelterFull, tt.expFull)
			if !tt.expFull && conn.out.Len() == 0 {
				t.Error("expected the game to write its first turn")
			}
			testutil.AssertEqual(t, "slots released", len(cm.slots), tt.occupied)
			testutil.AssertEqual(t, "active", pm.Active(), 0)
		})
	}
}
