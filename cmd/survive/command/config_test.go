package command

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pixil98/go-service"
	"github.com/pixil98/go-testutil"
)

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Config)
		expErr string
	}{
		"defaults": {
			mutate: func(c *Config) {},
		},
		"unknown mode": {
			mutate: func(c *Config) { c.Mode = "web" },
			expErr: `mode must be one of console, tui or server, got "web"`,
		},
		"server without listeners": {
			mutate: func(c *Config) { c.Mode = ModeServer },
			expErr: "server mode needs at least one listener",
		},
		"server with telnet": {
			mutate: func(c *Config) {
				c.Mode = ModeServer
				c.Listeners = []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000}}
			},
		},
		"listener without port": {
			mutate: func(c *Config) {
				c.Mode = ModeServer
				c.Listeners = []ListenerConfig{{Protocol: ListenerTypeTelnet}}
			},
			expErr: "listener 0: port must be set to a positive integer",
		},
		"host key on telnet": {
			mutate: func(c *Config) {
				c.Mode = ModeServer
				c.Listeners = []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000, HostKeyPath: "key"}}
			},
			expErr: "host_key_path only applies to ssh listeners",
		},
		"negative max sessions": {
			mutate: func(c *Config) { c.MaxSessions = -1 },
			expErr: "max_sessions cannot be negative",
		},
		"missing world": {
			mutate: func(c *Config) { c.World.Path = filepath.Join(t.TempDir(), "nowhere.yaml") },
			expErr: "world path:",
		},
		"redis without url": {
			mutate: func(c *Config) { c.Saves = SavesConfig{Backend: SavesBackendRedis} },
			expErr: "saves redis_url is required for the redis backend",
		},
		"unknown backend": {
			mutate: func(c *Config) { c.Saves.Backend = "s3" },
			expErr: `unknown saves backend "s3"`,
		},
		"bad type delay": {
			mutate: func(c *Config) { c.Game.TypeDelay = "fast" },
			expErr: "parsing type_delay",
		},
		"negative turns per day": {
			mutate: func(c *Config) { c.Game.TurnsPerDay = -1 },
			expErr: "turns_per_day cannot be negative",
		},
		"bad nats timeout": {
			mutate: func(c *Config) { c.Nats.StartTimeout = "soon" },
			expErr: "parsing start_timeout",
		},
		"nats port out of range": {
			mutate: func(c *Config) { c.Nats.Port = 70000 },
			expErr: "nats port 70000 is out of range",
		},
		"log path in missing directory": {
			mutate: func(c *Config) { c.Log.Path = filepath.Join(t.TempDir(), "missing", "survive.log") },
			expErr: "log path:",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_SampleFiles(t *testing.T) {
	tests := map[string]struct {
		file    string
		expMode Mode
	}{
		"console": {file: "console.json", expMode: ModeConsole},
		"server":  {file: "server.json", expMode: ModeServer},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			raw, err := os.ReadFile(filepath.Join("..", "..", "..", "configs", tt.file))
			if err != nil {
				t.Fatalf("reading config: %v", err)
			}
			cfg := NewConfig()
			if err := json.Unmarshal(raw, cfg); err != nil {
				t.Fatalf("decoding config: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "mode", cfg.Mode, tt.expMode)
		})
	}
}

func TestListenerType_UnmarshalText(t *testing.T) {
	var lt ListenerType
	if err := lt.UnmarshalText([]byte("ssh")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "type", lt.String(), "ssh")

	err := lt.UnmarshalText([]byte("gopher"))
	testutil.AssertErrorContains(t, err, "unknown listener type: gopher")
}

func TestBuildWorkers(t *testing.T) {
	tests := map[string]struct {
		mutate     func(t *testing.T, c *Config)
		expWorkers string
		expErr     string
	}{
		"console": {
			mutate:     func(t *testing.T, c *Config) {},
			expWorkers: "console",
		},
		"tui": {
			mutate:     func(t *testing.T, c *Config) { c.Mode = ModeTUI },
			expWorkers: "tui",
		},
		"server with feed": {
			mutate: func(t *testing.T, c *Config) {
				c.Mode = ModeServer
				c.Listeners = []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000}}
				c.Nats = NatsConfig{Enabled: true, Port: -1}
			},
			expWorkers: "listeners,nats,players",
		},
		"redis saves": {
			mutate: func(t *testing.T, c *Config) {
				mr := miniredis.RunT(t)
				c.Saves = SavesConfig{Backend: SavesBackendRedis, RedisURL: "redis://" + mr.Addr(), Prefix: "test"}
			},
			expWorkers: "console,saves",
		},
		"bad redis url": {
			mutate: func(t *testing.T, c *Config) {
				c.Saves = SavesConfig{Backend: SavesBackendRedis, RedisURL: "not a url"}
			},
			expErr: "creating redis save store",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Saves.Path = t.TempDir()
			tt.mutate(t, cfg)

			workers, err := BuildWorkers(cfg)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "workers", workerNames(workers), tt.expWorkers)
		})
	}
}

func TestBuildWorkers_WrongConfig(t *testing.T) {
	_, err := BuildWorkers("not a config")
	testutil.AssertErrorContains(t, err, "unable to cast config")
}

func workerNames(wl service.WorkerList) string {
	names := make([]string, 0, len(wl))
	for name := range wl {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func TestListenerConfig_HostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	cl := &ListenerConfig{Protocol: ListenerTypeSSH, Port: 2222, HostKeyPath: path}

	first, err := cl.hostKey()
	if err != nil {
		t.Fatalf("generating host key: %v", err)
	}
	second, err := cl.hostKey()
	if err != nil {
		t.Fatalf("reloading host key: %v", err)
	}
	testutil.AssertEqual(t, "same identity",
		string(second.PublicKey().Marshal()), string(first.PublicKey().Marshal()))

	if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
		t.Fatalf("writing key: %v", err)
	}
	_, err = cl.hostKey()
	testutil.AssertErrorContains(t, err, "parsing host key")
}
