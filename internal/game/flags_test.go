package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestFlags_Set(t *testing.T) {
	tests := map[string]struct {
		initial Flags
		key     string
		value   any
		expRaw  string
		expErr  bool
	}{
		"set on nil map": {
			initial: nil,
			key:     "met_radio_operator",
			value:   true,
			expRaw:  "true",
		},
		"overwrite existing": {
			initial: Flags{"bell_rung": []byte("false")},
			key:     "bell_rung",
			value:   true,
			expRaw:  "true",
		},
		"set struct value": {
			initial: Flags{},
			key:     "note",
			value:   struct{ Page int }{3},
			expRaw:  `{"Page":3}`,
		},
		"marshal error with channel": {
			initial: Flags{},
			key:     "bad",
			value:   make(chan int),
			expErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := tt.initial
			err := f.Set(tt.key, tt.value)

			if tt.expErr {
				testutil.AssertErrorContains(t, err, "story flag")
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "raw", string(f[tt.key]), tt.expRaw)
		})
	}
}

func TestFlags_Get(t *testing.T) {
	f := Flags{}
	if err := f.Set("visits", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var n int
	found, err := f.Get("visits", &n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", found, true)
	testutil.AssertEqual(t, "value", n, 4)

	found, err = f.Get("missing", &n)
	testutil.AssertEqual(t, "missing found", found, false)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := Flags{"bad": []byte(`{"broken`)}
	var out map[string]string
	found, err = bad.Get("bad", &out)
	testutil.AssertEqual(t, "bad found", found, true)
	testutil.AssertErrorContains(t, err, "story flag")
}

func TestFlags_Count(t *testing.T) {
	tests := map[string]struct {
		flags Flags
		exp   int
	}{
		"nil map":      {flags: nil, exp: 0},
		"set":          {flags: Flags{"k": []byte("3")}, exp: 3},
		"not a number": {flags: Flags{"k": []byte(`"yes"`)}, exp: 0},
		"other key":    {flags: Flags{"j": []byte("2")}, exp: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "count", tt.flags.Count("k"), tt.exp)
		})
	}
}

func TestFlags_Bump(t *testing.T) {
	var f Flags
	key := AscentFlag("Riverside Church Bell Tower")

	for want := 1; want <= 3; want++ {
		n, err := f.Bump(key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "count", n, want)
	}
	testutil.AssertEqual(t, "raw", string(f[key]), "3")
}
