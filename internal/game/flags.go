package game

import (
	"encoding/json"
	"fmt"
)

// Flags hold free-form story progress keyed by name. Values stay raw JSON so
// a save keeps flags this build does not read.
type Flags map[string]json.RawMessage

// Set stores v under key.
func (f *Flags) Set(key string, v any) error {
	if *f == nil {
		*f = Flags{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: story flag %q: %w", ErrValidation, key, err)
	}
	(*f)[key] = b
	return nil
}

// Get decodes the flag at key into out and reports whether it was set.
func (f Flags) Get(key string, out any) (bool, error) {
	raw, ok := f[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("%w: story flag %q: %w", ErrValidation, key, err)
	}
	return true, nil
}

// Count reads a counter flag. Missing or non-numeric flags count as zero.
func (f Flags) Count(key string) int {
	var n int
	if _, err := f.Get(key, &n); err != nil {
		return 0
	}
	return n
}

// Bump increments a counter flag and returns the new count.
func (f *Flags) Bump(key string) (int, error) {
	n := f.Count(key) + 1
	if err := f.Set(key, n); err != nil {
		return 0, err
	}
	return n, nil
}

// AscentFlag names the counter of climbs into a hidden location.
func AscentFlag(location string) string {
	return "ascents:" + location
}
