package world

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider supplies raw location records.
type Provider interface {
	Load() ([]*Location, error)
}

//go:embed data/world.yaml
var embeddedWorld []byte

// EmbeddedProvider serves the world shipped with the binary.
type EmbeddedProvider struct{}

func (EmbeddedProvider) Load() ([]*Location, error) {
	return decode(embeddedWorld, ".yaml")
}

// FileProvider reads locations from a yaml, yml or json file. When Path is a
// directory every such file below it is read and the results concatenated.
type FileProvider struct {
	Path string
}

func (p FileProvider) Load() ([]*Location, error) {
	info, err := os.Stat(p.Path)
	if err != nil {
		return nil, fmt.Errorf("reading world: %w", err)
	}
	if !info.IsDir() {
		return loadFile(p.Path)
	}

	var locs []*Location
	err = filepath.Walk(p.Path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || !supported(path) {
			return nil
		}
		found, err := loadFile(path)
		if err != nil {
			return err
		}
		locs = append(locs, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locs, nil
}

func supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func loadFile(path string) ([]*Location, error) {
	if !supported(path) {
		return nil, fmt.Errorf("unsupported world file %s", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	locs, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return locs, nil
}

func decode(data []byte, ext string) ([]*Location, error) {
	var locs []*Location
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &locs); err != nil {
			return nil, fmt.Errorf("unmarshalling json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &locs); err != nil {
			return nil, fmt.Errorf("unmarshalling yaml: %w", err)
		}
	}
	return locs, nil
}
