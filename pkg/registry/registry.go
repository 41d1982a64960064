package registry

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/terminals.yaml
var terminalsYaml []byte

//go:embed data/stations.yaml
var stationsYaml []byte

// TerminalMeta is the static site configuration for one London terminal.
type TerminalMeta struct {
	Code      string
	Slug      string
	Name      string
	Operators string

	GridReference GridReference
}

type GridReference struct {
	Easting  string
	Northing string
}

// StationEntry maps a configured station name to its spoke page slug.
type StationEntry struct {
	Name string
	Slug string
}

// Registry holds the fixed terminal and station configuration, loaded once
// at startup and read-only thereafter.
type Registry struct {
	Terminals []TerminalMeta
	Stations  []StationEntry

	terminalIndex map[string]int
	stationSlugs  map[string]string
}

// Load decodes the embedded registry definitions.
func Load() (*Registry, error) {
	var terminalsDocument struct {
		Terminals []TerminalMeta
	}
	if err := yaml.NewDecoder(bytes.NewReader(terminalsYaml)).Decode(&terminalsDocument); err != nil {
		return nil, fmt.Errorf("failed to decode terminals registry: %w", err)
	}

	var stationsDocument struct {
		Stations []StationEntry
	}
	if err := yaml.NewDecoder(bytes.NewReader(stationsYaml)).Decode(&stationsDocument); err != nil {
		return nil, fmt.Errorf("failed to decode stations registry: %w", err)
	}

	registry := &Registry{
		Terminals: terminalsDocument.Terminals,
		Stations:  stationsDocument.Stations,

		terminalIndex: map[string]int{},
		stationSlugs:  map[string]string{},
	}

	for index, terminal := range registry.Terminals {
		registry.terminalIndex[terminal.Code] = index
	}
	for _, station := range registry.Stations {
		registry.stationSlugs[station.Name] = station.Slug
	}

	return registry, nil
}

// Terminal returns the configured metadata for a terminal code, or nil.
func (r *Registry) Terminal(code string) *TerminalMeta {
	if index, ok := r.terminalIndex[code]; ok {
		return &r.Terminals[index]
	}

	return nil
}

// StationSlug returns the spoke page slug for a station name, if one is
// configured.
func (r *Registry) StationSlug(name string) (string, bool) {
	slug, ok := r.stationSlugs[name]

	return slug, ok
}
