// Package spoke renders the static terminal and station pages for the
// RailReach site from one parsed dataset.
package spoke

import (
	"fmt"
	"strings"

	"github.com/rosscodg/railreach/pkg/assets"
	"github.com/rosscodg/railreach/pkg/railreach"
	"github.com/rosscodg/railreach/pkg/registry"
	"github.com/rs/zerolog/log"
)

type Generator struct {
	Dataset   *railreach.Dataset
	Registry  *registry.Registry
	OutputDir string
}

// GenerateAll writes the shared script assets and every terminal and
// station page. Stations (or terminals) with no usable data are skipped
// with a warning; everything else still generates.
func (g *Generator) GenerateAll() error {
	if err := assets.WriteShared(g.OutputDir, g.Dataset.RawBlocks); err != nil {
		return fmt.Errorf("failed to write shared assets: %w", err)
	}

	for index := range g.Registry.Terminals {
		terminalMeta := &g.Registry.Terminals[index]

		if err := g.GenerateTerminalPage(terminalMeta); err != nil {
			if err == ErrTerminalNotFound {
				log.Warn().Str("terminal", terminalMeta.Code).Msg("Terminal has no record in dataset and no grid reference, skipping")
				continue
			}

			return err
		}
	}

	for _, stationEntry := range g.Registry.Stations {
		if err := g.GenerateStationPage(stationEntry.Name, stationEntry.Slug); err != nil {
			if err == ErrStationNotFound {
				log.Warn().Str("station", stationEntry.Name).Msg("Station not found in dataset, skipping")
				continue
			}

			return err
		}
	}

	return nil
}

// terminalNav renders the links to every terminal page, marking the current
// one when currentCode matches.
func (g *Generator) terminalNav(currentCode string) string {
	var links []string

	for _, terminalMeta := range g.Registry.Terminals {
		if terminalMeta.Code == currentCode {
			links = append(links, fmt.Sprintf(`<a class="current" href="/terminals/%s/">%s</a>`, terminalMeta.Slug, terminalMeta.Name))
		} else {
			links = append(links, fmt.Sprintf(`<a href="/terminals/%s/">%s</a>`, terminalMeta.Slug, terminalMeta.Name))
		}
	}

	return strings.Join(links, "\n")
}

// terminalName returns the configured display name for a terminal code,
// falling back to the code itself.
func (g *Generator) terminalName(code string) string {
	if terminalMeta := g.Registry.Terminal(code); terminalMeta != nil {
		return terminalMeta.Name
	}

	return code
}
