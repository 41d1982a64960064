// Package assets writes the script files shared by every generated spoke
// page: the station/terminal data constants and the Leaflet map helpers.
package assets

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

//go:embed data/map-core.js
var mapCoreJs []byte

// WriteShared emits assets/js/stations-data.js and assets/js/map-core.js
// under outputDir, overwriting any previous run.
//
// The data script is the raw block text from extraction, written verbatim so
// the browser sees exactly the data the generator parsed.
func WriteShared(outputDir string, rawBlocks string) error {
	assetsDir := filepath.Join(outputDir, "assets", "js")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return err
	}

	dataPath := filepath.Join(assetsDir, "stations-data.js")
	if err := os.WriteFile(dataPath, []byte(rawBlocks+"\n"), 0644); err != nil {
		return err
	}
	log.Info().Str("path", dataPath).Msg("Created data script")

	mapCorePath := filepath.Join(assetsDir, "map-core.js")
	if err := os.WriteFile(mapCorePath, mapCoreJs, 0644); err != nil {
		return err
	}
	log.Info().Str("path", mapCorePath).Msg("Created map helper script")

	return nil
}
