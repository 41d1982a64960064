package registry

import (
	"fmt"

	"github.com/paulcager/osgridref"
	"github.com/rosscodg/railreach/pkg/railreach"
)

// FallbackLocation derives a WGS84 coordinate from the terminal's OS grid
// reference, for terminals the source document carries no record for.
func (m *TerminalMeta) FallbackLocation() (railreach.Location, bool) {
	if m.GridReference.Easting == "" || m.GridReference.Northing == "" {
		return railreach.Location{}, false
	}

	gridRef, err := osgridref.ParseOsGridRef(fmt.Sprintf("%s,%s", m.GridReference.Easting, m.GridReference.Northing))
	if err != nil {
		return railreach.Location{}, false
	}

	lat, lon := gridRef.ToLatLon()

	return railreach.Location{Latitude: lat, Longitude: lon}, true
}
