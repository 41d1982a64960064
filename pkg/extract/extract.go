package extract

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/rosscodg/railreach/pkg/railreach"
	"github.com/rs/zerolog/log"
)

// ErrBlocksNotFound means the source document does not contain the two
// embedded literal blocks. Nothing can be generated without them.
var ErrBlocksNotFound = errors.New("embedded TERMINALS and STATIONS blocks not found in source document")

var (
	blocksRegex = regexp.MustCompile(`(?s)(const TERMINALS = \{.*?\};).*?(const STATIONS = \[.*?\];)`)

	terminalRegex = regexp.MustCompile(`(\w+):\s*\{\s*name:\s*"([^"]+)",\s*lat:\s*([\d.-]+),\s*lng:\s*([\d.-]+)\s*\}`)
	stationRegex  = regexp.MustCompile(`\{\s*name:\s*"([^"]+)",\s*lat:\s*([\d.-]+),\s*lng:\s*([\d.-]+),\s*journeys:\s*\{((?:[^{}]|\{[^}]*\})*)\}\s*\}`)
	journeyRegex  = regexp.MustCompile(`(\w+):\s*\{\s*mins:\s*(\d+),\s*direct:\s*(true|false)\s*\}`)
)

// ParseSourceDocument locates the two embedded literal blocks in the source
// document text and parses them into a Dataset. The raw block text is kept
// byte-for-byte so the emitted data asset cannot drift from what was parsed.
func ParseSourceDocument(source string) (*railreach.Dataset, error) {
	blocksMatch := blocksRegex.FindStringSubmatch(source)
	if blocksMatch == nil {
		return nil, ErrBlocksNotFound
	}

	terminalsBlock := blocksMatch[1]
	stationsBlock := blocksMatch[2]

	dataset := &railreach.Dataset{
		Terminals: map[string]*railreach.Terminal{},
		RawBlocks: terminalsBlock + "\n\n" + stationsBlock,
	}

	for _, terminalMatch := range terminalRegex.FindAllStringSubmatch(terminalsBlock, -1) {
		dataset.Terminals[terminalMatch[1]] = &railreach.Terminal{
			Code: terminalMatch[1],
			Name: terminalMatch[2],
			Location: railreach.Location{
				Latitude:  parseFloat(terminalMatch[3]),
				Longitude: parseFloat(terminalMatch[4]),
			},
		}
	}

	for _, stationMatch := range stationRegex.FindAllStringSubmatch(stationsBlock, -1) {
		station := &railreach.Station{
			Name: stationMatch[1],
			Location: railreach.Location{
				Latitude:  parseFloat(stationMatch[2]),
				Longitude: parseFloat(stationMatch[3]),
			},
		}

		for _, journeyMatch := range journeyRegex.FindAllStringSubmatch(stationMatch[4], -1) {
			mins, _ := strconv.Atoi(journeyMatch[2])

			station.Journeys = append(station.Journeys, railreach.Journey{
				TerminalCode: journeyMatch[1],
				Mins:         mins,
				Direct:       journeyMatch[3] == "true",
			})
		}

		dataset.Stations = append(dataset.Stations, station)
	}

	log.Debug().
		Int("terminals", len(dataset.Terminals)).
		Int("stations", len(dataset.Stations)).
		Msg("Parsed source document")

	return dataset, nil
}

func parseFloat(value string) float64 {
	parsed, _ := strconv.ParseFloat(value, 64)

	return parsed
}
