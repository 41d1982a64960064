package railreach

import "sort"

// Station is a feeder town station. Journeys preserve the order they
// appeared in the source document, one entry per terminal code.
type Station struct {
	Name     string `json:"name"`
	Location Location
	Journeys []Journey `json:"journeys"`
}

// JourneyTo returns this station's journey to the given terminal code, or
// nil when the station has no service to it.
func (s *Station) JourneyTo(terminalCode string) *Journey {
	for index, journey := range s.Journeys {
		if journey.TerminalCode == terminalCode {
			return &s.Journeys[index]
		}
	}

	return nil
}

// JourneysByDuration returns the station's journeys ordered ascending by
// minutes, ties keeping source-document order.
func (s *Station) JourneysByDuration() []Journey {
	journeys := make([]Journey, len(s.Journeys))
	copy(journeys, s.Journeys)

	sort.SliceStable(journeys, func(i, j int) bool {
		return journeys[i].Mins < journeys[j].Mins
	})

	return journeys
}
