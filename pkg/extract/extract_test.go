package extract

import (
	"errors"
	"strings"
	"testing"
)

const sampleSource = `<!DOCTYPE html>
<html>
<head><title>RailReach</title></head>
<body>
<script>
const TERMINALS = {
  KGX: { name: "Kings Cross", lat: 51.5308, lng: -0.1238 },
  PAD: { name: "Paddington", lat: 51.5154, lng: -0.1755 }
};

const zoomLevel = 8;

const STATIONS = [
  { name: "Cambridge", lat: 52.1943, lng: 0.1371, journeys: {
    KGX: { mins: 48, direct: true },
    PAD: { mins: 95, direct: false }
  } },
  { name: "Reading", lat: 51.4587, lng: -0.9719, journeys: {
    PAD: { mins: 23, direct: true }
  } }
];
</script>
</body>
</html>`

func TestParseSourceDocument(t *testing.T) {
	dataset, err := ParseSourceDocument(sampleSource)
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}

	if len(dataset.Terminals) != 2 {
		t.Errorf("Expected 2 terminals, got %d", len(dataset.Terminals))
	}
	if len(dataset.Stations) != 2 {
		t.Errorf("Expected 2 stations, got %d", len(dataset.Stations))
	}

	kingsCross := dataset.Terminals["KGX"]
	if kingsCross == nil {
		t.Fatal("Expected KGX terminal")
	}
	if kingsCross.Name != "Kings Cross" {
		t.Errorf("Expected name Kings Cross, got %s", kingsCross.Name)
	}
	if kingsCross.Location.Latitude != 51.5308 || kingsCross.Location.Longitude != -0.1238 {
		t.Errorf("Unexpected KGX coordinate: %+v", kingsCross.Location)
	}

	cambridge := dataset.Stations[0]
	if cambridge.Name != "Cambridge" {
		t.Errorf("Expected Cambridge first, got %s", cambridge.Name)
	}
	if len(cambridge.Journeys) != 2 {
		t.Fatalf("Expected 2 journeys for Cambridge, got %d", len(cambridge.Journeys))
	}

	journey := cambridge.Journeys[0]
	if journey.TerminalCode != "KGX" || journey.Mins != 48 || !journey.Direct {
		t.Errorf("Unexpected first Cambridge journey: %+v", journey)
	}

	journey = cambridge.Journeys[1]
	if journey.TerminalCode != "PAD" || journey.Mins != 95 || journey.Direct {
		t.Errorf("Unexpected second Cambridge journey: %+v", journey)
	}
}

func TestParseSourceDocumentRawBlocks(t *testing.T) {
	dataset, err := ParseSourceDocument(sampleSource)
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}

	if !strings.HasPrefix(dataset.RawBlocks, "const TERMINALS = {") {
		t.Errorf("Expected raw blocks to start with the terminals literal, got %q", dataset.RawBlocks[:30])
	}
	if !strings.HasSuffix(dataset.RawBlocks, "];") {
		t.Errorf("Expected raw blocks to end with the stations literal")
	}

	// Original formatting is preserved verbatim
	if !strings.Contains(dataset.RawBlocks, `  KGX: { name: "Kings Cross", lat: 51.5308, lng: -0.1238 },`) {
		t.Error("Expected terminal record text byte-for-byte in raw blocks")
	}

	// Text between the two blocks is not part of the span
	if strings.Contains(dataset.RawBlocks, "zoomLevel") {
		t.Error("Expected intervening script text to be excluded from raw blocks")
	}
}

func TestParseSourceDocumentBlockSeparation(t *testing.T) {
	documents := map[string]string{
		"adjacent":    `const TERMINALS = { KGX: { name: "Kings Cross", lat: 51.5308, lng: -0.1238 } };const STATIONS = [];`,
		"code buffer": "const TERMINALS = { KGX: { name: \"Kings Cross\", lat: 51.5308, lng: -0.1238 } };\nlet legend = initLegend();\nconst STATIONS = [];",
	}

	for label, document := range documents {
		dataset, err := ParseSourceDocument(document)
		if err != nil {
			t.Errorf("Expected %s blocks to parse, got %v", label, err)
			continue
		}
		if len(dataset.Terminals) != 1 {
			t.Errorf("Expected 1 terminal for %s blocks, got %d", label, len(dataset.Terminals))
		}
	}
}

func TestParseSourceDocumentMissingBlocks(t *testing.T) {
	documents := []string{
		"<html><body>no data here</body></html>",
		"const TERMINALS = { KGX: { name: \"Kings Cross\", lat: 51.5, lng: -0.1 } };",
		"const STATIONS = [];",
	}

	for _, document := range documents {
		_, err := ParseSourceDocument(document)
		if !errors.Is(err, ErrBlocksNotFound) {
			t.Errorf("Expected ErrBlocksNotFound, got %v", err)
		}
	}
}
