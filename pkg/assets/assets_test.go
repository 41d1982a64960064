package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteShared(t *testing.T) {
	outputDir := t.TempDir()
	rawBlocks := "const TERMINALS = {};\n\nconst STATIONS = [];"

	if err := WriteShared(outputDir, rawBlocks); err != nil {
		t.Fatalf("Expected shared assets to write, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "assets", "js", "stations-data.js"))
	if err != nil {
		t.Fatalf("Expected stations-data.js, got %v", err)
	}
	if string(data) != rawBlocks+"\n" {
		t.Errorf("Expected verbatim raw blocks, got %q", string(data))
	}

	mapCore, err := os.ReadFile(filepath.Join(outputDir, "assets", "js", "map-core.js"))
	if err != nil {
		t.Fatalf("Expected map-core.js, got %v", err)
	}
	for _, helper := range []string{"function initMap", "function getColor", "function createStationMarker", "function createTerminalMarker"} {
		if !strings.Contains(string(mapCore), helper) {
			t.Errorf("Expected map-core.js to define %q", helper)
		}
	}
}

func TestWriteSharedOverwrites(t *testing.T) {
	outputDir := t.TempDir()

	if err := WriteShared(outputDir, "old blocks"); err != nil {
		t.Fatalf("Expected first write to succeed, got %v", err)
	}
	if err := WriteShared(outputDir, "new blocks"); err != nil {
		t.Fatalf("Expected rerun to succeed, got %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(outputDir, "assets", "js", "stations-data.js"))
	if string(data) != "new blocks\n" {
		t.Errorf("Expected rerun to overwrite data script, got %q", string(data))
	}
}
