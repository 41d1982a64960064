package spoke

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateAll(t *testing.T) {
	outputDir := t.TempDir()
	generator := testGenerator(t, outputDir)

	if err := generator.GenerateAll(); err != nil {
		t.Fatalf("Expected generation to succeed, got %v", err)
	}

	expectedFiles := []string{
		filepath.Join("assets", "js", "stations-data.js"),
		filepath.Join("assets", "js", "map-core.js"),
		filepath.Join("terminals", "kings-cross", "index.html"),
		// Victoria is not in the dataset; its page comes from the grid fallback
		filepath.Join("terminals", "victoria", "index.html"),
		filepath.Join("stations", "cambridge", "index.html"),
		filepath.Join("stations", "reading", "index.html"),
		filepath.Join("stations", "brighton", "index.html"),
	}
	for _, file := range expectedFiles {
		if _, err := os.Stat(filepath.Join(outputDir, file)); err != nil {
			t.Errorf("Expected %s to exist, got %v", file, err)
		}
	}

	// Configured stations absent from the dataset are skipped without output
	if _, err := os.Stat(filepath.Join(outputDir, "stations", "oxford")); !os.IsNotExist(err) {
		t.Error("Expected no output for a station missing from the dataset")
	}
}

func TestGenerateAllIdempotent(t *testing.T) {
	outputDir := t.TempDir()
	generator := testGenerator(t, outputDir)

	if err := generator.GenerateAll(); err != nil {
		t.Fatalf("Expected first run to succeed, got %v", err)
	}

	terminalPage := filepath.Join(outputDir, "terminals", "kings-cross", "index.html")
	stationPage := filepath.Join(outputDir, "stations", "cambridge", "index.html")

	firstTerminal, _ := os.ReadFile(terminalPage)
	firstStation, _ := os.ReadFile(stationPage)

	if err := generator.GenerateAll(); err != nil {
		t.Fatalf("Expected rerun to succeed, got %v", err)
	}

	secondTerminal, _ := os.ReadFile(terminalPage)
	secondStation, _ := os.ReadFile(stationPage)

	if !bytes.Equal(firstTerminal, secondTerminal) {
		t.Error("Expected identical terminal page bytes on rerun")
	}
	if !bytes.Equal(firstStation, secondStation) {
		t.Error("Expected identical station page bytes on rerun")
	}
}

func TestGenerateStationPageMissingWritesNothing(t *testing.T) {
	outputDir := t.TempDir()
	generator := testGenerator(t, outputDir)

	if err := generator.GenerateStationPage("Oxford", "oxford"); err != ErrStationNotFound {
		t.Fatalf("Expected ErrStationNotFound, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "stations", "oxford")); !os.IsNotExist(err) {
		t.Error("Expected no file or directory for the skipped station")
	}
}
