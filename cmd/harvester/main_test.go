// cmd/harvester/main_test.go
package main

import (
	"os"
	"testing"

	"github.com/valeran/harvester/internal/config"
	"github.com/valeran/harvester/internal/harvest"
)

func TestHasFlag(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"harvester", "run", "config.yaml", "--verbose"}

	if !hasFlag("--verbose") {
		t.Error("Expected --verbose flag to be detected")
	}
	if hasFlag("-v") {
		t.Error("Did not expect -v flag to be detected")
	}
}

func TestHarvestByMode_UnsupportedMode(t *testing.T) {
	cfg := &config.HarvestConfig{Mode: "directory-of-directories"}

	_, _, err := harvestByMode(cfg, harvest.NewEngine(nil, nil, nil))
	if err == nil {
		t.Fatal("Expected error for unsupported mode")
	}
}

func TestHarvestByMode_CatalogHeaders(t *testing.T) {
	cfg := &config.HarvestConfig{Mode: config.ModeCatalog}

	headers, records, err := harvestByMode(cfg, harvest.NewEngine(nil, nil, nil))
	if err != nil {
		t.Fatalf("Empty catalog run failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Expected no records from an empty page set, got %d", len(records))
	}

	want := []string{"id", "url", "image", "name", "price"}
	if len(headers) != len(want) {
		t.Fatalf("Expected %d headers, got %v", len(want), headers)
	}
	for i, h := range want {
		if headers[i] != h {
			t.Errorf("Header %d: expected %q, got %q", i, h, headers[i])
		}
	}
}
