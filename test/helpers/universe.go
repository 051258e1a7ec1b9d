package helpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// UniverseDocument returns a valid universe document as a generic map so tests
// can delete or retype individual fields
func UniverseDocument() map[string]interface{} {
	return map[string]interface{}{
		"name":               "Andromeda",
		"galaxy":             "1",
		"system":             "499",
		"warFleetSpeed":      1.0,
		"peacefulFleetSpeed": 1.0,
		"holdingFleetSpeed":  1.0,
		"galaxies":           9,
		"fleet2debris":       0.3,
		"def2debris":         0.0,
		"deutCosts":          1.0,
		"startDM":            0,
		"bonusFields":        30,
		"economySpeed":       1.0,
		"researchSpeed":      1.0,
		"ACS":                true,
		"probeStorage":       0,
	}
}

// UniverseJSON marshals a universe document
func UniverseJSON(t testing.TB, doc map[string]interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal universe document: %v", err)
	}
	return data
}

// WriteUniverseFile writes doc into a temp directory and returns the file path
func WriteUniverseFile(t testing.TB, doc map[string]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "universe.json")
	if err := os.WriteFile(path, UniverseJSON(t, doc), 0644); err != nil {
		t.Fatalf("failed to write universe file: %v", err)
	}
	return path
}

// NewTestUniverse returns a loaded universe with the given economy speed
func NewTestUniverse(t testing.TB, economySpeed float64) *universe.Universe {
	t.Helper()
	doc := UniverseDocument()
	doc["economySpeed"] = economySpeed
	u, err := universe.Parse(UniverseJSON(t, doc))
	if err != nil {
		t.Fatalf("failed to create test universe: %v", err)
	}
	return u
}
