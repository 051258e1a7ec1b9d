package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/ogametools-go/pkg/utils"
)

func TestGenerateRequestID(t *testing.T) {
	tests := []struct {
		input  string
		prefix string
	}{
		{"GetMineTableQuery", "get-mine-table"},
		{"RecommendUpgradeQuery", "recommend-upgrade"},
		{"ValidateUniverseCommand", "validate-universe"},
		{"Query", "query"},
		{"", "request"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id := utils.GenerateRequestID(tt.input)
			assert.Regexp(t, regexp.MustCompile("^"+tt.prefix+"-[0-9a-f]{8}$"), id)
		})
	}
}

func TestGenerateRequestID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := utils.GenerateRequestID("GetMineTableQuery")
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.23, utils.RoundTo(1.2345, 2))
	assert.Equal(t, 2.0, utils.RoundTo(1.5, 0))
}

func TestClampMin(t *testing.T) {
	assert.Equal(t, 0.0, utils.ClampMin(-0.2, 0))
	assert.Equal(t, 0.4, utils.ClampMin(0.4, 0))
}
