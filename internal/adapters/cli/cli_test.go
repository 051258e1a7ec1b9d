package cli

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/ogametools-go/internal/application/production"
	"github.com/andrescamacho/ogametools-go/test/helpers"
)

// runCLI executes the root command with args and returns stdout and stderr
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBoostList(t *testing.T) {
	stdout, _, err := runCLI(t, "boost", "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "metal-bronze")
	assert.Contains(t, stdout, "geologist")
	assert.Contains(t, stdout, "+10%")
}

func TestUniverseValidate(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	stdout, _, err := runCLI(t, "universe", "validate", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, `valid universe "Andromeda"`)
}

func TestUniverseValidate_ReportsBadField(t *testing.T) {
	doc := helpers.UniverseDocument()
	doc["economySpeed"] = "fast"
	path := helpers.WriteUniverseFile(t, doc)

	_, _, err := runCLI(t, "universe", "validate", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "economySpeed")
}

func TestUniverseValidate_ReportsValueRange(t *testing.T) {
	doc := helpers.UniverseDocument()
	doc["fleet2debris"] = 1.5
	path := helpers.WriteUniverseFile(t, doc)

	_, _, err := runCLI(t, "universe", "validate", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fleet2debris")
}

func TestUniverseValidate_HelpListsValueRanges(t *testing.T) {
	stdout, _, err := runCLI(t, "universe", "validate", "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "value ranges beyond the schema")
	assert.Contains(t, stdout, "fleet2debris, def2debris")
}

func TestUniverseShow_YAML(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	stdout, _, err := runCLI(t, "universe", "show", path, "-o", "yaml")

	require.NoError(t, err)
	var settings map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &settings))
	assert.Equal(t, "Andromeda", settings["name"])
	assert.Equal(t, 9, settings["galaxies"])
}

func TestUniverseSchema_JSON(t *testing.T) {
	stdout, _, err := runCLI(t, "universe", "schema", "-o", "json")

	require.NoError(t, err)
	var fields []schemaField
	require.NoError(t, json.Unmarshal([]byte(stdout), &fields))
	require.Len(t, fields, 16)
	assert.Equal(t, schemaField{Name: "name", Type: "string"}, fields[0])
	assert.Equal(t, schemaField{Name: "probeStorage", Type: "integer"}, fields[15])
}

func TestMineTable_JSON(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	stdout, _, err := runCLI(t, "mine", "table",
		"--universe", path, "--resource", "metal", "--to", "10",
		"--position", "8", "--temperature", "20", "-o", "json")

	require.NoError(t, err)
	var table mineTable
	require.NoError(t, json.Unmarshal([]byte(stdout), &table))
	assert.Equal(t, "metal", table.Resource)
	require.Len(t, table.Rows, 11)

	want := 30 + 30*1.35*10*math.Pow(1.1, 10)
	assert.InDelta(t, want, table.Rows[10].Total.Metal(), 1e-6)
}

func TestMineTable_Text(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	stdout, _, err := runCLI(t, "mine", "table", "--universe", path, "--resource", "crystal", "--to", "2")

	require.NoError(t, err)
	assert.Contains(t, stdout, "crystal mine")
	assert.Contains(t, stdout, "LEVEL")
}

func TestMineTable_Text_HugeCostsStayPositive(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	stdout, _, err := runCLI(t, "mine", "table", "--universe", path,
		"--resource", "metal", "--from", "1", "--to", "200")

	require.NoError(t, err)
	assert.Contains(t, stdout, "\n200 ")
	assert.NotContains(t, stdout, "-9,223,372,036,854,775,808")
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.2, "0"},
		{1234.6, "1,235"},
		{-1234.4, "-1,234"},
		{1e20, "100,000,000,000,000,000,000"},
		{-1e20, "-100,000,000,000,000,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, amount(tt.in), "amount(%g)", tt.in)
	}
}

func TestMineTable_RejectsEnergy(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	_, _, err := runCLI(t, "mine", "table", "--universe", path, "--resource", "energy")

	assert.Error(t, err)
}

func TestPlanetProduction_JSON(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	stdout, _, err := runCLI(t, "planet", "production",
		"--universe", path, "--metal-level", "10", "--crystal-level", "8", "--deuterium-level", "5",
		"--class", "Collector", "--boost", "engineer", "-o", "json")

	require.NoError(t, err)
	var result production.GetPlanetProductionResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Mines, 3)
	assert.Equal(t, 10, result.Mines[0].Level)
	assert.InDelta(t, 0.20, result.EnergyBonus, 1e-9)
	assert.Greater(t, result.Total.Metal(), 0.0)
}

func TestPlanetProduction_PositionZero(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	_, _, err := runCLI(t, "planet", "production", "--universe", path, "--position", "0", "--metal-level", "5")
	require.NoError(t, err)

	help, _, err := runCLI(t, "planet", "production", "--help")
	require.NoError(t, err)
	assert.Contains(t, help, "(0-15)")
}

func TestPlanetProduction_UnknownResearch(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	_, _, err := runCLI(t, "planet", "production", "--universe", path, "--research", "warp=3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "warp")
}

func TestPlanetNext(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	stdout, _, err := runCLI(t, "planet", "next",
		"--universe", path, "--metal-level", "10", "--crystal-level", "8", "--deuterium-level", "5",
		"--trade-ratio", "2:1.5:1")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Trade ratio 2:1.5:1")
	assert.Contains(t, stdout, "Recommended:")
}

func TestPlanetNext_InvalidTradeRatio(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	_, _, err := runCLI(t, "planet", "next", "--universe", path, "--trade-ratio", "3:0:1")

	assert.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := runCLI(t, "config", "show", "--universe", "/tmp/andromeda.json")

	require.NoError(t, err)
	assert.Contains(t, stdout, "/tmp/andromeda.json")
	assert.Contains(t, stdout, "Trade ratio:")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := runCLI(t, "boost", "list", "-o", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestMetricsFlag_PrintsMetrics(t *testing.T) {
	path := helpers.WriteUniverseFile(t, helpers.UniverseDocument())

	_, stderr, err := runCLI(t, "mine", "table", "--universe", path, "--to", "3", "--metrics")

	require.NoError(t, err)
	assert.Contains(t, stderr, `ogametools_production_mine_levels_evaluated_total{resource="metal"} 4`)
	assert.Contains(t, stderr, `ogametools_mediator_queries_total{query="GetMineTableQuery",status="success"} 1`)
}

func TestParseTradeRatio(t *testing.T) {
	ratio, err := parseTradeRatio("3:2:1")
	require.NoError(t, err)
	assert.Equal(t, production.DefaultTradeRatio, ratio)

	for _, bad := range []string{"3:2", "a:b:c", "3:-2:1"} {
		_, err := parseTradeRatio(bad)
		assert.Error(t, err, bad)
	}
}
