package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
	"github.com/andrescamacho/ogametools-go/pkg/utils"
)

// render writes v as JSON or YAML when requested, otherwise calls text
func render(cmd *cobra.Command, v interface{}, text func(w io.Writer) error) error {
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(out)
	}
}

// newTable returns a tabwriter laid out like every other table of the CLI
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// amount formats a resource quantity rounded to whole units.
// Quantities outside the int64 range are formatted from the float directly.
func amount(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	if r > -math.MaxInt64 && r < math.MaxInt64 {
		return humanize.Comma(int64(r))
	}
	return humanize.CommafWithDigits(r, 0)
}

// amounts formats a vector as metal/crystal/deuterium
func amounts(v shared.Vector) string {
	return fmt.Sprintf("%s / %s / %s", amount(v.Metal()), amount(v.Crystal()), amount(v.Deuterium()))
}

// percent formats a fraction as a signed percentage
func percent(f float64) string {
	return fmt.Sprintf("%+g%%", utils.RoundTo(f*100, 1))
}
