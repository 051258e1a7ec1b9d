package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
)

// NewUniverseCommand creates the universe command with subcommands
func NewUniverseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "universe",
		Short: "Inspect and validate universe rulesets",
		Long: `Inspect and validate universe rulesets.

A universe file is a JSON object with the server settings (economy speed,
fleet speeds, debris ratios, ...). Every field listed by 'universe schema' is
required and must have the listed type. Value ranges are checked on top of
the JSON Schema: speeds must be positive, galaxies at least 1, debris ratios
between 0 and 1 and the remaining numbers non-negative.

Examples:
  ogametools universe validate universe.json
  ogametools universe show --universe universe.json -o yaml
  ogametools universe schema`,
	}

	cmd.AddCommand(newUniverseValidateCommand())
	cmd.AddCommand(newUniverseShowCommand())
	cmd.AddCommand(newUniverseSchemaCommand())

	return cmd
}

// validationResult is the machine-readable outcome of universe validate
type validationResult struct {
	Path  string `json:"path" yaml:"path"`
	Valid bool   `json:"valid" yaml:"valid"`
	Name  string `json:"name" yaml:"name"`
}

func newUniverseValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a universe file against the schema and value ranges",
		Long: `Check a universe file against the universe JSON Schema (required fields
and their types), then check value ranges beyond the schema:

  warFleetSpeed, peacefulFleetSpeed, holdingFleetSpeed   > 0
  economySpeed, researchSpeed                            > 0
  galaxies                                               >= 1
  fleet2debris, def2debris                               0 to 1
  deutCosts, startDM, bonusFields, probeStorage          >= 0

Every violation is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.loadUniverse(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			result := validationResult{Path: args[0], Valid: true, Name: u.Settings().Name}
			return render(cmd, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s: valid universe %q\n", result.Path, result.Name)
				return err
			})
		},
	}
}

func newUniverseShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Show the settings of a universe",
		Long: `Show the settings of a universe.

Without an argument the universe from --universe or the configuration is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			u, err := app.loadUniverse(cmd.Context(), path)
			if err != nil {
				return err
			}

			settings := u.Settings()
			return render(cmd, settings, func(w io.Writer) error {
				return writeSettings(w, settings)
			})
		},
	}
}

// writeSettings prints settings one field per line in schema order
func writeSettings(w io.Writer, settings universe.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	var values map[string]interface{}
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	t := newTable(w)
	fmt.Fprintln(t, "FIELD\tVALUE")
	fmt.Fprintln(t, "-----\t-----")
	for _, field := range universe.Schema() {
		fmt.Fprintf(t, "%s\t%v\n", field.Name, values[field.Name])
	}
	return t.Flush()
}

// schemaField is the printable form of a universe schema entry
type schemaField struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

func newUniverseSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List the required universe fields and their types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := universe.Schema()
			entries := make([]schemaField, 0, len(fields))
			for _, f := range fields {
				entries = append(entries, schemaField{Name: f.Name, Type: string(f.Kind)})
			}

			return render(cmd, entries, func(w io.Writer) error {
				t := newTable(w)
				fmt.Fprintln(t, "FIELD\tTYPE")
				fmt.Fprintln(t, "-----\t----")
				for _, e := range entries {
					fmt.Fprintf(t, "%s\t%s\n", e.Name, e.Type)
				}
				return t.Flush()
			})
		},
	}
}
