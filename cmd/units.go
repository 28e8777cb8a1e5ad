package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/tempconv"
)

// Flags for [UnitsCommand]
var (
	UnitsOutput string // Output format (text or yaml)
)

// UnitsCommand is the [cobra.Command] used for listing the supported units.
var UnitsCommand = &cobra.Command{
	Use:     "units",
	Aliases: []string{"u"},
	Short:   "List supported temperature units",
	Long: `List the supported temperature units with their single-letter code and absolute-zero threshold.

Either the code or the full name, ignoring case, is accepted by the --unit and --convert flags.`,
	Args: cobra.NoArgs,
	RunE: listUnits,
}

func init() {
	UnitsCommand.Flags().SortFlags = false
	UnitsCommand.Flags().StringVarP(&UnitsOutput, "output", "o", "text", "Output format (text or yaml)")

	RootCommand.AddCommand(UnitsCommand)
}

type unitInfo struct {
	Code         string  `yaml:"code"`
	Name         string  `yaml:"name"`
	AbsoluteZero float64 `yaml:"absolute_zero"`
}

func supportedUnits() []unitInfo {
	units := tempconv.Units()
	info := make([]unitInfo, len(units))

	for i, u := range units {
		info[i] = unitInfo{
			Code:         u.Code(),
			Name:         u.Name(),
			AbsoluteZero: u.AbsoluteZero(),
		}
	}

	return info
}

func listUnits(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	switch strings.ToLower(UnitsOutput) {
	case "", "text":
		for _, u := range supportedUnits() {
			fmt.Fprintf(w, "%s (%s)\n  absolute zero %.2f°%s\n", u.Name, u.Code, u.AbsoluteZero, u.Name)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()

		return enc.Encode(supportedUnits())
	default:
		return fmt.Errorf("unknown output format %q", UnitsOutput)
	}

	return nil
}
