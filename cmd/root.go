package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv"
	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/ansi"
	"github.com/lone-faerie/tempconv/internal/build"
	"github.com/lone-faerie/tempconv/log"
)

// Flags for [RootCommand]
var (
	SourceUnit = tempconv.UnitFlag(tempconv.Fahrenheit) // Unit of the provided value
	TargetUnit = tempconv.UnitFlag(tempconv.Celsius)    // Unit to convert the value to
	ColorMode  string                                   // When to color output (auto, always, never)
	LogLevel   string                                   // Log level
)

var cfg *config.Config

// RootCommand is the [cobra.Command] used for converting a temperature value.
var RootCommand = &cobra.Command{
	Use:   "tempconv [flags] <value>",
	Short: "Convert temperatures between Celsius, Fahrenheit, and Kelvin",
	Long: `Converts a single temperature value between Celsius, Fahrenheit, and Kelvin.

The value must be a floating-point number and may be negative. Units are matched case-insensitively by full name or single-letter code (c, f, k). When no unit flags are given, the source unit defaults to Fahrenheit and the target unit to Celsius.

Defaults may also be provided through the environment:

	- source unit: $TEMPCONV_UNIT
	- target unit: $TEMPCONV_CONVERT
	- color mode:  $TEMPCONV_COLOR

Flags take precedence over the environment. A value below absolute zero for its source unit is rejected and the process exits with a non-zero status.`,
	Example: `  tempconv 98.6
  tempconv -u c -c k 7
  tempconv --unit kelvin --convert fahrenheit 273.15
  tempconv -- -40`,
	Args: func(cmd *cobra.Command, args []string) error {
		// Version is informational and short-circuits before the
		// value is required.
		if v, _ := cmd.Flags().GetBool("version"); v {
			return nil
		}

		return cobra.ExactArgs(1)(cmd, args)
	},
	PreRunE: setup,
	RunE:    runConvert,

	SilenceUsage:          true,
	SilenceErrors:         true,
	DisableFlagsInUseLine: true,
	CompletionOptions:     cobra.CompletionOptions{HiddenDefaultCmd: true},
}

func init() {
	f := RootCommand.Flags()
	f.SortFlags = false
	f.VarP(&SourceUnit, "unit", "u", "Temperature unit of the provided value (Celsius, Fahrenheit, or Kelvin)")
	f.VarP(&TargetUnit, "convert", "c", "Target temperature unit to convert the value to (Celsius, Fahrenheit, or Kelvin)")
	f.StringVar(&ColorMode, "color", "", "When to use colored output (auto, always, never)")
	f.StringVarP(&LogLevel, "log", "l", "", "Log level")
	f.BoolP("version", "V", false, "Print version")

	RootCommand.SetHelpTemplate(RootCommand.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	// Help and version are informational, so they render in the info
	// color, preceded by a blank line like all other output.
	help := RootCommand.HelpFunc()
	RootCommand.SetHelpFunc(func(c *cobra.Command, args []string) {
		w := c.OutOrStdout()
		colored := colorEnabled(w)

		fmt.Fprintln(w)

		if colored {
			fmt.Fprint(w, ansi.Cyan)
		}

		help(c, args)

		if colored {
			fmt.Fprint(w, ansi.Reset)
		}
	})
}

// version returns the build version, or "devel" when built without
// version information.
func version() string {
	if v := build.Version(); v != "" {
		return v
	}

	return "devel"
}

func printVersion(cmd *cobra.Command) {
	w := cmd.OutOrStdout()

	out := fmt.Sprintf("%s version %s", cmd.Root().Name(), version())
	if colorEnabled(w) {
		out = ansi.Wrap(ansi.Cyan, out)
	}

	fmt.Fprintf(w, "\n%s\n", out)
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Default()
	if err := flagsToConfig(cfg, cmd); err != nil {
		return err
	}

	setLogHandler(cfg)
	log.Debug("Config loaded", "unit", cfg.Unit, "convert", cfg.Convert, "color", cfg.Color)

	return nil
}

func flagsToConfig(cfg *config.Config, cmd *cobra.Command) error {
	flags := cmd.Flags()

	if flags.Changed("unit") {
		cfg.Unit = tempconv.Unit(SourceUnit)
	}

	if flags.Changed("convert") {
		cfg.Convert = tempconv.Unit(TargetUnit)
	}

	if ColorMode != "" {
		cfg.Color = ColorMode
	}

	if _, err := ansi.ParseMode(cfg.Color); err != nil {
		return err
	}

	if LogLevel != "" {
		var level log.Level
		if err := level.UnmarshalText([]byte(LogLevel)); err != nil {
			return err
		}

		cfg.Log.Level = level
	}

	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		printVersion(cmd)
		return nil
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid temperature value %q", args[0])
	}

	res, err := tempconv.Request{Value: value, From: cfg.Unit, To: cfg.Convert}.Convert()
	if err != nil {
		return err
	}

	log.Debug("Converted", "value", res.Value, "from", res.From, "to", res.To, "result", res.Converted)

	out := res.String()
	if colorEnabled(cmd.OutOrStdout()) {
		out = ansi.Wrap(ansi.Green, out)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", out)

	return nil
}

func setLogHandler(cfg *config.Config) {
	var w *os.File

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Error("Unable to open log file, deferring to stderr", err)
			w = os.Stderr
		} else {
			w = f
			AddCleanup(func() error { return f.Close() })
		}
	}

	log.SetLogLevel(cfg.Log.Level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}
}
