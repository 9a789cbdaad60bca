package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/snailworks/snailtools/internal/cliutil"
	"github.com/snailworks/snailtools/point"
)

// Output format constants for the point command
const (
	FormatDisplay  = "display"
	FormatDictJSON = "dict-json"
	FormatDictYAML = "dict-yaml"
)

// PointFlags contains flags for the point command
type PointFlags struct {
	X, Y, Z float64
	ThreeD  bool
	Format  string
	Debug   bool
	Output  string
}

// SetupPointFlags creates and configures a FlagSet for the point command.
// Returns the FlagSet and a PointFlags struct with bound flag variables.
func SetupPointFlags() (*flag.FlagSet, *PointFlags) {
	fs := flag.NewFlagSet("point", flag.ContinueOnError)
	flags := &PointFlags{}

	fs.Float64Var(&flags.X, "x", 0, "x coordinate")
	fs.Float64Var(&flags.Y, "y", 0, "y coordinate")
	fs.Float64Var(&flags.Z, "z", 0, "z coordinate")
	fs.BoolVar(&flags.ThreeD, "three-d", false, "include z in dict output")
	fs.StringVar(&flags.Format, "f", FormatDisplay, "output format: display, dict-json, or dict-yaml")
	fs.StringVar(&flags.Format, "format", FormatDisplay, "output format: display, dict-json, or dict-yaml")
	fs.BoolVar(&flags.Debug, "debug", false, "print the debug representation with the instance identifier")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: snailtools point [flags]\n\n")
		cliutil.Writef(fs.Output(), "Format a 3D point as a display string or an integer-rounded coordinate dict.\n")
		cliutil.Writef(fs.Output(), "Dict values round half away from zero.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  snailtools point -x 1.4 -y 2.6 -z 3.5\n")
		cliutil.Writef(fs.Output(), "  snailtools point -x 1.4 -y 2.6 -z 3.5 -f dict-json\n")
		cliutil.Writef(fs.Output(), "  snailtools point -x 1 -y 2 -z 3 --three-d -f dict-yaml -o point.yaml\n")
	}

	return fs, flags
}

// ValidatePointFormat validates a point output format and returns an error if invalid.
func ValidatePointFormat(format string) error {
	if format != FormatDisplay && format != FormatDictJSON && format != FormatDictYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s",
			format, FormatDisplay, FormatDictJSON, FormatDictYAML)
	}
	return nil
}

// HandlePoint executes the point command
func HandlePoint(args []string) error {
	fs, flags := SetupPointFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("point command takes no positional arguments")
	}

	if err := ValidatePointFormat(flags.Format); err != nil {
		fs.Usage()
		return err
	}

	p := point.New(flags.X, flags.Y, flags.Z)

	if flags.Debug {
		cliutil.Writef(os.Stderr, "%#v\n", p)
	}

	var out io.Writer = os.Stdout
	if flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch flags.Format {
	case FormatDictJSON:
		return cliutil.EmitJSON(out, point.Dict(p, !flags.ThreeD))
	case FormatDictYAML:
		return cliutil.EmitYAML(out, point.Dict(p, !flags.ThreeD))
	default:
		cliutil.Writef(out, "%s\n", point.Display(p))
		return nil
	}
}
