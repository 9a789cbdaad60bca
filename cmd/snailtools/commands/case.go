package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/snailworks/snailtools/internal/cliutil"
	"github.com/snailworks/snailtools/internal/stringutil"
	"github.com/snailworks/snailtools/snail"
)

// CaseFlags contains flags for the case command
type CaseFlags struct {
	Conversion string
	Check      string
	Output     string
}

// SetupCaseFlags creates and configures a FlagSet for the case command.
// Returns the FlagSet and a CaseFlags struct with bound flag variables.
func SetupCaseFlags() (*flag.FlagSet, *CaseFlags) {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	flags := &CaseFlags{}

	fs.StringVar(&flags.Conversion, "c", "camel_to_snail", "conversion to apply")
	fs.StringVar(&flags.Conversion, "conversion", "camel_to_snail", "conversion to apply")
	fs.StringVar(&flags.Check, "check", "", "check conformance to a style (snail or camel) instead of converting")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: snailtools case [flags] <text|->\n\n")
		cliutil.Writef(fs.Output(), "Convert a name between casing conventions, or check its conformance.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nConversions:\n")
		for _, name := range snail.ValidConversions() {
			cliutil.Writef(fs.Output(), "  - %s\n", name)
		}
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  snailtools case -c camel_to_snail CamelCase\n")
		cliutil.Writef(fs.Output(), "  snailtools case -c free_to_snail \"Hello World\"\n")
		cliutil.Writef(fs.Output(), "  snailtools case -check snail hello_world\n")
		cliutil.Writef(fs.Output(), "  echo \"Free Text\" | snailtools case -c free_to_snail -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion succeeded, or the name conforms to the checked style\n")
		cliutil.Writef(fs.Output(), "  1    Unknown conversion/style, or the name does not conform\n")
	}

	return fs, flags
}

// HandleCase executes the case command
func HandleCase(args []string) error {
	fs, flags := SetupCaseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("case command requires exactly one text argument or '-' for stdin")
	}

	text, err := ReadTextArg(fs.Arg(0))
	if err != nil {
		return err
	}
	// Stdin input carries a trailing newline that is not part of the name.
	text = strings.TrimRight(text, "\n")

	if flags.Check != "" {
		return checkStyle(flags.Check, text)
	}

	result, err := snail.Convert(flags.Conversion, text)
	if err != nil {
		return err
	}
	return WriteOutput(flags.Output, []byte(result+"\n"))
}

// checkStyle validates text against a style name. A non-conforming name
// is reported as an error so the command exits non-zero.
func checkStyle(style, text string) error {
	var valid bool
	switch style {
	case "snail":
		valid = stringutil.IsSnailCase(text)
	case "camel":
		valid = stringutil.IsCamelCase(text)
	default:
		return fmt.Errorf("unknown style '%s'. Valid styles: snail, camel", style)
	}

	if !valid {
		return fmt.Errorf("%q is not a well-formed %s case name", text, style)
	}
	fmt.Printf("%q is a well-formed %s case name\n", text, style)
	return nil
}
