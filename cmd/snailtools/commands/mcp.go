package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/snailworks/snailtools/internal/cliutil"
	"github.com/snailworks/snailtools/internal/mcpserver"
)

// HandleMCP executes the mcp command, serving MCP over stdio until the
// client disconnects or the process is signalled.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: snailtools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the snailtools MCP server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "Tools: convert_case, check_name, format_point.\n")
		cliutil.Writef(fs.Output(), "Defaults are configurable via SNAILTOOLS_* environment variables.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
