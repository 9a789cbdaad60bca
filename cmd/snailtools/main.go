// Command snailtools provides case conversion and point formatting from
// the shell, plus an MCP server exposing both as tools.
package main

import (
	"fmt"
	"os"

	"github.com/snailworks/snailtools"
	"github.com/snailworks/snailtools/cmd/snailtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Println(versionString())
	case "help", "-h", "--help":
		printUsage()
	case "case":
		if err := commands.HandleCase(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "point":
		if err := commands.HandlePoint(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// versionString returns the banner printed by the version command,
// including the full build metadata.
func versionString() string {
	return fmt.Sprintf("snailtools v%s\n%s", snailtools.Version(), snailtools.BuildInfo())
}

// knownCommands lists every dispatchable command for typo suggestions.
var knownCommands = []string{"case", "point", "mcp", "version", "help"}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDistance {
			best = cmd
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`snailtools - identifier casing and point formatting tools

Usage:
  snailtools <command> [options]

Commands:
  case        Convert or check the casing of a name
  point       Format a 3D point as a display string or coordinate dict
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  snailtools case -c camel_to_snail CamelCase
  snailtools case -check snail hello_world
  echo "Free Text" | snailtools case -c free_to_snail -
  snailtools point -x 1.4 -y 2.6 -z 3.5
  snailtools point -x 1 -y 2 -z 3 --three-d -f dict-yaml

Run 'snailtools <command> --help' for more information on a command.`)
}
