// Package commands provides CLI command handlers for snailtools.
package commands

import (
	"fmt"
	"io"
	"os"
)

// StdinFilePath is the special argument used to indicate reading from stdin.
const StdinFilePath = "-"

// ReadTextArg returns arg, or the full contents of stdin when arg is "-".
func ReadTextArg(arg string) (string, error) {
	if arg != StdinFilePath {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// WriteOutput writes data to path, or to stdout when path is empty.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
