package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/snailworks/snailtools/point"
)

// Document format names accepted by format_point.
const (
	formatNone = "none"
	formatJSON = "json"
	formatYAML = "yaml"
)

func isValidFormat(format string) bool {
	return format == formatNone || format == formatJSON || format == formatYAML
}

type formatPointInput struct {
	X      float64 `json:"x"                jsonschema:"The x coordinate"`
	Y      float64 `json:"y"                jsonschema:"The y coordinate"`
	Z      float64 `json:"z"                jsonschema:"The z coordinate"`
	TwoD   *bool   `json:"two_d,omitempty"  jsonschema:"Restrict the dict to x and y. Defaults to the SNAILTOOLS_POINT_TWO_D setting (true)."`
	Format string  `json:"format,omitempty" jsonschema:"Document format for the dict (none\\, json\\, or yaml). Defaults to the SNAILTOOLS_POINT_FORMAT setting (none)."`
}

type formatPointOutput struct {
	Display  string         `json:"display"`
	Dict     map[string]int `json:"dict"`
	Document string         `json:"document,omitempty"`
}

func handleFormatPoint(_ context.Context, _ *mcp.CallToolRequest, input formatPointInput) (*mcp.CallToolResult, formatPointOutput, error) {
	twoD := cfg.PointTwoD
	if input.TwoD != nil {
		twoD = *input.TwoD
	}

	format := input.Format
	if format == "" {
		format = cfg.PointFormat
	}
	if !isValidFormat(format) {
		return errResult(fmt.Errorf("unknown format %q; valid formats: %s, %s, %s",
			input.Format, formatNone, formatJSON, formatYAML)), formatPointOutput{}, nil
	}

	p := point.New(input.X, input.Y, input.Z)
	output := formatPointOutput{
		Display: point.Display(p),
		Dict:    point.Dict(p, twoD),
	}

	switch format {
	case formatJSON:
		data, err := point.JSON(p, twoD)
		if err != nil {
			return errResult(err), formatPointOutput{}, nil
		}
		output.Document = string(data)
	case formatYAML:
		data, err := point.YAML(p, twoD)
		if err != nil {
			return errResult(err), formatPointOutput{}, nil
		}
		output.Document = string(data)
	}

	return nil, output, nil
}
