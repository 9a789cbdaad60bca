package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/snailworks/snailtools/internal/stringutil"
	"github.com/snailworks/snailtools/snail"
)

type convertCaseInput struct {
	Text       string `json:"text"       jsonschema:"The name or text to convert"`
	Conversion string `json:"conversion" jsonschema:"The conversion to apply (camel_to_snail\\, free_to_snail\\, snail_to_camel\\, snail_to_pascal\\, snail_to_kebab\\, or snail_to_free)"`
}

type convertCaseOutput struct {
	Conversion string `json:"conversion"`
	Input      string `json:"input"`
	Result     string `json:"result"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	result, err := snail.Convert(input.Conversion, input.Text)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	return nil, convertCaseOutput{
		Conversion: input.Conversion,
		Input:      input.Text,
		Result:     result,
	}, nil
}

type checkNameInput struct {
	Text  string `json:"text"  jsonschema:"The name to check"`
	Style string `json:"style" jsonschema:"The casing style to check against (snail or camel)"`
}

type checkNameOutput struct {
	Style      string `json:"style"`
	Input      string `json:"input"`
	Valid      bool   `json:"valid"`
	Suggestion string `json:"suggestion,omitempty"`
}

func handleCheckName(_ context.Context, _ *mcp.CallToolRequest, input checkNameInput) (*mcp.CallToolResult, checkNameOutput, error) {
	output := checkNameOutput{Style: input.Style, Input: input.Text}

	switch input.Style {
	case "snail":
		output.Valid = stringutil.IsSnailCase(input.Text)
		if !output.Valid {
			output.Suggestion = suggestSnail(input.Text)
		}
	case "camel":
		output.Valid = stringutil.IsCamelCase(input.Text)
		if !output.Valid {
			if s := snail.SnailToCamel(snail.FreeToSnail(input.Text)); stringutil.IsCamelCase(s) {
				output.Suggestion = s
			}
		}
	default:
		return errResult(fmt.Errorf("unknown style %q; valid styles: snail, camel", input.Style)), checkNameOutput{}, nil
	}

	return nil, output, nil
}

// suggestSnail returns the first library conversion of text that yields a
// well-formed snail_case name, or "" when none does.
func suggestSnail(text string) string {
	for _, convert := range []func(string) string{snail.CamelToSnail, snail.FreeToSnail} {
		if s := convert(text); stringutil.IsSnailCase(s) {
			return s
		}
	}
	return ""
}
