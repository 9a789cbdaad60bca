// Package snailtools provides small, dependency-light utilities for
// normalizing identifier casing and formatting 3D coordinate values.
//
// The library consists of two primary packages:
//
//   - snail: pure case-conversion functions between snail_case (snake_case),
//     CamelCase, kebab-case, and free text
//   - point: formatting and serialization for point-like values exposing
//     numeric x/y/z accessors
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/snailworks/snailtools
//
// # Quick Start
//
// Convert identifier casing:
//
//	import "github.com/snailworks/snailtools/snail"
//
//	name := snail.CamelToSnail("CamelCase") // "camel_case"
//	name = snail.FreeToSnail("  Free Text  ") // "free_text"
//
// Format a point:
//
//	import "github.com/snailworks/snailtools/point"
//
//	p := point.New(1.4, 2.6, 3.5)
//	fmt.Println(p) // (1.40, 2.60, 3.50)
//	d := point.Dict(p, true) // map[string]int{"x": 1, "y": 3}
//
// # snail Package
//
// The snail package provides pure, total case-conversion functions. All
// functions map empty input to empty output and never fail. CamelToSnail
// inserts one underscore before every uppercase letter after the first
// character, so acronym runs expand per letter ("HTTPServer" becomes
// "h_t_t_p_server"). FreeToSnail trims surrounding whitespace, lowercases,
// and joins words with underscores. The reverse family (SnailToCamel,
// SnailToPascal, SnailToKebab, SnailToFree) round-trips snail_case names
// back into the other conventions.
//
// # point Package
//
// The point package formats any value implementing the Coords accessor
// interface. It does not own or construct geometry: coordinate math lives
// in whatever library produced the value. Formatting covers a display
// string with two-decimal coordinates, an integer-rounded dictionary
// (round half away from zero), and JSON/YAML renderings of that
// dictionary. The concrete Point type additionally carries an opaque
// instance identifier surfaced in its debug representation.
//
// # Command Line Interface
//
// The snailtools command provides case conversion and point formatting
// from the shell, plus an MCP server exposing both as tools:
//
//	snailtools case -c camel_to_snail CamelCase
//	snailtools point -x 1 -y 2 -z 3
//	snailtools mcp
//
// Run snailtools help for the full command reference.
package snailtools
