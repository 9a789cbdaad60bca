// Package snail provides case conversion between snail_case and other
// identifier conventions.
//
// Snail case is the library's name for lowercase words joined by
// underscores, commonly called snake_case. The two primary entry points
// mirror the most common normalization needs:
//
//   - CamelToSnail: CamelCase identifiers to snail_case
//   - FreeToSnail: free-form text ("Hello World") to snail_case
//
// The reverse family (SnailToCamel, SnailToPascal, SnailToKebab,
// SnailToFree) converts snail_case names back into the other conventions.
//
// All functions are pure and total: they never fail, never mutate their
// input, and map the empty string to the empty string.
package snail
