// Package stringutil provides shared identifier validation helpers.
package stringutil

import "regexp"

var (
	snailRegex = regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)*$`)
	camelRegex = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
)

// IsSnailCase checks if s is a well-formed snail_case name: lowercase
// alphanumeric words joined by single underscores.
func IsSnailCase(s string) bool {
	return snailRegex.MatchString(s)
}

// IsCamelCase checks if s is a well-formed camelCase name: a lowercase
// first letter followed by alphanumerics with no separators.
func IsCamelCase(s string) bool {
	return camelRegex.MatchString(s)
}
