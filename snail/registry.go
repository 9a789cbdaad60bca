package snail

import (
	"fmt"
	"sort"
	"strings"
)

// conversions maps conversion names to their functions.
var conversions = map[string]func(string) string{
	"camel_to_snail":  CamelToSnail,
	"free_to_snail":   FreeToSnail,
	"snail_to_camel":  SnailToCamel,
	"snail_to_pascal": SnailToPascal,
	"snail_to_kebab":  SnailToKebab,
	"snail_to_free":   SnailToFree,
}

// Convert applies the named conversion to s. It returns an error only
// when the conversion name is unknown; the conversions themselves are
// total and never fail.
func Convert(name, s string) (string, error) {
	convert, ok := conversions[name]
	if !ok {
		return "", fmt.Errorf("unknown conversion %q; valid conversions: %s",
			name, strings.Join(ValidConversions(), ", "))
	}
	return convert(s), nil
}

// IsValidConversion reports whether name is a known conversion.
func IsValidConversion(name string) bool {
	_, ok := conversions[name]
	return ok
}

// ValidConversions returns the known conversion names in sorted order.
func ValidConversions() []string {
	names := make([]string, 0, len(conversions))
	for name := range conversions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
