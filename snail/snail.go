package snail

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelToSnail converts a CamelCase identifier to snail_case.
// One underscore is inserted before every uppercase letter except at the
// start of the string, then the whole string is lowercased. Acronym runs
// expand per letter.
// Example: "CamelCase" -> "camel_case"
// Example: "HTTPServer" -> "h_t_t_p_server"
func CamelToSnail(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// FreeToSnail converts free-form text to snail_case.
// Surrounding whitespace is trimmed, the string is lowercased, and each
// interior space becomes an underscore. Idempotent on input that is
// already snail_case with no surrounding whitespace.
// Example: "  Free Text  " -> "free_text"
func FreeToSnail(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// SnailToPascal converts a snail_case name to PascalCase.
// Underscores trigger capitalization of the next letter.
// Example: "user_profile" -> "UserProfile"
func SnailToPascal(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// SnailToCamel converts a snail_case name to camelCase.
// Like SnailToPascal but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
func SnailToCamel(s string) string {
	pascal := SnailToPascal(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// SnailToKebab converts a snail_case name to kebab-case.
// Example: "user_profile" -> "user-profile"
func SnailToKebab(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// SnailToFree converts a snail_case name to free-form titled text.
// Underscores become spaces and each word is title-cased.
// Example: "hello_world" -> "Hello World"
func SnailToFree(s string) string {
	if s == "" {
		return ""
	}
	// Use golang.org/x/text/cases for proper Unicode title casing
	// (strings.Title is deprecated).
	titleCaser := cases.Title(language.Und)
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}
