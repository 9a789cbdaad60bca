package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSnailCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "single word", input: "word", want: true},
		{name: "two words", input: "hello_world", want: true},
		{name: "with digits", input: "api_v2", want: true},
		{name: "digit word", input: "sha256_sum", want: true},

		{name: "empty", input: "", want: false},
		{name: "uppercase", input: "Hello_world", want: false},
		{name: "leading underscore", input: "_private", want: false},
		{name: "trailing underscore", input: "value_", want: false},
		{name: "double underscore", input: "a__b", want: false},
		{name: "space", input: "hello world", want: false},
		{name: "hyphen", input: "kebab-case", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSnailCase(tt.input), "IsSnailCase(%q)", tt.input)
		})
	}
}

func TestIsCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "single word", input: "word", want: true},
		{name: "two words", input: "userProfile", want: true},
		{name: "with digits", input: "sha256Sum", want: true},

		{name: "empty", input: "", want: false},
		{name: "pascal", input: "UserProfile", want: false},
		{name: "underscore", input: "user_profile", want: false},
		{name: "leading digit", input: "2fast", want: false},
		{name: "space", input: "user profile", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCamelCase(tt.input), "IsCamelCase(%q)", tt.input)
		})
	}
}
