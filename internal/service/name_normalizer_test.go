package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fullName string
		expected string
	}{
		{name: "two words", fullName: "john doe", expected: "John Doe"},
		{name: "O' surname", fullName: "mary o'connor", expected: "Mary O'Connor"},
		{name: "another O' surname", fullName: "patrick o'brien", expected: "Patrick O'Brien"},
		{name: "O' surname with three words", fullName: "sarah o'malley smith", expected: "Sarah O'Malley Smith"},
		{name: "upper case O' prefix", fullName: "sarah O'malley", expected: "Sarah O'Malley"},
		{name: "single word", fullName: "madonna", expected: "Madonna"},
		{name: "already canonical", fullName: "Mary O'Connor", expected: "Mary O'Connor"},
		{name: "apostrophe outside surname keeps lower case", fullName: "d'arcy smith", expected: "D'arcy Smith"},
		{name: "apostrophe not in O' prefix", fullName: "jane d'arcy", expected: "Jane D'arcy"},
		{name: "other letters untouched", fullName: "jOHN mcDONALD", expected: "JOHN McDONALD"},
		{name: "O' only in third token", fullName: "anna maria o'hara", expected: "Anna Maria O'hara"},
		{name: "empty", fullName: "", expected: ""},
		{name: "double space", fullName: "john  doe", expected: "John  Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeName(tt.fullName))
		})
	}
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"john doe", "mary o'connor", "madonna", "patrick o'brien"} {
		once := NormalizeName(name)
		assert.Equal(t, once, NormalizeName(once))
	}
}
