package service

import (
	"strings"
	"unicode"
)

// NormalizeName capitalizes the first letter of every word of a doctor's name.
// When the surname (second space separated token) starts with "O'" the apostrophe
// also starts a new word, so "mary o'connor" becomes "Mary O'Connor".
// Letters that do not start a word are left as they are.
func NormalizeName(fullName string) string {
	delimiters := " "

	parts := strings.Split(fullName, " ")
	if len(parts) > 1 && hasOPrefix(parts[1]) {
		delimiters = " '"
	}

	return capitalizeWords(fullName, delimiters)
}

func hasOPrefix(surname string) bool {
	return len(surname) >= 2 && strings.EqualFold(surname[:2], "o'")
}

func capitalizeWords(s, delimiters string) string {
	var b strings.Builder
	b.Grow(len(s))

	wordStart := true
	for _, r := range s {
		if wordStart {
			r = unicode.ToUpper(r)
		}
		wordStart = strings.ContainsRune(delimiters, r)
		b.WriteRune(r)
	}

	return b.String()
}
