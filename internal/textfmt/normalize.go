// Package textfmt holds the pt-BR text helpers shared by reports and
// forms: accent-insensitive matching, title casing with acronym
// exceptions, and currency/percentage formatting.
package textfmt

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText strips diacritics, lowercases and trims s so that
// "  Orçamento " and "orcamento" compare equal.
func NormalizeText(s string) string {
	// Chains keep internal buffers, so one is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

// ContainsNormalized reports whether needle occurs in haystack once both
// are normalized.
func ContainsNormalized(haystack, needle string) bool {
	return strings.Contains(NormalizeText(haystack), NormalizeText(needle))
}
