package textfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// acronyms are material and norm abbreviations that stay uppercase in
// catalog descriptions ("Solda MIG", "Tubo PVC").
var acronyms = map[string]struct{}{
	"MIG": {}, "TIG": {}, "GLP": {}, "EPI": {}, "EPC": {},
	"PVC": {}, "CPVC": {}, "PPR": {}, "PEAD": {},
	"NBR": {}, "ABNT": {}, "NR": {}, "ART": {}, "RRT": {},
	"CA": {}, "CP": {}, "INOX": {}, "LED": {}, "ACO": {},
}

// AcronymSet returns the tokens ToTitleCase keeps uppercase.
func AcronymSet() []string {
	out := make([]string, 0, len(acronyms))
	for a := range acronyms {
		out = append(out, a)
	}
	return out
}

// IsAcronym reports whether token, uppercased, is in the acronym set.
func IsAcronym(token string) bool {
	_, ok := acronyms[strings.ToUpper(token)]
	return ok
}

// ToTitleCase capitalizes each space-separated token of s. Acronyms and
// tokens mixing letters with digits ("10mm", "ca50") are uppercased
// entirely, purely numeric tokens are left alone, and for every other token
// only the first rune changes case.
func ToTitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	if IsAcronym(w) {
		return strings.ToUpper(w)
	}

	var hasLetter, hasDigit bool
	for _, r := range w {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if hasLetter && hasDigit {
		return strings.ToUpper(w)
	}
	if !hasLetter {
		return w
	}

	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}
