/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package lineup

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchThreshold is the minimum similarity accepted as a close match.
const MatchThreshold = 0.8

// Sanitize keeps only ASCII letters, whitespace, apostrophes and periods,
// then trims and collapses whitespace to single spaces.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '\'', r == '.':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Match compares a guess to the actual name, ignoring case, surrounding
// whitespace and diacritics. It returns whether the guess is accepted and
// the Ratcliff/Obershelp similarity of the two names.
func Match(guess, actual string) (bool, float64) {
	if guess == "" || actual == "" {
		return false, 0
	}

	g, a := fold(guess), fold(actual)
	if g == a {
		return true, 1
	}

	similarity := ratio(g, a)

	return similarity >= MatchThreshold, similarity
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.TrimSpace(strings.ToLower(folded))
}

func ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}

	m := difflib.NewMatcherWithJunk(chars(a), chars(b), false, nil)

	return m.Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
