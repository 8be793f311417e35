// Package scorer rates password strength on a fixed 0 to 10 scale.
//
// The score is the sum of independent character-class checks: a length
// tier plus two points each for uppercase, lowercase, digit, and symbol
// presence. Letter and digit classification is full Unicode; the symbol
// class is the fixed set of 32 printable non-alphanumeric, non-space
// ASCII characters. A password on the common-password list always
// scores zero regardless of its other characteristics.
package scorer

import (
	_ "embed"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxScore is the highest attainable score.
const MaxScore = 10

// asciiSymbols are the 32 printable ASCII characters that are neither
// alphanumeric nor space.
const asciiSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords holds the denylist parsed from the embedded file,
// lowercased for case-insensitive membership checks.
var commonPasswords map[string]struct{}

func init() {
	lines := strings.Split(commonPasswordsRaw, "\n")
	commonPasswords = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		commonPasswords[strings.ToLower(pw)] = struct{}{}
	}
}

// rule awards points when its check holds for the password. An empty
// advice string keeps the rule out of improvement hints.
type rule struct {
	check  func(string) bool
	points int
	advice string
}

// rules are evaluated in order and their points are additive.
// The two length tiers are mutually exclusive.
var rules = []rule{
	{lengthAtLeast(8), 2, "use at least 8 characters"},
	{lengthBetween(5, 7), 1, ""},
	{hasClass(unicode.IsUpper), 2, "add an uppercase letter"},
	{hasClass(unicode.IsLower), 2, "add a lowercase letter"},
	{hasClass(unicode.IsDigit), 2, "add a digit"},
	{hasClass(isSymbol), 2, "add a symbol"},
}

// IsCommon reports whether the password, compared case-insensitively,
// exactly matches an entry on the common-password list.
func IsCommon(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}

// Score rates the password from 0 to MaxScore. Membership on the
// common-password list overrides every other check and returns 0.
// Score is total over all string inputs, including the empty string.
func Score(password string) int {
	if IsCommon(password) {
		return 0
	}
	score := 0
	for _, r := range rules {
		if r.check(password) {
			score += r.points
		}
	}
	return score
}

// Rating maps a score to its presentation band.
func Rating(score int) string {
	switch {
	case score <= 0:
		return "too common/weak"
	case score <= 4:
		return "weak"
	case score <= 7:
		return "moderate"
	default:
		return "strong"
	}
}

// Advice lists improvement hints for the checks the password does not
// satisfy, in rule order. Strong passwords get an empty list.
func Advice(password string) []string {
	if IsCommon(password) {
		return []string{"avoid commonly used passwords"}
	}
	var out []string
	for _, r := range rules {
		if r.advice == "" {
			continue
		}
		if !r.check(password) {
			out = append(out, r.advice)
		}
	}
	return out
}

func lengthAtLeast(n int) func(string) bool {
	return func(p string) bool {
		return utf8.RuneCountInString(p) >= n
	}
}

func lengthBetween(lo, hi int) func(string) bool {
	return func(p string) bool {
		n := utf8.RuneCountInString(p)
		return n >= lo && n <= hi
	}
}

func hasClass(is func(rune) bool) func(string) bool {
	return func(p string) bool {
		for _, r := range p {
			if is(r) {
				return true
			}
		}
		return false
	}
}

func isSymbol(r rune) bool {
	return strings.ContainsRune(asciiSymbols, r)
}
