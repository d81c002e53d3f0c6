package pantry

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var digitsRe = regexp.MustCompile(`\d+`)

// CleanQuantity extracts a count from free text such as "3 bottles".
// It returns the first run of digits, or 1 when there is none, it is zero,
// or it overflows.
func CleanQuantity(raw string) int {
	m := digitsRe.FindString(raw)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// NormalizeName trims the name, collapses inner whitespace and title-cases it.
func NormalizeName(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return cases.Title(language.Und).String(strings.Join(fields, " "))
}

var fenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// StripCodeFence removes a surrounding markdown code fence from model output.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}
