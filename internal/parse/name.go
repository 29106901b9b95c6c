package parse

import (
	"regexp"
	"strings"
)

// anchorLine marks the start of the patient-name region in chart exports.
const anchorLine = "Chart"

// dateCodePattern matches a trailing DOI/DOB annotation embedded in the
// display name, e.g. "(DOI:010125)" or "(dob 03-15-90)". The three digit
// pairs may be separated by "/" or "-".
var dateCodePattern = regexp.MustCompile(`(?i)\s*\((doi|dob):?\s*(\d{2})[-/]?(\d{2})[-/]?(\d{2})\)$`)

// trailingNumberPattern matches a record disambiguator appended to the
// display name, e.g. the "1" in "Test Patient 1".
var trailingNumberPattern = regexp.MustCompile(`\s+\d+$`)

// nameResult carries the outcome of name extraction.
type nameResult struct {
	First    string
	Last     string
	DateCode string
	Found    bool
}

// extractName locates the patient display name line (the first non-blank
// line after the anchor) and splits it into first and last name. hint is
// the optional two-letter initials pair from the export filename.
func extractName(text, hint string) nameResult {
	lines := strings.Split(text, "\n")

	anchor := -1
	for i, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), anchorLine) {
			anchor = i
			break
		}
	}
	if anchor == -1 {
		return nameResult{}
	}

	var nameLine string
	for _, line := range lines[anchor+1:] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			nameLine = trimmed
			break
		}
	}
	if nameLine == "" {
		return nameResult{}
	}

	var dateCode string
	if m := dateCodePattern.FindStringSubmatch(nameLine); m != nil {
		dateCode = strings.ToUpper(m[1]) + m[2] + m[3] + m[4]
		nameLine = dateCodePattern.ReplaceAllString(nameLine, "")
	} else {
		// Without an annotation, a trailing integer is a record
		// disambiguator, not part of the name.
		nameLine = strings.TrimSpace(trailingNumberPattern.ReplaceAllString(nameLine, ""))
	}

	parts := strings.Fields(nameLine)
	switch len(parts) {
	case 0:
		return nameResult{DateCode: dateCode, Found: true}
	case 1:
		return nameResult{Last: parts[0], DateCode: dateCode, Found: true}
	}

	if len(hint) == 2 {
		if first, last, ok := splitByInitials(parts, hint); ok {
			return nameResult{First: first, Last: last, DateCode: dateCode, Found: true}
		}
		// Hint matched no split point: fall through to the default rule.
	}

	// Default split: last token is the last name. When an annotation was
	// present and the final token is numeric, the number belongs to a
	// compound last name ("Patient 1") and the split moves one token left.
	splitAt := len(parts) - 1
	if dateCode != "" && len(parts) >= 3 && isNumeric(parts[len(parts)-1]) {
		splitAt = len(parts) - 2
	}
	return nameResult{
		First:    strings.Join(parts[:splitAt], " "),
		Last:     strings.Join(parts[splitAt:], " "),
		DateCode: dateCode,
		Found:    true,
	}
}

// splitByInitials tries every split point left to right and returns the
// first whose group initials match the hint, i.e. the shortest first name.
func splitByInitials(parts []string, hint string) (first, last string, ok bool) {
	for i := 1; i < len(parts); i++ {
		f := strings.Join(parts[:i], " ")
		l := strings.Join(parts[i:], " ")
		if initialMatches(f, hint[0]) && initialMatches(l, hint[1]) {
			return f, l, true
		}
	}
	return "", "", false
}

func initialMatches(word string, initial byte) bool {
	return word != "" && strings.EqualFold(word[:1], string(initial))
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
