package parse

import "regexp"

// initialsPattern matches the positional initials group in exported chart
// filenames, e.g. "HealthStre_Chart_1_TP_20251218_88209-2.pdf" -> "TP".
var initialsPattern = regexp.MustCompile(`_([A-Z]{2})_\d{8}_`)

// InitialsFromFilename extracts the two-letter initials hint from an export
// filename. Returns "" when the filename does not follow the convention;
// absence of a hint is not an error.
func InitialsFromFilename(filename string) string {
	if m := initialsPattern.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	return ""
}
