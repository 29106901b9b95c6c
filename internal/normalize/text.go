package normalize

import "strings"

// Text collapses runs of whitespace within each line to single spaces and
// trims line ends. Blank lines stay blank and line order is preserved, so
// line-oriented scanning downstream sees a canonical form. Idempotent.
func Text(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}
