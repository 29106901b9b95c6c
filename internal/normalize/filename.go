package normalize

import "strings"

// filenameStripper removes characters that are reserved on at least one of
// the filesystems the output may land on (Windows, macOS, Linux).
var filenameStripper = strings.NewReplacer(
	"/", "",
	"\\", "",
	":", "",
	"<", "",
	">", "",
	`"`, "",
	"|", "",
	"?", "",
	"*", "",
)

// Filename strips filesystem-reserved characters from a rendered filename.
// Applied to the whole name, not just the patient fields.
func Filename(name string) string {
	return filenameStripper.Replace(name)
}
