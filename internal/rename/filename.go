// Package rename renders canonical chart filenames and moves files into
// place with collision-safe placement.
package rename

import (
	"errors"
	"fmt"
	"time"

	"github.com/gyeh/chartrename/internal/model"
	"github.com/gyeh/chartrename/internal/normalize"
)

// ErrIncompleteData means no usable date exists for the requested format:
// the parse produced neither a date code nor an appointment date, and the
// format does not use the current date.
var ErrIncompleteData = errors.New("no usable date for filename")

const mmddyy = "010206"

// BuildFilename renders the canonical output filename for a parsed chart:
//
//	Last, First DATESTR Suffix.pdf
//
// DATESTR is the date code when one was extracted ("DOI010125", plus an
// MMDDYY rendering of the supplementary date when one is available),
// otherwise an MMDDYY date chosen by the format. The whole rendered name is
// stripped of filesystem-reserved characters.
func BuildFilename(info *model.PatientInfo, format model.FileFormat) (string, error) {
	return buildFilename(info, format, time.Now())
}

func buildFilename(info *model.PatientInfo, format model.FileFormat, now time.Time) (string, error) {
	spec := format.Spec()

	var dateStr string
	switch {
	case info.DateCode != "":
		dateStr = info.DateCode
		if spec.UseCurrentDate {
			dateStr += " " + now.Format(mmddyy)
		} else if info.AppointmentDate != nil {
			dateStr += " " + info.AppointmentDate.Format(mmddyy)
		}
	case spec.UseCurrentDate:
		dateStr = now.Format(mmddyy)
	case info.AppointmentDate != nil:
		dateStr = info.AppointmentDate.Format(mmddyy)
	default:
		return "", ErrIncompleteData
	}

	name := fmt.Sprintf("%s, %s %s %s.pdf", info.LastName, info.FirstName, dateStr, spec.Suffix)
	return normalize.Filename(name), nil
}
