// Package parse extracts patient identity and appointment fields from the
// text layer of a clinic chart export.
//
// The export format is loosely structured, so extraction is anchor-based
// rather than grammatical: the line "Chart" marks the name region and the
// first "MonthName DD, YYYY" occurrence is the appointment date. Extraction
// never fails on malformed text; missing pieces degrade to empty fields and
// a lower confidence score so the caller can route the document to review.
package parse

import (
	"github.com/gyeh/chartrename/internal/model"
	"github.com/gyeh/chartrename/internal/normalize"
)

// Patient parses patient information from extracted chart text.
// sourceFilename, when non-empty, supplies the initials hint used to
// disambiguate the first/last name split.
func Patient(text, sourceFilename string) *model.PatientInfo {
	text = normalize.Text(text)

	var hint string
	if sourceFilename != "" {
		hint = InitialsFromFilename(sourceFilename)
	}

	name := extractName(text, hint)
	date, dateFound := extractDate(text)

	info := &model.PatientInfo{
		FirstName: name.First,
		LastName:  name.Last,
		DateCode:  name.DateCode,
	}
	if dateFound {
		info.AppointmentDate = &date
	}
	effectiveDate := dateFound || name.DateCode != ""
	info.Confidence = Confidence(name.Found, effectiveDate, hint != "")
	return info
}
