package model

import "time"

// PatientInfo is the parsed result for a single chart export. It is
// constructed once by the parsing pipeline and never mutated; a reviewer
// correcting a low-confidence parse builds a fresh value with Confidence 1.0.
type PatientInfo struct {
	FirstName       string
	LastName        string
	AppointmentDate *time.Time // nil when no date was found
	DateCode        string     // e.g. "DOI010125"; empty when absent
	Confidence      float64    // 0.0 to 1.0
}

// IsComplete reports whether both name parts and an effective date
// (appointment date or date code) are present.
func (p *PatientInfo) IsComplete() bool {
	return p.FirstName != "" && p.LastName != "" &&
		(p.AppointmentDate != nil || p.DateCode != "")
}

// NeedsReview reports whether the parse should go to a human instead of
// the automated rename path.
func (p *PatientInfo) NeedsReview() bool {
	return p.Confidence < 0.9 || !p.IsComplete()
}
