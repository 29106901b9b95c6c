package model

// FileFormat selects the output filename convention.
type FileFormat string

const (
	CurrentDischarge     FileFormat = "current_discharge"
	ApptBilling          FileFormat = "appt_billing"
	ApptBillingEval      FileFormat = "appt_billing_eval"
	ApptBillingProgress  FileFormat = "appt_billing_progress"
	ApptBillingDischarge FileFormat = "appt_billing_discharge"
)

// FormatSpec describes how a FileFormat renders its date and suffix.
type FormatSpec struct {
	UseCurrentDate bool
	Suffix         string
}

// AllFormats lists the supported filename formats in canonical order.
var AllFormats = []FileFormat{
	CurrentDischarge,
	ApptBilling,
	ApptBillingEval,
	ApptBillingProgress,
	ApptBillingDischarge,
}

var formatSpecs = map[FileFormat]FormatSpec{
	CurrentDischarge:     {UseCurrentDate: true, Suffix: "PT Chart Note"},
	ApptBilling:          {UseCurrentDate: false, Suffix: "PT Note"},
	ApptBillingEval:      {UseCurrentDate: false, Suffix: "PT Eval Note"},
	ApptBillingProgress:  {UseCurrentDate: false, Suffix: "PT Progress Note"},
	ApptBillingDischarge: {UseCurrentDate: false, Suffix: "PT Discharge Note"},
}

// Spec returns the rendering spec for f. Unknown values map to the
// ApptBilling spec so callers degrade instead of failing.
func (f FileFormat) Spec() FormatSpec {
	if s, ok := formatSpecs[f]; ok {
		return s
	}
	return formatSpecs[ApptBilling]
}

// ParseFileFormat maps a caller-supplied string onto a FileFormat, falling
// back to ApptBilling. ok reports whether s named a known format.
func ParseFileFormat(s string) (FileFormat, bool) {
	f := FileFormat(s)
	if _, known := formatSpecs[f]; known {
		return f, true
	}
	return ApptBilling, false
}
