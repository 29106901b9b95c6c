package model

import (
	"testing"
	"time"
)

func TestFileFormat_Spec(t *testing.T) {
	cases := []struct {
		format  FileFormat
		current bool
		suffix  string
	}{
		{CurrentDischarge, true, "PT Chart Note"},
		{ApptBilling, false, "PT Note"},
		{ApptBillingEval, false, "PT Eval Note"},
		{ApptBillingProgress, false, "PT Progress Note"},
		{ApptBillingDischarge, false, "PT Discharge Note"},
		{FileFormat("bogus"), false, "PT Note"}, // unknown degrades to ApptBilling
	}

	for _, tc := range cases {
		spec := tc.format.Spec()
		if spec.UseCurrentDate != tc.current {
			t.Errorf("%s: UseCurrentDate = %v, want %v", tc.format, spec.UseCurrentDate, tc.current)
		}
		if spec.Suffix != tc.suffix {
			t.Errorf("%s: Suffix = %q, want %q", tc.format, spec.Suffix, tc.suffix)
		}
	}
}

func TestParseFileFormat(t *testing.T) {
	for _, f := range AllFormats {
		got, ok := ParseFileFormat(string(f))
		if !ok || got != f {
			t.Errorf("ParseFileFormat(%q) = %v, %v", f, got, ok)
		}
	}

	got, ok := ParseFileFormat("bogus")
	if ok || got != ApptBilling {
		t.Errorf("ParseFileFormat(bogus) = %v, %v, want ApptBilling, false", got, ok)
	}
}

func TestPatientInfo_IsComplete(t *testing.T) {
	date := time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		info PatientInfo
		want bool
	}{
		{"all fields", PatientInfo{FirstName: "Test", LastName: "Patient", AppointmentDate: &date}, true},
		{"date code instead of date", PatientInfo{FirstName: "Test", LastName: "Patient", DateCode: "DOI010125"}, true},
		{"missing first", PatientInfo{LastName: "Patient", AppointmentDate: &date}, false},
		{"missing last", PatientInfo{FirstName: "Test", AppointmentDate: &date}, false},
		{"no date at all", PatientInfo{FirstName: "Test", LastName: "Patient"}, false},
	}

	for _, tc := range cases {
		if got := tc.info.IsComplete(); got != tc.want {
			t.Errorf("%s: IsComplete = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPatientInfo_NeedsReview(t *testing.T) {
	date := time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC)
	complete := PatientInfo{FirstName: "Test", LastName: "Patient", AppointmentDate: &date}

	high := complete
	high.Confidence = 1.0
	if high.NeedsReview() {
		t.Error("complete parse at 1.0 should not need review")
	}

	low := complete
	low.Confidence = 0.5
	if !low.NeedsReview() {
		t.Error("0.5 confidence should need review")
	}

	incomplete := PatientInfo{FirstName: "Test", Confidence: 1.0}
	if !incomplete.NeedsReview() {
		t.Error("incomplete parse should need review even at 1.0")
	}
}
