package parse

import (
	"testing"
	"time"
)

const sampleFilename = "HealthStre_Chart_1_TP_20251218_88209-2.pdf"

func TestPatient_RoundTrip(t *testing.T) {
	info := Patient("Chart\nTest Patient 1\nDecember 18, 2025", "")

	if info.FirstName != "Test" || info.LastName != "Patient" {
		t.Errorf("name = %q %q, want Test Patient", info.FirstName, info.LastName)
	}
	if info.AppointmentDate == nil {
		t.Fatal("appointment date not found")
	}
	want := time.Date(2025, time.December, 18, 0, 0, 0, 0, time.UTC)
	if !info.AppointmentDate.Equal(want) {
		t.Errorf("date = %v, want %v", info.AppointmentDate, want)
	}
	if info.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", info.Confidence)
	}
	if info.DateCode != "" {
		t.Errorf("date code = %q, want none", info.DateCode)
	}
	if info.NeedsReview() {
		t.Error("complete high-confidence parse should not need review")
	}
}

func TestPatient_AnchorMissing(t *testing.T) {
	info := Patient("Some random text without patient info\nDecember 18, 2025", "")

	if info.FirstName != "" || info.LastName != "" {
		t.Errorf("name = %q %q, want empty", info.FirstName, info.LastName)
	}
	if info.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5 (date only)", info.Confidence)
	}
	if !info.NeedsReview() {
		t.Error("incomplete parse should need review")
	}
}

func TestPatient_NothingFound(t *testing.T) {
	info := Patient("no anchor\nand no usable content", "")
	if info.Confidence != 0.0 {
		t.Errorf("confidence = %v, want 0.0", info.Confidence)
	}
}

func TestPatient_AnchorAtEndOfText(t *testing.T) {
	info := Patient("intro line\nChart", "")
	if info.FirstName != "" || info.LastName != "" {
		t.Errorf("name = %q %q, want empty (no line after anchor)", info.FirstName, info.LastName)
	}
	if info.Confidence != 0.0 {
		t.Errorf("confidence = %v, want 0.0", info.Confidence)
	}
}

func TestPatient_SkipsBlankLinesAfterAnchor(t *testing.T) {
	info := Patient("Chart\n\n\nTest Patient 1\nDecember 18, 2025", "")
	if info.FirstName != "Test" || info.LastName != "Patient" {
		t.Errorf("name = %q %q, want Test Patient", info.FirstName, info.LastName)
	}
}

func TestPatient_AnchorCaseInsensitive(t *testing.T) {
	info := Patient("CHART\nTest Patient 1\nDecember 18, 2025", "")
	if info.FirstName != "Test" || info.LastName != "Patient" {
		t.Errorf("name = %q %q, want Test Patient", info.FirstName, info.LastName)
	}
}

func TestPatient_SingleToken(t *testing.T) {
	info := Patient("Chart\nCher\nDecember 18, 2025", "")
	if info.FirstName != "" || info.LastName != "Cher" {
		t.Errorf("name = %q %q, want empty first and Cher last", info.FirstName, info.LastName)
	}
	if !info.NeedsReview() {
		t.Error("missing first name should need review")
	}
}

func TestPatient_DateCodes(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		filename string

		wantFirst string
		wantLast  string
		wantCode  string
	}{
		{
			name:     "doi with initials hint",
			text:     "Chart\nTest Patient 1 (DOI:010125)\nDecember 18, 2025",
			filename: sampleFilename,
			wantFirst: "Test", wantLast: "Patient 1", wantCode: "DOI010125",
		},
		{
			name:     "dob with initials hint",
			text:     "Chart\nTest Patient 1 (DOB:031590)\nDecember 18, 2025",
			filename: sampleFilename,
			wantFirst: "Test", wantLast: "Patient 1", wantCode: "DOB031590",
		},
		{
			name:      "space after colon",
			text:      "Chart\nTest Patient 1 (DOI: 010125)\nDecember 18, 2025",
			wantFirst: "Test", wantLast: "Patient 1", wantCode: "DOI010125",
		},
		{
			name:      "lowercase normalized",
			text:      "Chart\nTest Patient 1 (doi:010125)\nDecember 18, 2025",
			wantFirst: "Test", wantLast: "Patient 1", wantCode: "DOI010125",
		},
		{
			name:      "slash separated digits",
			text:      "Chart\nTest Patient 1 (DOI:01/01/25)\nDecember 18, 2025",
			wantFirst: "Test", wantLast: "Patient 1", wantCode: "DOI010125",
		},
		{
			name:      "dash separated digits",
			text:      "Chart\nTest Patient 1 (DOB:03-15-90)\nDecember 18, 2025",
			wantFirst: "Test", wantLast: "Patient 1", wantCode: "DOB031590",
		},
		{
			// No annotation: the trailing integer is a record
			// disambiguator and gets stripped.
			name:      "no annotation strips trailing number",
			text:      "Chart\nTest Patient 1\nDecember 18, 2025",
			wantFirst: "Test", wantLast: "Patient", wantCode: "",
		},
		{
			// With an annotation the compound last name keeps its
			// number even without an initials hint.
			name:      "compound last name without hint",
			text:      "Chart\nTest Patient 1 (DOI:010125)\nDecember 18, 2025",
			wantFirst: "Test", wantLast: "Patient 1", wantCode: "DOI010125",
		},
		{
			// Two tokens after annotation removal: no compound rule.
			name:      "two tokens with annotation",
			text:      "Chart\nTest Patient (DOI:010125)\nDecember 18, 2025",
			wantFirst: "Test", wantLast: "Patient", wantCode: "DOI010125",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := Patient(tc.text, tc.filename)
			if info.FirstName != tc.wantFirst || info.LastName != tc.wantLast {
				t.Errorf("name = %q %q, want %q %q",
					info.FirstName, info.LastName, tc.wantFirst, tc.wantLast)
			}
			if info.DateCode != tc.wantCode {
				t.Errorf("date code = %q, want %q", info.DateCode, tc.wantCode)
			}
		})
	}
}

func TestPatient_DateCodeAloneIsComplete(t *testing.T) {
	info := Patient("Chart\nTest Patient 1 (DOI:010125)\nno date line here", sampleFilename)
	if info.AppointmentDate != nil {
		t.Fatal("expected no appointment date")
	}
	if info.DateCode != "DOI010125" {
		t.Fatalf("date code = %q", info.DateCode)
	}
	if info.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 (date code is an effective date)", info.Confidence)
	}
	if !info.IsComplete() {
		t.Error("name plus date code should be complete")
	}
}

func TestPatient_InitialsSplit(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		filename  string
		wantFirst string
		wantLast  string
	}{
		{
			name:      "fallback last token rule",
			text:      "Chart\nMary Jane Watson 2\nJanuary 1, 2024",
			wantFirst: "Mary Jane", wantLast: "Watson",
		},
		{
			// Hint "MJ" picks the split after "Mary", overriding the
			// default last-token rule.
			name:      "hint disagrees with fallback and wins",
			text:      "Chart\nMary Jane Watson 2\nJanuary 1, 2024",
			filename:  "HealthStre_Chart_1_MJ_20240101_12345-1.pdf",
			wantFirst: "Mary", wantLast: "Jane Watson",
		},
		{
			name:      "hint agrees with fallback",
			text:      "Chart\nMary Jane Watson 2\nJanuary 1, 2024",
			filename:  "HealthStre_Chart_1_MW_20240101_12345-1.pdf",
			wantFirst: "Mary Jane", wantLast: "Watson",
		},
		{
			// Multiple split points match: the smallest first name wins.
			name:      "smallest matching split wins",
			text:      "Chart\nMae Mona Mills 3\nJanuary 1, 2024",
			filename:  "HealthStre_Chart_1_MM_20240101_12345-1.pdf",
			wantFirst: "Mae", wantLast: "Mona Mills",
		},
		{
			// Hint matches no split point: silently fall back.
			name:      "unmatched hint falls back",
			text:      "Chart\nMary Jane Watson 2\nJanuary 1, 2024",
			filename:  "HealthStre_Chart_1_XX_20240101_12345-1.pdf",
			wantFirst: "Mary Jane", wantLast: "Watson",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := Patient(tc.text, tc.filename)
			if info.FirstName != tc.wantFirst || info.LastName != tc.wantLast {
				t.Errorf("name = %q %q, want %q %q",
					info.FirstName, info.LastName, tc.wantFirst, tc.wantLast)
			}
		})
	}
}

func TestPatient_AllMonths(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"Chart\nJohn Doe 1\nJanuary 5, 2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nFebruary 28, 2024", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nMarch 15, 2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nApril 1, 2024", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nMay 20, 2024", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nJune 30, 2024", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nJuly 4, 2024", time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nAugust 15, 2024", time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nSeptember 21, 2024", time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nOctober 31, 2024", time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nNovember 11, 2024", time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)},
		{"Chart\nJohn Doe 1\nDecember 25, 2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		info := Patient(tc.text, "")
		if info.AppointmentDate == nil {
			t.Errorf("%q: date not found", tc.text)
			continue
		}
		if !info.AppointmentDate.Equal(tc.want) {
			t.Errorf("%q: date = %v, want %v", tc.text, info.AppointmentDate, tc.want)
		}
	}
}

func TestPatient_InvalidCalendarDate(t *testing.T) {
	info := Patient("Chart\nJohn Doe 1\nFebruary 30, 2024", "")
	if info.AppointmentDate != nil {
		t.Fatalf("February 30 should not parse, got %v", info.AppointmentDate)
	}
	if info.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", info.Confidence)
	}
}

func TestPatient_FirstDateWins(t *testing.T) {
	info := Patient("Chart\nJohn Doe 1\nJanuary 5, 2024\nMarch 9, 2024", "")
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if info.AppointmentDate == nil || !info.AppointmentDate.Equal(want) {
		t.Errorf("date = %v, want first match %v", info.AppointmentDate, want)
	}
}

func TestInitialsFromFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"HealthStre_Chart_1_TP_20251218_88209-2.pdf", "TP"},
		{"HealthStre_Chart_1_MJ_20240101_12345-1.pdf", "MJ"},
		{"random.pdf", ""},
		{"HealthStre_Chart_1_tp_20251218_88209-2.pdf", ""}, // lowercase not a hint
		{"_AB_2025121_x.pdf", ""},                          // seven digits
		{"", ""},
	}

	for _, tc := range cases {
		if got := InitialsFromFilename(tc.filename); got != tc.want {
			t.Errorf("InitialsFromFilename(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestConfidence(t *testing.T) {
	cases := []struct {
		nameFound, dateFound, hadInitials bool
		want                              float64
	}{
		{true, true, false, 1.0},
		{true, true, true, 1.0},
		{true, false, false, 0.5},
		{false, true, false, 0.5},
		{false, false, false, 0.0},
		{false, false, true, 0.0},
	}

	for _, tc := range cases {
		got := Confidence(tc.nameFound, tc.dateFound, tc.hadInitials)
		if got != tc.want {
			t.Errorf("Confidence(%v, %v, %v) = %v, want %v",
				tc.nameFound, tc.dateFound, tc.hadInitials, got, tc.want)
		}
	}
}
