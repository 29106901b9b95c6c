package parse

// Confidence scores a parse outcome: 1.0 when both the name and an
// effective date were found, 0.5 when exactly one was, 0.0 otherwise.
// hadInitials is accepted for future weighting but does not currently
// alter the score.
func Confidence(nameFound, dateFound, hadInitials bool) float64 {
	switch {
	case nameFound && dateFound:
		return 1.0
	case nameFound || dateFound:
		return 0.5
	default:
		return 0.0
	}
}
