package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	ExtractError    = 3
	ReviewNeeded    = 4
	RenameError     = 5
	PartialSuccess  = 6
)
