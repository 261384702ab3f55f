package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"

	// Caller misuse of the engine (nonsensical month/year), as opposed to
	// data noise in shift records, which is tolerated and never an error.
	CodeInvalidConfiguration = "INVALID_CONFIGURATION"
)
