package cli

// Default values for CLI flags and output.
const (
	// MaxDescriptionLength is the maximum length of a dataset description in listings.
	MaxDescriptionLength = 60
	// setCommandArgs is the number of arguments expected by config set.
	setCommandArgs = 2
)
