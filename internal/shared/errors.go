package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Sheet errors
	ErrFetchFailed = fmt.Errorf("failed to fetch sheet")
	ErrReadFailed  = fmt.Errorf("failed to read sheet")

	// Persistence errors
	ErrDatabaseDisabled = fmt.Errorf("database disabled")
	ErrNotFound         = fmt.Errorf("record not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
