package staffmatch

import "errors"

var (
	// ErrNoValidRecords is returned when a load contains no record that
	// passes validation.
	ErrNoValidRecords = errors.New("no valid employee records to load")
)
