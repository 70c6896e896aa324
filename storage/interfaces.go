package storage

import (
	"context"

	"github.com/poiesic/staffmatch/core"
)

// EmployeeRepository provides operations for managing the employee directory.
// Implementations must be thread-safe and support concurrent access.
//
// The repository is the durable record store; queries never read it directly.
// Snapshots are built by reading the full record set and are served from
// memory, so per-query latency does not depend on the backend.
type EmployeeRepository interface {
	// PutEmployees inserts or replaces employee records by ID.
	// Records must already be validated; the repository does not re-validate.
	PutEmployees(ctx context.Context, records ...*core.EmployeeRecord) error

	// GetEmployee retrieves a single employee record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetEmployee(ctx context.Context, id core.ID) (*core.EmployeeRecord, error)

	// GetEmployees retrieves multiple employee records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetEmployees(ctx context.Context, ids ...core.ID) ([]*core.EmployeeRecord, error)

	// AllEmployees retrieves every employee record, ordered by ascending ID.
	AllEmployees(ctx context.Context) ([]*core.EmployeeRecord, error)

	// DeleteEmployees removes employee records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteEmployees(ctx context.Context, ids ...core.ID) error

	// Count returns the number of stored employee records.
	Count(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
