package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/staffmatch/core"
	"github.com/poiesic/staffmatch/storage"
)

// EmployeeRepository implements storage.EmployeeRepository for BadgerDB.
type EmployeeRepository struct {
	backend *Backend
}

var _ storage.EmployeeRepository = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(backend *Backend) (*EmployeeRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &EmployeeRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is closed separately.
func (r *EmployeeRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *EmployeeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutEmployees inserts or replaces employee records by ID.
func (r *EmployeeRepository) PutEmployees(ctx context.Context, records ...*core.EmployeeRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeEmployeeKey(uint64(record.Id))
			value := storage.MarshalEmployeeRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEmployee retrieves a single employee record by ID.
func (r *EmployeeRepository) GetEmployee(ctx context.Context, id core.ID) (*core.EmployeeRecord, error) {
	var record *core.EmployeeRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = r.readEmployee(tx, makeEmployeeKey(uint64(id)))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, storage.ErrNotFound
	}
	return record, nil
}

// GetEmployees retrieves multiple employee records by their IDs.
// Missing records are skipped without error.
func (r *EmployeeRepository) GetEmployees(ctx context.Context, ids ...core.ID) ([]*core.EmployeeRecord, error) {
	records := make([]*core.EmployeeRecord, 0, len(ids))

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := r.readEmployee(tx, makeEmployeeKey(uint64(id)))
			if err != nil {
				return err
			}
			if record != nil {
				records = append(records, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// AllEmployees retrieves every employee record in ascending ID order.
// Key encoding guarantees the iteration order; no post-sort is needed.
func (r *EmployeeRepository) AllEmployees(ctx context.Context) ([]*core.EmployeeRecord, error) {
	var records []*core.EmployeeRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(employeeRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			err := item.Value(func(val []byte) error {
				record, err := storage.UnmarshalEmployeeRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteEmployees removes employee records by their IDs.
func (r *EmployeeRepository) DeleteEmployees(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEmployeeKey(uint64(id))

			// Verify existence so missing IDs surface as ErrNotFound
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of stored employee records.
func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(employeeRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readEmployee reads a record by key within a transaction.
// Returns (nil, nil) when the key does not exist.
func (r *EmployeeRepository) readEmployee(tx *badger.Txn, key []byte) (*core.EmployeeRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.EmployeeRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalEmployeeRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
