package badger

import (
	"encoding/binary"
)

// Key prefixes for different data types
const (
	employeeRecordPrefix = "emprec"
)

// makeEmployeeKey generates a key for an employee record by ID.
// The ID is written in BigEndian order so lexicographic iteration over the
// prefix yields records in ascending ID order.
func makeEmployeeKey(id uint64) []byte {
	prefix := employeeRecordPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], id)
	return buf
}
