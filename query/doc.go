// Package query evaluates structured constraints against employee records
// and extracts soft constraints from free text.
//
// Explicit constraints (core.QueryFilters supplied by the caller) are hard:
// the search layer excludes any record that fails one. Constraints derived
// by Extract are soft: they contribute to the filter-match score but never
// exclude a record. Extraction is lexical matching against a vocabulary
// derived from the active snapshot and fails open — anything it does not
// recognize simply does not constrain the query.
package query
