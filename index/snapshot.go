package index

import (
	"slices"
	"sync/atomic"

	"github.com/poiesic/staffmatch/core"
)

// Snapshot is one consistent, immutable pairing of the employee record set
// and its derived embedding vectors. Queries read a single snapshot
// start-to-finish; a rebuild publishes a brand-new snapshot and never
// mutates a published one.
type Snapshot struct {
	fingerprint core.ID
	records     []*core.EmployeeRecord // ascending ID order
	vectors     [][]float32            // unit vectors, parallel to records
	byID        map[core.ID]int
	dim         int
}

// emptySnapshot is served before the first build so readers never see nil.
var emptySnapshot = &Snapshot{byID: map[core.ID]int{}}

// Fingerprint returns the deterministic content fingerprint of the record set.
func (s *Snapshot) Fingerprint() core.ID {
	return s.fingerprint
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Records returns the records in ascending ID order.
// Callers must not modify the returned slice or the records.
func (s *Snapshot) Records() []*core.EmployeeRecord {
	return s.records
}

// Record returns the record with the given ID, or nil if absent.
func (s *Snapshot) Record(id core.ID) *core.EmployeeRecord {
	i, ok := s.byID[id]
	if !ok {
		return nil
	}
	return s.records[i]
}

// Dim returns the embedding dimension, or 0 for an empty snapshot.
func (s *Snapshot) Dim() int {
	return s.dim
}

// Search returns the k records most similar to the query vector by cosine
// similarity, highest first. Similarity ties are broken by ascending record
// ID so identical inputs always produce identical orderings. Similarities
// are clamped to [0,1]. An empty snapshot returns an empty slice.
//
// The directory is small, so exact brute-force comparison over every vector
// is used; at this scale it beats approximate structures on both accuracy
// and determinism.
func (s *Snapshot) Search(queryVector []float32, k int) []*core.SearchResult {
	if len(s.records) == 0 || k <= 0 {
		return []*core.SearchResult{}
	}
	if k > len(s.records) {
		k = len(s.records)
	}

	query := NormalizeVector(queryVector)

	results := make([]*core.SearchResult, len(s.records))
	for i, record := range s.records {
		results[i] = &core.SearchResult{
			Record:     record,
			Similarity: clampUnit(dotProduct(query, s.vectors[i])),
		}
	}

	// Sort by similarity descending, ties by ascending ID
	slices.SortFunc(results, func(a, b *core.SearchResult) int {
		if a.Similarity > b.Similarity {
			return -1
		}
		if a.Similarity < b.Similarity {
			return 1
		}
		if a.Record.Id < b.Record.Id {
			return -1
		}
		if a.Record.Id > b.Record.Id {
			return 1
		}
		return 0
	})

	return results[:k]
}

// Holder publishes snapshots with an atomic pointer swap. In-flight readers
// keep the snapshot they started with; a rebuild never blocks queries and a
// partially built snapshot is never visible.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a holder serving the empty snapshot.
func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(emptySnapshot)
	return h
}

// Current returns the currently published snapshot. Never nil.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Publish atomically replaces the published snapshot.
func (h *Holder) Publish(s *Snapshot) {
	if s == nil {
		s = emptySnapshot
	}
	h.current.Store(s)
}
