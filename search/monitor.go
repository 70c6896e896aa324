package search

import (
	"github.com/poiesic/staffmatch/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string, filters *core.QueryFilters)
	AfterSemanticSearch(candidates []*core.SearchResult)
	AfterExtraction(extracted *core.QueryFilters)
	HardFiltered(record *core.EmployeeRecord)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ *core.QueryFilters)        {}
func (n *noopMonitor) AfterSemanticSearch(_ []*core.SearchResult)  {}
func (n *noopMonitor) AfterExtraction(_ *core.QueryFilters)        {}
func (n *noopMonitor) HardFiltered(_ *core.EmployeeRecord)         {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)               {}
