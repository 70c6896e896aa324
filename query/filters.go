package query

import (
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// Matches reports whether the record satisfies every constraint in filters.
// A nil or empty filter set matches every record. Skills use AND semantics:
// each requested skill must be present. All string comparisons are
// case-insensitive.
func Matches(record *core.EmployeeRecord, filters *core.QueryFilters) bool {
	satisfied, total := satisfiedCount(record, filters)
	return satisfied == total
}

// MatchScore returns the fraction of requested constraints the record
// satisfies, in [0,1]. With no constraints requested the score is 1.0.
func MatchScore(record *core.EmployeeRecord, filters *core.QueryFilters) float32 {
	satisfied, total := satisfiedCount(record, filters)
	if total == 0 {
		return 1.0
	}
	return float32(satisfied) / float32(total)
}

// CombinedScore returns the fraction of constraints satisfied across two
// filter sets, typically the explicit filters and the heuristically
// extracted ones. With no constraints in either set the score is 1.0.
func CombinedScore(record *core.EmployeeRecord, explicit, extracted *core.QueryFilters) float32 {
	s1, t1 := satisfiedCount(record, explicit)
	s2, t2 := satisfiedCount(record, extracted)
	if t1+t2 == 0 {
		return 1.0
	}
	return float32(s1+s2) / float32(t1+t2)
}

// satisfiedCount evaluates each individual constraint and returns how many
// are satisfied out of how many were requested.
func satisfiedCount(record *core.EmployeeRecord, filters *core.QueryFilters) (satisfied, total int) {
	if record == nil || filters == nil {
		return 0, 0
	}

	for _, skill := range filters.Skills {
		total++
		if record.HasSkill(skill) {
			satisfied++
		}
	}

	if filters.ExperienceMin != nil {
		total++
		if record.ExperienceYears >= *filters.ExperienceMin {
			satisfied++
		}
	}
	if filters.ExperienceMax != nil {
		total++
		if record.ExperienceYears <= *filters.ExperienceMax {
			satisfied++
		}
	}

	if filters.Department != "" {
		total++
		if strings.EqualFold(record.Department, filters.Department) {
			satisfied++
		}
	}

	if filters.Availability != 0 {
		total++
		if record.Availability == filters.Availability {
			satisfied++
		}
	}

	return satisfied, total
}
