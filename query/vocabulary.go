package query

import (
	"sort"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// Vocabulary holds the known skills and departments of one snapshot,
// keyed by their normalized (lowercase) form. Heuristic extraction only
// recognizes terms present here; everything else is non-constraining.
type Vocabulary struct {
	skills      map[string]string // normalized -> canonical
	departments map[string]string
}

// NewVocabulary derives a vocabulary from a record set.
func NewVocabulary(records []*core.EmployeeRecord) *Vocabulary {
	v := &Vocabulary{
		skills:      make(map[string]string),
		departments: make(map[string]string),
	}
	for _, record := range records {
		for _, skill := range record.Skills {
			trimmed := strings.TrimSpace(skill)
			if trimmed != "" {
				v.skills[strings.ToLower(trimmed)] = trimmed
			}
		}
		dept := strings.TrimSpace(record.Department)
		if dept != "" {
			v.departments[strings.ToLower(dept)] = dept
		}
	}
	return v
}

// Skills returns the normalized skill terms in deterministic order.
func (v *Vocabulary) Skills() []string {
	keys := make([]string, 0, len(v.skills))
	for key := range v.skills {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Departments returns the normalized department terms in deterministic order.
func (v *Vocabulary) Departments() []string {
	keys := make([]string, 0, len(v.departments))
	for key := range v.departments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// CanonicalSkill returns the canonical spelling for a normalized skill term.
func (v *Vocabulary) CanonicalSkill(normalized string) (string, bool) {
	s, ok := v.skills[normalized]
	return s, ok
}

// CanonicalDepartment returns the canonical spelling for a normalized department term.
func (v *Vocabulary) CanonicalDepartment(normalized string) (string, bool) {
	d, ok := v.departments[normalized]
	return d, ok
}
