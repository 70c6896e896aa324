package query

import (
	"testing"

	"github.com/poiesic/staffmatch/core"
	"github.com/stretchr/testify/assert"
)

func filterTestRecord() *core.EmployeeRecord {
	return &core.EmployeeRecord{
		Id:              1,
		Name:            "Alice Johnson",
		Skills:          []string{"Python", "Django", "Machine Learning"},
		ExperienceYears: 6,
		Availability:    core.AvailabilityAvailable,
		Department:      "Engineering",
	}
}

func TestMatches(t *testing.T) {
	record := filterTestRecord()
	three, five, nine := 3, 5, 9

	tests := []struct {
		name    string
		filters *core.QueryFilters
		want    bool
	}{
		{"nil filters match everything", nil, true},
		{"empty filters match everything", &core.QueryFilters{}, true},
		{"single skill present", &core.QueryFilters{Skills: []string{"Python"}}, true},
		{"skill case insensitive", &core.QueryFilters{Skills: []string{"python"}}, true},
		{"all skills must match", &core.QueryFilters{Skills: []string{"Python", "Rust"}}, false},
		{"multiple skills all present", &core.QueryFilters{Skills: []string{"Python", "Django"}}, true},
		{"experience min satisfied", &core.QueryFilters{ExperienceMin: &three}, true},
		{"experience min at boundary", &core.QueryFilters{ExperienceMin: &five}, true},
		{"experience min too high", &core.QueryFilters{ExperienceMin: &nine}, false},
		{"experience max satisfied", &core.QueryFilters{ExperienceMax: &nine}, true},
		{"experience max too low", &core.QueryFilters{ExperienceMax: &three}, false},
		{"department match", &core.QueryFilters{Department: "Engineering"}, true},
		{"department case insensitive", &core.QueryFilters{Department: "engineering"}, true},
		{"department mismatch", &core.QueryFilters{Department: "Design"}, false},
		{"availability match", &core.QueryFilters{Availability: core.AvailabilityAvailable}, true},
		{"availability mismatch", &core.QueryFilters{Availability: core.AvailabilityBusy}, false},
		{
			"combined constraints must all hold",
			&core.QueryFilters{
				Skills:        []string{"Python"},
				ExperienceMin: &three,
				Department:    "Engineering",
				Availability:  core.AvailabilityBusy,
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(record, tt.filters))
		})
	}
}

func TestMatchScore(t *testing.T) {
	record := filterTestRecord()
	nine := 9

	t.Run("no constraints scores one", func(t *testing.T) {
		assert.Equal(t, float32(1.0), MatchScore(record, nil))
		assert.Equal(t, float32(1.0), MatchScore(record, &core.QueryFilters{}))
	})

	t.Run("fractional score", func(t *testing.T) {
		filters := &core.QueryFilters{
			Skills:        []string{"Python", "Rust"}, // 1 of 2
			ExperienceMin: &nine,                      // 0 of 1
			Department:    "Engineering",              // 1 of 1
		}
		assert.InDelta(t, 0.5, MatchScore(record, filters), 1e-6)
	})

	t.Run("full match scores one", func(t *testing.T) {
		filters := &core.QueryFilters{
			Skills:       []string{"Python"},
			Department:   "Engineering",
			Availability: core.AvailabilityAvailable,
		}
		assert.Equal(t, float32(1.0), MatchScore(record, filters))
	})

	t.Run("nil record scores all constraints unmet", func(t *testing.T) {
		assert.Equal(t, float32(1.0), MatchScore(nil, &core.QueryFilters{Skills: []string{"Go"}}))
	})
}

func TestCombinedScore(t *testing.T) {
	record := filterTestRecord()

	t.Run("pools constraints from both sets", func(t *testing.T) {
		explicit := &core.QueryFilters{Skills: []string{"Python"}}        // 1 of 1
		extracted := &core.QueryFilters{Department: "Design"}             // 0 of 1
		assert.InDelta(t, 0.5, CombinedScore(record, explicit, extracted), 1e-6)
	})

	t.Run("no constraints anywhere scores one", func(t *testing.T) {
		assert.Equal(t, float32(1.0), CombinedScore(record, nil, nil))
		assert.Equal(t, float32(1.0), CombinedScore(record, &core.QueryFilters{}, &core.QueryFilters{}))
	})

	t.Run("one nil set", func(t *testing.T) {
		extracted := &core.QueryFilters{Skills: []string{"Django", "Rust"}}
		assert.InDelta(t, 0.5, CombinedScore(record, nil, extracted), 1e-6)
	})
}
