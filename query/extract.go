// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// Experience phrasing recognized by extraction. "3+ years", "at least 3
// years" and "over 3 years" set a minimum; "under 3 years" and "less than
// 3 years" set a maximum; a bare "3 years" sets a minimum.
var (
	expMinPattern  = regexp.MustCompile(`(\d+)\s*\+\s*(?:years?|yrs?)`)
	expRangeHint   = regexp.MustCompile(`(at least|more than|over|minimum(?: of)?|under|less than|fewer than|up to|maximum(?: of)?)\s+(\d+)\s*(?:years?|yrs?)`)
	expBarePattern = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)
)

// Extract derives soft constraints from free text by lexical matching
// against the snapshot's vocabulary. It is deliberately not a natural
// language parser: tokens outside the known vocabulary never constrain the
// query (fail-open), and a text with no recognizable terms yields an empty
// filter set.
func Extract(text string, vocab *Vocabulary) *core.QueryFilters {
	filters := &core.QueryFilters{}
	if text == "" || vocab == nil {
		return filters
	}

	normalized := normalizeText(text)

	for _, skill := range vocab.Skills() {
		if containsPhrase(normalized, skill) {
			canonical, _ := vocab.CanonicalSkill(skill)
			filters.Skills = append(filters.Skills, canonical)
		}
	}

	for _, dept := range vocab.Departments() {
		if containsPhrase(normalized, dept) {
			canonical, _ := vocab.CanonicalDepartment(dept)
			filters.Department = canonical
			break
		}
	}

	extractExperience(normalized, filters)
	extractAvailability(normalized, filters)

	return filters
}

// extractExperience recognizes numeric experience thresholds.
func extractExperience(normalized string, filters *core.QueryFilters) {
	if m := expRangeHint.FindStringSubmatch(normalized); m != nil {
		years, err := strconv.Atoi(m[2])
		if err != nil {
			return
		}
		switch m[1] {
		case "under", "less than", "fewer than", "up to", "maximum", "maximum of":
			filters.ExperienceMax = &years
		default:
			filters.ExperienceMin = &years
		}
		return
	}

	if m := expMinPattern.FindStringSubmatch(normalized); m != nil {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		filters.ExperienceMin = &years
		return
	}

	if m := expBarePattern.FindStringSubmatch(normalized); m != nil {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		filters.ExperienceMin = &years
	}
}

// extractAvailability recognizes explicit availability wording. "available"
// wins when both appear, matching how requests are usually phrased
// ("available, not busy").
func extractAvailability(normalized string, filters *core.QueryFilters) {
	for _, term := range []string{"available", "availability", "free now"} {
		if strings.Contains(normalized, term) {
			filters.Availability = core.AvailabilityAvailable
			return
		}
	}
	if containsPhrase(normalized, "busy") {
		filters.Availability = core.AvailabilityBusy
	}
}
