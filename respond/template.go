package respond

import (
	"fmt"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// noMatchMessage is returned verbatim whenever a query produced no candidates.
const noMatchMessage = "I couldn't find any employees matching your criteria. Please try a different search query."

const (
	maxListedCandidates = 3
	maxSingleSkills     = 5
	maxListedSkills     = 3
)

// TemplateText renders a deterministic natural-language answer from the
// ranked candidates. The same query and candidates always produce the same
// text, and the text is never empty.
func TemplateText(query string, candidates []*core.SearchResult) string {
	switch len(candidates) {
	case 0:
		return noMatchMessage
	case 1:
		return singleCandidateText(query, candidates[0].Record)
	default:
		return candidateListText(query, candidates)
	}
}

func singleCandidateText(query string, record *core.EmployeeRecord) string {
	skills := joinLimited(record.Skills, maxSingleSkills)
	projects := strings.Join(record.Projects, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your query %q, I found an excellent candidate:\n\n", query)
	fmt.Fprintf(&b, "**%s** would be a strong fit for this role. They have %d years of experience and their skills include %s.\n\n",
		record.Name, record.ExperienceYears, skills)
	if projects != "" {
		fmt.Fprintf(&b, "They have worked on projects like: %s\n\n", projects)
	}
	fmt.Fprintf(&b, "Department: %s\n", record.Department)
	fmt.Fprintf(&b, "Specialization: %s\n", record.Specialization)
	fmt.Fprintf(&b, "Current availability: %s\n\n", record.Availability)
	b.WriteString("Would you like more details about their background or see other candidates?")
	return b.String()
}

func candidateListText(query string, candidates []*core.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on your query %q, I found %d excellent candidates:\n\n", query, len(candidates))

	listed := candidates
	if len(listed) > maxListedCandidates {
		listed = listed[:maxListedCandidates]
	}
	for i, candidate := range listed {
		record := candidate.Record
		fmt.Fprintf(&b, "**%d. %s** (%d years experience)\n", i+1, record.Name, record.ExperienceYears)
		fmt.Fprintf(&b, "- Key skills: %s\n", joinLimited(record.Skills, maxListedSkills))
		fmt.Fprintf(&b, "- Specialization: %s\n", record.Specialization)
		fmt.Fprintf(&b, "- Availability: %s\n\n", record.Availability)
	}

	if remaining := len(candidates) - maxListedCandidates; remaining > 0 {
		fmt.Fprintf(&b, "I found %d more candidates. Would you like to see them?", remaining)
	}

	return strings.TrimRight(b.String(), "\n")
}

func joinLimited(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
