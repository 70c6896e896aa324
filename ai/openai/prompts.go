package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

const systemPrompt = "You are a helpful HR assistant."

const recommendationPromptTemplate = `You are an HR assistant helping to find the right employees for projects.
A user asked: %q

%s

Please provide a helpful, natural response recommending the most suitable candidates
and explaining why they would be a good fit. Be conversational and highlight their
relevant experience and skills.`

// buildCandidateContext renders ranked candidates into the context block
// supplied to the generative model.
func buildCandidateContext(candidates []*core.SearchResult) string {
	var b strings.Builder
	b.WriteString("Based on the query, here are the relevant employees:\n")
	for _, c := range candidates {
		emp := c.Record
		fmt.Fprintf(&b, "\n**%s** (%d years experience)\n", emp.Name, emp.ExperienceYears)
		fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(emp.Skills, ", "))
		fmt.Fprintf(&b, "- Projects: %s\n", strings.Join(emp.Projects, ", "))
		fmt.Fprintf(&b, "- Department: %s\n", emp.Department)
		fmt.Fprintf(&b, "- Specialization: %s\n", emp.Specialization)
		fmt.Fprintf(&b, "- Availability: %s\n", emp.Availability)
	}
	return b.String()
}

// buildRecommendationPrompt builds the user prompt for a staffing query.
func buildRecommendationPrompt(query string, candidates []*core.SearchResult) string {
	return fmt.Sprintf(recommendationPromptTemplate, query, buildCandidateContext(candidates))
}
