package commands

import "github.com/pivotal-cf/passkit/analyzer"

var issueSuggestions = []struct {
	issue      analyzer.Issue
	suggestion string
}{
	{analyzer.TooShort, "Use at least 12 characters."},
	{analyzer.ContainsSequence, "Avoid predictable sequences like 1234 or abcd."},
	{analyzer.ContainsRepetition, "Avoid repeating characters (aaa, !!!)."},
	{analyzer.CommonPassword, "Don't use common passwords."},
	{analyzer.ContainsPersonalInfo, "Don't include names, dates or other personal details."},
}

const mixClassesSuggestion = "Mix uppercase, lowercase, numbers, and symbols."

// Suggestions turns the issues of an analysis into advice, one line per
// issue kind, plus a general hint for the two weakest tiers.
func Suggestions(result analyzer.Result) []string {
	var suggestions []string

	for _, s := range issueSuggestions {
		if result.HasIssue(s.issue) {
			suggestions = append(suggestions, s.suggestion)
		}
	}

	if result.Classification.IsWeak() {
		suggestions = append(suggestions, mixClassesSuggestion)
	}

	return suggestions
}
