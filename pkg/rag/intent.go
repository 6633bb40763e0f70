package rag

import "strings"

// greetingPatterns are matched case-insensitively against the query,
// either exactly or as a prefix.
var greetingPatterns = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	"what is your purpose", "who are you", "what do you do",
	"what can you do", "how can you help", "what are you for", "introduce yourself",
	"what is this", "what is this app", "what is this about",
}

// IsGreetingOrIntroduction reports whether the query is a greeting or
// introductory question rather than a substantive one. A query also
// counts as a greeting when it opens the conversation and has at most
// three words. Pure string check, no model call.
func IsGreetingOrIntroduction(query string, historyLen int) bool {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	for _, pattern := range greetingPatterns {
		if queryLower == pattern || strings.HasPrefix(queryLower, pattern) {
			return true
		}
	}

	if historyLen == 0 && len(strings.Fields(query)) <= 3 {
		return true
	}

	return false
}
