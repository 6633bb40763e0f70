package rag

import "strings"

const maxTitleWords = 6

// DefaultTitle is returned when neither the model nor the keyword scan
// produces a usable label.
const DefaultTitle = "Stoic Wisdom Discussion"

var stoicKeywords = []string{
	"virtue", "wisdom", "courage", "justice", "temperance",
	"stoic", "philosophy", "emotion", "resilience",
}

// SanitizeTitle strips surrounding quote characters from a model-
// generated title and hard-truncates it to six words.
func SanitizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.Trim(title, `"'`)

	words := strings.Fields(title)
	if len(words) > maxTitleWords {
		words = words[:maxTitleWords]
	}
	return strings.Join(words, " ")
}

// FallbackTitle derives a deterministic label from the user's question
// when title generation fails: the first stoic keyword found wins.
func FallbackTitle(question string) string {
	words := strings.Fields(strings.ToLower(question))
	for _, word := range words {
		for _, keyword := range stoicKeywords {
			if word == keyword {
				return "Stoic " + capitalize(keyword)
			}
		}
	}
	return DefaultTitle
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
