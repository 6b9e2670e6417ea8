package core

import "strings"

var (
	hardKeywords = []string{"median", "tree", "graph", "dynamic"}
	easyKeywords = []string{"sum", "array", "string"}
)

// GuessDifficulty classifies a problem by keywords in its title. Hard keywords
// win over easy ones. Use it only when no authoritative difficulty exists.
func GuessDifficulty(title string) Difficulty {
	lower := strings.ToLower(title)

	if containsAny(lower, hardKeywords) {
		return DifficultyHard
	}
	if containsAny(lower, easyKeywords) {
		return DifficultyEasy
	}
	return DifficultyMedium
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
