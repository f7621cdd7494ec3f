package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	wordPattern       = regexp.MustCompile(`\S+`)
	structuralPattern = regexp.MustCompile(`[{}\[\]:,"]`)
)

// EstimateTokens gives a rough token count for a prompt or payload.
// Prose averages about 4 characters or 0.75 words per token. JSON is
// denser because most structural characters become tokens of their own.
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	baseEstimate := len(text) / 4
	wordEstimate := int(float64(len(wordPattern.FindAllString(text, -1))) * 1.3)
	estimate := (baseEstimate + wordEstimate) / 2

	// Quotes come in pairs, so count half of the structural characters.
	estimate += len(structuralPattern.FindAllString(text, -1)) / 2

	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

// FormatTokenCount formats the token count for display
func FormatTokenCount(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	} else if tokens < 10000 {
		return fmt.Sprintf("~%.1fK tokens", float64(tokens)/1000)
	} else if tokens < 1000000 {
		return fmt.Sprintf("~%.0fK tokens", float64(tokens)/1000)
	}
	return fmt.Sprintf("~%.1fM tokens", float64(tokens)/1000000)
}

// ContextLimit is the input budget assumed for generation requests.
const ContextLimit = 1048576

// GetTokenLimitStatus reports how much of limit the tokens use, as a
// percentage and a status of "good", "warning" or "danger". A limit of zero
// or less means ContextLimit.
func GetTokenLimitStatus(tokens, limit int) (percentage int, status string) {
	if limit <= 0 {
		limit = ContextLimit
	}
	percentage = (tokens * 100) / limit

	switch {
	case percentage < 50:
		status = "good"
	case percentage < 80:
		status = "warning"
	default:
		status = "danger"
	}
	return percentage, status
}
