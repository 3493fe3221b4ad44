package service

import "strings"

// Intent is the coarse category of a user request. The set is closed;
// new intents require a new dispatcher branch, not a plugin.
type Intent string

const (
	IntentSearch   Intent = "search"
	IntentCompare  Intent = "compare"
	IntentBook     Intent = "book"
	IntentEvent    Intent = "event"
	IntentFallback Intent = "fallback"
)

// EventPrefix marks a structured client event embedded in message text.
const EventPrefix = "EVENT:"

// ClassifyIntent decides which specialist path handles the input using
// ordered keyword tests over a lower-cased copy of the text. The rule
// order is a behavioral contract: ambiguous text (e.g. containing both
// "search" and "compare") resolves to the first matching rule.
func ClassifyIntent(text string) Intent {
	if strings.HasPrefix(strings.TrimSpace(text), EventPrefix) {
		return IntentEvent
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "search") || strings.Contains(lower, "find"):
		return IntentSearch
	case strings.Contains(lower, "compare"):
		return IntentCompare
	case strings.Contains(lower, "book") && !strings.Contains(lower, "form"):
		return IntentBook
	}
	return IntentFallback
}
