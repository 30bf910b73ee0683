package main

import "strings"

// Classification rules are ordered tables evaluated first-match-wins, so the
// precedence is explicit and testable rather than buried in conditionals.

var priorityRules = []struct {
	prefix string
	out    Classification
}{
	{"high", Classification{Label: "High", Sub: "Escalate decisions quickly", Category: "high"}},
	{"medium", Classification{Label: "Medium", Sub: "Keep momentum", Category: "medium"}},
	{"low", Classification{Label: "Low", Sub: "Monitor and follow up", Category: "low"}},
}

var unknownPriority = Classification{Label: "Unknown", Sub: "No clear priority", Category: "low"}

func classifyPriority(priority string) Classification {
	value := strings.ToLower(priority)
	for _, rule := range priorityRules {
		if strings.HasPrefix(value, rule.prefix) {
			return rule.out
		}
	}
	return unknownPriority
}

var sentimentRules = []struct {
	needle string
	out    Classification
}{
	{"urgent", Classification{Label: "Urgent", Sub: "Needs immediate attention", Category: "urgent"}},
	{"concern", Classification{Label: "Concerned", Sub: "Address risks quickly", Category: "concerned"}},
	{"excited", Classification{Label: "Excited", Sub: "Momentum is strong", Category: "excited"}},
	{"satisfied", Classification{Label: "Satisfied", Sub: "Relationship is stable", Category: "satisfied"}},
	{"neutral", Classification{Label: "Neutral", Sub: "No strong sentiment", Category: "neutral"}},
}

// Summary-text fallback when the sentiment field itself says nothing.
var summaryFallbackRules = []struct {
	needles []string
	out     Classification
}{
	{[]string{"dip", "risk", "concern"}, Classification{Label: "Concerned", Sub: "Potential friction detected", Category: "concerned"}},
	{[]string{"excited", "strong", "great"}, Classification{Label: "Excited", Sub: "Positive momentum", Category: "excited"}},
}

var neutralSentiment = Classification{Label: "Neutral", Sub: "No strong sentiment", Category: "neutral"}

func classifySentiment(sentiment, summary string) Classification {
	value := strings.ToLower(sentiment)
	for _, rule := range sentimentRules {
		if strings.Contains(value, rule.needle) {
			return rule.out
		}
	}

	summaryText := strings.ToLower(summary)
	for _, rule := range summaryFallbackRules {
		for _, needle := range rule.needles {
			if strings.Contains(summaryText, needle) {
				return rule.out
			}
		}
	}
	return neutralSentiment
}

// confidenceNotice returns the advisory banner text for a confidence value.
// High (or absent) confidence is suppressed; everything else is a three-state
// display, not a numeric scale.
func confidenceNotice(confidence string) string {
	switch strings.ToLower(strings.TrimSpace(confidence)) {
	case "", "high":
		return ""
	case "medium":
		return "Medium confidence: review the output before acting."
	default:
		return "Low confidence: verify details before acting on this analysis."
	}
}
