package main

import "strings"

const (
	defaultUrgencyBase = 30
	urgencyBoostPerHit = 5
	urgencyBoostCap    = 20
)

var urgencyBase = map[string]int{
	"none":   10,
	"low":    35,
	"medium": 60,
	"high":   85,
}

// urgencyScore combines the model's categorical time urgency with lexical
// urgency cues. The lexical boost is capped so cues can nudge the score but
// never override the categorical signal. Result is always in [0, 100].
func urgencyScore(category string, urgentHits int) int {
	base, ok := urgencyBase[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		base = defaultUrgencyBase
	}
	boost := urgentHits * urgencyBoostPerHit
	if boost > urgencyBoostCap {
		boost = urgencyBoostCap
	}
	score := base + boost
	if score > 100 {
		score = 100
	}
	return score
}
