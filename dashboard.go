package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// buildDashboard derives the complete dashboard payload from the model's
// structured result plus the raw note text. Everything is recomputed from
// the inputs on every call; nothing is cached between analyses.
func buildDashboard(res RawResult, inputText string, now time.Time) Dashboard {
	profile := analyzeText(inputText)
	items := res.ActionItems

	budgetDisplay, budgetNote := formatBudget(res.CRM)
	deadlineDisplay, deadlineNote := formatDeadline(res.CRM.Deadline, items, now)

	score := urgencyScore(res.TimeUrgency, profile.UrgentHits)
	priority := classifyPriority(res.CRM.Priority)

	return Dashboard{
		Priority:         priority,
		Sentiment:        classifySentiment(res.CRM.Sentiment, res.Summary),
		BudgetDisplay:    budgetDisplay,
		BudgetNote:       budgetNote,
		DeadlineDisplay:  deadlineDisplay,
		DeadlineNote:     deadlineNote,
		Lexical:          profile,
		UrgencyScore:     score,
		SentimentIndex:   int(math.Round((profile.SentimentScore + 1) / 2 * 100)),
		EvidenceCoverage: evidenceCoverage(items),
		ToneChips:        toneChips(profile.SentimentScore, score, res.CRM.Priority),
		Matrix:           buildActionMatrix(items, res.CRM, now),
		ActionGroups:     groupActionItems(items),
		Evidence:         buildEvidenceView(items, res.Summary, res.CRM.KeyRequirement),
		ConfidenceNotice: confidenceNotice(res.Confidence),
	}
}

func formatBudget(crm CRMData) (string, string) {
	if crm.BudgetRaw == "" {
		return "—", "Not specified"
	}
	if crm.Budget > 0 {
		return humanize.Commaf(crm.Budget), "Budget extracted"
	}
	return crm.BudgetRaw, "Budget extracted"
}

// formatDeadline reduces the account-level deadline plus every item deadline
// to one display value: remaining/overdue days for the most relevant
// resolvable date, the first raw string when nothing resolves, or a
// no-deadline sentinel.
func formatDeadline(crmDeadline string, items []ActionItem, now time.Time) (string, string) {
	var raw []string
	if crmDeadline != "" {
		raw = append(raw, crmDeadline)
	}
	for _, item := range items {
		if item.Deadline != "" {
			raw = append(raw, item.Deadline)
		}
	}

	var resolved []time.Time
	for _, value := range raw {
		if d, ok := resolveDeadline(value, now); ok {
			resolved = append(resolved, d)
		}
	}

	if due, ok := pickSoonestDeadline(resolved, now); ok {
		days := daysBetween(now, due)
		if days >= 0 {
			return fmt.Sprintf("%d days", days), "Next due: " + due.Format("Jan 2, 2006")
		}
		return fmt.Sprintf("Overdue by %d days", -days), "Past due: " + due.Format("Jan 2, 2006")
	}
	if len(raw) > 0 {
		return raw[0], "Timeline noted"
	}
	return "—", "No deadline found"
}

func evidenceCoverage(items []ActionItem) int {
	if len(items) == 0 {
		return 0
	}
	covered := 0
	for _, item := range items {
		if item.Evidence != "" && item.Evidence != notProvided {
			covered++
		}
	}
	return int(math.Round(float64(covered) / float64(len(items)) * 100))
}

func toneChips(sentiment float64, urgency int, priority string) []string {
	var chips []string
	switch {
	case sentiment >= 0.2:
		chips = append(chips, "Positive lean")
	case sentiment <= -0.2:
		chips = append(chips, "Risk signals")
	default:
		chips = append(chips, "Neutral tone")
	}
	if urgency > 60 {
		chips = append(chips, "High urgency")
	} else {
		chips = append(chips, "Steady pace")
	}
	if priority != "" {
		chips = append(chips, priority+" priority")
	}
	return chips
}

// groupActionItems splits items by owner for display. Only non-empty groups
// are returned, in a fixed order.
func groupActionItems(items []ActionItem) []ActionGroup {
	var us, client, shared, other []ActionItem
	for _, item := range items {
		owner := strings.ToLower(item.Owner)
		switch {
		case strings.Contains(owner, "client"):
			client = append(client, item)
		case strings.Contains(owner, "shared"):
			shared = append(shared, item)
		case strings.Contains(owner, "us"):
			us = append(us, item)
		default:
			other = append(other, item)
		}
	}

	var groups []ActionGroup
	for _, g := range []ActionGroup{
		{Title: "Our team", Items: us},
		{Title: "Client", Items: client},
		{Title: "Shared", Items: shared},
		{Title: "Unassigned", Items: other},
	} {
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
