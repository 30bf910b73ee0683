package main

import (
	"strings"
	"time"
)

const (
	highImpactBudget = 25000
	urgentWithinDays = 14
)

// buildActionMatrix buckets action items into an impact x urgency quadrant.
// Impact is account-level, not per-item: one flag from budget/priority
// applied to every item. Urgency is per item, true when its deadline
// resolves to within urgentWithinDays of ref.
func buildActionMatrix(items []ActionItem, crm CRMData, ref time.Time) ActionMatrix {
	impact := crm.Budget >= highImpactBudget ||
		strings.HasPrefix(strings.ToLower(crm.Priority), "high")

	var m ActionMatrix
	for _, item := range items {
		urgent := false
		if due, ok := resolveDeadline(item.Deadline, ref); ok {
			urgent = daysBetween(ref, due) <= urgentWithinDays
		}
		switch {
		case impact && urgent:
			m.Critical = append(m.Critical, item.Item)
		case impact:
			m.Strategic = append(m.Strategic, item.Item)
		case urgent:
			m.Quick = append(m.Quick, item.Item)
		default:
			m.Monitor = append(m.Monitor, item.Item)
		}
	}
	return m
}
