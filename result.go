package main

import (
	"strings"

	"github.com/tidwall/gjson"
)

// parseResult extracts a RawResult from the model's JSON text. The shape is
// semi-trusted: every field may be absent or wrong-typed, so extraction is
// tolerant and missing pieces degrade to zero values.
func parseResult(raw string) RawResult {
	root := gjson.Parse(raw)
	crm := root.Get("crm_data")

	budget := crm.Get("budget")
	budgetRaw := ""
	if budget.Exists() {
		budgetRaw = budget.String()
	}

	return RawResult{
		Summary:      root.Get("summary").String(),
		DraftContent: root.Get("draft_content").String(),
		ActionItems:  normalizeActionItems(root.Get("action_items")),
		CRM: CRMData{
			Priority:       crm.Get("priority").String(),
			Sentiment:      crm.Get("sentiment").String(),
			BudgetRaw:      budgetRaw,
			Budget:         budget.Float(),
			Deadline:       crm.Get("deadline").String(),
			KeyRequirement: crm.Get("key_requirement").String(),
		},
		Confidence:  strings.ToLower(strings.TrimSpace(root.Get("confidence").String())),
		TimeUrgency: strings.ToLower(strings.TrimSpace(root.Get("time_analysis.overall_urgency").String())),
	}
}
