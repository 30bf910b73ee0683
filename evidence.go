package main

const noEvidence = "No evidence provided"

// buildEvidenceView pairs each action item with its rationale and evidence,
// alongside the top-level summary and key requirement, for traceability
// display. Pure assembly; no scoring or filtering.
func buildEvidenceView(items []ActionItem, summary, keyRequirement string) EvidenceView {
	entries := make([]EvidenceEntry, 0, len(items))
	for _, item := range items {
		evidence := item.Evidence
		if evidence == "" || evidence == notProvided {
			evidence = noEvidence
		}
		entries = append(entries, EvidenceEntry{
			Item:      item.Item,
			Rationale: item.Rationale,
			Evidence:  evidence,
		})
	}
	return EvidenceView{
		Summary:        summary,
		KeyRequirement: keyRequirement,
		Entries:        entries,
	}
}
