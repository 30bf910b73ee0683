package main

import "github.com/tidwall/gjson"

// normalizeActionItems coerces whatever the model put in action_items into a
// uniform slice. Entries may be bare strings or partial objects; anything
// that is not an array at all yields an empty slice. One output per input,
// order preserved.
func normalizeActionItems(items gjson.Result) []ActionItem {
	if !items.IsArray() {
		return []ActionItem{}
	}
	elements := items.Array()
	out := make([]ActionItem, 0, len(elements))
	for _, el := range elements {
		if el.Type == gjson.String {
			out = append(out, ActionItem{
				Item:      el.String(),
				Rationale: notProvided,
				Evidence:  notProvided,
			})
			continue
		}
		out = append(out, ActionItem{
			Item:      fieldOr(el, "item", defaultActionTitle),
			Rationale: fieldOr(el, "rationale", notProvided),
			Evidence:  fieldOr(el, "evidence", notProvided),
			Owner:     fieldOr(el, "owner", ""),
			Deadline:  fieldOr(el, "deadline", ""),
		})
	}
	return out
}

// fieldOr reads a string field, substituting fallback for missing or empty
// values. Non-string scalars are stringified rather than dropped.
func fieldOr(el gjson.Result, field, fallback string) string {
	v := el.Get(field)
	if !v.Exists() || v.String() == "" {
		return fallback
	}
	return v.String()
}
