package main

import "testing"

func TestBuildEvidenceView(t *testing.T) {
	items := []ActionItem{
		{Item: "Send contract", Rationale: "Audit request", Evidence: "asked for a copy of their current contract"},
		{Item: "Draft proposal", Rationale: notProvided, Evidence: notProvided},
	}

	view := buildEvidenceView(items, "Stable relationship, audit under way", "Proposal by Friday")
	if view.Summary != "Stable relationship, audit under way" {
		t.Fatalf("summary = %q", view.Summary)
	}
	if view.KeyRequirement != "Proposal by Friday" {
		t.Fatalf("key requirement = %q", view.KeyRequirement)
	}
	if len(view.Entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(view.Entries))
	}
	if view.Entries[0].Evidence != "asked for a copy of their current contract" {
		t.Fatalf("real evidence rewritten: %q", view.Entries[0].Evidence)
	}
	if view.Entries[1].Evidence != noEvidence {
		t.Fatalf("sentinel evidence = %q, want %q", view.Entries[1].Evidence, noEvidence)
	}
	if view.Entries[1].Rationale != notProvided {
		t.Fatalf("rationale should pass through unchanged, got %q", view.Entries[1].Rationale)
	}
}

func TestBuildEvidenceViewEmpty(t *testing.T) {
	view := buildEvidenceView(nil, "", "")
	if len(view.Entries) != 0 {
		t.Fatalf("expected no entries, got %v", view.Entries)
	}
}
