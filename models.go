package main

// RawResult is the structured analysis returned by the model. Every field is
// optional upstream; parseResult fills in zero values for anything absent or
// malformed so downstream code never has to re-check shapes.
type RawResult struct {
	Summary      string       `json:"summary"`
	DraftContent string       `json:"draft_content"`
	ActionItems  []ActionItem `json:"action_items"`
	CRM          CRMData      `json:"crm_data"`
	Confidence   string       `json:"confidence"`
	TimeUrgency  string       `json:"time_urgency"` // time_analysis.overall_urgency, flattened
}

// CRMData keeps the budget twice: BudgetRaw is whatever string the model
// wrote (for display), Budget is its numeric value, 0 when not parseable.
type CRMData struct {
	Priority       string  `json:"priority"`
	Sentiment      string  `json:"sentiment"`
	BudgetRaw      string  `json:"budget"`
	Budget         float64 `json:"budget_value"`
	Deadline       string  `json:"deadline"`
	KeyRequirement string  `json:"key_requirement"`
}

// ActionItem is the normalized form of one action_items entry. Fields the
// model omitted carry sentinel defaults instead of being empty, so the
// rendering layer can display them without nil checks.
type ActionItem struct {
	Item      string `json:"item"`
	Rationale string `json:"rationale"`
	Evidence  string `json:"evidence"`
	Owner     string `json:"owner"`
	Deadline  string `json:"deadline"`
}

const (
	defaultActionTitle = "Untitled action"
	notProvided        = "Not provided"
)

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type TransitionCount struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

// LexicalProfile holds the statistics derived from the raw note text.
// It is recomputed from scratch on every analysis.
type LexicalProfile struct {
	WordCount           int               `json:"word_count"`
	SentenceCount       int               `json:"sentence_count"`
	AvgWordsPerSentence int               `json:"avg_words_per_sentence"`
	Keywords            []KeywordCount    `json:"keywords"`
	SentimentScore      float64           `json:"sentiment_score"`
	UrgentHits          int               `json:"urgent_hits"`
	Transitions         []TransitionCount `json:"transitions"`
}

// Classification is a display-ready label with its supporting subtext.
// Category is a lowercase key the rendering layer uses for styling.
type Classification struct {
	Label    string `json:"label"`
	Sub      string `json:"sub"`
	Category string `json:"category"`
}

// ActionMatrix buckets action item titles by impact and deadline urgency.
type ActionMatrix struct {
	Critical  []string `json:"critical"`
	Strategic []string `json:"strategic"`
	Quick     []string `json:"quick"`
	Monitor   []string `json:"monitor"`
}

type EvidenceEntry struct {
	Item      string `json:"item"`
	Rationale string `json:"rationale"`
	Evidence  string `json:"evidence"`
}

type EvidenceView struct {
	Summary        string          `json:"summary"`
	KeyRequirement string          `json:"key_requirement"`
	Entries        []EvidenceEntry `json:"entries"`
}

type ActionGroup struct {
	Title string       `json:"title"`
	Items []ActionItem `json:"items"`
}

// Dashboard is the full metrics payload handed to the rendering layer.
type Dashboard struct {
	Priority         Classification `json:"priority"`
	Sentiment        Classification `json:"sentiment"`
	BudgetDisplay    string         `json:"budget_display"`
	BudgetNote       string         `json:"budget_note"`
	DeadlineDisplay  string         `json:"deadline_display"`
	DeadlineNote     string         `json:"deadline_note"`
	Lexical          LexicalProfile `json:"lexical"`
	UrgencyScore     int            `json:"urgency_score"`
	SentimentIndex   int            `json:"sentiment_index"`
	EvidenceCoverage int            `json:"evidence_coverage"`
	ToneChips        []string       `json:"tone_chips"`
	Matrix           ActionMatrix   `json:"matrix"`
	ActionGroups     []ActionGroup  `json:"action_groups"`
	Evidence         EvidenceView   `json:"evidence"`
	ConfidenceNotice string         `json:"confidence_notice,omitempty"`
}
