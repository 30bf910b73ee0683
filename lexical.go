package main

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	maxKeywords    = 6
	maxTransitions = 8
	minTokenLen    = 3
)

var tokenRe = regexp.MustCompile(`[a-z0-9][a-z0-9'-]*`)

var stopwords = wordSet(
	"the", "and", "for", "are", "with", "this", "that", "from", "your", "you", "our", "was", "were",
	"have", "has", "had", "but", "not", "all", "any", "can", "will", "just", "like", "into", "over",
	"then", "than", "they", "them", "their", "its", "it's", "about", "also", "there", "here", "when",
	"what", "why", "how", "who", "whom", "which", "a", "an", "to", "of", "in", "on", "at", "by", "as",
	"is", "it", "be", "or", "if", "we", "us", "i", "me", "my", "mine", "he", "she", "his", "her",
	"hers", "ours",
)

var positiveWords = wordSet(
	"win", "growth", "increase", "excited", "happy", "strong", "clear", "approved", "ready",
	"opportunity", "love", "great", "good", "success",
)

var negativeWords = wordSet(
	"risk", "concern", "delay", "issue", "blocked", "problem", "churn", "loss", "unclear",
	"urgent", "overdue", "late", "cancel",
)

var urgentWords = wordSet(
	"asap", "urgent", "immediately", "deadline", "soon", "tomorrow", "today", "eow", "eod",
	"overdue", "rush", "critical",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// analyzeText derives the full lexical profile of a note: counts, top
// keywords, lexicon sentiment, urgency cues, and bigram transitions.
// Degenerate input yields zero counts and empty lists, never an error.
func analyzeText(text string) LexicalProfile {
	words := tokenize(text)
	sentenceCount := countSentences(text)

	var pos, neg, urgent int
	for _, w := range words {
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
		if urgentWords[w] {
			urgent++
		}
	}
	sentiment := 0.0
	if pos+neg > 0 {
		sentiment = float64(pos-neg) / float64(pos+neg)
	}

	return LexicalProfile{
		WordCount:           len(words),
		SentenceCount:       sentenceCount,
		AvgWordsPerSentence: int(math.Round(float64(len(words)) / float64(sentenceCount))),
		Keywords:            topKeywords(words),
		SentimentScore:      sentiment,
		UrgentHits:          urgent,
		Transitions:         buildTransitions(words),
	}
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// countSentences reports at least 1 so averages never divide by zero.
func countSentences(text string) int {
	count := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// topKeywords counts stopword-filtered tokens of at least minTokenLen chars
// and returns the most frequent ones. Ties keep first-seen order.
func topKeywords(words []string) []KeywordCount {
	freq := make(map[string]int)
	var order []string
	for _, w := range words {
		if len(w) < minTokenLen || stopwords[w] {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	out := make([]KeywordCount, 0, len(order))
	for _, w := range order {
		out = append(out, KeywordCount{Word: w, Count: freq[w]})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Count > out[b].Count
	})
	if len(out) > maxKeywords {
		out = out[:maxKeywords]
	}
	return out
}

// buildTransitions counts adjacent token pairs where both tokens qualify and
// returns the most frequent pairs. Fewer than 3 tokens is too little signal.
func buildTransitions(words []string) []TransitionCount {
	if len(words) < 3 {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for i := 0; i < len(words)-1; i++ {
		from, to := words[i], words[i+1]
		if len(from) < minTokenLen || len(to) < minTokenLen {
			continue
		}
		pair := from + " -> " + to
		if counts[pair] == 0 {
			order = append(order, pair)
		}
		counts[pair]++
	}

	out := make([]TransitionCount, 0, len(order))
	for _, pair := range order {
		out = append(out, TransitionCount{Pair: pair, Count: counts[pair]})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Count > out[b].Count
	})
	if len(out) > maxTransitions {
		out = out[:maxTransitions]
	}
	return out
}
