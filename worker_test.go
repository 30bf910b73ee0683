package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseLooseJSONStripsFences(t *testing.T) {
	raw := "```json\n{\"summary\": \"ok\"}\n```"
	got, err := parseLooseJSON(raw)
	if err != nil {
		t.Fatalf("parseLooseJSON: %v", err)
	}
	if got != `{"summary": "ok"}` {
		t.Fatalf("cleaned = %q", got)
	}
}

func TestParseLooseJSONExtractsBraceBlock(t *testing.T) {
	raw := `Sure! Here is the analysis you asked for: {"summary": "ok", "confidence": "high"} Let me know if you need anything else.`
	got, err := parseLooseJSON(raw)
	if err != nil {
		t.Fatalf("parseLooseJSON: %v", err)
	}
	if !strings.HasPrefix(got, "{") || !strings.HasSuffix(got, "}") {
		t.Fatalf("cleaned = %q", got)
	}
	if parseResult(got).Summary != "ok" {
		t.Fatalf("extracted block does not parse: %q", got)
	}
}

func TestParseLooseJSONRejectsNonObject(t *testing.T) {
	for _, raw := range []string{"", "no json here", `[1, 2, 3]`, `"a string"`} {
		if got, err := parseLooseJSON(raw); err == nil {
			t.Fatalf("parseLooseJSON(%q) = %q, want error", raw, got)
		}
	}
}

func workerStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func openAIShaped(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(body)
}

func TestCallWorkerExtractsMessageContent(t *testing.T) {
	ts := workerStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req workerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding worker request: %v", err)
		}
		if req.Text != "the note" {
			t.Errorf("text = %q", req.Text)
		}
		w.Write([]byte(openAIShaped(`{"summary": "hi"}`)))
	})

	got, err := callWorker(context.Background(), ts.URL, "the note", "")
	if err != nil {
		t.Fatalf("callWorker: %v", err)
	}
	if got != `{"summary": "hi"}` {
		t.Fatalf("content = %q", got)
	}
}

func TestCallWorkerFallsBackToBody(t *testing.T) {
	ts := workerStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary": "direct"}`))
	})
	got, err := callWorker(context.Background(), ts.URL, "note", "")
	if err != nil {
		t.Fatalf("callWorker: %v", err)
	}
	if got != `{"summary": "direct"}` {
		t.Fatalf("content = %q", got)
	}
}

func TestCallWorkerNonOKStatus(t *testing.T) {
	ts := workerStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "worker exploded", http.StatusInternalServerError)
	})
	if _, err := callWorker(context.Background(), ts.URL, "note", ""); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestFetchResultRetriesOnceOnParseFailure(t *testing.T) {
	calls := 0
	ts := workerStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(openAIShaped("I could not produce JSON, sorry.")))
			return
		}
		w.Write([]byte(openAIShaped(`{"summary": "second try"}`)))
	})

	cfg := Config{LLMProvider: "worker", WorkerURL: ts.URL}
	res, cleaned, err := fetchResult(context.Background(), cfg, "note", "")
	if err != nil {
		t.Fatalf("fetchResult: %v", err)
	}
	if calls != 2 {
		t.Fatalf("worker calls = %d, want 2", calls)
	}
	if res.Summary != "second try" {
		t.Fatalf("summary = %q", res.Summary)
	}
	if cleaned == "" {
		t.Fatal("expected cleaned JSON for the debug panel")
	}
}

func TestFetchResultGivesUpAfterRetry(t *testing.T) {
	calls := 0
	ts := workerStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(openAIShaped("still not json")))
	})
	cfg := Config{LLMProvider: "worker", WorkerURL: ts.URL}
	if _, _, err := fetchResult(context.Background(), cfg, "note", ""); err == nil {
		t.Fatal("expected error after failed retry")
	}
	if calls != 2 {
		t.Fatalf("worker calls = %d, want exactly 2", calls)
	}
}

func TestFetchWorkerModels(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
	}{
		{"array", `{"allowed_models": ["m1", "m2"], "model": "m1"}`, []string{"m1", "m2"}},
		{"comma string", `{"allowed_models": "m1, m2 ,", "model": "m1"}`, []string{"m1", "m2"}},
		{"model only", `{"model": "m1"}`, []string{"m1"}},
		{"nothing", `{}`, nil},
	}
	for _, tc := range cases {
		ts := workerStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(tc.body))
		})
		got, err := fetchWorkerModels(context.Background(), ts.URL)
		if err != nil {
			t.Fatalf("%s: fetchWorkerModels: %v", tc.name, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s: models = %v, want %v", tc.name, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: models = %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}
