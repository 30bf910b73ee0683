package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
)

type analyzeRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type analyzeResponse struct {
	Dashboard Dashboard       `json:"dashboard"`
	Result    json.RawMessage `json:"result"`
}

// newServeMux wires the JSON endpoints the rendering layer calls. The
// handlers are thin: decode, delegate to the analysis pipeline, encode.
func newServeMux(cfg Config) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		handleAnalyze(cfg, w, r)
	})
	mux.HandleFunc("/samples", handleSamples)
	mux.HandleFunc("/models", func(w http.ResponseWriter, r *http.Request) {
		handleModels(cfg, w, r)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

func handleAnalyze(cfg Config, w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	result, cleaned, err := fetchResult(r.Context(), cfg, text, req.Model)
	if err != nil {
		log.Printf("analyze failed: %v", err)
		http.Error(w, "could not obtain a structured result", http.StatusBadGateway)
		return
	}

	writeJSON(w, analyzeResponse{
		Dashboard: buildDashboard(result, text, time.Now()),
		Result:    json.RawMessage(cleaned),
	})
}

func handleSamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if id := r.URL.Query().Get("id"); id != "" {
		sample, ok := findSample(id)
		if !ok {
			http.Error(w, "unknown sample", http.StatusNotFound)
			return
		}
		writeJSON(w, sample)
		return
	}
	writeJSON(w, sampleInputs)
}

func handleModels(cfg Config, w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	models, err := fetchWorkerModels(r.Context(), cfg.WorkerURL)
	if err != nil {
		log.Printf("model listing failed: %v", err)
		http.Error(w, "worker not reachable", http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string][]string{"models": models})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
