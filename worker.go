package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

const analysisSystemPrompt = `You analyze account-management notes for an operations dashboard.
Extract a summary, concrete action items, CRM signals, and a time analysis.

Respond with JSON only (no markdown):
{"summary": "...", "draft_content": "...", "action_items": [{"item": "...", "rationale": "...", "evidence": "...", "owner": "us|client|shared", "deadline": "..."}], "crm_data": {"priority": "high|medium|low", "sentiment": "...", "budget": 0, "deadline": "...", "key_requirement": "..."}, "confidence": "high|medium|low", "time_analysis": {"overall_urgency": "none|low|medium|high"}}`

// fetchResult obtains a structured analysis of text from the configured
// provider. A response that fails loose JSON parsing gets exactly one
// automatic retry before the error is surfaced. The returned string is the
// cleaned JSON for the debug panel.
func fetchResult(ctx context.Context, cfg Config, text, model string) (RawResult, string, error) {
	raw, err := callProvider(ctx, cfg, text, model)
	if err != nil {
		return RawResult{}, "", err
	}

	cleaned, parseErr := parseLooseJSON(raw)
	if parseErr != nil {
		log.Printf("worker parse failed, retrying once: %v", parseErr)
		raw, err = callProvider(ctx, cfg, text, model)
		if err != nil {
			return RawResult{}, "", err
		}
		cleaned, parseErr = parseLooseJSON(raw)
		if parseErr != nil {
			return RawResult{}, "", fmt.Errorf("no structured result after retry: %w", parseErr)
		}
	}

	return parseResult(cleaned), cleaned, nil
}

func callProvider(ctx context.Context, cfg Config, text, model string) (string, error) {
	switch cfg.LLMProvider {
	case "anthropic":
		if model == "" {
			model = cfg.LLMModel
		}
		if model == "" {
			model = defaultAnthropicModel
		}
		log.Printf("llm analyze provider=anthropic model=%s chars=%d", model, len(text))
		return callAnthropic(ctx, cfg.AnthropicAPIKey, model, text)
	default:
		log.Printf("llm analyze provider=worker model=%s chars=%d", model, len(text))
		return callWorker(ctx, cfg.WorkerURL, text, model)
	}
}

// parseLooseJSON salvages a JSON object from model output that may carry
// code fences or surrounding prose: strip fences, then slice from the first
// "{" to the last "}".
func parseLooseJSON(text string) (string, error) {
	t := strings.ReplaceAll(text, "```json", "")
	t = strings.ReplaceAll(t, "```", "")
	t = strings.TrimSpace(t)

	first := strings.Index(t, "{")
	last := strings.LastIndex(t, "}")
	if first != -1 && last > first {
		t = t[first : last+1]
	}

	if !gjson.Valid(t) || !gjson.Parse(t).IsObject() {
		snippet := t
		if len(snippet) > 256 {
			snippet = snippet[:256] + "..."
		}
		return "", fmt.Errorf("response is not a JSON object (got: %s)", snippet)
	}
	return t, nil
}

// --- Worker ---

type workerRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

// callWorker posts the note text to the analysis worker. The worker replies
// in the OpenAI chat shape; when no message content is present the body
// itself is treated as the result.
func callWorker(ctx context.Context, workerURL, text, model string) (string, error) {
	bodyBytes, err := json.Marshal(workerRequest{Text: text, Model: model})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, workerURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := externalHTTPClient.Do(req)
	if err != nil {
		log.Printf("worker error: %v", err)
		return "", fmt.Errorf("worker request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet := string(respBody)
		if len(snippet) > 256 {
			snippet = snippet[:256] + "..."
		}
		return "", fmt.Errorf("worker request failed (%d): %s", resp.StatusCode, snippet)
	}

	if content := gjson.GetBytes(respBody, "choices.0.message.content").String(); content != "" {
		log.Printf("worker response size=%d", len(content))
		return content, nil
	}
	return string(respBody), nil
}

// fetchWorkerModels asks the worker which models it allows. The worker may
// answer with an array, a comma-separated string, or just its default model.
func fetchWorkerModels(ctx context.Context, workerURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, workerURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := externalHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("worker not reachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("worker request failed (%d)", resp.StatusCode)
	}

	allowed := gjson.GetBytes(body, "allowed_models")
	var models []string
	switch {
	case allowed.IsArray():
		for _, m := range allowed.Array() {
			if s := strings.TrimSpace(m.String()); s != "" {
				models = append(models, s)
			}
		}
	case allowed.Type == gjson.String:
		for _, s := range strings.Split(allowed.String(), ",") {
			if s = strings.TrimSpace(s); s != "" {
				models = append(models, s)
			}
		}
	}
	if len(models) == 0 {
		if m := gjson.GetBytes(body, "model").String(); m != "" {
			models = append(models, m)
		}
	}
	return models, nil
}

// --- Anthropic ---

func callAnthropic(ctx context.Context, apiKey, model, text string) (string, error) {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: analysisSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		log.Printf("llm anthropic error: %v", err)
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("llm anthropic response size=%d tokens_in=%d tokens_out=%d", len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in Anthropic response")
}
