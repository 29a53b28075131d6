package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/analytics"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// PlanResult tags whether the plan came back enriched or is the untouched
// rule-based fallback. The fallback path is a first-class result, not an
// error.
type PlanResult struct {
	Plan     analytics.Plan
	Enriched bool
}

type SuggestionsResult struct {
	Suggestions []analytics.Suggestion
	Enriched    bool
}

// Enricher rewrites rule-based output with an LLM when one is configured.
// A nil client (no API key) short-circuits straight to the fallback, and
// so does every failure mode: timeout, non-2xx, malformed JSON.
type Enricher struct {
	client *Client
	log    *zap.Logger
}

func NewEnricher(client *Client, log *zap.Logger) *Enricher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Enricher{client: client, log: log}
}

type planPayload struct {
	Greeting string `json:"greeting"`
	Quote    string `json:"quote"`
	Tip      string `json:"tip"`
}

// EnrichPlan asks the model for a personalized greeting, quote, and tip
// and splices them into the fallback plan. Scores, ordering, and focus
// blocks stay rule-based; only the narrative text is replaced.
func (e *Enricher) EnrichPlan(ctx context.Context, fallback analytics.Plan) PlanResult {
	if e.client == nil {
		return PlanResult{Plan: fallback}
	}

	prompt := fmt.Sprintf(`Create a short personalized daily-plan intro based on:
- Pending tasks: %d
- High priority: %d
- Due today: %d

Respond with a JSON object:
{"greeting": "...", "quote": "...", "tip": "..."}
Only respond with valid JSON, no other text.`,
		fallback.Summary.TotalPending, fallback.Summary.HighPriority, fallback.Summary.DueToday)

	content, err := e.client.Chat(ctx, []Message{
		{Role: "system", Content: "You are an encouraging productivity coach. Respond only with valid JSON."},
		{Role: "user", Content: prompt},
	}, 0.7)
	if err != nil {
		e.log.Warn("plan enrichment failed, using rule-based plan", zap.Error(err))
		return PlanResult{Plan: fallback}
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		e.log.Warn("plan enrichment returned bad JSON, using rule-based plan", zap.Error(err))
		return PlanResult{Plan: fallback}
	}
	if payload.Greeting == "" || payload.Quote == "" || payload.Tip == "" {
		e.log.Warn("plan enrichment incomplete, using rule-based plan")
		return PlanResult{Plan: fallback}
	}

	enriched := fallback
	enriched.Greeting = payload.Greeting
	enriched.Quote = payload.Quote
	enriched.Tip = payload.Tip
	return PlanResult{Plan: enriched, Enriched: true}
}

type suggestionPayload struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// EnrichSuggestions asks the model to rewrite the rule-based suggestions
// in a more personal voice. The rule-derived task-id lists are carried
// over positionally; extra model output is ignored.
func (e *Enricher) EnrichSuggestions(ctx context.Context, tasks []model.Task, fallback []analytics.Suggestion) SuggestionsResult {
	if e.client == nil || len(fallback) == 0 {
		return SuggestionsResult{Suggestions: fallback}
	}

	var sb strings.Builder
	for _, s := range fallback {
		fmt.Fprintf(&sb, "- [%s] %s: %s\n", s.Type, s.Title, s.Message)
	}
	prompt := fmt.Sprintf(`Rewrite these productivity suggestions in a warmer, more personal voice.
The user has %d tasks.

Suggestions:
%s
Respond with a JSON array of objects {"type": "...", "icon": "...", "title": "...", "message": "..."},
one per suggestion, same order and same types. Only respond with valid JSON.`,
		len(tasks), sb.String())

	content, err := e.client.Chat(ctx, []Message{
		{Role: "system", Content: "You are a productivity AI assistant. Always respond with valid JSON only."},
		{Role: "user", Content: prompt},
	}, 0.3)
	if err != nil {
		e.log.Warn("suggestion enrichment failed, using rule-based suggestions", zap.Error(err))
		return SuggestionsResult{Suggestions: fallback}
	}

	var payload []suggestionPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		e.log.Warn("suggestion enrichment returned bad JSON, using rule-based suggestions", zap.Error(err))
		return SuggestionsResult{Suggestions: fallback}
	}
	if len(payload) != len(fallback) {
		e.log.Warn("suggestion enrichment count mismatch, using rule-based suggestions",
			zap.Int("want", len(fallback)), zap.Int("got", len(payload)))
		return SuggestionsResult{Suggestions: fallback}
	}

	out := make([]analytics.Suggestion, len(fallback))
	for i, p := range payload {
		out[i] = analytics.Suggestion{
			Type:        fallback[i].Type,
			Icon:        p.Icon,
			Title:       p.Title,
			Message:     p.Message,
			ActionLabel: fallback[i].ActionLabel,
			TaskIDs:     fallback[i].TaskIDs,
		}
		if out[i].Icon == "" {
			out[i].Icon = fallback[i].Icon
		}
		if out[i].Title == "" || out[i].Message == "" {
			return SuggestionsResult{Suggestions: fallback}
		}
	}
	return SuggestionsResult{Suggestions: out, Enriched: true}
}
