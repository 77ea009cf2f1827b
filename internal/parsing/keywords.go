// Package parsing provides defensive normalization of loosely-typed data
// produced by the upstream AI analysis. Malformed elements are dropped and
// logged rather than failing the whole request.
package parsing

import (
	"log"
	"strings"
)

// Keyword is the canonical shape of a keyword-like item after normalization.
type Keyword struct {
	Keyword           string   `json:"keyword"`
	Priority          string   `json:"priority"` // critical, high, or medium
	Category          string   `json:"category,omitempty"`
	Type              string   `json:"type,omitempty"`
	Frequency         *float64 `json:"frequency,omitempty"`
	JDContext         string   `json:"jdContext,omitempty"`
	ResumeContext     string   `json:"resumeContext,omitempty"`
	SuggestedPhrasing string   `json:"suggestedPhrasing,omitempty"`
}

// keywordSynonyms are the property names models use for the keyword string,
// checked in order.
var keywordSynonyms = []string{"keyword", "name", "term", "skill", "text", "value"}

var validPriorities = map[string]bool{
	"critical": true,
	"high":     true,
	"medium":   true,
}

var validCategories = map[string]bool{
	"required":     true,
	"preferred":    true,
	"nice-to-have": true,
}

var validKeywordTypes = map[string]bool{
	"technical":     true,
	"domain":        true,
	"leadership":    true,
	"soft":          true,
	"certification": true,
	"tool":          true,
}

// NormalizeKeywords coerces an arbitrary value claimed to be an array of
// keyword-like items into canonical Keyword records. Non-array input yields
// an empty list; elements without a resolvable keyword string are dropped
// with a log line. Never panics, never returns an error.
func NormalizeKeywords(raw any) []Keyword {
	items := asSlice(raw)
	if items == nil {
		log.Printf("[parsing] keyword input is not an array (%T), returning empty list", raw)
		return []Keyword{}
	}

	normalized := make([]Keyword, 0, len(items))
	for i, item := range items {
		kw, ok := normalizeKeywordItem(item)
		if !ok {
			log.Printf("[parsing] dropping keyword entry %d: no keyword string resolvable", i)
			continue
		}
		normalized = append(normalized, kw)
	}
	return normalized
}

func normalizeKeywordItem(item any) (Keyword, bool) {
	switch v := item.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return Keyword{}, false
		}
		return Keyword{Keyword: trimmed, Priority: "high"}, true
	case Keyword:
		if strings.TrimSpace(v.Keyword) == "" {
			return Keyword{}, false
		}
		out := v
		out.Keyword = strings.TrimSpace(v.Keyword)
		if !validPriorities[out.Priority] {
			out.Priority = "high"
		}
		if !validCategories[out.Category] {
			out.Category = ""
		}
		if !validKeywordTypes[out.Type] {
			out.Type = ""
		}
		return out, true
	case map[string]any:
		return normalizeKeywordMap(v)
	default:
		return Keyword{}, false
	}
}

func normalizeKeywordMap(obj map[string]any) (Keyword, bool) {
	name := ""
	for _, prop := range keywordSynonyms {
		if s, ok := obj[prop].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				name = trimmed
				break
			}
		}
	}
	if name == "" {
		return Keyword{}, false
	}

	kw := Keyword{Keyword: name, Priority: "high"}

	if p, ok := obj["priority"].(string); ok && validPriorities[p] {
		kw.Priority = p
	}
	if c, ok := obj["category"].(string); ok && validCategories[c] {
		kw.Category = c
	}
	if t, ok := obj["type"].(string); ok && validKeywordTypes[t] {
		kw.Type = t
	}
	if f, ok := numericValue(obj["frequency"]); ok {
		kw.Frequency = &f
	}

	// Context fields accept a legacy property name; first non-empty wins.
	kw.JDContext = firstString(obj, "jdContext", "context")
	kw.ResumeContext = firstString(obj, "resumeContext", "resumeEvidence")
	kw.SuggestedPhrasing = firstString(obj, "suggestedPhrasing", "phrasing")

	return kw, true
}

// asSlice widens the supported slice representations into []any.
func asSlice(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []Keyword:
		out := make([]any, len(v))
		for i, k := range v {
			out[i] = k
		}
		return out
	default:
		return nil
	}
}

func firstString(obj map[string]any, props ...string) string {
	for _, prop := range props {
		if s, ok := obj[prop].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
