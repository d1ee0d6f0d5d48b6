package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/secmon-lab/issue-triage/pkg/domain/model"
)

// Sanitize coerces an untrusted decoded JSON value into a TriageRecord.
// A value that is not an object is handled as an empty object, so every
// key falls back to its default. Sanitize never fails.
//
// A Go map carries no key order, so an object-valued suggested_labels is
// flattened in key order here. Extraction.Record keeps document order.
func Sanitize(data any) model.TriageRecord {
	return sanitize(data, nil)
}

func sanitize(data any, labelOrder []string) model.TriageRecord {
	obj, ok := data.(map[string]any)
	if !ok {
		obj = map[string]any{}
	}

	return model.TriageRecord{
		Summary:         stringField(obj, "summary", model.DefaultSummary),
		Type:            stringField(obj, "type", model.DefaultType),
		PriorityScore:   stringField(obj, "priority_score", model.DefaultPriorityScore),
		SuggestedLabels: sanitizeLabels(obj["suggested_labels"], labelOrder),
		PotentialImpact: stringField(obj, "potential_impact", model.DefaultPotentialImpact),
	}
}

func stringField(obj map[string]any, key, defaultValue string) string {
	v, ok := obj[key]
	if !ok {
		return defaultValue
	}
	return stringify(v)
}

// sanitizeLabels flattens an object into its values, drops falsy and blank
// entries, and keeps at most MaxSuggestedLabels.
func sanitizeLabels(v any, order []string) []string {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []string:
		for _, s := range t {
			items = append(items, s)
		}
	case map[string]any:
		for _, k := range objectKeys(t, order) {
			items = append(items, t[k])
		}
	}

	labels := make([]string, 0, model.MaxSuggestedLabels)
	for _, item := range items {
		if len(labels) == model.MaxSuggestedLabels {
			break
		}
		if isFalsy(item) {
			continue
		}
		label := strings.TrimSpace(stringify(item))
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// objectKeys lists the keys of obj following order. Keys missing from order
// come last, sorted.
func objectKeys(obj map[string]any, order []string) []string {
	keys := make([]string, 0, len(obj))
	seen := make(map[string]struct{}, len(obj))
	for _, k := range order {
		if _, ok := obj[k]; !ok {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	var rest []string
	for k := range obj {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	case float64:
		return t == 0
	case int:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// stringify renders a decoded JSON value as text. Numbers keep their JSON
// literal and composite values are rendered as compact JSON.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any, map[string]any:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	}
	return fmt.Sprint(v)
}
