package llm

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/secmon-lab/issue-triage/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// Extraction is the result of ExtractJSON. Exactly one of Value and
// Fallback is meaningful: Fallback is set when no JSON could be extracted.
type Extraction struct {
	Value    any
	Fallback *model.TriageRecord

	// keys of an object-valued suggested_labels in document order
	labelOrder []string
}

// IsFallback returns true if extraction failed
func (x Extraction) IsFallback() bool {
	return x.Fallback != nil
}

// Record returns the fallback record, or the sanitized extracted value
func (x Extraction) Record() model.TriageRecord {
	if x.Fallback != nil {
		return *x.Fallback
	}
	return sanitize(x.Value, x.labelOrder)
}

func fallbackExtraction(message string) Extraction {
	rec := model.NewFallback(message)
	return Extraction{Fallback: &rec}
}

// ExtractJSON decodes the span between the first '{' and the last '}' of
// text. The decoded value is returned as-is; its shape is not validated.
// Braces outside the intended object make the span invalid.
func ExtractJSON(text string) Extraction {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start > end {
		return fallbackExtraction(MsgNoJSONFound)
	}

	span := text[start : end+1]
	decoder := json.NewDecoder(strings.NewReader(span))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return fallbackExtraction(MsgJSONParseError)
	}
	// Anything after the first value means the span held more than one document
	if _, err := decoder.Token(); err != io.EOF {
		return fallbackExtraction(MsgJSONParseError)
	}

	return Extraction{Value: value, labelOrder: labelKeyOrder(value, span)}
}

// labelKeyOrder returns the keys of an object-valued suggested_labels as they
// appear in span. A repeated key keeps its first position.
func labelKeyOrder(value any, span string) []string {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	if _, ok := obj["suggested_labels"].(map[string]any); !ok {
		return nil
	}

	// The decoder keeps the last of repeated keys, so follow it here
	var labels gjson.Result
	gjson.Parse(span).ForEach(func(key, v gjson.Result) bool {
		if key.String() == "suggested_labels" {
			labels = v
		}
		return true
	})
	if !labels.IsObject() {
		return nil
	}

	var keys []string
	seen := make(map[string]struct{})
	labels.ForEach(func(key, _ gjson.Result) bool {
		k := key.String()
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		return true
	})
	return keys
}
