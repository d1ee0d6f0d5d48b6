package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issue-triage/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

func TestReadIssueText(t *testing.T) {
	t.Run("structured flags take precedence", func(t *testing.T) {
		text, err := readIssueText(strings.NewReader("ignored"), model.Issue{Title: "T", Body: "B"}, "")
		gt.NoError(t, err)
		gt.Equal(t, text, "Title: T\nBody: B")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "issue.txt")
		gt.NoError(t, os.WriteFile(path, []byte("  from file \n"), 0600))

		text, err := readIssueText(strings.NewReader("ignored"), model.Issue{}, path)
		gt.NoError(t, err)
		gt.Equal(t, text, "from file")
	})

	t.Run("stdin", func(t *testing.T) {
		text, err := readIssueText(strings.NewReader("from stdin"), model.Issue{}, "-")
		gt.NoError(t, err)
		gt.Equal(t, text, "from stdin")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := readIssueText(strings.NewReader("   "), model.Issue{}, "")
		gt.Error(t, err)
	})
}

func TestWriteRecord(t *testing.T) {
	rec := model.NewFallback("JSON parse error")

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, writeRecord(&buf, rec, formatJSON))

		var decoded map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		gt.Equal(t, len(decoded), 5)
		gt.Equal(t, decoded["summary"], any("JSON parse error"))
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, writeRecord(&buf, rec, formatYAML))

		var decoded model.TriageRecord
		gt.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		gt.Equal(t, decoded.Summary, "JSON parse error")
		gt.Equal(t, decoded.PriorityScore, model.FallbackPriorityScore)
		gt.S(t, buf.String()).Contains("suggested_labels: []")
	})
}

func TestAnalyzeWithoutAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("TRIAGE_GEMINI_API_KEY", "")
	t.Setenv("TRIAGE_GEMINI_PROJECT", "")

	var stdout bytes.Buffer
	app := NewApp(strings.NewReader("Title: crash"), &stdout)
	err := app.Run(context.Background(), []string{
		"issue-triage", "--log-level", "error", "--log-format", "json",
		"analyze", "--secrets-file", filepath.Join(t.TempDir(), "missing.toml"),
	})
	gt.NoError(t, err)

	var rec model.TriageRecord
	gt.NoError(t, json.Unmarshal(stdout.Bytes(), &rec))
	gt.S(t, rec.Summary).Contains("API Key not configured")
	gt.Equal(t, rec.Type, "other")
}

func TestAnalyzeInvalidFormat(t *testing.T) {
	var stdout bytes.Buffer
	app := NewApp(strings.NewReader("x"), &stdout)
	err := app.Run(context.Background(), []string{
		"issue-triage", "--log-level", "error", "analyze", "--format", "xml",
	})
	gt.Error(t, err)
}
