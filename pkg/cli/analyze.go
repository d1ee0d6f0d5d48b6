package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issue-triage/pkg/cli/config"
	"github.com/secmon-lab/issue-triage/pkg/domain/model"
	"github.com/secmon-lab/issue-triage/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Output formats of the analyze command
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func cmdAnalyze() *cli.Command {
	var (
		geminiCfg config.Gemini
		issue     model.Issue
		file      string
		format    string
		timeout   time.Duration
	)

	flags := joinFlags(
		geminiCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Usage:       "Issue title",
				Category:    "Issue",
				Destination: &issue.Title,
			},
			&cli.StringFlag{
				Name:        "body",
				Usage:       "Issue body",
				Category:    "Issue",
				Destination: &issue.Body,
			},
			&cli.StringSliceFlag{
				Name:        "comment",
				Usage:       "Issue comment (repeatable)",
				Category:    "Issue",
				Destination: &issue.Comments,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "Read free issue text from a file ('-' for stdin)",
				Category:    "Issue",
				Destination: &file,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (json, yaml)",
				Value:       formatJSON,
				Sources:     cli.EnvVars("TRIAGE_OUTPUT_FORMAT"),
				Destination: &format,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "Upper bound of the analysis (0 for none)",
				Value:       60 * time.Second,
				Sources:     cli.EnvVars("TRIAGE_TIMEOUT"),
				Destination: &timeout,
			},
		},
	)

	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze a single issue and print its triage record",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != formatJSON && format != formatYAML {
				return goerr.New("invalid output format", goerr.V("format", format))
			}

			issueText, err := readIssueText(c.Root().Reader, issue, file)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Debug("Analyzing issue", "gemini", geminiCfg, "length", len(issueText))

			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			triageUC := usecase.NewTriage(geminiCfg.Configure(ctx))
			record := triageUC.AnalyzeIssue(ctx, issueText)

			return writeRecord(c.Root().Writer, record, format)
		},
	}
}

// readIssueText picks the issue source: structured flags first, then the
// file, then stdin
func readIssueText(stdin io.Reader, issue model.Issue, file string) (string, error) {
	if !issue.IsEmpty() {
		return issue.Text(), nil
	}

	var (
		raw []byte
		err error
	)
	switch file {
	case "", "-":
		raw, err = io.ReadAll(stdin)
	default:
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to read issue text", goerr.V("file", file))
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", goerr.New("issue text is empty")
	}
	return text, nil
}

func writeRecord(w io.Writer, record model.TriageRecord, format string) error {
	if format == formatYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(record); err != nil {
			return goerr.Wrap(err, "failed to encode record as YAML")
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return goerr.Wrap(err, "failed to encode record as JSON")
	}
	return nil
}
