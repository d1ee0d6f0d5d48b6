package model

import (
	"strings"
)

// Issue is a structured issue report
type Issue struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Comments []string `json:"comments"`
}

// IsEmpty returns true if the issue carries no text at all
func (i Issue) IsEmpty() bool {
	if strings.TrimSpace(i.Title) != "" || strings.TrimSpace(i.Body) != "" {
		return false
	}
	for _, c := range i.Comments {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Text formats the issue as the free text given to the model.
// Blank comments are skipped and the Comments line is omitted when none remain.
func (i Issue) Text() string {
	var sb strings.Builder
	sb.WriteString("Title: ")
	sb.WriteString(i.Title)
	sb.WriteString("\nBody: ")
	sb.WriteString(i.Body)

	var comments []string
	for _, c := range i.Comments {
		if c = strings.TrimSpace(c); c != "" {
			comments = append(comments, c)
		}
	}
	if len(comments) > 0 {
		sb.WriteString("\nComments: ")
		sb.WriteString(strings.Join(comments, "\n"))
	}
	return sb.String()
}
