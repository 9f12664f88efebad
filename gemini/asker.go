// Package gemini answers free-form catalog questions with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/coursecheck"
	"google.golang.org/genai"
)

// Ensure Asker implements coursecheck.Asker at compile time.
var _ coursecheck.Asker = (*Asker)(nil)

// Asker implements coursecheck.Asker using Google Gemini.
type Asker struct {
	client   *genai.Client
	catalogs coursecheck.CatalogService
	model    string

	// Tokens counts prompt tokens before sending. Optional.
	Tokens coursecheck.TokenCounter

	// MaxPromptTokens rejects larger prompts when Tokens is set. Zero means no limit.
	MaxPromptTokens int

	// RetryDelays are the waits between attempts after a transient API error.
	RetryDelays []time.Duration

	// Logger records retries. Optional.
	Logger *slog.Logger
}

// NewAsker creates a new Asker. An empty model uses coursecheck.DefaultModel.
func NewAsker(client *genai.Client, catalogs coursecheck.CatalogService, model string) *Asker {
	if model == "" {
		model = coursecheck.DefaultModel
	}
	return &Asker{
		client:      client,
		catalogs:    catalogs,
		model:       model,
		RetryDelays: DefaultRetryDelays(),
	}
}

// Ask answers a natural language question about both imported catalogs.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", coursecheck.Errorf(coursecheck.EINVALID, "question required")
	}

	snapshot, err := coursecheck.LoadSnapshot(ctx, a.catalogs)
	if err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(snapshot, question)
	if a.Tokens != nil && a.MaxPromptTokens > 0 {
		n, err := a.Tokens.CountTokens(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("failed to count prompt tokens: %w", err)
		}
		if n > a.MaxPromptTokens {
			return "", coursecheck.Errorf(coursecheck.EINVALID, "prompt has %d tokens, limit is %d", n, a.MaxPromptTokens)
		}
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
	}}
	config := BuildConfig(snapshot)
	result, err := GenerateWithRetry(ctx, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return a.client.Models.GenerateContent(ctx, a.model, contents, config)
	}, a.RetryDelays, a.Logger)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", coursecheck.Errorf(coursecheck.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(snapshot *coursecheck.Snapshot) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: fmt.Sprintf("You are a study advisor answering questions about which %s courses are accepted in the %s program. "+
					"A %s course is accepted when the %s catalog lists the same course. "+
					"Answer based only on the catalogs provided. If the answer is not in the catalogs, say so.",
					snapshot.ProgramB.Name, snapshot.ProgramA.Name, snapshot.ProgramB.Name, snapshot.ProgramA.Name),
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing both catalogs and the question.
func BuildUserPrompt(snapshot *coursecheck.Snapshot, question string) string {
	var sb strings.Builder
	sb.WriteString("<catalogs>\n")
	for _, catalog := range []*coursecheck.Catalog{snapshot.ProgramA, snapshot.ProgramB} {
		fmt.Fprintf(&sb, "<program name=%q>\n", catalog.Name)
		for _, c := range catalog.Courses {
			sb.WriteString("<course>\n")
			fmt.Fprintf(&sb, "<name>%s</name>\n", c.DisplayName)
			fmt.Fprintf(&sb, "<details>%s</details>\n", c.ComparisonText)
			if c.Classification != "" {
				fmt.Fprintf(&sb, "<classification>%s</classification>\n", c.Classification)
			}
			sb.WriteString("</course>\n")
		}
		sb.WriteString("</program>\n")
	}
	sb.WriteString("</catalogs>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
