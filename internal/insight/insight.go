// Package insight turns a day of logs into a short coaching summary via the
// Gemini API. Every failure mode degrades to a fixed user-visible string;
// nothing here can fail the caller.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"

	"github.com/focusflow/focusflow/internal/model"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Fixed fallback messages. The core renders these as-is, the same as real
// model output.
const (
	NotConfiguredMessage = "No API key detected. Set GEMINI_API_KEY to enable AI coaching."
	UnavailableMessage   = "Sorry, the AI coach is unreachable right now."
	EmptyReplyMessage    = "No suggestion available right now."
)

// Client calls the Gemini generateContent endpoint with a static API key.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string // defaults to the public Gemini endpoint
	HTTP    *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{APIKey: apiKey, Model: model}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize builds a prompt from today's logs and asks the model for a short
// observation and one actionable suggestion. A missing key short-circuits
// without a network call; any transport, API or decode failure yields the
// fixed unavailable message.
func (c *Client) Summarize(ctx context.Context, logs []model.TimeLog, categories []model.Category) string {
	if c.APIKey == "" {
		return NotConfiguredMessage
	}

	text, err := c.generate(ctx, BuildPrompt(logs, categories))
	if err != nil {
		fmt.Fprintf(os.Stderr, "insight: %v\n", err)
		return UnavailableMessage
	}
	if text == "" {
		return EmptyReplyMessage
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, c.Model)

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decoding gemini response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// BuildPrompt renders today's logs as per-category totals plus a flat
// detailed breakdown with sub-category labels. Unresolvable references get
// the unknown label; they still count.
func BuildPrompt(logs []model.TimeLog, categories []model.Category) string {
	byID := map[string]model.Category{}
	for _, c := range categories {
		byID[c.ID] = c
	}

	totals := map[string]int64{}
	var order []string
	var detailed []string
	for _, l := range logs {
		name := model.UnknownLabel
		cat, ok := byID[l.CategoryID]
		if ok {
			name = cat.Name
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += l.DurationSeconds

		entryName := name
		if ok && l.SubCategoryID != "" {
			if sub, found := cat.FindSub(l.SubCategoryID); found {
				entryName = name + "-" + sub.Name
			}
		}
		detailed = append(detailed, fmt.Sprintf("%s: %dm", entryName, roundMinutes(l.DurationSeconds)))
	}

	var sb strings.Builder
	sb.WriteString("Here is how I spent my time today:\n")
	for _, name := range order {
		sb.WriteString(fmt.Sprintf("- %s: %d minutes total\n", name, roundMinutes(totals[name])))
	}
	sb.WriteString("\nDetailed entries: ")
	sb.WriteString(strings.Join(detailed, ", "))
	sb.WriteString("\n\n" +
		"Act as a professional, supportive productivity coach.\n" +
		"1. Analyze today's time allocation, paying attention to the specific activities (including sub-categories).\n" +
		"2. Give one short, encouraging observation.\n" +
		"3. Based on this distribution, offer one actionable suggestion for tomorrow.\n" +
		"Keep the tone friendly and professional, and the whole reply under 120 words.")
	return sb.String()
}

func roundMinutes(seconds int64) int64 {
	return int64(math.Round(float64(seconds) / 60))
}
