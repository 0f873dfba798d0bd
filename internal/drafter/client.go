// Package drafter talks to the hosted assistant that writes negotiation
// email. The vendor runs are asynchronous: we start a run, poll it on a
// short interval, and give up on a fixed budget so a stuck run never blocks
// a dispatch request.
package drafter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/greencandle/dispatch-core/internal/adapter"
	"github.com/greencandle/dispatch-core/internal/config"
	"github.com/greencandle/dispatch-core/internal/domain"
)

//go:generate mockgen -source=client.go -destination=../mocks/drafter.go -package=mocks -mock_names=Drafter=MockDrafter

// Request carries the load and driver context the assistant drafts from.
type Request struct {
	DriverHandle string
	LoadRefID    string
	Origin       string
	Destination  string
	Equipment    string
	PostedRate   string
	BrokerName   string
	// Instruction is optional extra guidance, e.g. the counter amount.
	Instruction string
}

// Draft is a finished negotiation email plus the token usage of the run.
type Draft struct {
	Subject          string
	Body             string
	PromptTokens     int
	CompletionTokens int
}

// Drafter produces negotiation email drafts.
type Drafter interface {
	Draft(ctx context.Context, req Request) (*Draft, error)
}

type client struct {
	http adapter.HTTPClient
	cfg  config.DrafterConfig
}

// NewClient creates a Drafter over the vendor's assistant API.
func NewClient(httpClient adapter.HTTPClient, cfg config.DrafterConfig) Drafter {
	return &client{http: httpClient, cfg: cfg}
}

type disabled struct{}

func (disabled) Draft(ctx context.Context, req Request) (*Draft, error) {
	return nil, fmt.Errorf("%w: drafting is not available on this service", domain.ErrUnavailable)
}

// Disabled returns a Drafter for services that never open threads.
func Disabled() Drafter {
	return disabled{}
}

type runResponse struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	Status   string `json:"status"`
	Usage    struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	LastError struct {
		Message string `json:"message"`
	} `json:"last_error"`
}

type messageList struct {
	Data []struct {
		Content []struct {
			Text struct {
				Value string `json:"value"`
			} `json:"text"`
		} `json:"content"`
	} `json:"data"`
}

func (c *client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
		"Content-Type":  "application/json",
		"OpenAI-Beta":   "assistants=v2",
	}
}

func (c *client) Draft(ctx context.Context, req Request) (*Draft, error) {
	run, err := c.startRun(ctx, req)
	if err != nil {
		return nil, err
	}

	run, err = c.awaitRun(ctx, run)
	if err != nil {
		return nil, err
	}

	body, err := c.latestMessage(ctx, run.ThreadID)
	if err != nil {
		return nil, err
	}

	subject, text := splitSubject(body, req.LoadRefID)
	return &Draft{
		Subject:          subject,
		Body:             text,
		PromptTokens:     run.Usage.PromptTokens,
		CompletionTokens: run.Usage.CompletionTokens,
	}, nil
}

func (c *client) startRun(ctx context.Context, req Request) (*runResponse, error) {
	prompt := fmt.Sprintf(
		"Draft a negotiation email for load %s: %s to %s, %s, posted at %s, broker %s.",
		req.LoadRefID, req.Origin, req.Destination, req.Equipment, req.PostedRate, req.BrokerName)
	if req.Instruction != "" {
		prompt += " " + req.Instruction
	}

	payload, err := json.Marshal(map[string]interface{}{
		"assistant_id": c.cfg.AssistantID,
		"thread": map[string]interface{}{
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode run request: %w", err)
	}

	resp, err := c.http.Post(ctx, c.cfg.BaseURL+"/v1/threads/runs", c.headers(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to start draft run: %w", err)
	}

	var run runResponse
	if err := json.Unmarshal(resp, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run response: %w", err)
	}
	return &run, nil
}

// awaitRun polls the run until it settles or the run budget is spent.
func (c *client) awaitRun(ctx context.Context, run *runResponse) (*runResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RunTimeout)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		switch run.Status {
		case "completed":
			return run, nil
		case "failed", "cancelled", "expired":
			return nil, fmt.Errorf("%w: draft run %s: %s", domain.ErrUnavailable, run.Status, run.LastError.Message)
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: draft run still %s", domain.ErrTimeout, run.Status)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}

		url := fmt.Sprintf("%s/v1/threads/%s/runs/%s", c.cfg.BaseURL, run.ThreadID, run.ID)
		var refreshed runResponse
		if err := c.http.Get(ctx, url, c.headers(), &refreshed); err != nil {
			return nil, fmt.Errorf("failed to poll draft run: %w", err)
		}
		run = &refreshed
	}
}

func (c *client) latestMessage(ctx context.Context, threadID string) (string, error) {
	url := fmt.Sprintf("%s/v1/threads/%s/messages?limit=1", c.cfg.BaseURL, threadID)

	var list messageList
	if err := c.http.Get(ctx, url, c.headers(), &list); err != nil {
		return "", fmt.Errorf("failed to fetch draft message: %w", err)
	}
	if len(list.Data) == 0 || len(list.Data[0].Content) == 0 {
		return "", fmt.Errorf("%w: draft run produced no message", domain.ErrUnavailable)
	}
	return list.Data[0].Content[0].Text.Value, nil
}

// splitSubject peels a leading "Subject:" line off the draft. Drafts without
// one get a subject derived from the load reference.
func splitSubject(text string, loadRefID string) (string, string) {
	trimmed := strings.TrimSpace(text)
	if rest, found := strings.CutPrefix(trimmed, "Subject:"); found {
		if i := strings.Index(rest, "\n"); i >= 0 {
			return strings.TrimSpace(rest[:i]), strings.TrimSpace(rest[i+1:])
		}
	}
	return "Load " + loadRefID, trimmed
}
