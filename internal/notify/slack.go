package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/luke31A/urlrequest/internal/probe"
)

const defaultWebhookTimeout = 10 * time.Second

// Slack posts scan summaries to an incoming webhook.
type Slack struct {
	Webhook string
	Client  *http.Client
}

// NewSlack builds the notifier, or nil when no webhook is configured.
// A non-positive timeout falls back to defaultWebhookTimeout.
func NewSlack(webhook string, timeout time.Duration) *Slack {
	if webhook == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	return &Slack{
		Webhook: webhook,
		Client:  &http.Client{Timeout: timeout},
	}
}

type slackPayload struct {
	Text   string `json:"text"`
	Mrkdwn bool   `json:"mrkdwn"`
}

func (s *Slack) Send(ctx context.Context, title, text string) error {
	if s == nil || s.Webhook == "" {
		return errors.New("slack disabled")
	}
	body, _ := json.Marshal(slackPayload{
		Text:   "*" + title + "*\n" + text,
		Mrkdwn: true,
	})
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", probe.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("slack webhook returned " + resp.Status)
	}
	return nil
}
