package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/luke31A/urlrequest/internal/domain"
	"github.com/luke31A/urlrequest/internal/probe"
)

func TestSlack_SendPostsPayload(t *testing.T) {
	var got slackPayload
	var gotUA string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(200)
	}))
	defer s.Close()

	sl := NewSlack(s.URL, 2*time.Second)
	if err := sl.Send(context.Background(), "title", "text"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(got.Text, "*title*") || !strings.Contains(got.Text, "text") {
		t.Fatalf("payload wrong: %+v", got)
	}
	if !got.Mrkdwn {
		t.Fatalf("payload should request mrkdwn rendering: %+v", got)
	}
	if gotUA != probe.UserAgent {
		t.Fatalf("want identifying user agent, got %q", gotUA)
	}
}

func TestSlack_Non2xxIsError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer s.Close()

	if err := NewSlack(s.URL, 0).Send(context.Background(), "t", "x"); err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestNewSlack_EmptyWebhookDisabled(t *testing.T) {
	if NewSlack("", time.Second) != nil {
		t.Fatalf("empty webhook should return nil notifier")
	}
}

func TestNewSlack_TimeoutDefaultsWhenUnset(t *testing.T) {
	sl := NewSlack("https://hooks.slack.invalid/T/B/x", 0)
	if sl.Client.Timeout != defaultWebhookTimeout {
		t.Fatalf("want default timeout, got %v", sl.Client.Timeout)
	}
	sl = NewSlack("https://hooks.slack.invalid/T/B/x", 3*time.Second)
	if sl.Client.Timeout != 3*time.Second {
		t.Fatalf("want configured timeout, got %v", sl.Client.Timeout)
	}
}

type failNotifier struct{ err error }

func (f *failNotifier) Send(ctx context.Context, title, text string) error { return f.err }

func TestMulti_AggregatesErrorsAndSkipsNil(t *testing.T) {
	okCalled := false
	ok := notifierFunc(func(ctx context.Context, title, text string) error {
		okCalled = true
		return nil
	})
	m := Multi{nil, ok, &failNotifier{err: io.ErrUnexpectedEOF}}

	err := m.Send(context.Background(), "t", "x")
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	if !okCalled {
		t.Fatalf("healthy notifier should still be called")
	}
}

type notifierFunc func(ctx context.Context, title, text string) error

func (f notifierFunc) Send(ctx context.Context, title, text string) error {
	return f(ctx, title, text)
}

func TestScanSummary(t *testing.T) {
	started := time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC)
	s := &domain.Scan{
		TenantID:   "acme",
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Results: []domain.ProbeResult{
			{Candidate: domain.Candidate{Environment: domain.EnvProduction, URL: "https://p"}, Reachable: true, StatusCode: 200, LatencyMS: 42},
			{Candidate: domain.Candidate{Environment: domain.EnvSandbox, URL: "https://s"}, Reachable: false, Error: "404"},
		},
	}

	title, text := ScanSummary(s)
	if !strings.Contains(title, "1/2") || !strings.Contains(title, "acme") {
		t.Fatalf("title wrong: %q", title)
	}
	if !strings.Contains(text, "https://p") || strings.Contains(text, "https://s") {
		t.Fatalf("text should list only reachable URLs: %q", text)
	}

	s.Results[0].Reachable = false
	title, _ = ScanSummary(s)
	if !strings.Contains(title, "no URLs found") {
		t.Fatalf("all-miss title wrong: %q", title)
	}
}
