package probe

import (
	"context"
	"net/http"
	"time"
)

// UserAgent identifies this tool on every outbound request, probes and
// webhooks alike.
const UserAgent = "TenantURLFinder/1.0 (+https://github.com/luke31A/urlrequest)"

type HTTPChecker struct {
	Client *http.Client
}

// NewHTTPChecker builds a checker whose client follows redirects (the
// default policy) and gives up after timeout.
func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check probes target with a HEAD request, falling back to GET when the
// server rejects HEAD (405) or the HEAD attempt fails at the transport
// level. Success means the final status after redirects is in [200,400).
func (h *HTTPChecker) Check(ctx context.Context, target string) CheckResult {
	start := time.Now()

	out, ok := h.attempt(ctx, http.MethodHead, target)
	if !ok || out.StatusCode == http.StatusMethodNotAllowed {
		out, _ = h.attempt(ctx, http.MethodGet, target)
	}
	out.LatencyMS = time.Since(start).Seconds() * 1000
	return out
}

// attempt runs one request. ok is false on transport failure, in which
// case the result carries the error text and status 0.
func (h *HTTPChecker) attempt(ctx context.Context, method, target string) (CheckResult, bool) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return CheckResult{Method: method, Message: err.Error()}, false
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := h.Client.Do(req)
	if err != nil {
		return CheckResult{Method: method, Message: err.Error()}, false
	}
	defer resp.Body.Close()

	return CheckResult{
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 400,
		StatusCode: resp.StatusCode,
		Method:     method,
		Message:    resp.Status,
	}, true
}
