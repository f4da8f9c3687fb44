package probe

import "context"

// CheckResult is the unified result of a single probe attempt.
//
// StatusCode is the final HTTP status when a response was received; 0
// for transport-level failures (DNS, refused connection, timeout).
// Method is the HTTP method that produced the classified response.
type CheckResult struct {
	Success    bool    `json:"success"`
	StatusCode int     `json:"status_code"`
	LatencyMS  float64 `json:"latency_ms"`
	Method     string  `json:"method,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// Checker performs a single check for a given target URL. Implementations
// never panic and never return errors: every failure is a CheckResult.
type Checker interface {
	Check(ctx context.Context, target string) CheckResult
}

// Class buckets a response status for the retry policy.
type Class int

const (
	ClassSuccess   Class = iota // 2xx/3xx: reachable
	ClassRetryable              // 429, 5xx, or transport failure (status 0)
	ClassTerminal               // other 4xx and anything unexpected
)

// Classify maps a final HTTP status code to a retry class. Status 0
// means no response was received and is treated as retryable.
func Classify(status int) Class {
	switch {
	case status >= 200 && status < 400:
		return ClassSuccess
	case status == 0, status == 429, status >= 500 && status < 600:
		return ClassRetryable
	default:
		return ClassTerminal
	}
}
