package domain

import (
	"fmt"
	"time"
)

type TenantID string

// Environment is one of the fixed deployment tiers whose URL naming
// convention is known in advance.
type Environment string

const (
	EnvProduction      Environment = "production"
	EnvSandbox         Environment = "sandbox"
	EnvPreview         Environment = "preview"
	EnvCustomerCentral Environment = "customer_central"
)

// Impl returns the environment label for the n-th implementation tenant.
func Impl(n int) Environment {
	return Environment(fmt.Sprintf("impl%d", n))
}

// Candidate is one URL to probe. Immutable once built.
type Candidate struct {
	Environment Environment `json:"environment"`
	URL         string      `json:"url"`
	DataCenter  string      `json:"data_center,omitempty"`
}

// ProbeResult is the outcome of probing a single candidate.
type ProbeResult struct {
	Candidate  Candidate `json:"candidate"`
	Reachable  bool      `json:"reachable"`
	StatusCode int       `json:"status_code,omitempty"`
	LatencyMS  float64   `json:"latency_ms"`
	Method     string    `json:"method,omitempty"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// Scan is one completed scan run, kept in the session history.
type Scan struct {
	ID         string        `json:"id"`
	TenantID   TenantID      `json:"tenant_id"`
	Results    []ProbeResult `json:"results"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// ReachableCount reports how many candidates in the scan responded.
func (s *Scan) ReachableCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Reachable {
			n++
		}
	}
	return n
}
