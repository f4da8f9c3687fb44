package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestImplLabel(t *testing.T) {
	if got := Impl(1); got != Environment("impl1") {
		t.Fatalf("Impl(1)=%q", got)
	}
	if got := Impl(17); got != Environment("impl17") {
		t.Fatalf("Impl(17)=%q", got)
	}
}

func TestProbeResult_JSONOmitsEmptyOptionals(t *testing.T) {
	r := ProbeResult{
		Candidate: Candidate{Environment: EnvProduction, URL: "https://example.com"},
		Reachable: false,
		LatencyMS: 3.2,
		CheckedAt: time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "status_code") || strings.Contains(s, `"error"`) || strings.Contains(s, "method") {
		t.Fatalf("optional fields should be omitted when zero: %s", s)
	}
}

func TestScan_ReachableCount(t *testing.T) {
	s := Scan{Results: []ProbeResult{
		{Reachable: true},
		{Reachable: false},
		{Reachable: true},
	}}
	if got := s.ReachableCount(); got != 2 {
		t.Fatalf("want 2, got %d", got)
	}
}
