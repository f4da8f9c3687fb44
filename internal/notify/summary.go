package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/luke31A/urlrequest/internal/domain"
)

// ScanSummary renders a completed scan as a notification title + body.
// The body lists only reachable candidates; an all-miss scan says so.
func ScanSummary(s *domain.Scan) (title, text string) {
	hits := make([]string, 0, len(s.Results))
	for _, r := range s.Results {
		if r.Reachable {
			hits = append(hits, fmt.Sprintf("%s: %s (%d, %.0f ms)",
				r.Candidate.Environment, r.Candidate.URL, r.StatusCode, r.LatencyMS))
		}
	}

	if len(hits) == 0 {
		title = fmt.Sprintf("Tenant scan: no URLs found for %q", s.TenantID)
	} else {
		title = fmt.Sprintf("Tenant scan: %d/%d URLs live for %q", len(hits), len(s.Results), s.TenantID)
	}

	var b strings.Builder
	for _, h := range hits {
		b.WriteString(h)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Probed %d candidates in %s",
		len(s.Results), s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
	return title, b.String()
}
