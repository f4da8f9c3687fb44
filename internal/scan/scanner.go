package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/luke31A/urlrequest/internal/domain"
	"github.com/luke31A/urlrequest/internal/probe"
)

// Scanner runs every candidate through the checker with a bounded
// worker pool. Results come back in candidate order regardless of
// completion order; candidates the scan deadline cut off are reported
// as unreachable with error "cancelled".
type Scanner struct {
	Logger       *zap.Logger
	Checker      probe.Checker
	ProbeTimeout time.Duration
	ScanTimeout  time.Duration
	Concurrency  int
	DiagnoseDNS  bool
}

func NewScanner(logger *zap.Logger, checker probe.Checker, probeTimeout, scanTimeout time.Duration, concurrency int) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if probeTimeout <= 0 {
		probeTimeout = 5 * time.Second
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scanner{
		Logger:       logger,
		Checker:      checker,
		ProbeTimeout: probeTimeout,
		ScanTimeout:  scanTimeout,
		Concurrency:  concurrency,
		DiagnoseDNS:  true,
	}
}

// Run probes all candidates and always returns exactly one result per
// candidate, in input order. No probe failure aborts the others.
func (s *Scanner) Run(ctx context.Context, candidates []domain.Candidate) []domain.ProbeResult {
	if s.ScanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.ScanTimeout)
		defer cancel()
	}

	results := make([]domain.ProbeResult, len(candidates))
	sem := make(chan struct{}, s.Concurrency)
	var wg sync.WaitGroup

	for i, cand := range candidates {
		select {
		case <-ctx.Done():
			results[i] = cancelledResult(cand)
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, cand domain.Candidate) {
			defer func() { <-sem }()
			defer wg.Done()
			results[i] = s.probeOne(ctx, cand)
		}(i, cand)
	}

	wg.Wait()
	return results
}

func (s *Scanner) probeOne(ctx context.Context, cand domain.Candidate) domain.ProbeResult {
	if err := ctx.Err(); err != nil {
		return cancelledResult(cand)
	}

	pctx, cancel := context.WithTimeout(ctx, s.ProbeTimeout)
	defer cancel()

	out := s.Checker.Check(pctx, cand.URL)

	r := domain.ProbeResult{
		Candidate:  cand,
		Reachable:  out.Success,
		StatusCode: out.StatusCode,
		LatencyMS:  out.LatencyMS,
		Method:     out.Method,
		CheckedAt:  time.Now().UTC(),
	}
	if !out.Success {
		r.Error = out.Message
		if s.DiagnoseDNS && out.StatusCode == 0 && ctx.Err() == nil {
			dns := probe.CheckDNS(probe.HostOf(cand.URL))
			r.Error = fmt.Sprintf("%s dns=%s", r.Error, dns.Class)
			s.Logger.Info("dns_check",
				zap.String("domain", dns.Domain),
				zap.String("class", dns.Class),
				zap.String("resolver_error", dns.ResolverError),
			)
		}
	}

	s.Logger.Debug("probe_done",
		zap.String("environment", string(cand.Environment)),
		zap.String("url", cand.URL),
		zap.Bool("reachable", r.Reachable),
		zap.Int("status", r.StatusCode),
		zap.Float64("latency_ms", r.LatencyMS),
	)
	return r
}

func cancelledResult(cand domain.Candidate) domain.ProbeResult {
	return domain.ProbeResult{
		Candidate: cand,
		Reachable: false,
		Error:     "cancelled",
		CheckedAt: time.Now().UTC(),
	}
}
