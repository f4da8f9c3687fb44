package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/luke31A/urlrequest/internal/domain"
	"github.com/luke31A/urlrequest/internal/generate"
	"github.com/luke31A/urlrequest/internal/logging"
	"github.com/luke31A/urlrequest/internal/probe"
	"github.com/luke31A/urlrequest/internal/scan"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "finder",
		Short:         "Guess and probe tenant URLs across deployment environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScanCommand(), newDiscoverCommand())
	return root
}

func newScanCommand() *cobra.Command {
	var (
		implStart   int
		implEnd     int
		timeoutMS   int
		retries     int
		concurrency int
		asJSON      bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "scan <tenant-id>",
		Short: "Probe production, sandbox, preview, customer central and IMPL URLs for a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := generate.Generate(args[0], implStart, implEnd)
			if err != nil {
				return err
			}
			results := runScan(cmd.Context(), candidates, timeoutMS, retries, concurrency, verbose)
			return printResults(cmd, results, asJSON)
		},
	}

	cmd.Flags().IntVar(&implStart, "impl-start", 1, "first IMPL index to probe")
	cmd.Flags().IntVar(&implEnd, "impl-end", 10, "last IMPL index to probe")
	addProbeFlags(cmd, &timeoutMS, &retries, &concurrency, &asJSON, &verbose)
	return cmd
}

func newDiscoverCommand() *cobra.Command {
	var (
		timeoutMS   int
		retries     int
		concurrency int
		asJSON      bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "discover <tenant-id>",
		Short: "Probe every data center's production URL to find where a tenant lives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := generate.ProductionCandidates(args[0])
			if err != nil {
				return err
			}
			results := runScan(cmd.Context(), candidates, timeoutMS, retries, concurrency, verbose)
			return printResults(cmd, results, asJSON)
		},
	}

	addProbeFlags(cmd, &timeoutMS, &retries, &concurrency, &asJSON, &verbose)
	return cmd
}

func addProbeFlags(cmd *cobra.Command, timeoutMS, retries, concurrency *int, asJSON, verbose *bool) {
	cmd.Flags().IntVar(timeoutMS, "timeout-ms", 5000, "per-request HTTP timeout")
	cmd.Flags().IntVar(retries, "retries", probe.DefaultMaxRetries, "retries on 429/5xx/transport errors")
	cmd.Flags().IntVar(concurrency, "concurrency", 8, "max probes in flight")
	cmd.Flags().BoolVar(asJSON, "json", false, "emit JSON instead of a table")
	cmd.Flags().BoolVarP(verbose, "verbose", "v", false, "log each probe")
}

func runScan(ctx context.Context, candidates []domain.Candidate, timeoutMS, retries, concurrency int, verbose bool) []domain.ProbeResult {
	logger := logging.NewCLILogger(verbose)
	defer logger.Sync()

	timeout := time.Duration(timeoutMS) * time.Millisecond
	checker := probe.NewRetryChecker(probe.NewHTTPChecker(timeout), retries, probe.DefaultBackoff)
	perProbe := time.Duration(retries+1) * (2*timeout + probe.DefaultBackoff)
	scanner := scan.NewScanner(logger, checker, perProbe, 0, concurrency)

	return scanner.Run(ctx, candidates)
}

func printResults(cmd *cobra.Command, results []domain.ProbeResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	w := cmd.OutOrStdout()
	for _, r := range results {
		mark := "✖"
		detail := r.Error
		if r.Reachable {
			mark = "✔"
			detail = fmt.Sprintf("%d %s %.0fms", r.StatusCode, r.Method, r.LatencyMS)
		} else if r.StatusCode != 0 {
			detail = fmt.Sprintf("%d", r.StatusCode)
		}
		fmt.Fprintf(w, "%s %-16s %-70s %s\n", mark, r.Candidate.Environment, r.Candidate.URL, detail)
	}
	return nil
}
