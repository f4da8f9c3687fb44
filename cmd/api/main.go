package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/luke31A/urlrequest/internal/config"
	"github.com/luke31A/urlrequest/internal/httpapi"
	apimw "github.com/luke31A/urlrequest/internal/httpapi/middleware"
	"github.com/luke31A/urlrequest/internal/logging"
	"github.com/luke31A/urlrequest/internal/notify"
	"github.com/luke31A/urlrequest/internal/probe"
	"github.com/luke31A/urlrequest/internal/repo/memory"
	"github.com/luke31A/urlrequest/internal/scan"
)

func main() {
	cfg, err := config.Load(os.Getenv("FINDER_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	checker := probe.NewRetryChecker(
		probe.NewHTTPChecker(cfg.HTTPTimeout),
		cfg.RetryAttempts,
		cfg.RetryBackoff,
	)
	// one candidate may need a HEAD plus a GET per attempt, plus backoff between attempts
	perProbe := time.Duration(cfg.RetryAttempts+1) * (2*cfg.HTTPTimeout + cfg.RetryBackoff)
	scanner := scan.NewScanner(logger, checker, perProbe, cfg.ScanTimeout, cfg.MaxConcurrentProbes)

	var notifier notify.Notifier
	if slack := notify.NewSlack(cfg.SlackWebhook, cfg.HTTPTimeout); slack != nil {
		notifier = slack
	}

	store := memory.New(100)
	api := httpapi.NewServer(logger, store, scanner, notifier)
	api.ImplScanLimit = cfg.ImplScanLimit

	keys := apimw.Keys{Public: cfg.PublicAPIKeys, Admin: cfg.AdminAPIKeys}
	router := api.Router(keys, cfg.PublicRPM, cfg.PublicBurst, cfg.AdminRPM, cfg.AdminBurst)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}
