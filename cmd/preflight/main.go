// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("FINDER_ADMIN_API_KEYS"))
	pub := strings.TrimSpace(os.Getenv("FINDER_PUBLIC_API_KEYS"))
	addr := strings.TrimSpace(os.Getenv("FINDER_ADDR"))
	cfgFile := strings.TrimSpace(os.Getenv("FINDER_CONFIG"))
	webhook := strings.TrimSpace(os.Getenv("FINDER_SLACK_WEBHOOK"))

	if admin == "" {
		fail("FINDER_ADMIN_API_KEYS is empty (scan history routes will 403).")
	}
	if pub == "" {
		fail("FINDER_PUBLIC_API_KEYS is empty (scan routes will 401).")
	}

	// Normalize and sanity-check lists (no spaces around commas).
	for name, v := range map[string]string{"FINDER_ADMIN_API_KEYS": admin, "FINDER_PUBLIC_API_KEYS": pub} {
		if strings.Contains(v, " ") {
			warn(name + " contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}

	if addr == "" {
		warn("FINDER_ADDR is empty; the built-in default bind address will be used.")
	} else {
		ok("FINDER_ADDR=" + addr)
	}

	if cfgFile == "" {
		warn("FINDER_CONFIG empty — only defaults and env vars will apply.")
	} else if _, err := os.Stat(cfgFile); err != nil {
		fail("FINDER_CONFIG points at an unreadable file: " + err.Error())
	} else {
		ok("FINDER_CONFIG=" + cfgFile)
	}

	if webhook == "" {
		warn("FINDER_SLACK_WEBHOOK empty — scan summaries will not be posted.")
	} else {
		ok("FINDER_SLACK_WEBHOOK present")
	}

	ok("preflight passed")
}
