package probe

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"
)

// DNSStatus explains why a hostname did or did not resolve. It is
// attached to transport-level probe failures for operator context.
type DNSStatus struct {
	Domain        string
	IPs           []net.IP
	Class         string // "RESOLVES" | "NXDOMAIN" | "NO_A_RECORD" | "SERVFAIL_or_TIMEOUT" | "INVALID_NAME"
	ResolverError string
}

var dnsTimeout = 3 * time.Second

// CheckDNS resolves domain with the OS resolver and classifies the
// outcome. It never returns an error; failures land in Class.
func CheckDNS(domain string) DNSStatus {
	s := DNSStatus{Domain: strings.TrimSpace(domain)}
	if s.Domain == "" || strings.Contains(s.Domain, "://") {
		s.Class = "INVALID_NAME"
		return s
	}

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()
	r := &net.Resolver{}

	ips, err := r.LookupIP(ctx, "ip", s.Domain)
	if err == nil && len(ips) > 0 {
		s.IPs = ips
		s.Class = "RESOLVES"
		return s
	}
	if err != nil {
		s.ResolverError = err.Error()
	}

	// A name with NS records but no address records resolves to nothing
	// useful; distinguish that from a missing name.
	hasNS := false
	if ns, nsErr := r.LookupNS(ctx, s.Domain); nsErr == nil && len(ns) > 0 {
		hasNS = true
	}

	s.Class = classifyLookup(err, hasNS)
	return s
}

// classifyLookup buckets a failed address lookup by the resolver error
// and whether the zone still has NS records.
func classifyLookup(lookupErr error, hasNS bool) string {
	var de *net.DNSError
	if errors.As(lookupErr, &de) {
		if de.IsTemporary || de.Timeout() {
			return "SERVFAIL_or_TIMEOUT"
		}
		if de.IsNotFound {
			if hasNS {
				return "NO_A_RECORD"
			}
			return "NXDOMAIN"
		}
	}
	if hasNS {
		return "NO_A_RECORD"
	}
	if lookupErr != nil {
		return "SERVFAIL_or_TIMEOUT"
	}
	return "NXDOMAIN"
}

// HostOf pulls the hostname out of a URL string, falling back to the
// raw input when parsing fails.
func HostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}
