package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func doWithKey(t *testing.T, h http.Handler, key string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireAny(t *testing.T) {
	keys := Keys{Public: []string{"pub"}, Admin: []string{"adm"}}
	h := RequireAny(keys)(okHandler())

	if got := doWithKey(t, h, "pub"); got != 200 {
		t.Fatalf("public key: %d", got)
	}
	if got := doWithKey(t, h, "adm"); got != 200 {
		t.Fatalf("admin key: %d", got)
	}
	if got := doWithKey(t, h, "wrong"); got != http.StatusUnauthorized {
		t.Fatalf("bad key: %d", got)
	}
	if got := doWithKey(t, h, ""); got != http.StatusUnauthorized {
		t.Fatalf("no key: %d", got)
	}
}

func TestRequireAny_OpenWhenUnconfigured(t *testing.T) {
	h := RequireAny(Keys{})(okHandler())
	if got := doWithKey(t, h, ""); got != 200 {
		t.Fatalf("unconfigured auth should allow: %d", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	keys := Keys{Public: []string{"pub"}, Admin: []string{"adm"}}
	h := RequireAdmin(keys)(okHandler())

	if got := doWithKey(t, h, "adm"); got != 200 {
		t.Fatalf("admin key: %d", got)
	}
	if got := doWithKey(t, h, "pub"); got != http.StatusForbidden {
		t.Fatalf("public key must not pass admin: %d", got)
	}
}

func TestReadAuth_BearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	if got := readAuth(req); got != "tok123" {
		t.Fatalf("readAuth=%q", got)
	}
}
