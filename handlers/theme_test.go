package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"ilcquote/services"
	"ilcquote/testhelpers"
)

func themeCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestGetTheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetTheme(req); got != services.ThemeLight {
		t.Errorf("GetTheme without context = %q, want light", got)
	}
	if got := GetTheme(withTheme(req, services.ThemeDark)); got != services.ThemeDark {
		t.Errorf("GetTheme = %q, want dark", got)
	}
}

func TestThemeMiddleware_ReadsCookie(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name   string
		cookie string
		want   services.Theme
	}{
		{"no cookie", "", services.ThemeLight},
		{"dark", "dark", services.ThemeDark},
		{"light", "light", services.ThemeLight},
		{"unknown value", "sepia", services.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cfg.Theme.Cookie, Value: tt.cookie})
			}
			e := newTestRequestEvent(nil, req, httptest.NewRecorder())

			// e.Next() with no handler set returns nil in PocketBase
			_ = ThemeMiddleware(cfg)(e)

			if got := GetTheme(e.Request); got != tt.want {
				t.Errorf("theme = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandleThemeToggle_HTMX(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name      string
		current   services.Theme
		want      services.Theme
		wantLabel string
	}{
		{"light to dark", services.ThemeLight, services.ThemeDark, `<span id="theme-label">Dark</span>`},
		{"dark to light", services.ThemeDark, services.ThemeLight, `<span id="theme-label">Light</span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
			req.Header.Set("HX-Request", "true")
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(nil, withTheme(req, tt.current), rec)

			if err := HandleThemeToggle(cfg, zap.NewNop())(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			c := themeCookie(rec, cfg.Theme.Cookie)
			if c == nil {
				t.Fatal("expected theme cookie")
			}
			if c.Value != string(tt.want) {
				t.Errorf("cookie = %q, want %q", c.Value, tt.want)
			}
			if rec.Header().Get("HX-Refresh") != "true" {
				t.Error("expected HX-Refresh: true")
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), `id="theme-toggle"`, tt.wantLabel)
		})
	}
}

func TestHandleThemeToggle_PlainPostRedirects(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{"back to referer", "/quote", "/quote"},
		{"home without referer", "", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(nil, req, rec)

			if err := HandleThemeToggle(cfg, zap.NewNop())(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if rec.Code != http.StatusSeeOther {
				t.Errorf("expected 303, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != tt.want {
				t.Errorf("Location = %q, want %q", loc, tt.want)
			}
			if c := themeCookie(rec, cfg.Theme.Cookie); c == nil || c.Value != string(services.ThemeDark) {
				t.Errorf("expected dark theme cookie, got %v", c)
			}
		})
	}
}

func TestPageData_UsesThemeAndNav(t *testing.T) {
	req := withTheme(httptest.NewRequest(http.MethodGet, "/services", nil), services.ThemeDark)

	page := pageData(req, "Services", services.PageServices)

	if page.Theme != services.ThemeDark {
		t.Errorf("theme = %q, want dark", page.Theme)
	}
	active := 0
	for _, link := range page.Nav {
		if link.Active {
			active++
			if link.Href != "/services" {
				t.Errorf("unexpected active link %q", link.Href)
			}
		}
	}
	if active != 1 {
		t.Errorf("expected one active link, got %d", active)
	}
}
