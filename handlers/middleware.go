package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"ilcquote/config"
	"ilcquote/services"
	"ilcquote/templates"
)

type contextKey string

const ThemeKey contextKey = "theme"

// GetTheme extracts the visitor's theme from the request context.
func GetTheme(r *http.Request) services.Theme {
	if val, ok := r.Context().Value(ThemeKey).(services.Theme); ok {
		return val
	}
	return services.ThemeLight
}

// ThemeMiddleware reads the theme cookie and stores the parsed preference in
// the request context so every page renders with the right body class.
func ThemeMiddleware(cfg *config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		theme := services.ThemeLight
		if cookie, err := e.Request.Cookie(cfg.Theme.Cookie); err == nil {
			theme = services.ParseTheme(cookie.Value)
		}

		ctx := context.WithValue(e.Request.Context(), ThemeKey, theme)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// pageData builds the shared page chrome for the current request.
func pageData(r *http.Request, title, page string) templates.PageData {
	return templates.PageData{
		Title: title,
		Page:  page,
		Theme: GetTheme(r),
		Nav:   services.NavLinks(page),
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
