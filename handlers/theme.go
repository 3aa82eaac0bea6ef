package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ilcquote/config"
	"ilcquote/templates"
)

const themeCookieMaxAge = 365 * 24 * time.Hour

// HandleThemeToggle flips the stored theme. HTMX callers get the refreshed
// toggle button and a page refresh so the body class follows; plain form
// posts are redirected back to where they came from.
func HandleThemeToggle(cfg *config.Config, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		next := GetTheme(e.Request).Toggle()

		http.SetCookie(e.Response, &http.Cookie{
			Name:     cfg.Theme.Cookie,
			Value:    string(next),
			Path:     "/",
			MaxAge:   int(themeCookieMaxAge.Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
		logger.Debug("theme toggled", zap.String("theme", string(next)))

		if !isHTMX(e.Request) {
			target := e.Request.Referer()
			if target == "" {
				target = "/"
			}
			return e.Redirect(http.StatusSeeOther, target)
		}

		e.Response.Header().Set("HX-Refresh", "true")
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.ThemeToggle(next).Render(e.Request.Context(), e.Response)
	}
}
