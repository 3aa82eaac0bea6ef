package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ilcquote/config"
	"ilcquote/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	if app != nil {
		e.App = app
	}
	e.Request = req
	e.Response = rec
	return e
}

// newFormRequest builds a urlencoded POST carrying the given quote form.
func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withTheme(req *http.Request, theme services.Theme) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), ThemeKey, theme))
}

// fixedClock pins the estimate clock for the duration of a test.
func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

// failingPDF makes the PDF renderer fail for the duration of a test.
func failingPDF(t *testing.T, err error) {
	t.Helper()
	prev := pdfRenderer
	pdfRenderer = func(*config.Config) services.DocumentRenderer {
		return func(services.EstimateDocument) ([]byte, error) { return nil, err }
	}
	t.Cleanup(func() { pdfRenderer = prev })
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Estimate.Timezone = "UTC"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return cfg
}

func kitchenForm() url.Values {
	return services.QuoteInput{
		Name:    "Gagan Dhillon!!",
		Email:   "gagan@example.com",
		Area:    200,
		Service: services.ServiceKitchen,
		Finish:  services.FinishPremium,
		Extras:  []services.Extra{services.ExtraBathroom},
		Notes:   "Island with seating",
	}.FormValues()
}
