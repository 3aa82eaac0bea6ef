package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// Toast levels understood by the client-side toast listener.
const (
	ToastInfo  = "info"
	ToastError = "error"
)

const flashToastCookie = "flash_toast"

// SetToast sets the HX-Trigger response header to show a toast notification
// on the client via HTMX. If an HX-Trigger header already exists, the toast
// payload is merged into the existing JSON object; an existing value that is
// not JSON is overwritten.
// It also sets a flash cookie so the toast survives full page loads, such as a
// form submit that falls back from a download to the print view.
func SetToast(e *core.RequestEvent, toastType string, message string) error {
	payload := map[string]string{
		"message": message,
		"type":    toastType,
	}

	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = payload

	data, err := json.Marshal(trigger)
	if err != nil {
		return fmt.Errorf("toast: marshal HX-Trigger: %w", err)
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("toast: marshal flash cookie: %w", err)
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashToastCookie,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by site.js
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ErrorToast sets an error toast and prevents HTMX from swapping the error text into the DOM.
// It sets HX-Reswap: none so the response body is ignored by HTMX, while the HX-Trigger
// header still fires the toast event.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	_ = SetToast(e, ToastError, message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
