package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"ilcquote/services"
	"ilcquote/testhelpers"
)

func TestHandleHome_ListsCards(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCard(t, app, services.CardService, "Basement development", 1)
	testhelpers.CreateTestCard(t, app, services.CardProject, "Open-concept kitchen", 1)

	handler := HandleHome(app, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Basement development",
		"Open-concept kitchen",
		`class="nav-link active" href="/"`,
		`href="/quote"`,
	)
}

func TestHandleHome_PreviewIsCapped(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	titles := []string{"First", "Second", "Third", "Fourth"}
	for i, title := range titles {
		testhelpers.CreateTestCard(t, app, services.CardService, title, i+1)
	}

	handler := HandleHome(app, zap.NewNop())
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "<h3>First</h3>", "<h3>Second</h3>", "<h3>Third</h3>")
	testhelpers.AssertHTMLNotContains(t, body, "<h3>Fourth</h3>")
}

func TestHandleCardList_FiltersByKind(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCard(t, app, services.CardService, "Kitchen renovations", 1)
	testhelpers.CreateTestCard(t, app, services.CardProject, "Two-bedroom legal suite", 1)

	tests := []struct {
		name    string
		kind    services.CardKind
		want    string
		notWant string
		navHref string
	}{
		{"services", services.CardService, "Kitchen renovations", "Two-bedroom legal suite", "/services"},
		{"projects", services.CardProject, "Two-bedroom legal suite", "Kitchen renovations", "/projects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := HandleCardList(app, zap.NewNop(), tt.kind)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, httptest.NewRequest(http.MethodGet, tt.navHref, nil), rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			body := rec.Body.String()
			testhelpers.AssertHTMLContains(t, body, tt.want, `class="nav-link active" href="`+tt.navHref+`"`)
			testhelpers.AssertHTMLNotContains(t, body, tt.notWant)
		})
	}
}

func TestHandleCardList_OrderedBySortOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCard(t, app, services.CardProject, "Later", 2)
	testhelpers.CreateTestCard(t, app, services.CardProject, "Earlier", 1)

	handler := HandleCardList(app, zap.NewNop(), services.CardProject)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, httptest.NewRequest(http.MethodGet, "/projects", nil), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	first := strings.Index(body, "Earlier")
	second := strings.Index(body, "Later")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected Earlier before Later, got positions %d and %d", first, second)
	}
}

func TestHandleCardModal_Fallbacks(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	card := testhelpers.CreateTestCard(t, app, services.CardProject, "", 1)

	handler := HandleCardModal(app, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/cards/"+card.Id+"/modal", nil)
	req.SetPathValue("id", card.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`<h2 id="modal-title">Details</h2>`,
		`<p class="modal-tag">Project details</p>`,
		"More information about this item will be added soon.",
		"Image coming soon",
		"Add your own project photo in the final site.",
		"classList.add('open')",
	)
}

func TestHandleCardModal_WithContent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	card := testhelpers.CreateTestCard(t, app, services.CardService, "Legal basement suites", 1)
	card.Set("tag", "Permits included")
	card.Set("description", "Suites built to code.")
	card.Set("pills", "Permits, Egress")
	card.Set("image", "/static/img/suite.jpg")
	if err := app.Save(card); err != nil {
		t.Fatalf("save card: %v", err)
	}

	handler := HandleCardModal(app, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/cards/"+card.Id+"/modal", nil)
	req.SetPathValue("id", card.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		`<img src="/static/img/suite.jpg" alt="Legal basement suites">`,
		"Permits included",
		"Suites built to code.",
		`<li class="pill">Permits</li><li class="pill">Egress</li>`,
	)
	testhelpers.AssertHTMLNotContains(t, body, "Image coming soon")
}

func TestHandleCardModal_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCardModal(app, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/cards/missing/modal", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none on missing card")
	}
}
