package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ilcquote/services"
	"ilcquote/templates"
)

const homePreviewCount = 3

// HandleHome renders the landing page with a preview of services and projects.
func HandleHome(app *pocketbase.PocketBase, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		serviceCards, err := services.ListShowcaseCards(app, services.CardService)
		if err != nil {
			logger.Error("home: could not list service cards", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		projectCards, err := services.ListShowcaseCards(app, services.CardProject)
		if err != nil {
			logger.Error("home: could not list project cards", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		component := templates.HomePage(
			pageData(e.Request, "Home", services.PageHome),
			firstCards(serviceCards, homePreviewCount),
			firstCards(projectCards, homePreviewCount),
		)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCardList renders every card of one kind, e.g. the services or the
// projects page.
func HandleCardList(app *pocketbase.PocketBase, logger *zap.Logger, kind services.CardKind) func(*core.RequestEvent) error {
	title, page := "Services", services.PageServices
	if kind == services.CardProject {
		title, page = "Projects", services.PageProjects
	}

	return func(e *core.RequestEvent) error {
		cards, err := services.ListShowcaseCards(app, kind)
		if err != nil {
			logger.Error("card list: query failed", zap.String("kind", string(kind)), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		component := templates.CardsPage(pageData(e.Request, title, page), title, cards)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCardModal returns the info modal fragment for one card.
func HandleCardModal(app *pocketbase.PocketBase, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing card ID")
		}

		card, err := services.FindShowcaseCard(app, id)
		if err != nil {
			logger.Info("card modal: card not found", zap.String("id", id), zap.Error(err))
			return ErrorToast(e, http.StatusNotFound, "That item could not be found.")
		}

		component := templates.CardModal(services.BuildCardModal(card))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func firstCards(cards []services.ShowcaseCard, n int) []services.ShowcaseCard {
	if len(cards) > n {
		return cards[:n]
	}
	return cards
}
