package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ShowcaseCollection is the PocketBase collection holding service and project cards.
const ShowcaseCollection = "showcase_cards"

// ListShowcaseCards returns the cards of one kind ordered by sort_order.
func ListShowcaseCards(app *pocketbase.PocketBase, kind CardKind) ([]ShowcaseCard, error) {
	records, err := app.FindRecordsByFilter(
		ShowcaseCollection,
		"kind = {:kind}",
		"sort_order",
		0,
		0,
		map[string]any{"kind": string(kind)},
	)
	if err != nil {
		return nil, fmt.Errorf("list %s cards: %w", kind, err)
	}

	cards := make([]ShowcaseCard, 0, len(records))
	for _, rec := range records {
		cards = append(cards, cardFromRecord(rec))
	}
	return cards, nil
}

// FindShowcaseCard loads a single card by record ID.
func FindShowcaseCard(app *pocketbase.PocketBase, id string) (ShowcaseCard, error) {
	rec, err := app.FindRecordById(ShowcaseCollection, id)
	if err != nil {
		return ShowcaseCard{}, fmt.Errorf("card not found: %w", err)
	}
	return cardFromRecord(rec), nil
}

func cardFromRecord(rec *core.Record) ShowcaseCard {
	return ShowcaseCard{
		ID:          rec.Id,
		Kind:        CardKind(rec.GetString("kind")),
		Title:       rec.GetString("title"),
		Tag:         rec.GetString("tag"),
		Description: rec.GetString("description"),
		Pills:       ParsePills(rec.GetString("pills")),
		Image:       rec.GetString("image"),
	}
}
