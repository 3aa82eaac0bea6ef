package collections_test

import (
	"testing"

	"go.uber.org/zap"

	"ilcquote/collections"
	"ilcquote/services"
	"ilcquote/testhelpers"
)

func TestSetup_ShowcaseFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId(services.ShowcaseCollection)
	if err != nil {
		t.Fatalf("collection %q not found after Setup(): %v", services.ShowcaseCollection, err)
	}
	for _, f := range []string{"kind", "sort_order", "title", "tag", "description", "pills", "image", "created", "updated"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("%s: missing field %q", services.ShowcaseCollection, f)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	before, _ := app.FindCollectionByNameOrId(services.ShowcaseCollection)

	if err := collections.Setup(app, zap.NewNop()); err != nil {
		t.Fatalf("second Setup(): %v", err)
	}

	after, err := app.FindCollectionByNameOrId(services.ShowcaseCollection)
	if err != nil {
		t.Fatalf("collection missing after second Setup(): %v", err)
	}
	if after.Id != before.Id {
		t.Errorf("collection id changed after second Setup(): %s -> %s", before.Id, after.Id)
	}
}

func TestSeed_InsertsCardsOnce(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app, zap.NewNop()); err != nil {
		t.Fatalf("Seed(): %v", err)
	}

	serviceCards, err := services.ListShowcaseCards(app, services.CardService)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	projectCards, err := services.ListShowcaseCards(app, services.CardProject)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(serviceCards) != 5 || len(projectCards) != 3 {
		t.Fatalf("seeded %d services and %d projects, want 5 and 3", len(serviceCards), len(projectCards))
	}
	if serviceCards[0].Title != "Basement development" {
		t.Errorf("first service = %q", serviceCards[0].Title)
	}

	if err := collections.Seed(app, zap.NewNop()); err != nil {
		t.Fatalf("second Seed(): %v", err)
	}
	again, _ := services.ListShowcaseCards(app, services.CardService)
	if len(again) != 5 {
		t.Errorf("second Seed() duplicated cards: %d services", len(again))
	}
}

func TestSeed_IncludesCardNeedingFallbacks(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app, zap.NewNop()); err != nil {
		t.Fatalf("Seed(): %v", err)
	}

	projects, _ := services.ListShowcaseCards(app, services.CardProject)
	var found bool
	for _, p := range projects {
		if p.Title != "Family basement" {
			continue
		}
		found = true
		modal := services.BuildCardModal(p)
		if modal.Tag != services.CardProjectTagFallback || modal.Body != services.CardBodyFallback || modal.HasImage() {
			t.Errorf("modal = %+v, want fallbacks", modal)
		}
	}
	if !found {
		t.Error("Family basement card not seeded")
	}
}
