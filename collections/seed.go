package collections

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ilcquote/services"
)

type cardDef struct {
	kind        services.CardKind
	title       string
	tag         string
	description string
	pills       []string
	image       string
}

var serviceCards = []cardDef{
	{
		kind:        services.CardService,
		title:       "Basement development",
		description: "Turn an unfinished basement into living space with framing, insulation, drywall, flooring and lighting handled by one crew.",
		pills:       []string{"Framing", "Insulation", "Drywall", "Flooring"},
	},
	{
		kind:        services.CardService,
		title:       "Legal basement suites",
		tag:         "Permits included",
		description: "Secondary suites built to code with separate entrances, egress windows, fire separation and the permits to match.",
		pills:       []string{"Permits", "Egress", "Fire separation"},
	},
	{
		kind:        services.CardService,
		title:       "Kitchen renovations",
		description: "Layout changes, custom cabinetry, counters and tile, coordinated from demolition to final walkthrough.",
		pills:       []string{"Cabinetry", "Countertops", "Tile"},
	},
	{
		kind:        services.CardService,
		title:       "Bathroom renovations",
		description: "Walk-in showers, heated floors, vanities and waterproofing done right the first time.",
		pills:       []string{"Waterproofing", "Tile", "Fixtures"},
	},
	{
		kind:        services.CardService,
		title:       "Whole-home renovations",
		description: "Full interior updates planned as one project so trades, finishes and timelines stay aligned.",
		pills:       []string{"Design", "Project management"},
	},
}

var projectCards = []cardDef{
	{
		kind:        services.CardProject,
		title:       "Two-bedroom legal suite",
		tag:         "Legal suite • 950 sq. ft.",
		description: "Walk-out basement converted into a rental suite with its own entrance, laundry and kitchenette.",
		pills:       []string{"Separate entry", "Kitchenette", "Full bathroom"},
		image:       "/static/img/projects/legal-suite.jpg",
	},
	{
		kind:        services.CardProject,
		title:       "Open-concept kitchen",
		tag:         "Kitchen • 320 sq. ft.",
		description: "Load-bearing wall removed to open the kitchen to the living room, with a quartz island and full-height cabinetry.",
		pills:       []string{"Structural", "Quartz", "Custom cabinets"},
	},
	{
		kind:  services.CardProject,
		title: "Family basement",
		pills: []string{"Media room", "Wet bar"},
	},
}

// Seed inserts the default service and project cards. It is safe to call on
// every startup because it returns early if any card records already exist.
func Seed(app *pocketbase.PocketBase, logger *zap.Logger) error {
	cardsCol, err := app.FindCollectionByNameOrId(services.ShowcaseCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find %s collection: %w", services.ShowcaseCollection, err)
	}
	existing, err := app.FindAllRecords(cardsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query cards: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	logger.Info("seed: showcase collection is empty, inserting default cards")

	for _, defs := range [][]cardDef{serviceCards, projectCards} {
		for i, def := range defs {
			rec := core.NewRecord(cardsCol)
			rec.Set("kind", string(def.kind))
			rec.Set("sort_order", i+1)
			rec.Set("title", def.title)
			rec.Set("tag", def.tag)
			rec.Set("description", def.description)
			rec.Set("pills", strings.Join(def.pills, ", "))
			rec.Set("image", def.image)
			if err := app.Save(rec); err != nil {
				return fmt.Errorf("seed: could not save card %q: %w", def.title, err)
			}
		}
	}

	logger.Info("seed: inserted cards",
		zap.Int("services", len(serviceCards)),
		zap.Int("projects", len(projectCards)))
	return nil
}
