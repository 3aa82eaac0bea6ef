package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ilcquote/services"
)

// Setup programmatically creates/ensures the showcase_cards collection exists.
// Quotes are computed per request and never stored, so this is the only
// collection the site needs.
func Setup(app *pocketbase.PocketBase, logger *zap.Logger) error {
	_, err := ensureCollection(app, logger, services.ShowcaseCollection, func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "kind",
			Required:  true,
			Values:    []string{string(services.CardService), string(services.CardProject)},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.TextField{Name: "title", Required: false})
		c.Fields.Add(&core.TextField{Name: "tag", Required: false})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.TextField{Name: "pills", Required: false})
		c.Fields.Add(&core.TextField{Name: "image", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
	return err
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, logger *zap.Logger, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		logger.Debug("collection already exists", zap.String("collection", name))
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	logger.Info("created collection", zap.String("collection", name), zap.String("id", collection.Id))
	return collection, nil
}
