package command

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/pointbuy/internal/game/inventory"
	"github.com/cory-johannsen/pointbuy/internal/game/skill"
	"github.com/cory-johannsen/pointbuy/internal/game/trait"
)

// CatalogDirs names the directory of each content catalog.
type CatalogDirs struct {
	Skills    string
	Traits    string
	Equipment string
}

// LoadCatalog reads the three catalogs concurrently.
//
// Postcondition: Returns a complete Catalog, or the first load error with the
// remaining loads abandoned.
func LoadCatalog(ctx context.Context, dirs CatalogDirs) (*Catalog, error) {
	var cat Catalog
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := skill.LoadTemplates(dirs.Skills)
		if err != nil {
			return fmt.Errorf("loading skills: %w", err)
		}
		cat.Skills = t
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := trait.LoadTemplates(dirs.Traits)
		if err != nil {
			return fmt.Errorf("loading traits: %w", err)
		}
		cat.Traits = t
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := inventory.LoadTemplates(dirs.Equipment)
		if err != nil {
			return fmt.Errorf("loading equipment: %w", err)
		}
		cat.Equipment = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}
