package ingest

import (
	"context"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// PopulateDropNames names every unnamed drop from entities imported since it was
// first seen. It returns the number of drops that were named.
func (i *Importer) PopulateDropNames(ctx context.Context) (int, error) {
	named := 0
	_, err := i.run(ctx, "PopulateDropNames", func(tx *store.Tx) error {
		drops, err := store.FindAll[schema.Drop](ctx, tx, store.Key{"name": ""})
		if err != nil {
			return err
		}

		for idx := range drops {
			drop := &drops[idx]
			name, err := tx.ResolveName(ctx, drop.ID)
			if err != nil {
				return err
			}
			if name == "" {
				logger.WarnCtx(ctx, "Drop name still unknown", zap.Int64("dropID", drop.ID))
				continue
			}

			applied, err := store.Backfill[schema.Drop](ctx, tx, drop, &schema.Drop{ID: drop.ID, Name: name}, []string{"name"})
			if err != nil {
				return err
			}
			named += len(applied)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return named, nil
}
