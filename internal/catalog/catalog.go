package catalog

import (
	"context"
	"errors"

	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/stremio"
	"github.com/alitto/pond/v2"
)

var scanPool = pond.NewPool(8)

// Build projects every record of each store into meta previews. Stores are
// scanned concurrently but the output keeps the given store order, and scan
// order within a store. An empty collection contributes nothing; a failed
// scan fails the whole build.
func Build(ctx context.Context, stores []content.Store) ([]stremio.MetaPreview, error) {
	chunks := make([][]stremio.MetaPreview, len(stores))
	errs := make([]error, len(stores))

	group := scanPool.NewGroup()
	for i, store := range stores {
		group.Submit(func() {
			records, err := store.List(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			metas := make([]stremio.MetaPreview, len(records))
			for j := range records {
				metas[j] = records[j].ToMetaPreview()
			}
			chunks[i] = metas
		})
	}
	group.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	metas := []stremio.MetaPreview{}
	for _, chunk := range chunks {
		metas = append(metas, chunk...)
	}
	return metas, nil
}
