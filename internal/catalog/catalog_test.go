package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/stremio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listStore struct {
	ctype   stremio.ContentType
	records []content.ContentRecord
	err     error
}

func (s *listStore) ContentType() stremio.ContentType {
	return s.ctype
}

func (s *listStore) Get(ctx context.Context, id string) (*content.ContentRecord, error) {
	return nil, nil
}

func (s *listStore) List(ctx context.Context) ([]content.ContentRecord, error) {
	return s.records, s.err
}

func (s *listStore) Upsert(ctx context.Context, rec *content.ContentRecord) error {
	return nil
}

func (s *listStore) AppendStreamSource(ctx context.Context, id, episodeKey, source string) error {
	return nil
}

func (s *listStore) PutEpisodeStream(ctx context.Context, id, episodeKey string, stream *stremio.Stream) error {
	return nil
}

func (s *listStore) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *listStore) Exists(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func rec(id, name string, ctype stremio.ContentType) content.ContentRecord {
	return content.ContentRecord{Id: id, Type: ctype, Name: name}
}

func TestBuildKeepsStoreOrder(t *testing.T) {
	movies := &listStore{ctype: stremio.ContentTypeMovie, records: []content.ContentRecord{
		rec("tt0000001", "Movie One", stremio.ContentTypeMovie),
		rec("tt0000002", "Movie Two", stremio.ContentTypeMovie),
	}}
	series := &listStore{ctype: stremio.ContentTypeSeries, records: []content.ContentRecord{
		rec("tt0000003", "Series One", stremio.ContentTypeSeries),
	}}

	metas, err := Build(t.Context(), []content.Store{movies, series})
	require.NoError(t, err)
	require.Len(t, metas, 3)

	ids := make([]string, len(metas))
	for i, meta := range metas {
		ids[i] = meta.Id
	}
	// movie entries come before series entries, each in scan order
	assert.Equal(t, []string{"tt0000001", "tt0000002", "tt0000003"}, ids)
}

func TestBuildEmptyStores(t *testing.T) {
	metas, err := Build(t.Context(), []content.Store{
		&listStore{ctype: stremio.ContentTypeMovie},
		&listStore{ctype: stremio.ContentTypeSeries},
	})
	require.NoError(t, err)
	assert.NotNil(t, metas)
	assert.Empty(t, metas)
}

func TestBuildScanError(t *testing.T) {
	scanErr := errors.New("cursor timed out")
	metas, err := Build(t.Context(), []content.Store{
		&listStore{ctype: stremio.ContentTypeMovie, records: []content.ContentRecord{
			rec("tt0000001", "Movie One", stremio.ContentTypeMovie),
		}},
		&listStore{ctype: stremio.ContentTypeSeries, err: scanErr},
	})
	assert.ErrorIs(t, err, scanErr)
	assert.Nil(t, metas)
}
