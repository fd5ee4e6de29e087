package stream

import (
	"context"
	"errors"
	"testing"

	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/stremio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	ctype stremio.ContentType
	recs  map[string]*content.ContentRecord
	err   error
}

func (s *fakeStore) ContentType() stremio.ContentType {
	return s.ctype
}

func (s *fakeStore) Get(ctx context.Context, id string) (*content.ContentRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.recs[id], nil
}

func (s *fakeStore) List(ctx context.Context) ([]content.ContentRecord, error) {
	return nil, nil
}

func (s *fakeStore) Upsert(ctx context.Context, rec *content.ContentRecord) error {
	return nil
}

func (s *fakeStore) AppendStreamSource(ctx context.Context, id, episodeKey, source string) error {
	return nil
}

func (s *fakeStore) PutEpisodeStream(ctx context.Context, id, episodeKey string, stream *stremio.Stream) error {
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *fakeStore) Exists(ctx context.Context, id string) (bool, error) {
	return false, nil
}

type fakeTrackers struct {
	announces []string
	err       error
}

func (f fakeTrackers) Fetch(ctx context.Context) ([]string, error) {
	return f.announces, f.err
}

func movieStore(recs ...*content.ContentRecord) *fakeStore {
	s := &fakeStore{ctype: stremio.ContentTypeMovie, recs: map[string]*content.ContentRecord{}}
	for _, rec := range recs {
		s.recs[rec.Id] = rec
	}
	return s
}

func TestResolveAbsent(t *testing.T) {
	res := NewResolver(fakeTrackers{})

	s, err := res.Resolve(t.Context(), movieStore(), "tt0000001")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = res.Resolve(t.Context(), movieStore(), "")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestResolveURLStreamUnmodified(t *testing.T) {
	stored := &stremio.Stream{URL: "https://example.com/movie.mp4"}
	store := movieStore(&content.ContentRecord{Id: "tt0000001", Type: stremio.ContentTypeMovie, Stream: stored})
	res := NewResolver(fakeTrackers{announces: []string{"udp://tracker.example.com:80/announce"}})

	s, err := res.Resolve(t.Context(), store, "tt0000001")
	require.NoError(t, err)
	assert.Same(t, stored, s)
	assert.Empty(t, s.Sources)
}

func TestResolveAugmentsInfoHashStream(t *testing.T) {
	stored := &stremio.Stream{
		InfoHash: "abc123",
		Sources:  []string{"tracker:udp://old.example.com:80/announce", "dht:abc123"},
	}
	store := movieStore(&content.ContentRecord{Id: "tt0000001", Type: stremio.ContentTypeMovie, Stream: stored})
	res := NewResolver(fakeTrackers{announces: []string{
		"udp://best.example.com:1337/announce",
		"udp://old.example.com:80/announce",
	}})

	s, err := res.Resolve(t.Context(), store, "tt0000001")
	require.NoError(t, err)
	require.NotNil(t, s)

	// fetched trackers come first, already-stored ones are not repeated
	assert.Equal(t, []string{
		"tracker:udp://best.example.com:1337/announce",
		"tracker:udp://old.example.com:80/announce",
		"dht:abc123",
	}, s.Sources)

	// the stored payload is left alone
	assert.NotSame(t, stored, s)
	assert.Equal(t, []string{"tracker:udp://old.example.com:80/announce", "dht:abc123"}, stored.Sources)
}

func TestResolveTrackerFetchFailure(t *testing.T) {
	stored := &stremio.Stream{InfoHash: "abc123", Sources: []string{"dht:abc123"}}
	store := movieStore(&content.ContentRecord{Id: "tt0000001", Type: stremio.ContentTypeMovie, Stream: stored})
	res := NewResolver(fakeTrackers{err: errors.New("tracker list unreachable")})

	s, err := res.Resolve(t.Context(), store, "tt0000001")
	require.NoError(t, err)
	assert.Same(t, stored, s)
}

func TestResolveSeriesEpisode(t *testing.T) {
	store := &fakeStore{
		ctype: stremio.ContentTypeSeries,
		recs: map[string]*content.ContentRecord{
			"tt0000002": {
				Id:   "tt0000002",
				Type: stremio.ContentTypeSeries,
				Episodes: map[string]*stremio.Stream{
					"1:2": {URL: "https://example.com/s01e02.mp4"},
				},
			},
		},
	}
	res := NewResolver(fakeTrackers{})

	s, err := res.Resolve(t.Context(), store, "tt0000002:1:2")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "https://example.com/s01e02.mp4", s.URL)

	s, err = res.Resolve(t.Context(), store, "tt0000002:1:3")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestResolveStoreError(t *testing.T) {
	store := &fakeStore{ctype: stremio.ContentTypeMovie, err: errors.New("connection reset")}
	res := NewResolver(fakeTrackers{})

	_, err := res.Resolve(t.Context(), store, "tt0000001")
	assert.Error(t, err)
}
