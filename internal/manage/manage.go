package manage

import (
	"context"
	"time"

	"github.com/MunifTanjim/streamsave/internal/cinemeta"
	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/internal/logger"
	"github.com/MunifTanjim/streamsave/stremio"
)

var log = logger.Scoped("manage")

type MetaSource interface {
	GetMeta(ctx context.Context, ctype stremio.ContentType, id string) (*cinemeta.Meta, error)
}

type Mutator struct {
	meta MetaSource
}

func NewMutator(meta MetaSource) *Mutator {
	return &Mutator{meta: meta}
}

// AddStream saves a stream payload for a title. The first add for an id
// creates the record; later adds append exactly one entry to the existing
// payload's source list, without replacing anything and without deduping.
// Series ids must address an episode (`tt0000001:1:2`).
func (m *Mutator) AddStream(ctx context.Context, store content.Store, id, rawPayload string) error {
	vid := content.ParseVideoId(id)
	if vid.Title == "" {
		return errValidation("missing content id")
	}

	ctype := store.ContentType()
	if ctype == stremio.ContentTypeSeries && !vid.IsEpisode() {
		return errValidation("series id must include season and episode")
	}

	payload, err := ParseStreamPayload(rawPayload)
	if err != nil {
		return err
	}

	rec, err := store.Get(ctx, vid.Title)
	if err != nil {
		return err
	}

	if rec == nil {
		rec = m.newRecord(ctx, ctype, vid)
		if ctype == stremio.ContentTypeSeries {
			rec.Episodes = map[string]*stremio.Stream{vid.EpisodeKey(): payload}
		} else {
			rec.Stream = payload
		}
		return store.Upsert(ctx, rec)
	}

	if ctype == stremio.ContentTypeSeries {
		if rec.Episodes[vid.EpisodeKey()] == nil {
			return store.PutEpisodeStream(ctx, vid.Title, vid.EpisodeKey(), payload)
		}
		return store.AppendStreamSource(ctx, vid.Title, vid.EpisodeKey(), SourceEntry(payload))
	}

	if rec.Stream == nil {
		rec.Stream = payload
		return store.Upsert(ctx, rec)
	}
	return store.AppendStreamSource(ctx, vid.Title, "", SourceEntry(payload))
}

// RemoveStream deletes the whole title record. Removal is title-granular and
// idempotent: an absent id is a successful no-op.
func (m *Mutator) RemoveStream(ctx context.Context, store content.Store, id string) error {
	vid := content.ParseVideoId(id)
	if vid.Title == "" {
		return errValidation("missing content id")
	}
	return store.Delete(ctx, vid.Title)
}

// newRecord seeds catalog meta from Cinemeta, falling back to the bare id
// when the lookup fails.
func (m *Mutator) newRecord(ctx context.Context, ctype stremio.ContentType, vid content.VideoId) *content.ContentRecord {
	rec := &content.ContentRecord{
		Id:   vid.Title,
		Type: ctype,
		Name: vid.Title,
	}

	metaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	meta, err := m.meta.GetMeta(metaCtx, ctype, vid.Title)
	if err != nil {
		log.Warn("metadata lookup failed", "error", err, "id", vid.Title)
		return rec
	}
	if meta == nil {
		return rec
	}

	if meta.Name != "" {
		rec.Name = meta.Name
	}
	rec.Description = meta.Description
	rec.Poster = meta.Poster
	rec.ReleaseInfo = meta.ReleaseInfo
	rec.IMDBRating = meta.IMDBRating
	return rec
}
