package content

import (
	"context"
	"errors"

	"github.com/MunifTanjim/streamsave/core"
	"github.com/MunifTanjim/streamsave/stremio"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is typed collection access for one content type on one tenant store.
type Store interface {
	ContentType() stremio.ContentType
	// Get returns nil without error for an absent id.
	Get(ctx context.Context, id string) (*ContentRecord, error)
	// List returns every record in scan order, empty when the collection is
	// empty or does not exist yet.
	List(ctx context.Context) ([]ContentRecord, error)
	Upsert(ctx context.Context, rec *ContentRecord) error
	// AppendStreamSource atomically appends one source entry to the payload's
	// source list. episodeKey is empty for movies.
	AppendStreamSource(ctx context.Context, id, episodeKey, source string) error
	// PutEpisodeStream sets the payload for one episode partition.
	PutEpisodeStream(ctx context.Context, id, episodeKey string, s *stremio.Stream) error
	// Delete is a no-op for an absent id.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	ctype stremio.ContentType
	col   *mongo.Collection
}

var _ Store = (*Repository)(nil)

func NewRepository(db *mongo.Database, ctype stremio.ContentType) *Repository {
	return &Repository{
		ctype: ctype,
		col:   db.Collection(CollectionName(ctype)),
	}
}

func storeError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return core.NewError(core.ErrorCodeStoreUnavailable, "store is unreachable").WithCause(err)
	}
	return core.NewError(core.ErrorCodeStoreError, "store operation failed").WithCause(err)
}

func (repo *Repository) ContentType() stremio.ContentType {
	return repo.ctype
}

func (repo *Repository) Get(ctx context.Context, id string) (*ContentRecord, error) {
	rec := ContentRecord{}
	err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, storeError(err)
	}
	return &rec, nil
}

func (repo *Repository) List(ctx context.Context) ([]ContentRecord, error) {
	cur, err := repo.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, storeError(err)
	}
	records := []ContentRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, storeError(err)
	}
	return records, nil
}

func (repo *Repository) Upsert(ctx context.Context, rec *ContentRecord) error {
	rec.Type = repo.ctype
	_, err := repo.col.ReplaceOne(ctx, bson.M{"_id": rec.Id}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return storeError(err)
	}
	return nil
}

func sourcesPath(episodeKey string) string {
	if episodeKey == "" {
		return "stream.sources"
	}
	return "episodes." + episodeKey + ".sources"
}

func (repo *Repository) AppendStreamSource(ctx context.Context, id, episodeKey, source string) error {
	_, err := repo.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{sourcesPath(episodeKey): source}},
	)
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (repo *Repository) PutEpisodeStream(ctx context.Context, id, episodeKey string, s *stremio.Stream) error {
	_, err := repo.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"episodes." + episodeKey: s}},
	)
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (repo *Repository) Delete(ctx context.Context, id string) error {
	if _, err := repo.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return storeError(err)
	}
	return nil
}

func (repo *Repository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := repo.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, storeError(err)
	}
	return count > 0, nil
}
