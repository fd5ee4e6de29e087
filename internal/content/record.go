package content

import (
	"github.com/MunifTanjim/streamsave/stremio"
)

// ContentRecord is one saved title. Movies carry a single stream payload,
// series partition payloads by season:episode. There is at most one record
// per (type, id).
type ContentRecord struct {
	Id          string              `bson:"_id" json:"id"`
	Type        stremio.ContentType `bson:"type" json:"type"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Poster      string              `bson:"poster,omitempty" json:"poster,omitempty"`
	ReleaseInfo string              `bson:"releaseInfo,omitempty" json:"releaseInfo,omitempty"`
	IMDBRating  string              `bson:"imdbRating,omitempty" json:"imdbRating,omitempty"`

	Stream   *stremio.Stream            `bson:"stream,omitempty" json:"stream,omitempty"`
	Episodes map[string]*stremio.Stream `bson:"episodes,omitempty" json:"episodes,omitempty"`
}

// StreamFor picks the stored payload addressed by vid, nil when the record
// has nothing saved for it.
func (rec *ContentRecord) StreamFor(vid VideoId) *stremio.Stream {
	if rec.Type == stremio.ContentTypeSeries {
		if rec.Episodes == nil {
			return nil
		}
		return rec.Episodes[vid.EpisodeKey()]
	}
	return rec.Stream
}

func (rec *ContentRecord) ToMetaPreview() stremio.MetaPreview {
	return stremio.MetaPreview{
		Id:          rec.Id,
		Type:        rec.Type,
		Name:        rec.Name,
		Description: rec.Description,
		Poster:      rec.Poster,
		ReleaseInfo: rec.ReleaseInfo,
		IMDBRating:  rec.IMDBRating,
	}
}
