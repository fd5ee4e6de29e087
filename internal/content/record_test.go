package content

import (
	"testing"

	"github.com/MunifTanjim/streamsave/stremio"
	"github.com/stretchr/testify/assert"
)

func TestContentRecordStreamFor(t *testing.T) {
	movieStream := &stremio.Stream{URL: "https://example.com/movie.mp4"}
	movie := &ContentRecord{
		Id:     "tt0000001",
		Type:   stremio.ContentTypeMovie,
		Stream: movieStream,
	}
	assert.Equal(t, movieStream, movie.StreamFor(ParseVideoId("tt0000001")))

	epStream := &stremio.Stream{InfoHash: "abc123"}
	series := &ContentRecord{
		Id:   "tt0000002",
		Type: stremio.ContentTypeSeries,
		Episodes: map[string]*stremio.Stream{
			"1:2": epStream,
		},
	}
	assert.Equal(t, epStream, series.StreamFor(ParseVideoId("tt0000002:1:2")))
	assert.Nil(t, series.StreamFor(ParseVideoId("tt0000002:1:3")))
	assert.Nil(t, series.StreamFor(ParseVideoId("tt0000002")))
}

func TestContentRecordToMetaPreview(t *testing.T) {
	rec := &ContentRecord{
		Id:          "tt0000001",
		Type:        stremio.ContentTypeMovie,
		Name:        "Some Movie",
		Description: "about something",
		Poster:      "https://example.com/poster.jpg",
		ReleaseInfo: "2014",
		IMDBRating:  "8.6",
	}
	assert.Equal(t, stremio.MetaPreview{
		Id:          "tt0000001",
		Type:        stremio.ContentTypeMovie,
		Name:        "Some Movie",
		Description: "about something",
		Poster:      "https://example.com/poster.jpg",
		ReleaseInfo: "2014",
		IMDBRating:  "8.6",
	}, rec.ToMetaPreview())

	// missing optional fields stay empty, never error
	bare := &ContentRecord{Id: "tt0000002", Type: stremio.ContentTypeSeries, Name: "tt0000002"}
	preview := bare.ToMetaPreview()
	assert.Equal(t, "tt0000002", preview.Id)
	assert.Empty(t, preview.Poster)
	assert.Empty(t, preview.Description)
}
