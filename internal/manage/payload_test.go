package manage

import (
	"testing"

	"github.com/MunifTanjim/streamsave/stremio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sintelHash = "08ada5a7a6183aae1e09d831df6748d566095a10"

func TestParseStreamPayload(t *testing.T) {
	for _, tc := range []struct {
		name        string
		input       string
		expected    *stremio.Stream
		shouldError bool
	}{
		{
			"direct url",
			"https://example.com/video.mp4",
			&stremio.Stream{URL: "https://example.com/video.mp4"},
			false,
		},
		{
			"magnet",
			"magnet:?xt=urn:btih:" + sintelHash + "&dn=Sintel&tr=udp%3A%2F%2Ftracker.opentrackr.org%3A1337%2Fannounce",
			&stremio.Stream{
				InfoHash: sintelHash,
				Title:    "Sintel",
				Sources: []string{
					"tracker:udp://tracker.opentrackr.org:1337/announce",
					"dht:" + sintelHash,
				},
			},
			false,
		},
		{
			"magnet without trackers",
			"magnet:?xt=urn:btih:" + sintelHash,
			&stremio.Stream{
				InfoHash: sintelHash,
				Sources:  []string{"dht:" + sintelHash},
			},
			false,
		},
		{
			"json object",
			`{"infoHash":"abc123","fileIdx":2,"sources":["tracker:udp://example.com:80/announce"]}`,
			&stremio.Stream{
				InfoHash:  "abc123",
				FileIndex: 2,
				Sources:   []string{"tracker:udp://example.com:80/announce"},
			},
			false,
		},
		{"empty", "", nil, true},
		{"whitespace", "   ", nil, true},
		{"garbage", "not-a-stream", nil, true},
		{"malformed json", `{"url":`, nil, true},
		{"json without url or infoHash", `{"name":"x"}`, nil, true},
		{"malformed magnet", "magnet:?xt=urn:btih:zz", nil, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseStreamPayload(tc.input)
			if tc.shouldError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestSourceEntry(t *testing.T) {
	assert.Equal(t, "https://example.com/v.mp4", SourceEntry(&stremio.Stream{URL: "https://example.com/v.mp4"}))
	assert.Equal(t, "dht:"+sintelHash, SourceEntry(&stremio.Stream{InfoHash: sintelHash}))
}
