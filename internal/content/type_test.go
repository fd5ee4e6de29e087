package content

import (
	"testing"

	"github.com/MunifTanjim/streamsave/stremio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	ctype, err := ParseContentType("movie")
	require.NoError(t, err)
	assert.Equal(t, stremio.ContentTypeMovie, ctype)

	ctype, err = ParseContentType("series")
	require.NoError(t, err)
	assert.Equal(t, stremio.ContentTypeSeries, ctype)

	for _, input := range []string{"", "music", "tv", "Movie"} {
		_, err := ParseContentType(input)
		assert.Error(t, err, "input: %s", input)
	}
}
