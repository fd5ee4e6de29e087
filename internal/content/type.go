package content

import (
	"github.com/MunifTanjim/streamsave/core"
	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/MunifTanjim/streamsave/stremio"
)

func ParseContentType(value string) (stremio.ContentType, error) {
	switch ctype := stremio.ContentType(value); ctype {
	case stremio.ContentTypeMovie, stremio.ContentTypeSeries:
		return ctype, nil
	default:
		return "", core.NewError(core.ErrorCodeNotFound, "unknown content type: "+value)
	}
}

func CollectionName(ctype stremio.ContentType) string {
	if ctype == stremio.ContentTypeSeries {
		return config.SeriesCollection
	}
	return config.MovieCollection
}
