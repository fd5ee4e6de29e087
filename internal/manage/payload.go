package manage

import (
	"encoding/json"
	"strings"

	"github.com/MunifTanjim/streamsave/core"
	"github.com/MunifTanjim/streamsave/internal/tracker"
	"github.com/MunifTanjim/streamsave/stremio"
	"github.com/anacrolix/torrent/metainfo"
)

func errValidation(msg string) error {
	return core.NewError(core.ErrorCodeValidationFailed, msg)
}

// ParseStreamPayload turns the raw user input into a stream payload. It
// accepts a magnet URI, a direct http(s) URL, or a JSON stream object;
// anything else is a validation error.
func ParseStreamPayload(raw string) (*stremio.Stream, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return nil, errValidation("empty stream payload")

	case strings.HasPrefix(raw, "{"):
		s := &stremio.Stream{}
		if err := json.Unmarshal([]byte(raw), s); err != nil {
			return nil, errValidation("malformed stream payload: " + err.Error())
		}
		if s.URL == "" && s.InfoHash == "" {
			return nil, errValidation("stream payload needs a url or an infoHash")
		}
		return s, nil

	case strings.HasPrefix(raw, "magnet:"):
		m, err := metainfo.ParseMagnetUri(raw)
		if err != nil {
			return nil, errValidation("malformed magnet link: " + err.Error())
		}
		s := &stremio.Stream{
			InfoHash: m.InfoHash.HexString(),
			Title:    m.DisplayName,
		}
		for _, announce := range m.Trackers {
			s.Sources = append(s.Sources, tracker.AppendTracker(announce))
		}
		s.Sources = append(s.Sources, "dht:"+s.InfoHash)
		return s, nil

	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return &stremio.Stream{URL: raw}, nil

	default:
		return nil, errValidation("unrecognized stream payload: expected a url, magnet link or json object")
	}
}

// SourceEntry is the single list entry a repeated add appends to an existing
// payload's source list.
func SourceEntry(s *stremio.Stream) string {
	if s.URL != "" {
		return s.URL
	}
	return "dht:" + s.InfoHash
}
