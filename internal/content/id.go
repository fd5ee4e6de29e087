package content

import "strings"

// VideoId is a parsed stream resource id: `tt0000001` for a movie,
// `tt0000001:1:2` for season 1 episode 2 of a series.
type VideoId struct {
	Title   string
	Season  string
	Episode string
}

func ParseVideoId(id string) VideoId {
	vid := VideoId{}
	vid.Title, vid.Season, _ = strings.Cut(strings.TrimSpace(id), ":")
	vid.Season, vid.Episode, _ = strings.Cut(vid.Season, ":")
	return vid
}

func (vid VideoId) IsEpisode() bool {
	return vid.Season != "" && vid.Episode != ""
}

// EpisodeKey is the partition key for series stream payloads.
func (vid VideoId) EpisodeKey() string {
	if !vid.IsEpisode() {
		return ""
	}
	return vid.Season + ":" + vid.Episode
}
