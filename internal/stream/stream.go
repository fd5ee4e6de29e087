package stream

import (
	"context"

	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/internal/logger"
	"github.com/MunifTanjim/streamsave/internal/tracker"
	"github.com/MunifTanjim/streamsave/stremio"
)

var log = logger.Scoped("stream")

type Resolver struct {
	trackers tracker.Source
}

func NewResolver(trackers tracker.Source) *Resolver {
	return &Resolver{trackers: trackers}
}

// Resolve fetches the saved payload for one video id, nil when nothing is
// saved. infoHash payloads get the current best trackers prepended to their
// source list; the merged list is never written back to the store.
func (res *Resolver) Resolve(ctx context.Context, store content.Store, videoId string) (*stremio.Stream, error) {
	vid := content.ParseVideoId(videoId)
	if vid.Title == "" {
		return nil, nil
	}

	rec, err := store.Get(ctx, vid.Title)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	s := rec.StreamFor(vid)
	if s == nil || s.InfoHash == "" {
		return s, nil
	}
	return res.augment(ctx, s), nil
}

// augment degrades to the stored sources when the tracker source fails or
// times out. It never returns an error.
func (res *Resolver) augment(ctx context.Context, s *stremio.Stream) *stremio.Stream {
	ctx, cancel := context.WithTimeout(ctx, config.TrackerFetchTimeout)
	defer cancel()

	announces, err := res.trackers.Fetch(ctx)
	if err != nil {
		log.Warn("tracker fetch failed, serving stored sources only", "error", err, "infoHash", s.InfoHash)
		return s
	}
	if len(announces) == 0 {
		return s
	}

	stored := make(map[string]struct{}, len(s.Sources))
	for _, source := range s.Sources {
		stored[source] = struct{}{}
	}

	sources := make([]string, 0, len(announces)+len(s.Sources))
	for _, announce := range announces {
		entry := tracker.AppendTracker(announce)
		if _, ok := stored[entry]; ok {
			continue
		}
		sources = append(sources, entry)
	}
	sources = append(sources, s.Sources...)

	augmented := *s
	augmented.Sources = sources
	return &augmented
}
