package worker

import (
	"context"

	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/MunifTanjim/streamsave/internal/logger"
	"github.com/MunifTanjim/streamsave/internal/tracker"
	"github.com/madflojo/tasks"
)

var log = logger.Scoped("worker")

// TrackerRefresher keeps the best-tracker list warm so stream resolution
// rarely pays for the external fetch.
type TrackerRefresher struct {
	scheduler *tasks.Scheduler
}

func StartTrackerRefresher(src tracker.Source) *TrackerRefresher {
	scheduler := tasks.New()

	refresh := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), config.TrackerFetchTimeout)
		defer cancel()
		trackers, err := src.Fetch(ctx)
		if err != nil {
			// resolution degrades gracefully without the list, keep the task alive
			log.Warn("tracker list refresh failed", "error", err)
			return nil
		}
		log.Debug("tracker list refreshed", "count", len(trackers))
		return nil
	}

	if _, err := scheduler.Add(&tasks.Task{
		Interval: config.TrackerRefreshInterval,
		TaskFunc: refresh,
	}); err != nil {
		log.Error("failed to schedule tracker refresh", "error", err)
	}

	go func() {
		_ = refresh()
	}()

	return &TrackerRefresher{scheduler: scheduler}
}

func (w *TrackerRefresher) Stop() {
	w.scheduler.Stop()
}
