package tracker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MunifTanjim/streamsave/internal/cache"
	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/MunifTanjim/streamsave/internal/logger"
	"golang.org/x/sync/singleflight"
)

var log = logger.Scoped("tracker")

// Source yields the current best-tracker announce URLs. An empty result is
// valid and means "no additional trackers".
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
}

// AppendTracker formats an announce URL the way the streaming engine expects
// it inside a stream's source list.
func AppendTracker(announce string) string {
	return "tracker:" + announce
}

// Normalize trims, drops empties and dedupes while preserving order.
func Normalize(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	trackers := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		trackers = append(trackers, entry)
	}
	return trackers
}

var listCache = cache.NewLRUCache[[]string](&cache.CacheConfig{
	Name:     "tracker:best",
	Size:     4,
	Lifetime: config.TrackerListMaxAge,
})

type Client struct {
	url        string
	httpClient *http.Client
	group      singleflight.Group
}

var _ Source = (*Client)(nil)

func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: config.TrackerFetchTimeout,
		},
	}
}

func (c *Client) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	return Normalize(strings.Fields(string(body))), nil
}

// Fetch returns the cached tracker list, refreshing it at most once at a
// time across concurrent callers.
func (c *Client) Fetch(ctx context.Context) ([]string, error) {
	var trackers []string
	if listCache.Get(c.url, &trackers) {
		return trackers, nil
	}

	v, err, _ := c.group.Do(c.url, func() (any, error) {
		trackers, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		listCache.Add(c.url, trackers)
		log.Debug("fetched best tracker list", "count", len(trackers))
		return trackers, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}
