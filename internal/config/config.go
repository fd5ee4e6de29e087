package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// mongodb.env carries the optional default credential triplet, same file
	// the original deployments used.
	godotenv.Load("mongodb.env")
	godotenv.Load()
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvUint32(key string, fallback uint32) uint32 {
	if value, err := strconv.ParseUint(getEnv(key, ""), 10, 32); err == nil {
		return uint32(value)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return fallback
}

func getEnvLogLevel(key string, fallback slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv(key, ""))); err != nil {
		return fallback
	}
	return level
}

var (
	Port     = getEnv("STREAMSAVE_PORT", "5001")
	LogLevel = getEnvLogLevel("STREAMSAVE_LOG_LEVEL", slog.LevelInfo)

	DatabaseName     = getEnv("STREAMSAVE_DATABASE", "streamsave")
	MovieCollection  = getEnv("STREAMSAVE_MOVIE_COLLECTION", "movies")
	SeriesCollection = getEnv("STREAMSAVE_SERIES_COLLECTION", "series")

	// Tenant store handles are keyed by the exact credential triplet and
	// dropped after sitting idle.
	TenantPoolSize       = getEnvUint32("STREAMSAVE_TENANT_POOL_SIZE", 64)
	TenantIdleTime       = getEnvDuration("STREAMSAVE_TENANT_IDLE_TIME", 5*time.Minute)
	StoreConnectTimeout  = getEnvDuration("STREAMSAVE_STORE_CONNECT_TIMEOUT", 5*time.Second)
	StoreSelectTimeout   = getEnvDuration("STREAMSAVE_STORE_SELECT_TIMEOUT", 5*time.Second)
	StoreMaxConnIdleTime = getEnvDuration("STREAMSAVE_STORE_MAX_CONN_IDLE_TIME", 30*time.Second)

	BestTrackersURL        = getEnv("STREAMSAVE_BEST_TRACKERS_URL", "https://raw.githubusercontent.com/ngosang/trackerslist/master/trackers_best.txt")
	TrackerListMaxAge      = getEnvDuration("STREAMSAVE_TRACKER_LIST_MAX_AGE", 1*time.Hour)
	TrackerFetchTimeout    = getEnvDuration("STREAMSAVE_TRACKER_FETCH_TIMEOUT", 10*time.Second)
	TrackerRefreshInterval = getEnvDuration("STREAMSAVE_TRACKER_REFRESH_INTERVAL", 30*time.Minute)

	CinemetaBaseURL = getEnv("STREAMSAVE_CINEMETA_BASE_URL", "https://v3-cinemeta.strem.io")
)

// DefaultCredentials is the env-configured triplet used by the /api and
// /manage surfaces when the request carries none of its own.
var DefaultCredentials = struct {
	User     string
	Password string
	Cluster  string
}{
	User:     getEnv("MONGO_USERNAME", ""),
	Password: getEnv("MONGO_PASSWORD", ""),
	Cluster:  getEnv("MONGO_CLUSTER_URL", ""),
}
