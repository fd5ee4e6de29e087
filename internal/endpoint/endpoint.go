package endpoint

import (
	"net/http"

	"github.com/MunifTanjim/streamsave/internal/cinemeta"
	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/MunifTanjim/streamsave/internal/logger"
	"github.com/MunifTanjim/streamsave/internal/manage"
	"github.com/MunifTanjim/streamsave/internal/shared"
	"github.com/MunifTanjim/streamsave/internal/stream"
	"github.com/MunifTanjim/streamsave/internal/tenant"
	"github.com/MunifTanjim/streamsave/internal/tracker"
)

var log = logger.Scoped("endpoint")

var (
	tenantResolver = tenant.NewResolver()

	// Trackers is the injected best-tracker collaborator, also used by the
	// refresh worker.
	Trackers = tracker.NewClient(config.BestTrackersURL)

	streamResolver = stream.NewResolver(Trackers)
	mutator        = manage.NewMutator(cinemeta.NewClient(config.CinemetaBaseURL))
)

func AddEndpoints(mux *http.ServeMux) {
	withCors := shared.Middleware(shared.EnableCORS)

	mux.HandleFunc("/manifest.json", withCors(handleManifest))
	mux.HandleFunc("/{user}/{passw}/{cluster}/manifest.json", withCors(handleManifest))
	mux.HandleFunc("/{user}/{passw}/{cluster}/catalog/{contentType}/{catalogId}", withCors(handleCatalog))
	mux.HandleFunc("/{user}/{passw}/{cluster}/stream/{contentType}/{videoId}", withCors(handleStream))

	mux.HandleFunc("/manage", handleManage)

	mux.HandleFunc("/api/content", withCors(handleAPIContent))
	mux.HandleFunc("/api/content/{contentType}/{id}", withCors(handleAPIContentItem))
	mux.HandleFunc("/api/movies", withCors(handleAPIMovies))
	mux.HandleFunc("/api/series", withCors(handleAPISeries))
}
