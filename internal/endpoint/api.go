package endpoint

import (
	"net/http"

	"github.com/MunifTanjim/streamsave/internal/catalog"
	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/internal/shared"
	"github.com/MunifTanjim/streamsave/internal/tenant"
	"github.com/MunifTanjim/streamsave/stremio"
)

// api credentials: the x-db-url header wins, then the env-configured default.
func getAPICredentials(r *http.Request) (tenant.Credentials, error) {
	if dbUrl := r.Header.Get("x-db-url"); dbUrl != "" {
		return tenant.ParseConnectionURL(dbUrl)
	}
	creds := defaultCredentials()
	if err := creds.Validate(); err != nil {
		return creds, shared.ErrorBadRequest(r, "MongoDB credentials not configured")
	}
	return creds, nil
}

func buildAPICatalog(r *http.Request, types ...stremio.ContentType) ([]stremio.MetaPreview, error) {
	creds, err := getAPICredentials(r)
	if err != nil {
		return nil, err
	}
	handle, err := tenantResolver.Resolve(r.Context(), creds)
	if err != nil {
		return nil, err
	}
	stores := make([]content.Store, len(types))
	for i, ctype := range types {
		stores[i] = content.NewRepository(handle.Database(), ctype)
	}
	return catalog.Build(r.Context(), stores)
}

type contentListData struct {
	Content    []stremio.MetaPreview `json:"content"`
	TotalCount int                   `json:"total_count"`
}

func handleAPIContentList(w http.ResponseWriter, r *http.Request) {
	// movies first, then series
	metas, err := buildAPICatalog(r, stremio.ContentTypeMovie, stremio.ContentTypeSeries)
	if err != nil {
		shared.SendError(w, r, err)
		return
	}
	shared.SendResponse(w, r, 200, &contentListData{Content: metas, TotalCount: len(metas)}, nil)
}

type addContentPayload struct {
	Type   string `json:"type"`
	ImdbId string `json:"imdbID"`
	Stream string `json:"stream"`
}

func handleAPIContentAdd(w http.ResponseWriter, r *http.Request) {
	payload := addContentPayload{}
	if err := shared.ReadRequestBodyJSON(r, &payload); err != nil {
		shared.SendError(w, r, err)
		return
	}

	creds, err := getAPICredentials(r)
	if err != nil {
		shared.SendError(w, r, err)
		return
	}

	if err := runMutation(r, creds, "add", payload.Type, payload.ImdbId, payload.Stream); err != nil {
		shared.SendError(w, r, err)
		return
	}
	shared.SendText(w, r, 200, "Success")
}

func handleAPIContent(w http.ResponseWriter, r *http.Request) {
	switch {
	case shared.IsMethod(r, http.MethodGet):
		handleAPIContentList(w, r)
	case shared.IsMethod(r, http.MethodPost):
		handleAPIContentAdd(w, r)
	default:
		shared.ErrorMethodNotAllowed(r).Send(w, r)
	}
}

func handleAPIContentItem(w http.ResponseWriter, r *http.Request) {
	if !shared.IsMethod(r, http.MethodDelete) {
		shared.ErrorMethodNotAllowed(r).Send(w, r)
		return
	}

	creds, err := getAPICredentials(r)
	if err != nil {
		shared.SendError(w, r, err)
		return
	}

	err = runMutation(r, creds, "remove", r.PathValue("contentType"), r.PathValue("id"), "")
	if err != nil {
		shared.SendError(w, r, err)
		return
	}
	shared.SendText(w, r, 200, "Success")
}

type movieListData struct {
	Movies []stremio.MetaPreview `json:"movies"`
	Count  int                   `json:"count"`
}

func handleAPIMovies(w http.ResponseWriter, r *http.Request) {
	if !shared.IsMethod(r, http.MethodGet) {
		shared.ErrorMethodNotAllowed(r).Send(w, r)
		return
	}
	metas, err := buildAPICatalog(r, stremio.ContentTypeMovie)
	if err != nil {
		shared.SendError(w, r, err)
		return
	}
	shared.SendResponse(w, r, 200, &movieListData{Movies: metas, Count: len(metas)}, nil)
}

type seriesListData struct {
	Series []stremio.MetaPreview `json:"series"`
	Count  int                   `json:"count"`
}

func handleAPISeries(w http.ResponseWriter, r *http.Request) {
	if !shared.IsMethod(r, http.MethodGet) {
		shared.ErrorMethodNotAllowed(r).Send(w, r)
		return
	}
	metas, err := buildAPICatalog(r, stremio.ContentTypeSeries)
	if err != nil {
		shared.SendError(w, r, err)
		return
	}
	shared.SendResponse(w, r, 200, &seriesListData{Series: metas, Count: len(metas)}, nil)
}
