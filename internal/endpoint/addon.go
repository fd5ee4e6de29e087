package endpoint

import (
	"net/http"

	"github.com/MunifTanjim/streamsave/internal/catalog"
	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/internal/shared"
	"github.com/MunifTanjim/streamsave/internal/tenant"
	"github.com/MunifTanjim/streamsave/stremio"
)

func GetManifest() *stremio.Manifest {
	return &stremio.Manifest{
		Id:          "org.stremio.streamsave",
		Version:     "1.0.0",
		Name:        "Stream Save",
		Description: "save custom stream links and play in different devices",
		Resources: []stremio.Resource{
			{Name: stremio.ResourceNameCatalog},
			{
				Name:       stremio.ResourceNameStream,
				Types:      []stremio.ContentType{stremio.ContentTypeMovie, stremio.ContentTypeSeries},
				IDPrefixes: []string{"tt"},
			},
		},
		Types: []stremio.ContentType{stremio.ContentTypeMovie, stremio.ContentTypeSeries},
		Catalogs: []stremio.Catalog{
			{Type: stremio.ContentTypeMovie, Id: "stream_save_movies", Name: "Saved Movies"},
			{Type: stremio.ContentTypeSeries, Id: "stream_save_series", Name: "Saved Series"},
		},
		IDPrefixes: []string{"tt"},
		BehaviorHints: &stremio.BehaviorHints{
			Configurable: true,
		},
	}
}

func getPathCredentials(r *http.Request) tenant.Credentials {
	return tenant.Credentials{
		User:     r.PathValue("user"),
		Password: r.PathValue("passw"),
		Cluster:  r.PathValue("cluster"),
	}
}

func handleManifest(w http.ResponseWriter, r *http.Request) {
	if !shared.IsMethod(r, http.MethodGet) {
		shared.ErrorMethodNotAllowed(r).Send(w, r)
		return
	}
	shared.SendResponse(w, r, 200, GetManifest(), nil)
}

func handleCatalog(w http.ResponseWriter, r *http.Request) {
	if !shared.IsMethod(r, http.MethodGet) {
		shared.ErrorMethodNotAllowed(r).Send(w, r)
		return
	}

	ctype, err := content.ParseContentType(shared.GetPathValue(r, "contentType"))
	if err != nil {
		shared.SendError(w, r, err)
		return
	}

	handle, err := tenantResolver.Resolve(r.Context(), getPathCredentials(r))
	if err != nil {
		shared.SendError(w, r, err)
		return
	}

	metas, err := catalog.Build(r.Context(), []content.Store{
		content.NewRepository(handle.Database(), ctype),
	})
	shared.SendResponse(w, r, 200, &stremio.CatalogHandlerResponse{Metas: metas}, err)
}

func handleStream(w http.ResponseWriter, r *http.Request) {
	if !shared.IsMethod(r, http.MethodGet) {
		shared.ErrorMethodNotAllowed(r).Send(w, r)
		return
	}

	ctype, err := content.ParseContentType(shared.GetPathValue(r, "contentType"))
	if err != nil {
		shared.SendError(w, r, err)
		return
	}
	videoId := shared.GetPathValue(r, "videoId")

	handle, err := tenantResolver.Resolve(r.Context(), getPathCredentials(r))
	if err != nil {
		shared.SendError(w, r, err)
		return
	}

	repo := content.NewRepository(handle.Database(), ctype)
	s, err := streamResolver.Resolve(r.Context(), repo, videoId)
	if err != nil {
		shared.SendError(w, r, err)
		return
	}

	res := stremio.StreamHandlerResponse{Streams: []stremio.Stream{}}
	if s != nil {
		res.Streams = append(res.Streams, *s)
	}
	shared.SendResponse(w, r, 200, &res, nil)
}
