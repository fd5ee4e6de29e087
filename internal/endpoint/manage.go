package endpoint

import (
	"net/http"

	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/MunifTanjim/streamsave/internal/content"
	"github.com/MunifTanjim/streamsave/internal/shared"
	"github.com/MunifTanjim/streamsave/internal/tenant"
)

func defaultCredentials() tenant.Credentials {
	return tenant.Credentials{
		User:     config.DefaultCredentials.User,
		Password: config.DefaultCredentials.Password,
		Cluster:  config.DefaultCredentials.Cluster,
	}
}

// manage form credentials: an explicit db_url wins, then a triplet of form
// fields, then the env-configured default.
func getFormCredentials(r *http.Request) (tenant.Credentials, error) {
	if dbUrl := r.Form.Get("db_url"); dbUrl != "" {
		return tenant.ParseConnectionURL(dbUrl)
	}
	creds := tenant.Credentials{
		User:     r.Form.Get("user"),
		Password: r.Form.Get("passw"),
		Cluster:  r.Form.Get("cluster"),
	}
	if creds.Validate() != nil {
		creds = defaultCredentials()
	}
	return creds, creds.Validate()
}

func runMutation(r *http.Request, creds tenant.Credentials, option, contentType, imdbId, rawStream string) error {
	ctype, err := content.ParseContentType(contentType)
	if err != nil {
		return err
	}

	handle, err := tenantResolver.Resolve(r.Context(), creds)
	if err != nil {
		return err
	}
	repo := content.NewRepository(handle.Database(), ctype)

	switch option {
	case "add":
		return mutator.AddStream(r.Context(), repo, imdbId, rawStream)
	case "remove":
		return mutator.RemoveStream(r.Context(), repo, imdbId)
	default:
		return shared.ErrorBadRequest(r, "unknown option: "+option)
	}
}

// handleManage mirrors the classic form endpoint: plain text `Success` or
// `Failure, <reason>`.
func handleManage(w http.ResponseWriter, r *http.Request) {
	if !shared.IsMethod(r, http.MethodPost) {
		shared.ErrorMethodNotAllowed(r).Send(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		shared.ErrorBadRequest(r, "malformed form body").Send(w, r)
		return
	}

	creds, err := getFormCredentials(r)
	if err != nil {
		shared.SendText(w, r, 200, "Failure, "+err.Error())
		return
	}

	err = runMutation(r, creds,
		r.Form.Get("option"),
		r.Form.Get("type"),
		r.Form.Get("imdbID"),
		r.Form.Get("stream"),
	)
	if err != nil {
		log.Warn("manage mutation failed", "error", err)
		shared.SendText(w, r, 200, "Failure, "+err.Error())
		return
	}
	shared.SendText(w, r, 200, "Success")
}
