package cinemeta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MunifTanjim/streamsave/stremio"
)

// Meta is the subset of a Cinemeta item used to seed catalog previews.
type Meta struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Poster      string `json:"poster"`
	ReleaseInfo string `json:"releaseInfo"`
	IMDBRating  string `json:"imdbRating"`
}

type metaResponse struct {
	Meta *Meta `json:"meta"`
}

type Client struct {
	baseUrl    string
	httpClient *http.Client
}

func NewClient(baseUrl string) *Client {
	return &Client{
		baseUrl:    baseUrl,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) GetMeta(ctx context.Context, ctype stremio.ContentType, id string) (*Meta, error) {
	url := c.baseUrl + "/meta/" + string(ctype) + "/" + id + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
	res := metaResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return res.Meta, nil
}
