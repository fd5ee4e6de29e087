package stremio

import "encoding/json"

type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

type ResourceName string

const (
	ResourceNameCatalog ResourceName = "catalog"
	ResourceNameStream  ResourceName = "stream"
)

type Resource struct {
	Name       ResourceName  `json:"name"`
	Types      []ContentType `json:"types,omitempty"`
	IDPrefixes []string      `json:"idPrefixes,omitempty"`
}

// Manifest resources are a mixed list: a bare resource name, or an object
// with types and id prefixes.
func (r Resource) MarshalJSON() ([]byte, error) {
	if len(r.Types) == 0 && len(r.IDPrefixes) == 0 {
		return json.Marshal(string(r.Name))
	}
	type resource Resource
	return json.Marshal(resource(r))
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		r.Name = ResourceName(name)
		return nil
	}
	type resource Resource
	return json.Unmarshal(data, (*resource)(r))
}

type Catalog struct {
	Type ContentType `json:"type"`
	Id   string      `json:"id"`
	Name string      `json:"name"`
}

type BehaviorHints struct {
	Configurable bool `json:"configurable,omitempty"`
}

type Manifest struct {
	Id            string         `json:"id"`
	Version       string         `json:"version"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Resources     []Resource     `json:"resources"`
	Types         []ContentType  `json:"types"`
	Catalogs      []Catalog      `json:"catalogs"`
	IDPrefixes    []string       `json:"idPrefixes,omitempty"`
	BehaviorHints *BehaviorHints `json:"behaviorHints,omitempty"`
}

type MetaPreview struct {
	Id          string      `json:"id"`
	Type        ContentType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Poster      string      `json:"poster,omitempty"`
	ReleaseInfo string      `json:"releaseInfo,omitempty"`
	IMDBRating  string      `json:"imdbRating,omitempty"`
}

type StreamBehaviorHints struct {
	BingeGroup  string `json:"bingeGroup,omitempty" bson:"bingeGroup,omitempty"`
	Filename    string `json:"filename,omitempty" bson:"filename,omitempty"`
	NotWebReady bool   `json:"notWebReady,omitempty" bson:"notWebReady,omitempty"`
}

// Stream is the saved payload for one title (or one episode of one title).
// It is stored mostly as-is and served back through the stream resource.
type Stream struct {
	Name          string               `json:"name,omitempty" bson:"name,omitempty"`
	Title         string               `json:"title,omitempty" bson:"title,omitempty"`
	Description   string               `json:"description,omitempty" bson:"description,omitempty"`
	URL           string               `json:"url,omitempty" bson:"url,omitempty"`
	ExternalURL   string               `json:"externalUrl,omitempty" bson:"externalUrl,omitempty"`
	InfoHash      string               `json:"infoHash,omitempty" bson:"infoHash,omitempty"`
	FileIndex     int                  `json:"fileIdx,omitempty" bson:"fileIdx,omitempty"`
	Sources       []string             `json:"sources,omitempty" bson:"sources,omitempty"`
	BehaviorHints *StreamBehaviorHints `json:"behaviorHints,omitempty" bson:"behaviorHints,omitempty"`
}

type CatalogHandlerResponse struct {
	Metas []MetaPreview `json:"metas"`
}

type StreamHandlerResponse struct {
	Streams []Stream `json:"streams"`
}
