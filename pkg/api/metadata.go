package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang/glog"
)

// CollectionMetadata describes a collection exposed by an API version.
type CollectionMetadata struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	HREF string `json:"href,omitempty"`
}

// VersionMetadata describes one version of the API.
type VersionMetadata struct {
	ID          string               `json:"id"`
	Kind        string               `json:"kind"`
	HREF        string               `json:"href,omitempty"`
	Collections []CollectionMetadata `json:"collections,omitempty"`
}

// Metadata describes the API and its versions.
type Metadata struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	HREF     string            `json:"href,omitempty"`
	Versions []VersionMetadata `json:"versions"`
}

// ServeHTTP sends the API metadata, with hrefs relative to the requested path.
func (m Metadata) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSuffix(r.URL.Path, "/")
	body := Metadata{
		ID:   m.ID,
		Kind: "API",
		HREF: base,
	}
	for _, v := range m.Versions {
		body.Versions = append(body.Versions, VersionMetadata{
			ID:   v.ID,
			Kind: "APIVersion",
			HREF: base + "/" + v.ID,
		})
	}
	writeMetadata(w, r, body)
}

// ServeHTTP sends the version metadata and its collections.
func (v VersionMetadata) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSuffix(r.URL.Path, "/")
	body := VersionMetadata{
		ID:   v.ID,
		Kind: "APIVersion",
		HREF: base,
	}
	for _, c := range v.Collections {
		body.Collections = append(body.Collections, CollectionMetadata{
			ID:   c.ID,
			Kind: c.Kind,
			HREF: base + "/" + c.ID,
		})
	}
	writeMetadata(w, r, body)
}

func writeMetadata(w http.ResponseWriter, r *http.Request, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		SendPanic(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		glog.Errorf("Can't send metadata for request '%s': %s", r.URL.Path, err.Error())
	}
}
