package core

import (
	"encoding/json"
	"fmt"
)

const (
	ManifestFile    = "manifest.json"
	ManifestVersion = 1
)

// Manifest describes a static export: every exported request path and the
// HTML file that serves it.
type Manifest struct {
	Version  int               `json:"version"`
	Routes   map[string]string `json:"routes"`
	NotFound string            `json:"notFound,omitempty"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Version: ManifestVersion,
		Routes:  make(map[string]string),
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Version != ManifestVersion {
		return nil, fmt.Errorf("unsupported manifest version %d", m.Version)
	}
	if m.Routes == nil {
		m.Routes = make(map[string]string)
	}
	return &m, nil
}

func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (m *Manifest) Lookup(requestPath string) (string, bool) {
	if m == nil {
		return "", false
	}
	htmlPath, ok := m.Routes[NormalizePath(requestPath)]
	return htmlPath, ok
}
