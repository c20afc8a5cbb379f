// pkg/registry/schema.go
package registry

type TemplateRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Templates   []Template `json:"templates"`
}

type Template struct {
	ID           string                 `json:"id"`
	DisplayName  string                 `json:"displayName"`
	Description  string                 `json:"description"`
	Industries   []string               `json:"industries"`
	ContentTiers []string               `json:"contentTiers"`
	Sections     []string               `json:"sections"`
	DataSchema   map[string]interface{} `json:"dataSchema"`
	PreviewURL   string                 `json:"previewUrl,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
}
