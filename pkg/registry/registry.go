// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

func LoadRegistry(path string) (*TemplateRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg TemplateRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// FindTemplate returns the first template matching both industry and content tier.
// Templates listing "general" in industries act as wildcards.
func (r *TemplateRegistry) FindTemplate(industry, tier string) *Template {
	var fallback *Template
	for i := range r.Templates {
		t := &r.Templates[i]
		if !contains(t.ContentTiers, tier) {
			continue
		}
		if contains(t.Industries, industry) {
			return t
		}
		if fallback == nil && contains(t.Industries, "general") {
			fallback = t
		}
	}
	return fallback
}

// GetTemplate looks up a template by ID.
func (r *TemplateRegistry) GetTemplate(id string) *Template {
	for i := range r.Templates {
		if r.Templates[i].ID == id {
			return &r.Templates[i]
		}
	}
	return nil
}

// ValidateData checks a site plan payload against the template's data schema.
func (t *Template) ValidateData(data map[string]interface{}) error {
	if t.DataSchema == nil {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(t.DataSchema)
	docLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		msgs := ""
		for _, desc := range result.Errors() {
			if msgs != "" {
				msgs += "; "
			}
			msgs += desc.String()
		}
		return fmt.Errorf("data does not match template schema: %s", msgs)
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
