// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sitegen-workers/pkg/registry"

	"github.com/xeipuuv/gojsonschema"
)

var registryPath string

var validTiers = map[string]bool{
	"premium":  true,
	"standard": true,
	"minimal":  true,
}

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	idAdd := addCmd.String("id", "", "Template ID (e.g., trades-premium-02)")
	displayName := addCmd.String("displayName", "", "Display Name (e.g., Trades Premium)")
	description := addCmd.String("description", "", "Description")
	industries := addCmd.String("industries", "", "Comma-separated industry keys (use 'general' for the wildcard)")
	tiers := addCmd.String("tiers", "", "Comma-separated content tiers (premium, standard, minimal)")
	sections := addCmd.String("sections", "", "Comma-separated section IDs (e.g., hero,services,contact)")
	previewURL := addCmd.String("previewUrl", "", "Preview URL")
	addCmd.StringVar(&registryPath, "path", "configs/template-registry.json", "Path to registry file")

	// Update command flags
	idUpdate := updateCmd.String("id", "", "Template ID to update")
	field := updateCmd.String("field", "", "Field to update (displayName, description, industries, tiers, sections, previewUrl)")
	value := updateCmd.String("value", "", "New value for the field")
	updateCmd.StringVar(&registryPath, "path", "configs/template-registry.json", "Path to registry file")

	// Validate command flags
	validateCmd.StringVar(&registryPath, "path", "configs/template-registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *industries == "" || *tiers == "" || *sections == "" {
			fmt.Println("Error: id, displayName, industries, tiers, and sections are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		template := registry.Template{
			ID:           *idAdd,
			DisplayName:  *displayName,
			Description:  *description,
			Industries:   splitList(*industries),
			ContentTiers: splitList(*tiers),
			Sections:     splitList(*sections),
			DataSchema:   map[string]interface{}{"type": "object"},
			PreviewURL:   *previewURL,
			Tags:         []string{},
		}
		err := addTemplate(&template)
		if err != nil {
			fmt.Printf("Error adding template: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added template: %s\n", *idAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		err := updateTemplate(*idUpdate, *field, *value)
		if err != nil {
			fmt.Printf("Error updating template: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated template %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		err := validateRegistry()
		if err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Registry validation passed.")

	case "help":
		fallthrough
	default:
		help()
	}
}

func addTemplate(template *registry.Template) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		// If file doesn't exist, create new registry
		if os.IsNotExist(err) {
			reg = &registry.TemplateRegistry{
				Version:   "1.0.0",
				Templates: []registry.Template{},
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}

	for _, existing := range reg.Templates {
		if existing.ID == template.ID {
			return fmt.Errorf("template with ID %s already exists", template.ID)
		}
	}

	for _, tier := range template.ContentTiers {
		if !validTiers[tier] {
			return fmt.Errorf("unknown content tier: %s", tier)
		}
	}

	reg.Templates = append(reg.Templates, *template)
	reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	return saveRegistry(reg, registryPath)
}

func updateTemplate(id, field, value string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	found := false
	for i := range reg.Templates {
		if reg.Templates[i].ID == id {
			found = true
			switch field {
			case "displayName":
				reg.Templates[i].DisplayName = value
			case "description":
				reg.Templates[i].Description = value
			case "previewUrl":
				reg.Templates[i].PreviewURL = value
			case "industries":
				reg.Templates[i].Industries = splitList(value)
			case "tiers":
				list := splitList(value)
				for _, tier := range list {
					if !validTiers[tier] {
						return fmt.Errorf("unknown content tier: %s", tier)
					}
				}
				reg.Templates[i].ContentTiers = list
			case "sections":
				reg.Templates[i].Sections = splitList(value)
			case "tags":
				reg.Templates[i].Tags = splitList(value)
			default:
				return fmt.Errorf("unknown field: %s", field)
			}
			break
		}
	}

	if !found {
		return fmt.Errorf("template with ID %s not found", id)
	}

	reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return saveRegistry(reg, registryPath)
}

func validateRegistry() error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Templates) == 0 {
		return fmt.Errorf("registry contains no templates")
	}

	ids := make(map[string]bool)
	for _, template := range reg.Templates {
		if template.ID == "" {
			return fmt.Errorf("template missing required field: ID")
		}
		if ids[template.ID] {
			return fmt.Errorf("duplicate template ID: %s", template.ID)
		}
		ids[template.ID] = true

		if template.DisplayName == "" {
			return fmt.Errorf("template %s missing required field: DisplayName", template.ID)
		}
		if len(template.Industries) == 0 {
			return fmt.Errorf("template %s missing required field: Industries", template.ID)
		}
		if len(template.ContentTiers) == 0 {
			return fmt.Errorf("template %s missing required field: ContentTiers", template.ID)
		}
		for _, tier := range template.ContentTiers {
			if !validTiers[tier] {
				return fmt.Errorf("template %s has unknown content tier: %s", template.ID, tier)
			}
		}
		if len(template.Sections) == 0 {
			return fmt.Errorf("template %s missing required field: Sections", template.ID)
		}
		if template.DataSchema != nil {
			loader := gojsonschema.NewGoLoader(template.DataSchema)
			if _, err := gojsonschema.NewSchema(loader); err != nil {
				return fmt.Errorf("template %s has invalid data schema: %w", template.ID, err)
			}
		}
	}

	// Every tier needs a wildcard fallback so selection never comes up empty.
	for tier := range validTiers {
		if reg.FindTemplate("general", tier) == nil {
			return fmt.Errorf("no template covers the general industry at tier %s", tier)
		}
	}

	fmt.Printf("Registry validation passed. Found %d templates.\n", len(reg.Templates))
	return nil
}

// saveRegistry handles saving the registry to file
func saveRegistry(reg *registry.TemplateRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  add     Add a new template to the registry
  update  Update an existing template's field
  validate Validate the registry file
  help    Show this help message

Examples:
  registry-updater add -id trades-premium-02 -displayName "Trades Premium v2" -industries hvac,plumbing -tiers premium -sections hero,services,contact
  registry-updater update -id trades-premium-02 -field previewUrl -value https://templates.sitegen.example.com/previews/trades-premium-02
  registry-updater validate -path configs/template-registry.json

Use 'registry-updater <command> -h' for more information about a command.

`)
}
