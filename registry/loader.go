package registry

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/shibukawa/uritemplate"
)

// Catalog is the on-disk template catalog format: a YAML document with a
// templates list.
type Catalog struct {
	Templates []string `yaml:"templates"`
}

// LoadCatalog reads a catalog file and returns its template strings.
func LoadCatalog(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog

	err = yaml.UnmarshalWithOptions(data, &catalog, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if len(catalog.Templates) == 0 {
		return nil, fmt.Errorf("%w: %s", uritemplate.ErrEmptyCatalog, path)
	}

	return catalog.Templates, nil
}

// LoadFile parses every template in the catalog file into the registry. The
// first malformed template aborts the load with its parser error.
func (r *Registry) LoadFile(path string) error {
	templates, err := LoadCatalog(path)
	if err != nil {
		return err
	}

	for _, template := range templates {
		if err := r.Add(template); err != nil {
			return fmt.Errorf("catalog %s: template %q: %w", path, template, err)
		}
	}

	return nil
}
