package project

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// document is the on-disk shape of a catalog file.
type document struct {
	Categories   []string  `yaml:"categories"`
	Technologies []string  `yaml:"technologies"`
	Projects     []Project `yaml:"projects"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := Parse(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes and validates a single catalog document.
func Parse(data []byte) (Catalog, error) {
	doc, err := decode(data)
	if err != nil {
		return Catalog{}, err
	}
	if err := validate(doc.Projects); err != nil {
		return Catalog{}, err
	}
	return NewCatalog(doc.Projects, doc.Categories, doc.Technologies), nil
}

func decode(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse catalog: %w", err)
	}
	return doc, nil
}

// Files expands doublestar patterns into a sorted, de-duplicated file list.
func Files(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// Load reads every catalog file matched by patterns and merges them in path
// order. With no patterns the built-in catalog is returned.
func Load(patterns []string) (Catalog, error) {
	if len(patterns) == 0 {
		return Default(), nil
	}

	files, err := Files(patterns)
	if err != nil {
		return Catalog{}, err
	}

	var merged document
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return Catalog{}, fmt.Errorf("read catalog: %w", err)
		}

		doc, err := decode(data)
		if err != nil {
			return Catalog{}, fmt.Errorf("%s: %w", file, err)
		}

		merged.Categories = append(merged.Categories, doc.Categories...)
		merged.Technologies = append(merged.Technologies, doc.Technologies...)
		merged.Projects = append(merged.Projects, doc.Projects...)
	}

	if err := validate(merged.Projects); err != nil {
		return Catalog{}, err
	}

	return NewCatalog(merged.Projects, merged.Categories, merged.Technologies), nil
}

// validate checks every record and reports all problems at once.
func validate(projects []Project) error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[int]bool, len(projects))

	for i, p := range projects {
		field := fmt.Sprintf("projects[%d]", i)

		if p.Title == "" {
			errs = errs.Append(field+".title", fmt.Errorf("title is required"))
		}
		if p.Category == "" {
			errs = errs.Append(field+".category", fmt.Errorf("category is required"))
		} else if p.Category == CategoryAll {
			errs = errs.Append(field+".category", fmt.Errorf("%q is reserved", CategoryAll))
		}
		if p.Link == "" {
			errs = errs.Append(field+".link", fmt.Errorf("link is required"))
		}
		if seen[p.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate id %d", p.ID))
		}
		seen[p.ID] = true
	}

	return errs.ToError()
}
