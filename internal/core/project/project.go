// Package project models the portfolio showcase: project records, the
// catalog they live in, and category filtering.
package project

import "slices"

// CategoryAll is the filter value that matches every project.
const CategoryAll = "All"

// Project is one showcase entry.
type Project struct {
	ID           int      `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Category     string   `yaml:"category" json:"category"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Image        string   `yaml:"image" json:"image,omitempty"`
	Link         string   `yaml:"link" json:"link"`
}

// Catalog is an ordered, immutable set of projects together with the
// categories and technologies the author declared for filtering.
type Catalog struct {
	projects     []Project
	categories   []string
	technologies []string
}

// NewCatalog builds a catalog. Declared categories and technologies keep
// their order; values used by projects but not declared are appended in
// first-seen order.
func NewCatalog(projects []Project, categories, technologies []string) Catalog {
	c := Catalog{
		projects:     slices.Clone(projects),
		categories:   dedupe(categories),
		technologies: dedupe(technologies),
	}

	for _, p := range c.projects {
		if p.Category != "" && !slices.Contains(c.categories, p.Category) {
			c.categories = append(c.categories, p.Category)
		}
		for _, t := range p.Technologies {
			if !slices.Contains(c.technologies, t) {
				c.technologies = append(c.technologies, t)
			}
		}
	}

	return c
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" && s != CategoryAll && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of projects.
func (c Catalog) Len() int { return len(c.projects) }

// All returns every project in catalog order.
func (c Catalog) All() []Project { return slices.Clone(c.projects) }

// Categories returns CategoryAll followed by every category.
func (c Catalog) Categories() []string {
	return append([]string{CategoryAll}, c.categories...)
}

// Technologies returns CategoryAll followed by every technology.
func (c Catalog) Technologies() []string {
	return append([]string{CategoryAll}, c.technologies...)
}

// Filter returns projects whose category equals category exactly. An empty
// category or CategoryAll returns every project.
func (c Catalog) Filter(category string) []Project {
	if category == "" || category == CategoryAll {
		return c.All()
	}

	var out []Project
	for _, p := range c.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// WithTechnology narrows projects to those listing tech. An empty tech or
// CategoryAll returns the input unchanged.
func WithTechnology(projects []Project, tech string) []Project {
	if tech == "" || tech == CategoryAll {
		return projects
	}

	var out []Project
	for _, p := range projects {
		if slices.Contains(p.Technologies, tech) {
			out = append(out, p)
		}
	}
	return out
}
