// Package catalog reads module catalog files used to seed the marketplace.
//
//	modules:
//	  - slug: restaurant
//	    name: Restaurant
//	    type: industry
//	    items:
//	      - title: Register your business name
//	        category: legal
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Forhemit/StarterClub-sub002/common"
	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

type File struct {
	Categories []Category `yaml:"categories"`
	Modules    []Module   `yaml:"modules"`
}

type Category struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

type Module struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Parent      string `yaml:"parent"`
	Version     string `yaml:"version"`
	PriceTier   string `yaml:"price_tier"`
	Items       []Item `yaml:"items"`
}

type Item struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

func LoadFile(path string) ([]model.ModuleDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a catalog. Modules are returned parents first so
// they can be upserted in order.
func Parse(r io.Reader) ([]model.ModuleDefinition, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	categoryNames := make(map[string]string, len(f.Categories))
	for _, c := range f.Categories {
		categoryNames[c.Slug] = c.Name
	}

	slugs := make(map[string]bool, len(f.Modules))
	for _, m := range f.Modules {
		if slugs[m.Slug] {
			return nil, fmt.Errorf("duplicate module slug %q", m.Slug)
		}
		slugs[m.Slug] = true
	}

	defs := make([]model.ModuleDefinition, 0, len(f.Modules))
	for i, m := range f.Modules {
		def, err := m.toDefinition(categoryNames)
		if err != nil {
			return nil, fmt.Errorf("module %d (%s): %w", i, m.Slug, err)
		}
		if def.ParentSlug != "" && !slugs[def.ParentSlug] {
			return nil, fmt.Errorf("module %q: unknown parent %q", def.Slug, def.ParentSlug)
		}
		defs = append(defs, def)
	}

	return orderParentsFirst(defs)
}

// Definition validates a single module outside of a catalog file. The parent,
// if any, must already exist when the definition is upserted.
func (m Module) Definition() (model.ModuleDefinition, error) {
	return m.toDefinition(nil)
}

func (m Module) toDefinition(categoryNames map[string]string) (model.ModuleDefinition, error) {
	if !common.IsSlug(m.Slug) {
		return model.ModuleDefinition{}, fmt.Errorf("invalid slug %q", m.Slug)
	}
	if strings.TrimSpace(m.Name) == "" {
		return model.ModuleDefinition{}, errors.New("name is required")
	}
	typ := model.ModuleType(m.Type)
	if !typ.Valid() {
		return model.ModuleDefinition{}, fmt.Errorf("invalid type %q", m.Type)
	}
	if typ == model.ModuleTypeSubmodule && m.Parent == "" {
		return model.ModuleDefinition{}, errors.New("submodule requires a parent")
	}

	def := model.ModuleDefinition{
		Slug:        m.Slug,
		Name:        strings.TrimSpace(m.Name),
		Description: strings.TrimSpace(m.Description),
		Type:        typ,
		ParentSlug:  m.Parent,
		Version:     valueOr(m.Version, "1.0.0"),
		PriceTier:   valueOr(m.PriceTier, "free"),
	}

	seen := make(map[string]bool, len(m.Items))
	for _, it := range m.Items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			return model.ModuleDefinition{}, errors.New("item title is required")
		}
		if seen[title] {
			return model.ModuleDefinition{}, fmt.Errorf("duplicate item %q", title)
		}
		seen[title] = true

		item := model.ItemDefinition{
			Title:       title,
			Description: strings.TrimSpace(it.Description),
		}
		if it.Category != "" {
			slug, err := common.Slugify(it.Category, "")
			if err != nil {
				return model.ModuleDefinition{}, fmt.Errorf("item %q category: %w", title, err)
			}
			item.CategorySlug = slug
			item.CategoryName = valueOr(categoryNames[slug], it.Category)
		}
		def.Items = append(def.Items, item)
	}

	return def, nil
}

func orderParentsFirst(defs []model.ModuleDefinition) ([]model.ModuleDefinition, error) {
	bySlug := make(map[string]model.ModuleDefinition, len(defs))
	for _, d := range defs {
		bySlug[d.Slug] = d
	}

	ordered := make([]model.ModuleDefinition, 0, len(defs))
	state := make(map[string]int, len(defs)) // 1 visiting, 2 done

	var visit func(slug string) error
	visit = func(slug string) error {
		switch state[slug] {
		case 1:
			return fmt.Errorf("parent cycle at module %q", slug)
		case 2:
			return nil
		}
		state[slug] = 1
		d := bySlug[slug]
		if d.ParentSlug != "" {
			if err := visit(d.ParentSlug); err != nil {
				return err
			}
		}
		state[slug] = 2
		ordered = append(ordered, d)
		return nil
	}

	for _, d := range defs {
		if err := visit(d.Slug); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}
