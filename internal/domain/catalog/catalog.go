// Package catalog loads the fire-safety service schedule and exposes it as
// an immutable, ordered set of categories and items.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed schedule.yaml
var defaultSchedule []byte

type scheduleFile struct {
	Templates  []templateDoc `yaml:"templates"`
	Categories []categoryDoc `yaml:"categories"`
}

type templateDoc struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	ReferencePrefix string   `yaml:"reference_prefix"`
	Categories      []string `yaml:"categories"`
}

type categoryDoc struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Icon     string    `yaml:"icon"`
	Services []itemDoc `yaml:"services"`
}

type itemDoc struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	Standard      string  `yaml:"standard"`
	FrequencyType string  `yaml:"frequency_type"`
	VisitOptions  string  `yaml:"visit_options"`
	UnitPrice     *string `yaml:"unit_price"`
}

// Catalog is read-only after construction. Categories and items keep the
// order in which they were declared.
type Catalog struct {
	categories []entities.ServiceCategory
	items      map[string]entities.ServiceItem
	templates  []entities.AgreementTemplate
}

// Default returns the schedule compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultSchedule))
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a YAML schedule and validates it. A malformed schedule is a
// startup error; nothing is partially loaded.
func Load(r io.Reader) (*Catalog, error) {
	var doc scheduleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	categories := make([]entities.ServiceCategory, 0, len(doc.Categories))
	for _, cd := range doc.Categories {
		cat := entities.ServiceCategory{ID: cd.ID, Name: cd.Name, Icon: cd.Icon}
		for _, sd := range cd.Services {
			item, err := sd.toEntity(cd.ID)
			if err != nil {
				return nil, err
			}
			cat.Items = append(cat.Items, item)
		}
		categories = append(categories, cat)
	}

	templates := make([]entities.AgreementTemplate, 0, len(doc.Templates))
	for _, td := range doc.Templates {
		templates = append(templates, entities.AgreementTemplate{
			ID:              td.ID,
			Name:            td.Name,
			ReferencePrefix: td.ReferencePrefix,
			CategoryIDs:     td.Categories,
		})
	}

	return New(categories, templates)
}

func (d itemDoc) toEntity(categoryID string) (entities.ServiceItem, error) {
	freq, err := ParseVisitOptions(d.VisitOptions)
	if err != nil {
		return entities.ServiceItem{}, fmt.Errorf("catalog item %q: %w", d.ID, err)
	}
	item := entities.ServiceItem{
		ID:            d.ID,
		CategoryID:    categoryID,
		Name:          d.Name,
		Description:   d.Description,
		Standard:      d.Standard,
		FrequencyType: d.FrequencyType,
		Frequency:     freq,
	}
	if d.UnitPrice != nil && strings.TrimSpace(*d.UnitPrice) != "" {
		price, err := decimal.NewFromString(strings.TrimSpace(*d.UnitPrice))
		if err != nil {
			return entities.ServiceItem{}, fmt.Errorf("catalog item %q: invalid unit_price: %w", d.ID, err)
		}
		item.ListPrice = decimal.NewNullDecimal(price)
	}
	return item, nil
}

// New builds a catalog from already-parsed categories, enforcing the same
// rules as Load. Used for tests and synthetic catalogs.
func New(categories []entities.ServiceCategory, templates []entities.AgreementTemplate) (*Catalog, error) {
	c := &Catalog{items: make(map[string]entities.ServiceItem)}
	catIDs := make(map[string]bool, len(categories))

	for _, cat := range categories {
		if strings.TrimSpace(cat.ID) == "" || strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("catalog category needs an id and a name (id=%q)", cat.ID)
		}
		if catIDs[cat.ID] {
			return nil, fmt.Errorf("duplicate catalog category %q", cat.ID)
		}
		catIDs[cat.ID] = true

		items := make([]entities.ServiceItem, 0, len(cat.Items))
		for _, item := range cat.Items {
			item.CategoryID = cat.ID
			if err := validateItem(item); err != nil {
				return nil, err
			}
			if _, dup := c.items[item.ID]; dup {
				return nil, fmt.Errorf("duplicate catalog item %q", item.ID)
			}
			c.items[item.ID] = item
			items = append(items, item)
		}
		cat.Items = items
		c.categories = append(c.categories, cat)
	}

	seen := make(map[string]bool, len(templates))
	for _, t := range templates {
		if t.ID == "" || t.ReferencePrefix == "" {
			return nil, fmt.Errorf("template needs an id and a reference prefix (id=%q)", t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate template %q", t.ID)
		}
		seen[t.ID] = true
		for _, id := range t.CategoryIDs {
			if !catIDs[id] {
				return nil, fmt.Errorf("template %q references unknown category %q", t.ID, id)
			}
		}
		c.templates = append(c.templates, t)
	}
	return c, nil
}

func validateItem(item entities.ServiceItem) error {
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("catalog item needs an id and a name (id=%q)", item.ID)
	}
	if item.ListPrice.Valid && item.ListPrice.Decimal.IsNegative() {
		return fmt.Errorf("catalog item %q has a negative price", item.ID)
	}
	f := item.Frequency
	switch f.Kind {
	case entities.FrequencyOneOff, entities.FrequencyReactive:
		if len(f.Visits) != 0 {
			return fmt.Errorf("catalog item %q: %s items take no visit counts", item.ID, f.Kind)
		}
	case entities.FrequencyPeriodic:
		if len(f.Visits) == 0 {
			return fmt.Errorf("catalog item %q: periodic item without visit counts", item.ID)
		}
		for i, v := range f.Visits {
			if v <= 0 || (i > 0 && v <= f.Visits[i-1]) {
				return fmt.Errorf("catalog item %q: visit counts must be positive and strictly ascending", item.ID)
			}
		}
	default:
		return fmt.Errorf("catalog item %q: unknown frequency kind %q", item.ID, f.Kind)
	}
	return nil
}

// ListCategories returns the categories in declaration order. The result is
// a copy and may be modified by the caller.
func (c *Catalog) ListCategories() []entities.ServiceCategory {
	out := make([]entities.ServiceCategory, len(c.categories))
	for i, cat := range c.categories {
		cat.Items = append([]entities.ServiceItem(nil), cat.Items...)
		out[i] = cat
	}
	return out
}

func (c *Catalog) GetItem(id string) (entities.ServiceItem, error) {
	item, ok := c.items[id]
	if !ok {
		return entities.ServiceItem{}, apperr.NotFound("service item", id)
	}
	return item, nil
}

func (c *Catalog) HasItem(id string) bool {
	_, ok := c.items[id]
	return ok
}

func (c *Catalog) ItemCount() int { return len(c.items) }

func (c *Catalog) Templates() []entities.AgreementTemplate {
	return append([]entities.AgreementTemplate(nil), c.templates...)
}

func (c *Catalog) Template(id string) (entities.AgreementTemplate, error) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.AgreementTemplate{}, apperr.NotFound("template", id)
}

// ForTemplate narrows the catalog to the categories the template covers.
func (c *Catalog) ForTemplate(id string) (*Catalog, error) {
	t, err := c.Template(id)
	if err != nil {
		return nil, err
	}
	if len(t.CategoryIDs) == 0 {
		return &Catalog{categories: c.categories, items: c.items, templates: []entities.AgreementTemplate{t}}, nil
	}

	wanted := make(map[string]bool, len(t.CategoryIDs))
	for _, id := range t.CategoryIDs {
		wanted[id] = true
	}
	sub := &Catalog{items: make(map[string]entities.ServiceItem), templates: []entities.AgreementTemplate{t}}
	for _, cat := range c.categories {
		if !wanted[cat.ID] {
			continue
		}
		sub.categories = append(sub.categories, cat)
		for _, item := range cat.Items {
			sub.items[item.ID] = item
		}
	}
	return sub, nil
}
