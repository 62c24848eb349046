package response

import (
	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/domain/entities"
	"cfp_agreements/internal/domain/pricing"
)

type TemplateResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ReferencePrefix string   `json:"referencePrefix"`
	CategoryIDs     []string `json:"categoryIds"`
}

// ServiceItemResponse is a catalog line. UnitPrice is null when the price is
// to be confirmed per site.
type ServiceItemResponse struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"categoryId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Standard      string  `json:"standard"`
	FrequencyType string  `json:"frequencyType"`
	FrequencyKind string  `json:"frequencyKind"`
	VisitOptions  []int   `json:"visitOptions"`
	UnitPrice     *string `json:"unitPrice"`
	PriceTBC      bool    `json:"priceTbc"`
	PriceDisplay  string  `json:"priceDisplay"`
}

type CategoryResponse struct {
	ID    string                `json:"id"`
	Name  string                `json:"name"`
	Icon  string                `json:"icon"`
	Items []ServiceItemResponse `json:"items"`
}

type CatalogResponse struct {
	Template   *TemplateResponse  `json:"template,omitempty"`
	Templates  []TemplateResponse `json:"templates"`
	Categories []CategoryResponse `json:"categories"`
}

func FromTemplate(t entities.AgreementTemplate) TemplateResponse {
	ids := t.CategoryIDs
	if ids == nil {
		ids = []string{}
	}
	return TemplateResponse{ID: t.ID, Name: t.Name, ReferencePrefix: t.ReferencePrefix, CategoryIDs: ids}
}

func FromServiceItem(i entities.ServiceItem) ServiceItemResponse {
	visits := i.Frequency.Visits
	if visits == nil {
		visits = []int{}
	}
	return ServiceItemResponse{
		ID:            i.ID,
		CategoryID:    i.CategoryID,
		Name:          i.Name,
		Description:   i.Description,
		Standard:      i.Standard,
		FrequencyType: i.FrequencyType,
		FrequencyKind: string(i.Frequency.Kind),
		VisitOptions:  visits,
		UnitPrice:     money(i.ListPrice),
		PriceTBC:      !i.ListPrice.Valid,
		PriceDisplay:  pricing.FormatNullGBP(i.ListPrice),
	}
}

// FromCatalog renders c. all lists every template offered; c itself is
// usually narrowed to the selected one.
func FromCatalog(c *catalog.Catalog, all []entities.AgreementTemplate) CatalogResponse {
	out := CatalogResponse{
		Templates:  make([]TemplateResponse, 0, len(all)),
		Categories: []CategoryResponse{},
	}
	for _, t := range all {
		out.Templates = append(out.Templates, FromTemplate(t))
	}
	if own := c.Templates(); len(own) == 1 {
		t := FromTemplate(own[0])
		out.Template = &t
	}
	for _, cat := range c.ListCategories() {
		cr := CategoryResponse{ID: cat.ID, Name: cat.Name, Icon: cat.Icon, Items: make([]ServiceItemResponse, 0, len(cat.Items))}
		for _, item := range cat.Items {
			cr.Items = append(cr.Items, FromServiceItem(item))
		}
		out.Categories = append(out.Categories, cr)
	}
	return out
}
