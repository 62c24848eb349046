// Package selection tracks a client's per-item choices against a catalog.
// A Set is owned by a single request or draft and is not safe for
// concurrent mutation.
package selection

import (
	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Set holds exactly one selection per catalog item.
type Set struct {
	catalog *catalog.Catalog
	order   []string
	byID    map[string]*entities.Selection
}

// Initialize creates the default selections: nothing included, the minimum
// allowed visits for periodic items (0 otherwise) and the catalog price.
func Initialize(c *catalog.Catalog) *Set {
	s := &Set{catalog: c, byID: make(map[string]*entities.Selection, c.ItemCount())}
	for _, cat := range c.ListCategories() {
		for _, item := range cat.Items {
			s.order = append(s.order, item.ID)
			s.byID[item.ID] = &entities.Selection{
				ServiceID:  item.ID,
				CategoryID: cat.ID,
				Visits:     item.Frequency.MinVisits(),
				UnitPrice:  item.ListPrice,
			}
		}
	}
	return s
}

func (s *Set) Catalog() *catalog.Catalog { return s.catalog }

func (s *Set) lookup(id string) (*entities.Selection, entities.ServiceItem, error) {
	sel, ok := s.byID[id]
	if !ok {
		return nil, entities.ServiceItem{}, apperr.NotFound("service item", id)
	}
	item, err := s.catalog.GetItem(id)
	if err != nil {
		return nil, entities.ServiceItem{}, err
	}
	return sel, item, nil
}

func (s *Set) SetIncluded(id string, included bool) ([]entities.Selection, error) {
	sel, _, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sel.Included = included
	return s.View(), nil
}

// SetVisits rejects counts outside the item's allowed set instead of
// clamping them. One-off and reactive items only accept 0.
func (s *Set) SetVisits(id string, visits int) ([]entities.Selection, error) {
	sel, item, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !item.Frequency.Allows(visits) {
		if !item.Frequency.IsPeriodic() {
			return nil, apperr.Constraint("visits", "%s is %s and takes no visit count", id, item.Frequency.Kind)
		}
		return nil, apperr.Constraint("visits", "%d is not an allowed visit count for %s (allowed %v)", visits, id, item.Frequency.Visits)
	}
	sel.Visits = visits
	return s.View(), nil
}

// SetUnitPrice overrides the negotiated price for an item. An invalid
// NullDecimal marks the price as to be confirmed.
func (s *Set) SetUnitPrice(id string, price decimal.NullDecimal) ([]entities.Selection, error) {
	sel, _, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if price.Valid && price.Decimal.IsNegative() {
		return nil, apperr.Constraint("unitPrice", "price for %s must not be negative", id)
	}
	sel.UnitPrice = price
	return s.View(), nil
}

// ToggleCategory sets the inclusion of every item of the category at once,
// the "All" and "None" actions of a category.
func (s *Set) ToggleCategory(categoryID string, included bool) ([]entities.Selection, error) {
	found := false
	for _, id := range s.order {
		if sel := s.byID[id]; sel.CategoryID == categoryID {
			sel.Included = included
			found = true
		}
	}
	if !found {
		return nil, apperr.NotFound("category", categoryID)
	}
	return s.View(), nil
}

func (s *Set) Get(id string) (entities.Selection, bool) {
	sel, ok := s.byID[id]
	if !ok {
		return entities.Selection{}, false
	}
	return *sel, true
}

// View returns a copy of every selection in catalog order.
func (s *Set) View() []entities.Selection {
	out := make([]entities.Selection, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Included returns only the included selections, in catalog order.
func (s *Set) Included() []entities.Selection {
	var out []entities.Selection
	for _, id := range s.order {
		if sel := s.byID[id]; sel.Included {
			out = append(out, *sel)
		}
	}
	return out
}
