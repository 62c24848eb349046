package selection

import (
	"errors"

	"cfp_agreements/internal/domain/apperr"
	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Change is a partial update to one selection. Nil fields keep their
// current value.
type Change struct {
	ServiceID string
	Included  *bool
	Visits    *int
	UnitPrice *decimal.NullDecimal
}

// Apply runs a batch of changes. A service id may appear only once per
// batch. The first failing change aborts the batch; the set is left with the
// changes applied before it.
func (s *Set) Apply(changes []Change) error {
	seen := make(map[string]bool, len(changes))
	for _, ch := range changes {
		if seen[ch.ServiceID] {
			return apperr.Constraint("selections."+ch.ServiceID, "duplicate selection")
		}
		seen[ch.ServiceID] = true
		if _, ok := s.byID[ch.ServiceID]; !ok {
			return apperr.Constraint("selections."+ch.ServiceID, "unknown service item")
		}

		if ch.UnitPrice != nil {
			if _, err := s.SetUnitPrice(ch.ServiceID, *ch.UnitPrice); err != nil {
				return scoped(ch.ServiceID, err)
			}
		}
		if ch.Visits != nil {
			if _, err := s.SetVisits(ch.ServiceID, *ch.Visits); err != nil {
				return scoped(ch.ServiceID, err)
			}
		}
		if ch.Included != nil {
			if _, err := s.SetIncluded(ch.ServiceID, *ch.Included); err != nil {
				return scoped(ch.ServiceID, err)
			}
		}
	}
	return nil
}

func scoped(serviceID string, err error) error {
	var ce *apperr.ConstraintError
	if errors.As(err, &ce) {
		return &apperr.ConstraintError{Field: "selections." + serviceID + "." + ce.Field, Reason: ce.Reason}
	}
	return err
}

// Restore rebuilds a set from previously persisted selections. Entries for
// items that are no longer in the catalog are skipped and their ids returned.
func Restore(c *catalog.Catalog, saved []entities.Selection) (*Set, []string, error) {
	s := Initialize(c)
	var dropped []string
	changes := make([]Change, 0, len(saved))
	for _, sel := range saved {
		if _, ok := s.byID[sel.ServiceID]; !ok {
			dropped = append(dropped, sel.ServiceID)
			continue
		}
		changes = append(changes, FromSelection(sel))
	}
	if err := s.Apply(changes); err != nil {
		return nil, dropped, err
	}
	return s, dropped, nil
}

func FromSelection(sel entities.Selection) Change {
	included, visits, price := sel.Included, sel.Visits, sel.UnitPrice
	return Change{ServiceID: sel.ServiceID, Included: &included, Visits: &visits, UnitPrice: &price}
}
