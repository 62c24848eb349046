package entities

import (
	"github.com/shopspring/decimal"
)

// FrequencyKind classifies how often a service item is delivered.
//
// Domain notes:
//   - one_off items are performed once (takeovers, surveys, remedial works).
//   - reactive items are charged per event (callouts, engineer hours).
//   - periodic items are visited N times per year, N taken from an allowed set.
type FrequencyKind string

const (
	FrequencyOneOff   FrequencyKind = "one_off"
	FrequencyReactive FrequencyKind = "reactive"
	FrequencyPeriodic FrequencyKind = "periodic"
)

// FrequencyPolicy is the tagged frequency of a catalog item. Visits is only
// populated for periodic items and is strictly ascending.
type FrequencyPolicy struct {
	Kind   FrequencyKind `json:"kind"`
	Visits []int         `json:"visits,omitempty"`
}

func (p FrequencyPolicy) IsPeriodic() bool { return p.Kind == FrequencyPeriodic }

// Allows reports whether n visits per year is a legal choice for the policy.
// Non-periodic items only accept 0.
func (p FrequencyPolicy) Allows(n int) bool {
	if !p.IsPeriodic() {
		return n == 0
	}
	for _, v := range p.Visits {
		if v == n {
			return true
		}
	}
	return false
}

// MinVisits is the default visit count for a fresh selection.
func (p FrequencyPolicy) MinVisits() int {
	if !p.IsPeriodic() || len(p.Visits) == 0 {
		return 0
	}
	return p.Visits[0]
}

// ServiceItem is one orderable line of the service schedule.
// ListPrice is invalid (null) when the price is to be confirmed per site.
type ServiceItem struct {
	ID            string              `json:"id"`
	CategoryID    string              `json:"categoryId"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Standard      string              `json:"standard"`
	FrequencyType string              `json:"frequencyType"`
	Frequency     FrequencyPolicy     `json:"frequency"`
	ListPrice     decimal.NullDecimal `json:"listPrice"`
}

func (i ServiceItem) IsOneOff() bool   { return i.Frequency.Kind == FrequencyOneOff }
func (i ServiceItem) IsReactive() bool { return i.Frequency.Kind == FrequencyReactive }

type ServiceCategory struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Icon  string        `json:"icon"`
	Items []ServiceItem `json:"items"`
}

// AgreementTemplate selects a subset of categories and the prefix used for
// contract references. An empty CategoryIDs list means every category.
type AgreementTemplate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ReferencePrefix string   `json:"referencePrefix"`
	CategoryIDs     []string `json:"categoryIds"`
}
