package catalog

import (
	"cmp"
	"slices"
	"strings"

	"shop-catalog/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField is the product field a sort rule orders by
type SortField string

const (
	SortByID    SortField = "id"
	SortByPrice SortField = "price"
	SortByName  SortField = "name"
)

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortRule selects a field and a direction
type SortRule struct {
	Field SortField
	Order SortOrder
}

// NewSortRule builds a rule from a field and a direction name. Fields are
// matched case-insensitively; "up"/"asc" and "down"/"desc" are accepted
// as directions.
func NewSortRule(field, direction string) SortRule {
	return SortRule{
		Field: SortField(strings.ToLower(strings.TrimSpace(field))),
		Order: parseOrder(direction),
	}
}

// ParseSortRule parses rules written as "field:direction" or as a single
// word such as "priceup" or "NameDown". Unrecognised input yields a rule
// that is not Valid.
func ParseSortRule(s string) SortRule {
	s = strings.ToLower(strings.TrimSpace(s))

	if field, direction, ok := strings.Cut(s, ":"); ok {
		return NewSortRule(field, direction)
	}

	for _, suffix := range []string{"up", "down", "asc", "desc"} {
		if field, ok := strings.CutSuffix(s, suffix); ok && field != "" {
			return NewSortRule(field, suffix)
		}
	}

	return SortRule{Field: SortField(s)}
}

func parseOrder(direction string) SortOrder {
	direction = strings.ToLower(strings.TrimSpace(direction))
	switch direction {
	case "up", "asc", "ascending":
		return SortOrderAsc
	case "down", "desc", "descending":
		return SortOrderDesc
	default:
		return SortOrder(direction)
	}
}

// Valid reports whether the rule names a known field and direction
func (r SortRule) Valid() bool {
	switch r.Field {
	case SortByID, SortByPrice, SortByName:
	default:
		return false
	}
	return r.Order == SortOrderAsc || r.Order == SortOrderDesc
}

func (r SortRule) String() string {
	return string(r.Field) + ":" + string(r.Order)
}

// Sorter orders products using the collation rules of one language.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a Sorter for the given language
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// Sort returns a new slice with the products ordered by rule. Ties keep
// their input order. An invalid rule returns the products in input order.
// The input slice is never modified.
func (s *Sorter) Sort(products []*domain.Product, rule SortRule) []*domain.Product {
	sorted := slices.Clone(products)
	if sorted == nil {
		sorted = []*domain.Product{}
	}

	compare := s.comparator(rule.Field)
	if compare == nil || !rule.Valid() {
		return sorted
	}

	if rule.Order == SortOrderDesc {
		slices.SortStableFunc(sorted, func(a, b *domain.Product) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}

	return sorted
}

func (s *Sorter) comparator(field SortField) func(a, b *domain.Product) int {
	switch field {
	case SortByID:
		return func(a, b *domain.Product) int { return s.collator.CompareString(a.ID, b.ID) }
	case SortByName:
		return func(a, b *domain.Product) int { return s.collator.CompareString(a.Name, b.Name) }
	case SortByPrice:
		return func(a, b *domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	default:
		return nil
	}
}

// Sort orders products with the collation rules of English
func Sort(products []*domain.Product, rule SortRule) []*domain.Product {
	return NewSorter(language.English).Sort(products, rule)
}
