// Package catalog implements the read-only operations over a product collection.
package catalog

import (
	"regexp"

	"shop-catalog/internal/domain"
)

// Search returns the products whose name or description contains query
// starting at a word boundary, ignoring case. The query is matched
// literally and the input order is kept.
func Search(products []*domain.Product, query string) []*domain.Product {
	match := matcher(query)

	found := []*domain.Product{}
	for _, p := range products {
		if match(p.Name) || match(p.Description) {
			found = append(found, p)
		}
	}

	return found
}

func matcher(query string) func(string) bool {
	if query == "" {
		return func(s string) bool { return s != "" }
	}

	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(query))
	return re.MatchString
}
