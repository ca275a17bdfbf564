package orderbuilder

import (
	"strings"

	"github.com/example/pedidos/internal/models"
)

// productSuggestionLimit caps the reference suggestion list.
const productSuggestionLimit = 5

// FilterClients returns the clients whose contact name, company name or phone
// contains the query, case-insensitively. An empty query matches everyone.
func FilterClients(clients []models.Client, query string) []models.Client {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return clients
	}

	var matched []models.Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.CompanyName), term) ||
			strings.Contains(strings.ToLower(c.Phone), term) {
			matched = append(matched, c)
		}
	}
	return matched
}

// FilterProducts returns up to productSuggestionLimit products whose
// reference contains the query, case-insensitively. An empty query suggests
// nothing; the list only appears once the user starts typing.
func FilterProducts(products []models.Product, query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Reference), term) {
			matched = append(matched, p)
			if len(matched) == productSuggestionLimit {
				break
			}
		}
	}
	return matched
}

// MatchReference returns the product whose reference equals text,
// case-insensitively, or nil. An exact match auto-selects the product in the
// entry flow without a list click.
func MatchReference(products []models.Product, text string) *models.Product {
	for i := range products {
		if strings.EqualFold(products[i].Reference, text) {
			p := products[i]
			return &p
		}
	}
	return nil
}
