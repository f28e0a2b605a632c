package catalog

import (
	"prescription-screening-server/internal/models"
)

// Catalog provides read-only lookup of products and their screening
// questions. Implementations must be safe for concurrent readers.
type Catalog interface {
	// FindProduct returns the product with the given ID, or false if the ID
	// is unknown.
	FindProduct(productID string) (*models.Product, bool)

	// FindQuestions resolves question IDs in order. IDs with no matching
	// question are silently dropped rather than reported.
	FindQuestions(ids []string) []models.Question
}

// staticCatalog is an immutable catalog built once at startup. Reads need no
// synchronization because the maps are never written after construction.
type staticCatalog struct {
	products  map[string]models.Product
	questions map[string]models.Question
}

// NewStatic builds a catalog from the given products and questions.
func NewStatic(products []models.Product, questions []models.Question) Catalog {
	c := &staticCatalog{
		products:  make(map[string]models.Product, len(products)),
		questions: make(map[string]models.Question, len(questions)),
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	for _, q := range questions {
		c.questions[q.ID] = q
	}
	return c
}

func (c *staticCatalog) FindProduct(productID string) (*models.Product, bool) {
	p, ok := c.products[productID]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *staticCatalog) FindQuestions(ids []string) []models.Question {
	questions := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := c.questions[id]; ok {
			questions = append(questions, q)
		}
	}
	return questions
}
