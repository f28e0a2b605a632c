package catalog

import (
	"prescription-screening-server/internal/models"
)

// PearAllergyProductID is the only product currently offered.
const PearAllergyProductID = "pear-allergy"

// Default returns the catalog shipped with the service.
func Default() Catalog {
	products := []models.Product{
		{
			ID:          PearAllergyProductID,
			Name:        "Pear Allergy Treatment",
			Description: "Treatment for allergic reactions to pears and pear-derived products",
			QuestionIDs: []string{"Q1", "Q2", "Q3", "Q4", "Q5"},
		},
	}

	questions := []models.Question{
		{ID: "Q1", Text: "Do you experience nose itchiness when near pears?", Type: models.QuestionTypeYesNo, Required: true},
		{ID: "Q2", Text: "Have you ever sneezed uncontrollably in a fruit market?", Type: models.QuestionTypeYesNo, Required: true},
		{ID: "Q3", Text: "Does your throat feel scratchy after eating pear-flavored items?", Type: models.QuestionTypeYesNo, Required: true},
		{ID: "Q4", Text: "Do you avoid pear orchards during blooming season?", Type: models.QuestionTypeYesNo, Required: false},
		{ID: "Q5", Text: "Have you previously had an adverse reaction to allergy medication?", Type: models.QuestionTypeYesNo, Required: true},
	}

	return NewStatic(products, questions)
}
