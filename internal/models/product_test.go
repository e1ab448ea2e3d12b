// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func complete() Product {
	score := 42.0
	return Product{
		ID:                "3017620422003",
		Name:              "Nutella",
		EcoscoreGrade:     "d",
		EcoscoreScore:     &score,
		EcoscoreData:      JSONB{"grade": "d"},
		CategoryTags:      []string{"en:spreads"},
		CategoryHierarchy: []string{"en:spreads"},
		CountryTags:       []string{"en:france"},
		Language:          "en",
		IngredientTags:    []string{"en:sugar"},
	}
}

func TestIsComplete(t *testing.T) {
	p := complete()
	assert.True(t, p.IsComplete())
}

func TestIsCompleteRejectsAnyMissingField(t *testing.T) {
	mutations := map[string]func(*Product){
		"id":         func(p *Product) { p.ID = "" },
		"name":       func(p *Product) { p.Name = "" },
		"grade":      func(p *Product) { p.EcoscoreGrade = "" },
		"score":      func(p *Product) { p.EcoscoreScore = nil },
		"data":       func(p *Product) { p.EcoscoreData = nil },
		"categories": func(p *Product) { p.CategoryTags = nil },
		"hierarchy":  func(p *Product) { p.CategoryHierarchy = nil },
		"countries":  func(p *Product) { p.CountryTags = nil },
		"lang":       func(p *Product) { p.Language = "" },
		"ingredients": func(p *Product) {
			p.IngredientTags = nil
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := complete()
			mutate(&p)
			assert.False(t, p.IsComplete())
		})
	}
}

func TestZeroScoreIsStillComplete(t *testing.T) {
	p := complete()
	zero := 0.0
	p.EcoscoreScore = &zero
	assert.True(t, p.IsComplete())
}
