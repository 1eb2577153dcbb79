package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanField(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "truncates price trail after the name",
			input: "Pizza Margherita €9,50 Uitverkocht",
			want:  "Pizza Margherita",
		},
		{
			name:  "strips a leading price instead of truncating to nothing",
			input: "€9,50 Pizza Margherita",
			want:  "Pizza Margherita",
		},
		{
			name:  "strips noise phrases",
			input: "Pizza Funghi Uitverkocht",
			want:  "Pizza Funghi",
		},
		{
			name:  "strips multi-word noise phrases",
			input: "Spaghetti Carbonara 0 op voorraad",
			want:  "Spaghetti Carbonara",
		},
		{
			name:  "collapses an immediately repeated phrase",
			input: "Pizza Quattro Stagioni Pizza Quattro Stagioni",
			want:  "Pizza Quattro Stagioni",
		},
		{
			name:  "keeps a short repeated pair",
			input: "Pasta Pesto Pasta Pesto",
			want:  "Pasta Pesto Pasta Pesto",
		},
		{
			name:  "normalizes bullets and dashes",
			input: "Pizza – Salami • extra kaas",
			want:  "Pizza Salami extra kaas",
		},
		{
			name:  "trims trailing punctuation",
			input: "Pizza Salami,;",
			want:  "Pizza Salami",
		},
		{
			name:  "keeps casing and diacritics",
			input: "Crème Brûlée €6,00",
			want:  "Crème Brûlée",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, rules.CleanField(testCase.input))
		})
	}
}

func TestSanitizeFields(t *testing.T) {
	rules := DefaultRules()

	desc := "Tomaat, mozzarella €2,50 extra"
	name, cleanDesc := rules.SanitizeFields("Pizza Margherita €9,50", &desc)
	assert.Equal(t, "Pizza Margherita", name)
	if assert.NotNil(t, cleanDesc) {
		assert.NotContains(t, *cleanDesc, "€")
	}

	name, cleanDesc = rules.SanitizeFields("Pizza Margherita", nil)
	assert.Equal(t, "Pizza Margherita", name)
	assert.Nil(t, cleanDesc)
}
