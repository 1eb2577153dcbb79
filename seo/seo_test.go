package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Pizza Margherita", want: "pizza-margherita"},
		{in: "Crème Brûlée", want: "creme-brulee"},
		{in: "Pizza's 30cm!", want: "pizza-s-30cm"},
		{in: "  Dubbele   spaties  ", want: "dubbele-spaties"},
		{in: "'s-Hertogenbosch", want: "s-hertogenbosch"},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.want, Slugify(testCase.in), testCase.in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€9.50", FormatPrice(950))
	assert.Equal(t, "€0.99", FormatPrice(99))
	assert.Equal(t, "€12.00", FormatPrice(1200))
}

func TestFormatAddress(t *testing.T) {
	street := "Damrak 1"
	empty := ""
	assert.Equal(t, "Damrak 1, Amsterdam", FormatAddress(&street, "Amsterdam"))
	assert.Equal(t, "Amsterdam", FormatAddress(nil, "Amsterdam"))
	assert.Equal(t, "Amsterdam", FormatAddress(&empty, "Amsterdam"))
}

func TestTitleAndDescription(t *testing.T) {
	assert.Equal(t,
		"Pizza Margherita bij Napoli in Amsterdam - MenuSwap NL",
		Title("Napoli", "Amsterdam", "Pizza Margherita"))
	assert.Equal(t,
		"Napoli menu in Amsterdam - MenuSwap NL",
		Title("Napoli", "Amsterdam", ""))

	assert.Contains(t, Description("Napoli", "Amsterdam", "Pizza Margherita"), "Pizza Margherita bij Napoli")
	assert.Contains(t, Description("Napoli", "Amsterdam", ""), "menukaart van Napoli")
}
