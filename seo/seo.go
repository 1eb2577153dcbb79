package seo

import (
	"fmt"
	"strings"

	"menuswap-api/search"
)

// Slugify turns a display name into a URL-safe slug: lowercase, diacritics
// stripped, word runs joined by single hyphens.
func Slugify(text string) string {
	return strings.ReplaceAll(search.Normalize(text), " ", "-")
}

// FormatPrice renders minor currency units as a euro amount.
func FormatPrice(cents int) string {
	return fmt.Sprintf("€%.2f", float64(cents)/100)
}

// FormatAddress renders "street, city" or just the city when no street is known.
func FormatAddress(address *string, city string) string {
	if address == nil || *address == "" {
		return city
	}
	return *address + ", " + city
}

// Title builds the page <title> for a restaurant or dish page.
func Title(restaurant, city, dish string) string {
	if dish != "" {
		return fmt.Sprintf("%s bij %s in %s - MenuSwap NL", dish, restaurant, city)
	}
	return fmt.Sprintf("%s menu in %s - MenuSwap NL", restaurant, city)
}

// Description builds the meta description for a restaurant or dish page.
func Description(restaurant, city, dish string) string {
	if dish != "" {
		return fmt.Sprintf("Bekijk %s bij %s in %s. Vergelijk prijzen en vind de beste gerechten bij restaurants in Nederland.", dish, restaurant, city)
	}
	return fmt.Sprintf("Bekijk de volledige menukaart van %s in %s. Vind prijzen, gerechten en contactgegevens.", restaurant, city)
}
