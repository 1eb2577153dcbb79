package search

import "strings"

// Dish scoring weights. The exact values are tuning, but the ordering is not:
// a whole-query exact name match must dominate a prefix match, which must
// dominate a bare substring match, and likewise per token.
const (
	queryNameExact     = 120
	queryNamePrefix    = 80
	queryNameSubstring = 50

	tokenNameExact     = 30
	tokenNamePrefix    = 18
	tokenNameSubstring = 12

	tokenSectionBonus     = 8
	tokenDescriptionBonus = 5
	tokenTagExactBonus    = 10
	tokenTagSubstring     = 6
	tokenVenueNameBonus   = 4
	tokenVenueCityBonus   = 3

	pricedBonus = 5
)

// Restaurant scoring weights.
const (
	restQueryExact     = 100
	restQueryPrefix    = 60
	restQuerySubstring = 40

	restTokenExact     = 20
	restTokenPrefix    = 12
	restTokenSubstring = 8

	restCityBonus     = 6
	restAddressBonus  = 4
	restVerifiedBonus = 5
)

// ScoreDish assigns an additive relevance score to a candidate. normQuery and
// tokens must come from Normalize/Tokenize of the raw query. The result is
// monotonic: more and stronger field matches never lower the score.
func ScoreDish(d Dish, normQuery string, tokens []string) int {
	score := 0
	name := Normalize(d.Name)
	section := Normalize(d.Section)
	desc := ""
	if d.Description != nil {
		desc = Normalize(*d.Description)
	}
	venueName := Normalize(d.Restaurant.Name)
	venueCity := Normalize(d.Restaurant.City)

	normTags := make([]string, len(d.Tags))
	for i, tag := range d.Tags {
		normTags[i] = Normalize(tag)
	}

	if normQuery != "" {
		switch {
		case name == normQuery:
			score += queryNameExact
		case strings.HasPrefix(name, normQuery):
			score += queryNamePrefix
		case strings.Contains(name, normQuery):
			score += queryNameSubstring
		}
	}

	for _, t := range tokens {
		switch {
		case name == t:
			score += tokenNameExact
		case strings.HasPrefix(name, t):
			score += tokenNamePrefix
		case strings.Contains(name, t):
			score += tokenNameSubstring
		}
		if section != "" && strings.Contains(section, t) {
			score += tokenSectionBonus
		}
		if desc != "" && strings.Contains(desc, t) {
			score += tokenDescriptionBonus
		}
		score += tagBonus(normTags, t)
		if venueName != "" && strings.Contains(venueName, t) {
			score += tokenVenueNameBonus
		}
		if venueCity != "" && strings.Contains(venueCity, t) {
			score += tokenVenueCityBonus
		}
	}

	// Priced items are more complete records; prefer them slightly.
	if d.PriceCents != nil {
		score += pricedBonus
	}
	return score
}

func tagBonus(normTags []string, token string) int {
	substring := false
	for _, tag := range normTags {
		if tag == token {
			return tokenTagExactBonus
		}
		if strings.Contains(tag, token) {
			substring = true
		}
	}
	if substring {
		return tokenTagSubstring
	}
	return 0
}

// ScoreRestaurant ranks a venue against the query: name match tiers plus
// small city/address bonuses and a verified bonus.
func ScoreRestaurant(r RestaurantRef, normQuery string, tokens []string) int {
	score := 0
	name := Normalize(r.Name)
	city := Normalize(r.City)
	address := ""
	if r.Address != nil {
		address = Normalize(*r.Address)
	}

	if normQuery != "" {
		switch {
		case name == normQuery:
			score += restQueryExact
		case strings.HasPrefix(name, normQuery):
			score += restQueryPrefix
		case strings.Contains(name, normQuery):
			score += restQuerySubstring
		}
	}

	for _, t := range tokens {
		switch {
		case name == t:
			score += restTokenExact
		case strings.HasPrefix(name, t):
			score += restTokenPrefix
		case strings.Contains(name, t):
			score += restTokenSubstring
		}
		if city != "" && strings.Contains(city, t) {
			score += restCityBonus
		}
		if address != "" && strings.Contains(address, t) {
			score += restAddressBonus
		}
	}

	if r.Verified {
		score += restVerifiedBonus
	}
	return score
}
