package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDishMonotonicity(t *testing.T) {
	normQuery := Normalize("pizza")
	tokens := Tokenize("pizza")

	exact := ScoreDish(Dish{Name: "Pizza"}, normQuery, tokens)
	prefix := ScoreDish(Dish{Name: "Pizza Margherita"}, normQuery, tokens)
	substring := ScoreDish(Dish{Name: "Mini Pizza"}, normQuery, tokens)
	tagOnly := ScoreDish(Dish{Name: "Calzone", Tags: []string{"pizza"}}, normQuery, tokens)
	noMatch := ScoreDish(Dish{Name: "Sushi"}, normQuery, tokens)

	assert.Greater(t, exact, prefix, "exact name match must beat a prefix match")
	assert.Greater(t, prefix, substring, "prefix match must beat a bare substring match")
	assert.Greater(t, substring, tagOnly, "a name match must beat a tag-only match")
	assert.Greater(t, tagOnly, noMatch)
	assert.Equal(t, 0, noMatch)
}

func TestScoreDishExactBeatsContains(t *testing.T) {
	// The invariant must hold for a multi-token query too: a name equal to
	// the full query scores strictly above one merely containing it.
	query := "pizza margherita"
	normQuery := Normalize(query)
	tokens := Tokenize(query)

	exact := ScoreDish(Dish{Name: "Pizza Margherita"}, normQuery, tokens)
	contains := ScoreDish(Dish{Name: "Dubbele Pizza Margherita Speciaal"}, normQuery, tokens)
	assert.Greater(t, exact, contains)
}

func TestScoreDishFieldBonuses(t *testing.T) {
	normQuery := Normalize("pasta")
	tokens := Tokenize("pasta")
	base := Dish{Name: "Penne Arrabbiata"}

	withSection := base
	withSection.Section = "Pasta"
	assert.Greater(t, ScoreDish(withSection, normQuery, tokens), ScoreDish(base, normQuery, tokens))

	withDesc := base
	withDesc.Description = strptr("verse pasta uit eigen keuken")
	assert.Greater(t, ScoreDish(withDesc, normQuery, tokens), ScoreDish(base, normQuery, tokens))

	tagExact := base
	tagExact.Tags = []string{"pasta"}
	tagSub := base
	tagSub.Tags = []string{"pastasalade"}
	assert.Greater(t, ScoreDish(tagExact, normQuery, tokens), ScoreDish(tagSub, normQuery, tokens),
		"exact tag match outranks a tag substring match")

	withVenue := base
	withVenue.Restaurant = RestaurantRef{Name: "Pasta Palace", City: "Amsterdam"}
	assert.Greater(t, ScoreDish(withVenue, normQuery, tokens), ScoreDish(base, normQuery, tokens))
}

func TestScoreDishPricedBonus(t *testing.T) {
	normQuery := Normalize("pizza")
	tokens := Tokenize("pizza")
	price := 950

	priced := ScoreDish(Dish{Name: "Pizza", PriceCents: &price}, normQuery, tokens)
	unpriced := ScoreDish(Dish{Name: "Pizza"}, normQuery, tokens)
	assert.Greater(t, priced, unpriced, "priced records are preferred as more complete")
}

func TestScoreRestaurant(t *testing.T) {
	normQuery := Normalize("roma")
	tokens := Tokenize("roma")

	exact := ScoreRestaurant(RestaurantRef{Name: "Roma"}, normQuery, tokens)
	prefix := ScoreRestaurant(RestaurantRef{Name: "Roma Trattoria"}, normQuery, tokens)
	substring := ScoreRestaurant(RestaurantRef{Name: "Pizzeria Roma"}, normQuery, tokens)
	assert.Greater(t, exact, prefix)
	assert.Greater(t, prefix, substring)

	verified := ScoreRestaurant(RestaurantRef{Name: "Roma", Verified: true}, normQuery, tokens)
	assert.Greater(t, verified, exact)
}
