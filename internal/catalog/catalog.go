// Package catalog holds the fixed challenge and quote content. It is
// pure configuration: nothing here is persisted, and picked entries
// are copied into completion records by text.
package catalog

import (
	"fmt"
	"math/rand"
	"sort"
)

// Challenges maps a difficulty tier to its challenge texts.
var Challenges = map[string][]string{
	"Beginner": {
		"Reflect on one mistake and what it taught you",
		"Try a new learning method for 30 minutes",
	},
	"Advanced": {
		"Teach a concept to someone else",
		"Tackle a problem outside your comfort zone",
	},
}

// Quotes shown on the dashboard.
var Quotes = []string{
	"The only limit to our realization of tomorrow will be our doubts of today. - Franklin D. Roosevelt",
	"Becoming is better than being. - Carol Dweck",
	"It's not that I'm so smart, it's that I stay with problems longer. - Albert Einstein",
}

// Tiers returns the tier names in stable order.
func Tiers() []string {
	tiers := make([]string, 0, len(Challenges))
	for tier := range Challenges {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)
	return tiers
}

// Pick returns one uniformly-random challenge from the given tier.
func Pick(tier string) (string, error) {
	entries, ok := Challenges[tier]
	if !ok {
		return "", fmt.Errorf("unknown challenge tier %q", tier)
	}
	return entries[rand.Intn(len(entries))], nil
}

// RandomTier picks a tier at random, for the dashboard quick action.
func RandomTier() string {
	tiers := Tiers()
	return tiers[rand.Intn(len(tiers))]
}

// RandomQuote returns one of the dashboard quotes.
func RandomQuote() string {
	return Quotes[rand.Intn(len(Quotes))]
}
