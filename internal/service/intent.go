package service

import (
	"strings"

	"homewise/internal/model"
)

// intentRule maps trigger phrases to an intent. Rules are evaluated in
// order; the first phrase found in the query wins, so more specific
// categories must come before broader ones ("should i buy or rent" would
// otherwise be swallowed by the search rule).
type intentRule struct {
	intent  model.Intent
	phrases []string
}

var intentRules = []intentRule{
	{model.IntentBuyVsRent, []string{
		"buy vs rent", "buy vs. rent", "buy or rent", "rent or buy",
		"should i buy", "should i rent", "buying vs renting",
		"better to buy", "better to rent", "worth buying",
	}},
	{model.IntentRentAnalysis, []string{
		"rent analysis", "rental analysis", "renting analysis",
		"rental insight", "rental yield", "rent trend", "renting option",
	}},
	{model.IntentSearchProperty, []string{
		"show me", "find", "search", "looking for", "properties in",
		"homes in", "bhk", "bedroom", "budget", "apartment", "flat",
	}},
	{model.IntentExplain, []string{"why", "explain"}},
	{model.IntentEducational, []string{"what is", "tell me about", "how does"}},
}

// ClassifyIntent categorizes a free-text query into the closed intent set.
// Deterministic and stateless; unmatched queries default to property search.
func ClassifyIntent(query string) model.Intent {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, rule := range intentRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(q, phrase) {
				return rule.intent
			}
		}
	}
	return model.IntentSearchProperty
}
