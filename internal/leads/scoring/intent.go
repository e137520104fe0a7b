package scoring

import (
	"serenity_core/internal/catalog"
	"serenity_core/internal/leads/domain"
)

// BuildIntent assembles the match intent that feeds the listing matcher.
// Explicit preferences win; when absent, values captured by the inferred
// budget and location signals fill in. Bedrooms and property type are never
// guessed from chat text, so those stay unset unless a caller adds them.
func BuildIntent(prefs domain.LeadPreferences, signals []Signal) catalog.MatchIntent {
	intent := catalog.MatchIntent{}

	if prefs.HasBudget() {
		budget := *prefs.Budget
		intent.Budget = &budget
	}
	if prefs.HasLocation() {
		location := *prefs.Location
		intent.Location = &location
	}

	for _, sig := range signals {
		switch sig.Label {
		case LabelBudgetInferred:
			if intent.Budget == nil && sig.Capture != "" {
				if amount, ok := ParseBudgetAmount(sig.Capture); ok {
					intent.Budget = &amount
				}
			}
		case LabelLocationInferred:
			if intent.Location == nil && sig.Capture != "" {
				capture := sig.Capture
				intent.Location = &capture
			}
		}
	}

	return intent
}
