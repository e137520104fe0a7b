package catalog

import (
	"fmt"
	"strings"
)

const (
	// defaultPriceTolerance is the ± fraction around the budget that still
	// counts as a price match. A 1M budget accepts 900k through 1.1M.
	defaultPriceTolerance = 0.10

	// defaultMatchLimit caps how many listings a match run returns.
	defaultMatchLimit = 3
)

// MatcherConfig carries the tunable matching constants.
type MatcherConfig struct {
	// PriceTolerance is the fraction applied on both sides of the budget.
	PriceTolerance float64
	// Limit is the maximum number of listings returned per run.
	Limit int
}

// DefaultMatcherConfig returns the reference matching configuration.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		PriceTolerance: defaultPriceTolerance,
		Limit:          defaultMatchLimit,
	}
}

// Validate rejects unusable matcher configuration at load time.
func (c MatcherConfig) Validate() error {
	if c.PriceTolerance < 0 {
		return fmt.Errorf("price tolerance must not be negative, got %v", c.PriceTolerance)
	}
	if c.Limit < 1 {
		return fmt.Errorf("match limit must be at least 1, got %d", c.Limit)
	}
	return nil
}

// Matcher filters a listing catalog against a MatchIntent.
//
// All supplied constraints must hold; an absent field imposes no restriction.
// The scan preserves catalog order and stops after Limit matches, so the
// result is a first-match-wins truncation rather than a relevance ranking.
type Matcher struct {
	cfg MatcherConfig
}

// NewMatcher creates a matcher. The configuration must already be validated.
func NewMatcher(cfg MatcherConfig) *Matcher {
	return &Matcher{cfg: cfg}
}

// Match returns up to cfg.Limit listings satisfying every active constraint,
// in catalog order. Empty catalogs and zero matches yield an empty slice.
func (m *Matcher) Match(intent MatchIntent, listings []Listing) []Listing {
	return m.MatchN(intent, listings, m.cfg.Limit)
}

// MatchN is Match with a per-call result cap overriding the configured limit.
func (m *Matcher) MatchN(intent MatchIntent, listings []Listing, limit int) []Listing {
	matches := []Listing{}
	if limit < 1 {
		return matches
	}

	for _, listing := range listings {
		if !m.matches(intent, listing) {
			continue
		}
		matches = append(matches, listing)
		if len(matches) >= limit {
			break
		}
	}

	return matches
}

func (m *Matcher) matches(intent MatchIntent, listing Listing) bool {
	if intent.Budget != nil && !m.priceWithinBand(listing.Price, *intent.Budget) {
		return false
	}

	// A pointer to a blank string is treated as no constraint, matching how
	// upstream forms submit untouched fields.
	if loc := trimmedOrEmpty(intent.Location); loc != "" && !containsFold(listing.Location, loc) {
		return false
	}

	if typ := trimmedOrEmpty(intent.PropertyType); typ != "" && !containsFold(listing.Type, typ) {
		return false
	}

	// Exact equality, not "at least". Observed catalog behavior; a listing
	// with more bedrooms than asked is excluded.
	if intent.Bedrooms != nil && listing.Bedrooms != *intent.Bedrooms {
		return false
	}

	return true
}

// priceWithinBand checks the ± tolerance window around the budget. Listings
// outside the band are excluded even when they are cheaper in absolute terms.
// A non-positive budget is an active constraint that nothing satisfies.
func (m *Matcher) priceWithinBand(price, budget float64) bool {
	if budget <= 0 || price <= 0 {
		return false
	}
	lower := budget * (1 - m.cfg.PriceTolerance)
	upper := budget * (1 + m.cfg.PriceTolerance)
	return price >= lower && price <= upper
}

// containsFold reports whether haystack contains needle case-insensitively.
// An empty listing field never satisfies an active constraint.
func containsFold(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func trimmedOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
