// Package domain holds the lead types shared by the scoring pipeline.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// LeadTag is the categorical priority bucket derived from a numeric score.
type LeadTag string

const (
	TagHot  LeadTag = "hot"
	TagWarm LeadTag = "warm"
	TagCold LeadTag = "cold"
)

// Heat orders tags for comparison: a higher score must never produce a
// lower heat.
func (t LeadTag) Heat() int {
	switch t {
	case TagHot:
		return 2
	case TagWarm:
		return 1
	default:
		return 0
	}
}

// Urgency is the normalized move-in timeline supplied by a lead.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencySoon      Urgency = "soon"
	UrgencyExploring Urgency = "exploring"
	UrgencyUnknown   Urgency = ""
)

// ParseUrgency normalizes a raw urgency string. Callers supply anything from
// chat widgets and CRM forms, so common synonyms map onto the three buckets.
func ParseUrgency(raw string) Urgency {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "immediate", "immediately", "now", "high", "urgent", "asap":
		return UrgencyImmediate
	case "soon", "this_month", "3_months", "6_months":
		return UrgencySoon
	case "exploring", "low", "browsing", "just looking":
		return UrgencyExploring
	default:
		return UrgencyUnknown
	}
}

// HighPriority reports whether the urgency counts as an explicit high-priority
// indication for scoring.
func (u Urgency) HighPriority() bool {
	return u == UrgencyImmediate
}

// LeadPreferences is the structured record a caller supplies alongside the
// transcript. Every field is independently optional; explicit values take
// precedence over anything inferred from chat text.
type LeadPreferences struct {
	Budget   *float64 `json:"budget,omitempty"`
	Location *string  `json:"location,omitempty"`
	Urgency  *string  `json:"urgency,omitempty"`
}

// HasBudget reports whether a usable explicit budget is present.
// Non-positive budgets are treated as absent rather than rejected.
func (p LeadPreferences) HasBudget() bool {
	return p.Budget != nil && *p.Budget > 0
}

// HasLocation reports whether an explicit location is present.
func (p LeadPreferences) HasLocation() bool {
	return p.Location != nil && strings.TrimSpace(*p.Location) != ""
}

// ParsedUrgency returns the normalized urgency, UrgencyUnknown when absent.
func (p LeadPreferences) ParsedUrgency() Urgency {
	if p.Urgency == nil {
		return UrgencyUnknown
	}
	return ParseUrgency(*p.Urgency)
}

// Lead is one prospective client under evaluation. The transcript is the
// concatenated chat history; it is never mutated by the pipeline.
type Lead struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name,omitempty"`
	Transcript  string          `json:"transcript"`
	Preferences LeadPreferences `json:"preferences"`
}
