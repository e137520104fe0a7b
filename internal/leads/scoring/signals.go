// Package scoring implements the deterministic lead qualification pipeline:
// signal extraction over chat transcripts and preferences, weighted scoring,
// and hot/warm/cold tagging. Everything here is a pure computation over its
// inputs; persistence and transport belong to the callers.
package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"serenity_core/internal/leads/domain"
)

// Category identifies the evidence dimension a signal belongs to. Each
// category contributes to the score at most once per evaluation.
type Category string

const (
	CategoryBudget    Category = "budget"
	CategoryLocation  Category = "location"
	CategoryUrgency   Category = "urgency"
	CategoryFinancing Category = "financing"
	CategoryRepeat    Category = "repeat_interest"
)

// categoryOrder fixes the evaluation order. Reasons in a score result follow
// this order regardless of how the caller assembled the inputs.
var categoryOrder = []Category{
	CategoryBudget,
	CategoryLocation,
	CategoryUrgency,
	CategoryFinancing,
	CategoryRepeat,
}

// Signal is one tagged unit of scoring evidence.
type Signal struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Points   float64  `json:"points"`
	Reason   string   `json:"reason"`
	// Capture holds the transcript fragment that triggered an inferred
	// signal, when one exists. Intent derivation reads it.
	Capture string `json:"capture,omitempty"`
}

// Signal labels. One label per (category, origin) pair; the extractor never
// emits two signals with the same label.
const (
	LabelBudgetExplicit   = "budget_explicit"
	LabelBudgetInferred   = "budget_inferred"
	LabelLocationExplicit = "location_explicit"
	LabelLocationInferred = "location_inferred"
	LabelUrgencyExplicit  = "urgency_explicit"
	LabelUrgencyInferred  = "urgency_keyword_match"
	LabelFinancingReady   = "financing_preapproved"
	LabelRepeatInterest   = "repeat_viewing_interest"
)

// Transcript patterns. Budget and location run against the raw transcript
// (the location pattern relies on capitalization); the keyword scans run
// against a lowercased copy.
var (
	// Currency symbol followed by digits, or digits followed by a
	// thousand/million suffix: "$2M", "AED 900k", "1.5 million".
	budgetPattern = regexp.MustCompile(`[$€£]\s?\d[\d,]*(?:\.\d+)?\s*(?:[kKmM]|million)?|\b\d[\d,]*(?:\.\d+)?\s*(?:[kKmM]\b|million\b)`)

	// Preposition followed by a capitalized phrase: "in Dubai Marina".
	locationPattern = regexp.MustCompile(`(?:\b(?:in|at|near|around)\s+)([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)`)

	financingPattern = regexp.MustCompile(`pre-?approved|mortgage approved|loan approved`)

	repeatPattern = regexp.MustCompile(`second viewing|follow.?up|another look`)
)

// urgencyKeywords is the fixed inferred-urgency vocabulary. Any hit emits one
// capped signal; five hits score the same as one.
var urgencyKeywords = []string{
	"urgent",
	"asap",
	"this week",
	"cash buyer",
	"ready to",
	"immediately",
	"quick",
	"soon",
	"right away",
}

// Extractor scans transcripts and preferences into signals. It is stateless
// and safe for concurrent use.
type Extractor struct {
	weights Weights
}

// NewExtractor creates an extractor with the given weight table.
func NewExtractor(weights Weights) *Extractor {
	return &Extractor{weights: weights}
}

// Extract produces the signal set for a transcript plus preferences. The
// result is deterministic for identical inputs and ordered by category. An
// empty transcript simply yields fewer signals; it is never an error.
//
// Within each category an explicit preference wins over an inferred match:
// when preferences carry a budget, no budget_inferred signal is emitted no
// matter what the transcript says.
func (e *Extractor) Extract(transcript string, prefs domain.LeadPreferences) []Signal {
	lower := strings.ToLower(transcript)
	signals := make([]Signal, 0, len(categoryOrder))

	if sig, ok := e.budgetSignal(transcript, prefs); ok {
		signals = append(signals, sig)
	}
	if sig, ok := e.locationSignal(transcript, prefs); ok {
		signals = append(signals, sig)
	}
	if sig, ok := e.urgencySignal(lower, prefs); ok {
		signals = append(signals, sig)
	}
	if financingPattern.MatchString(lower) {
		signals = append(signals, Signal{
			Category: CategoryFinancing,
			Label:    LabelFinancingReady,
			Points:   e.weights.Financing,
			Reason:   "Pre-approved for financing",
		})
	}
	if repeatPattern.MatchString(lower) {
		signals = append(signals, Signal{
			Category: CategoryRepeat,
			Label:    LabelRepeatInterest,
			Points:   e.weights.RepeatInterest,
			Reason:   "Requesting follow-up viewings",
		})
	}

	return signals
}

func (e *Extractor) budgetSignal(transcript string, prefs domain.LeadPreferences) (Signal, bool) {
	if prefs.HasBudget() {
		return Signal{
			Category: CategoryBudget,
			Label:    LabelBudgetExplicit,
			Points:   e.weights.BudgetExplicit,
			Reason:   fmt.Sprintf("Clear budget specified: %.0f", *prefs.Budget),
		}, true
	}

	if match := budgetPattern.FindString(transcript); match != "" {
		return Signal{
			Category: CategoryBudget,
			Label:    LabelBudgetInferred,
			Points:   e.weights.BudgetInferred,
			Reason:   "Budget mentioned in conversation",
			Capture:  strings.TrimSpace(match),
		}, true
	}

	return Signal{}, false
}

func (e *Extractor) locationSignal(transcript string, prefs domain.LeadPreferences) (Signal, bool) {
	if prefs.HasLocation() {
		return Signal{
			Category: CategoryLocation,
			Label:    LabelLocationExplicit,
			Points:   e.weights.LocationExplicit,
			Reason:   fmt.Sprintf("Specific location interest: %s", strings.TrimSpace(*prefs.Location)),
		}, true
	}

	if groups := locationPattern.FindStringSubmatch(transcript); groups != nil {
		return Signal{
			Category: CategoryLocation,
			Label:    LabelLocationInferred,
			Points:   e.weights.LocationInferred,
			Reason:   "Location mentioned in conversation",
			Capture:  strings.TrimSpace(groups[1]),
		}, true
	}

	return Signal{}, false
}

func (e *Extractor) urgencySignal(lower string, prefs domain.LeadPreferences) (Signal, bool) {
	if prefs.ParsedUrgency().HighPriority() {
		return Signal{
			Category: CategoryUrgency,
			Label:    LabelUrgencyExplicit,
			Points:   e.weights.UrgencyExplicit,
			Reason:   "High urgency indicated in preferences",
		}, true
	}

	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			return Signal{
				Category: CategoryUrgency,
				Label:    LabelUrgencyInferred,
				Points:   e.weights.UrgencyInferred,
				Reason:   "Urgency signals detected in conversation",
				Capture:  kw,
			}, true
		}
	}

	return Signal{}, false
}

// ParseBudgetAmount converts a captured budget fragment into a numeric
// amount: "$2M" → 2000000, "500k" → 500000, "1.5 million" → 1500000.
// Returns false when no digits survive cleanup.
func ParseBudgetAmount(capture string) (float64, bool) {
	lower := strings.ToLower(capture)

	multiplier := 1.0
	switch {
	case strings.Contains(lower, "million"), strings.HasSuffix(strings.TrimSpace(lower), "m"):
		multiplier = 1_000_000
	case strings.HasSuffix(strings.TrimSpace(lower), "k"):
		multiplier = 1_000
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, capture)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value * multiplier, true
}
