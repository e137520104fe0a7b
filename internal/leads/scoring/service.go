package scoring

import (
	"fmt"
	"time"

	"serenity_core/internal/catalog"
	"serenity_core/internal/leads/domain"
	"serenity_core/platform/logger"
)

const (
	// scoreVersion tracks the scoring model for debugging and analysis.
	// Bump this when changing weights or extraction logic significantly.
	scoreVersion = "2026-v1"

	// Scale bounds. All weights and thresholds live on a 0..1 scale.
	scoreLowerBound = 0.0
	scoreUpperBound = 1.0
)

// Weights is the per-category point table. Explicit variants apply when the
// caller supplied the preference directly; inferred variants apply when the
// transcript scan found the evidence. Explicit must never be cheaper than
// inferred within a category.
type Weights struct {
	BudgetExplicit   float64
	BudgetInferred   float64
	LocationExplicit float64
	LocationInferred float64
	UrgencyExplicit  float64
	UrgencyInferred  float64
	Financing        float64
	RepeatInterest   float64
}

// maxSum is the largest raw score the table can produce: the best variant of
// each category plus the bonus categories.
func (w Weights) maxSum() float64 {
	return w.BudgetExplicit + w.LocationExplicit + w.UrgencyExplicit + w.Financing + w.RepeatInterest
}

// Thresholds are the tag band boundaries, evaluated high to low with strict
// comparisons: score > Hot is hot, score > Warm is warm, the rest is cold.
type Thresholds struct {
	Hot  float64
	Warm float64
}

// Config bundles the tunable scoring constants.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
}

// DefaultConfig returns the reference weight table and bands. Inferred
// budget + location + urgency (0.65) lands hot; explicit budget + location
// alone (0.60) stays warm.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			BudgetExplicit:   0.30,
			BudgetInferred:   0.25,
			LocationExplicit: 0.30,
			LocationInferred: 0.25,
			UrgencyExplicit:  0.20,
			UrgencyInferred:  0.15,
			Financing:        0.10,
			RepeatInterest:   0.10,
		},
		Thresholds: Thresholds{
			Hot:  0.62,
			Warm: 0.40,
		},
	}
}

// Validate rejects inconsistent scoring configuration. This runs once at
// startup; per-call scoring never fails.
func (c Config) Validate() error {
	w := c.Weights
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{"budget explicit", w.BudgetExplicit},
		{"budget inferred", w.BudgetInferred},
		{"location explicit", w.LocationExplicit},
		{"location inferred", w.LocationInferred},
		{"urgency explicit", w.UrgencyExplicit},
		{"urgency inferred", w.UrgencyInferred},
		{"financing", w.Financing},
		{"repeat interest", w.RepeatInterest},
	} {
		if entry.value < 0 {
			return fmt.Errorf("%s weight must not be negative, got %v", entry.name, entry.value)
		}
	}

	if w.BudgetInferred > w.BudgetExplicit {
		return fmt.Errorf("inferred budget weight %v exceeds explicit %v", w.BudgetInferred, w.BudgetExplicit)
	}
	if w.LocationInferred > w.LocationExplicit {
		return fmt.Errorf("inferred location weight %v exceeds explicit %v", w.LocationInferred, w.LocationExplicit)
	}
	if w.UrgencyInferred > w.UrgencyExplicit {
		return fmt.Errorf("inferred urgency weight %v exceeds explicit %v", w.UrgencyInferred, w.UrgencyExplicit)
	}

	if sum := w.maxSum(); sum > scoreUpperBound {
		return fmt.Errorf("category weight maxima sum to %v, above the scale upper bound %v", sum, scoreUpperBound)
	}

	t := c.Thresholds
	if t.Warm < scoreLowerBound {
		return fmt.Errorf("warm threshold %v below scale lower bound", t.Warm)
	}
	if t.Warm >= t.Hot {
		return fmt.Errorf("warm threshold %v must be below hot threshold %v", t.Warm, t.Hot)
	}
	if t.Hot >= scoreUpperBound {
		return fmt.Errorf("hot threshold %v must be below the scale upper bound %v", t.Hot, scoreUpperBound)
	}
	return nil
}

// Score sums distinct signal points and clamps the result to the scale.
// Reasons come back in category evaluation order, one per contributing
// signal. Any well-formed signal slice is accepted; duplicate labels are
// counted once.
func Score(signals []Signal) (float64, []string) {
	sum := 0.0
	reasons := make([]string, 0, len(signals))
	seen := map[string]bool{}

	for _, cat := range categoryOrder {
		for _, sig := range signals {
			if sig.Category != cat || seen[sig.Label] {
				continue
			}
			seen[sig.Label] = true
			sum += sig.Points
			reasons = append(reasons, sig.Reason)
		}
	}

	return clampScore(sum), reasons
}

// TagFor maps a clamped score onto a tag through the threshold bands.
// The mapping is monotonic: a higher score never yields a colder tag.
func (c Config) TagFor(score float64) domain.LeadTag {
	switch {
	case score > c.Thresholds.Hot:
		return domain.TagHot
	case score > c.Thresholds.Warm:
		return domain.TagWarm
	default:
		return domain.TagCold
	}
}

// Result is one completed lead evaluation.
type Result struct {
	LeadID  string              `json:"lead_id"`
	Score   float64             `json:"score"`
	Tag     domain.LeadTag      `json:"tag"`
	Reasons []string            `json:"reasons"`
	Signals []Signal            `json:"signals"`
	Intent  catalog.MatchIntent `json:"intent"`
	Version string              `json:"version"`
	At      time.Time           `json:"at"`
}

// Service runs the full evaluation pipeline for a lead.
type Service struct {
	cfg       Config
	extractor *Extractor
	log       *logger.Logger
}

// New creates a scoring service. The config must already be validated.
func New(cfg Config, log *logger.Logger) *Service {
	return &Service{
		cfg:       cfg,
		extractor: NewExtractor(cfg.Weights),
		log:       log,
	}
}

// Evaluate extracts signals, scores them, tags the lead and derives the
// match intent. Pure apart from one log line; safe for concurrent use.
func (s *Service) Evaluate(lead domain.Lead) Result {
	signals := s.extractor.Extract(lead.Transcript, lead.Preferences)
	score, reasons := Score(signals)
	tag := s.cfg.TagFor(score)

	if s.log != nil {
		s.log.WithLeadID(lead.ID.String()).ScoringEvent(score, string(tag), len(signals))
	}

	return Result{
		LeadID:  lead.ID.String(),
		Score:   score,
		Tag:     tag,
		Reasons: reasons,
		Signals: signals,
		Intent:  BuildIntent(lead.Preferences, signals),
		Version: scoreVersion,
		At:      time.Now().UTC(),
	}
}

func clampScore(value float64) float64 {
	if value < scoreLowerBound {
		return scoreLowerBound
	}
	if value > scoreUpperBound {
		return scoreUpperBound
	}
	return value
}
