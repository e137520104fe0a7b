package config

import (
	"testing"

	"serenity_core/platform/apperr"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("default environment should load, got %v", err)
	}

	if cfg.Scoring.Weights.BudgetExplicit != 0.30 {
		t.Fatalf("unexpected default budget weight: %v", cfg.Scoring.Weights.BudgetExplicit)
	}
	if cfg.Matcher.Limit != 3 {
		t.Fatalf("unexpected default match limit: %d", cfg.Matcher.Limit)
	}
	if cfg.Matcher.PriceTolerance != 0.10 {
		t.Fatalf("unexpected default tolerance: %v", cfg.Matcher.PriceTolerance)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCORING_HOT_THRESHOLD", "0.9")
	t.Setenv("SCORING_WARM_THRESHOLD", "0.6")
	t.Setenv("MATCH_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scoring.Thresholds.Hot != 0.9 || cfg.Scoring.Thresholds.Warm != 0.6 {
		t.Fatalf("threshold overrides not applied: %+v", cfg.Scoring.Thresholds)
	}
	if cfg.Matcher.Limit != 5 {
		t.Fatalf("match limit override not applied: %d", cfg.Matcher.Limit)
	}
}

func TestLoad_RejectsOverlappingThresholds(t *testing.T) {
	t.Setenv("SCORING_WARM_THRESHOLD", "0.8")

	_, err := Load()
	if err == nil {
		t.Fatalf("warm threshold above hot must fail at load time")
	}
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("expected config kind, got %v", err)
	}
}

func TestLoad_RejectsOverUnityWeights(t *testing.T) {
	t.Setenv("SCORING_WEIGHT_BUDGET_EXPLICIT", "0.9")

	_, err := Load()
	if err == nil {
		t.Fatalf("weight maxima above the scale bound must fail at load time")
	}
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("expected config kind, got %v", err)
	}
}

func TestLoad_RejectsBadMatcherConfig(t *testing.T) {
	t.Setenv("MATCH_PRICE_TOLERANCE", "-0.2")

	_, err := Load()
	if err == nil {
		t.Fatalf("negative tolerance must fail at load time")
	}
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("expected config kind, got %v", err)
	}
}

func TestLoad_UnparseableValueFallsBack(t *testing.T) {
	t.Setenv("SCORING_HOT_THRESHOLD", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scoring.Thresholds.Hot != 0.62 {
		t.Fatalf("expected fallback hot threshold, got %v", cfg.Scoring.Thresholds.Hot)
	}
}
