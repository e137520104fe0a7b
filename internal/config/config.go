package config

import (
	"os"
	"strconv"

	"serenity_core/internal/catalog"
	"serenity_core/internal/leads/scoring"
	"serenity_core/platform/apperr"

	"github.com/joho/godotenv"
)

// Config carries everything tunable about the pipeline. Weight tables,
// threshold bands and the matcher tolerance are configuration, not code;
// invalid combinations are rejected here, at load time, never per call.
type Config struct {
	Env         string
	CatalogPath string

	Scoring scoring.Config
	Matcher catalog.MatcherConfig
}

// Load reads the environment (plus an optional .env file) and validates the
// resulting configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	defaults := scoring.DefaultConfig()
	matcherDefaults := catalog.DefaultMatcherConfig()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		Scoring: scoring.Config{
			Weights: scoring.Weights{
				BudgetExplicit:   envFloat("SCORING_WEIGHT_BUDGET_EXPLICIT", defaults.Weights.BudgetExplicit),
				BudgetInferred:   envFloat("SCORING_WEIGHT_BUDGET_INFERRED", defaults.Weights.BudgetInferred),
				LocationExplicit: envFloat("SCORING_WEIGHT_LOCATION_EXPLICIT", defaults.Weights.LocationExplicit),
				LocationInferred: envFloat("SCORING_WEIGHT_LOCATION_INFERRED", defaults.Weights.LocationInferred),
				UrgencyExplicit:  envFloat("SCORING_WEIGHT_URGENCY_EXPLICIT", defaults.Weights.UrgencyExplicit),
				UrgencyInferred:  envFloat("SCORING_WEIGHT_URGENCY_INFERRED", defaults.Weights.UrgencyInferred),
				Financing:        envFloat("SCORING_WEIGHT_FINANCING", defaults.Weights.Financing),
				RepeatInterest:   envFloat("SCORING_WEIGHT_REPEAT", defaults.Weights.RepeatInterest),
			},
			Thresholds: scoring.Thresholds{
				Hot:  envFloat("SCORING_HOT_THRESHOLD", defaults.Thresholds.Hot),
				Warm: envFloat("SCORING_WARM_THRESHOLD", defaults.Thresholds.Warm),
			},
		},
		Matcher: catalog.MatcherConfig{
			PriceTolerance: envFloat("MATCH_PRICE_TOLERANCE", matcherDefaults.PriceTolerance),
			Limit:          envInt("MATCH_LIMIT", matcherDefaults.Limit),
		},
	}

	if err := cfg.Scoring.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, "invalid scoring configuration: "+err.Error(), err).WithOp("config.load")
	}
	if err := cfg.Matcher.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, "invalid matcher configuration: "+err.Error(), err).WithOp("config.load")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// envFloat parses a float from the environment, keeping the fallback when
// the variable is absent or unparseable.
func envFloat(key string, fallback float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
