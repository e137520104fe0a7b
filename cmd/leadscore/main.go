package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"serenity_core/internal/catalog"
	"serenity_core/internal/catalog/repository"
	"serenity_core/internal/config"
	"serenity_core/internal/leads/domain"
	"serenity_core/internal/leads/scoring"
	"serenity_core/platform/logger"
	"serenity_core/platform/validator"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type output struct {
	Result   scoring.Result    `json:"result"`
	Listings []catalog.Listing `json:"listings,omitempty"`
}

func main() {
	transcript := flag.String("transcript", "", "chat transcript to score (use '-' to read stdin)")
	budget := flag.Float64("budget", 0, "explicit budget preference")
	location := flag.String("location", "", "explicit location preference")
	urgency := flag.String("urgency", "", "explicit urgency preference (immediate/soon/exploring)")
	catalogPath := flag.String("catalog", "", "listings file to match against (overrides CATALOG_PATH)")
	leadsPath := flag.String("leads", "", "JSON file with a batch of leads to score")
	concurrency := flag.Int("concurrency", 4, "parallel evaluations in batch mode")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("development").ConfigError(err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	scorer := scoring.New(cfg.Scoring, log)
	matcher := catalog.NewMatcher(cfg.Matcher)

	listings := loadCatalog(cfg, *catalogPath, log)

	if *leadsPath != "" {
		if err := runBatch(scorer, matcher, listings, *leadsPath, *concurrency); err != nil {
			log.Error("batch scoring failed", "error", err)
			os.Exit(1)
		}
		return
	}

	lead := domain.Lead{
		ID:         uuid.New(),
		Transcript: readTranscript(*transcript),
	}
	if *budget > 0 {
		lead.Preferences.Budget = budget
	}
	if *location != "" {
		lead.Preferences.Location = location
	}
	if *urgency != "" {
		lead.Preferences.Urgency = urgency
	}

	result := scorer.Evaluate(lead)

	out := output{Result: result}
	if len(listings) > 0 {
		out.Listings = matcher.Match(result.Intent, listings)
		log.MatchEvent(len(listings), len(out.Listings))
	}

	emit(out)
}

func loadCatalog(cfg *config.Config, override string, log *logger.Logger) []catalog.Listing {
	path := cfg.CatalogPath
	if override != "" {
		path = override
	}
	if path == "" {
		return nil
	}

	repo := repository.NewFileRepository(validator.New(), log)
	listings, err := repo.Load(path)
	if err != nil {
		log.Error("catalog load failed", "path", path, "error", err)
		return nil
	}
	return listings
}

// runBatch scores every lead in the file. Evaluations are independent pure
// computations, so they run in parallel; results keep input order.
func runBatch(scorer *scoring.Service, matcher *catalog.Matcher, listings []catalog.Listing, path string, concurrency int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var leads []domain.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return err
	}

	outputs := make([]output, len(leads))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, lead := range leads {
		if lead.ID == uuid.Nil {
			lead.ID = uuid.New()
		}
		i, lead := i, lead
		g.Go(func() error {
			result := scorer.Evaluate(lead)
			outputs[i] = output{Result: result}
			if len(listings) > 0 {
				outputs[i].Listings = matcher.Match(result.Intent, listings)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	emit(outputs)
	return nil
}

func readTranscript(arg string) string {
	if arg != "-" {
		return arg
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return string(data)
}

func emit(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
