package scoring

import (
	"reflect"
	"testing"

	"serenity_core/internal/leads/domain"
)

func testExtractor() *Extractor {
	return NewExtractor(DefaultConfig().Weights)
}

func labels(signals []Signal) []string {
	out := make([]string, 0, len(signals))
	for _, sig := range signals {
		out = append(out, sig.Label)
	}
	return out
}

func TestExtract_CashBuyerTranscript(t *testing.T) {
	transcript := "I am a cash buyer, ready to move ASAP, budget is $2M in Dubai Marina"

	signals := testExtractor().Extract(transcript, domain.LeadPreferences{})

	got := labels(signals)
	want := []string{LabelBudgetInferred, LabelLocationInferred, LabelUrgencyInferred}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected labels %v, got %v", want, got)
	}

	for _, sig := range signals {
		if sig.Label == LabelLocationInferred && sig.Capture != "Dubai Marina" {
			t.Fatalf("expected location capture 'Dubai Marina', got %q", sig.Capture)
		}
		if sig.Label == LabelBudgetInferred && sig.Capture != "$2M" {
			t.Fatalf("expected budget capture '$2M', got %q", sig.Capture)
		}
	}
}

func TestExtract_EmptyTranscriptNoPreferences(t *testing.T) {
	signals := testExtractor().Extract("", domain.LeadPreferences{})
	if len(signals) != 0 {
		t.Fatalf("expected no signals, got %v", labels(signals))
	}
}

func TestExtract_Idempotent(t *testing.T) {
	transcript := "Looking near Palm Jumeirah, pre-approved, budget around 900k"
	prefs := domain.LeadPreferences{Urgency: ptr("soon")}

	first := testExtractor().Extract(transcript, prefs)
	second := testExtractor().Extract(transcript, prefs)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different signal sets: %v vs %v", first, second)
	}
}

func TestExtract_ExplicitBudgetSuppressesInferred(t *testing.T) {
	transcript := "my budget is $2M, maybe 3 million if the view is right"
	prefs := domain.LeadPreferences{Budget: ptrF(500000)}

	signals := testExtractor().Extract(transcript, prefs)

	for _, sig := range signals {
		if sig.Label == LabelBudgetInferred {
			t.Fatalf("inferred budget signal emitted despite explicit preference")
		}
	}
	if !hasLabel(signals, LabelBudgetExplicit) {
		t.Fatalf("expected explicit budget signal, got %v", labels(signals))
	}
}

func TestExtract_UrgencyKeywordCap(t *testing.T) {
	one := testExtractor().Extract("we need this urgent", domain.LeadPreferences{})
	many := testExtractor().Extract(
		"urgent, asap, this week, immediately, right away please",
		domain.LeadPreferences{},
	)

	oneScore, _ := Score(one)
	manyScore, _ := Score(many)
	if oneScore != manyScore {
		t.Fatalf("five urgency keywords scored %v, one keyword scored %v", manyScore, oneScore)
	}

	count := 0
	for _, sig := range many {
		if sig.Category == CategoryUrgency {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected a single capped urgency signal, got %d", count)
	}
}

func TestExtract_ExplicitUrgencyOutweighsInferred(t *testing.T) {
	explicit := testExtractor().Extract("", domain.LeadPreferences{Urgency: ptr("immediate")})
	inferred := testExtractor().Extract("call me asap", domain.LeadPreferences{})

	if !hasLabel(explicit, LabelUrgencyExplicit) {
		t.Fatalf("expected explicit urgency signal, got %v", labels(explicit))
	}
	if !hasLabel(inferred, LabelUrgencyInferred) {
		t.Fatalf("expected inferred urgency signal, got %v", labels(inferred))
	}

	explicitScore, _ := Score(explicit)
	inferredScore, _ := Score(inferred)
	if explicitScore <= inferredScore {
		t.Fatalf("explicit urgency %v should outweigh inferred %v", explicitScore, inferredScore)
	}
}

func TestExtract_ExploringUrgencyFallsThroughToTranscript(t *testing.T) {
	signals := testExtractor().Extract("we want to move this week", domain.LeadPreferences{Urgency: ptr("exploring")})
	if !hasLabel(signals, LabelUrgencyInferred) {
		t.Fatalf("expected transcript urgency scan for non-priority preference, got %v", labels(signals))
	}
}

func TestExtract_FinancingAndRepeatPatterns(t *testing.T) {
	signals := testExtractor().Extract(
		"We are Pre-Approved for the mortgage and would like a second viewing",
		domain.LeadPreferences{},
	)

	if !hasLabel(signals, LabelFinancingReady) {
		t.Fatalf("expected financing signal, got %v", labels(signals))
	}
	if !hasLabel(signals, LabelRepeatInterest) {
		t.Fatalf("expected repeat interest signal, got %v", labels(signals))
	}
}

func TestExtract_LabelsUnique(t *testing.T) {
	signals := testExtractor().Extract(
		"urgent cash buyer, pre-approved, budget $900k, in Downtown Dubai, follow up on the second viewing",
		domain.LeadPreferences{},
	)

	seen := map[string]bool{}
	for _, sig := range signals {
		if seen[sig.Label] {
			t.Fatalf("duplicate signal label %q", sig.Label)
		}
		seen[sig.Label] = true
	}
}

func TestParseBudgetAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$2M", 2_000_000, true},
		{"500k", 500_000, true},
		{"1.5 million", 1_500_000, true},
		{"$750,000", 750_000, true},
		{"€900K", 900_000, true},
		{"no digits", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseBudgetAmount(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseBudgetAmount(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func hasLabel(signals []Signal, label string) bool {
	for _, sig := range signals {
		if sig.Label == label {
			return true
		}
	}
	return false
}

func ptr(s string) *string { return &s }

func ptrF(f float64) *float64 { return &f }
