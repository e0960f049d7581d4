package scoring

import (
	"testing"

	"creatorhub_backend/internal/matching/domain"
)

func TestEstimateResponseRate_TiersAndCap(t *testing.T) {
	b := DefaultBonuses()
	cases := []struct {
		name          string
		overall       int
		dream         bool
		decisionMaker bool
		want          int
	}{
		{"poor match base only", 40, false, false, 15},
		{"fair tier", 51, false, false, 20},
		{"good tier", 71, false, false, 30},
		{"excellent tier", 86, false, false, 40},
		{"tier boundary stays below", 85, false, false, 30},
		{"dream brand bonus", 71, true, false, 50},
		{"decision maker bonus", 71, false, true, 40},
		{"everything capped", 86, true, true, 75},
	}
	for _, tc := range cases {
		card := scorecard{
			overall: tc.overall,
			values:  ValuesResult{DreamBrand: tc.dream},
		}
		brand := domain.EnhancedBrand{DecisionMakerActive: tc.decisionMaker}
		if got := estimateResponseRate(card, brand, b); got != tc.want {
			t.Errorf("%s: response rate = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestSuggestApproach_PriorityOrder(t *testing.T) {
	alignedCard := scorecard{
		values:   ValuesResult{SubScore: domain.SubScore{Score: 95}, DreamBrand: true},
		audience: AudienceResult{SubScore: domain.SubScore{Score: 90}},
	}
	if got := suggestApproach(alignedCard, true); got != "Lead with your values and audience alignment; this is a near-ideal fit on both" {
		t.Fatalf("expected alignment-led approach to win, got %q", got)
	}

	dreamCard := scorecard{values: ValuesResult{SubScore: domain.SubScore{Score: 50}, DreamBrand: true}}
	if got := suggestApproach(dreamCard, true); got != "Lead with genuine enthusiasm; mention this brand is one you have wanted to work with" {
		t.Fatalf("expected dream-brand approach, got %q", got)
	}

	if got := suggestApproach(scorecard{}, true); got != "Reference the brand's current campaign activity and propose how you would contribute" {
		t.Fatalf("expected opportunity approach, got %q", got)
	}

	if got := suggestApproach(scorecard{}, false); got != "Open with a concise media-kit introduction and one concrete collaboration idea" {
		t.Fatalf("expected media-kit fallback, got %q", got)
	}
}

func TestBuildInsights_StrengthsAndOpportunities(t *testing.T) {
	card := scorecard{
		values:   ValuesResult{SubScore: domain.SubScore{Score: 85}, DreamBrand: true},
		audience: AudienceResult{SubScore: domain.SubScore{Score: 90}, LocationOverlapPct: 50},
		success:  SuccessResult{OpenToNewPartnerships: true},
	}
	brand := domain.EnhancedBrand{UpcomingCampaigns: []string{"Summer Launch"}}

	insights := buildInsights(domain.CreatorProfile{}, brand, card, DefaultBonuses())

	if len(insights.Strengths) != 3 {
		t.Fatalf("expected 3 strengths, got %v", insights.Strengths)
	}
	if len(insights.Opportunities) != 2 {
		t.Fatalf("expected 2 opportunities, got %v", insights.Opportunities)
	}
	if insights.Opportunities[0] != "Upcoming campaign: Summer Launch" {
		t.Fatalf("expected the first upcoming campaign surfaced, got %q", insights.Opportunities[0])
	}
	if len(insights.Concerns) != 0 {
		t.Fatalf("expected no concerns, got %v", insights.Concerns)
	}
}

func TestBuildInsights_LowOverlapAndExclusivityConcerns(t *testing.T) {
	card := scorecard{
		audience: AudienceResult{LocationOverlapPct: 12},
		content:  ContentResult{Concerns: []string{"Creator's production style does not fit the brand's approval process"}},
	}
	creator := domain.CreatorProfile{WeeklyAvailabilityHours: 10}
	brand := domain.EnhancedBrand{RequiresExclusivity: true}

	insights := buildInsights(creator, brand, card, DefaultBonuses())

	want := []string{
		"Creator's production style does not fit the brand's approval process",
		"Low geographic overlap (12%) with the brand's target markets",
		"Brand requires exclusivity but creator availability is under 20 hours per week",
	}
	if len(insights.Concerns) != len(want) {
		t.Fatalf("expected %d concerns, got %v", len(want), insights.Concerns)
	}
	for i, concern := range want {
		if insights.Concerns[i] != concern {
			t.Errorf("concern %d = %q, want %q", i, insights.Concerns[i], concern)
		}
	}
}
