package scoring

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"creatorhub_backend/internal/matching/domain"
)

func TestDefaultWeights_SumToOne(t *testing.T) {
	if sum := DefaultWeights().Sum(); math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("expected weights to sum to 1.0, got %v", sum)
	}
}

func TestComposeOverall_UniformSubScoresPassThrough(t *testing.T) {
	e := NewEngine()
	for _, score := range []int{0, 37, 73, 100} {
		card := scorecard{
			values:   ValuesResult{SubScore: domain.SubScore{Score: score}},
			audience: AudienceResult{SubScore: domain.SubScore{Score: score}},
			content:  ContentResult{SubScore: domain.SubScore{Score: score}},
			success:  SuccessResult{SubScore: domain.SubScore{Score: score}},
		}
		if got := e.composeOverall(card); got != score {
			t.Errorf("uniform sub-scores of %d: overall = %d, want %d", score, got, score)
		}
	}
}

func TestCategorize_Boundaries(t *testing.T) {
	e := NewEngine()
	cases := []struct {
		overall int
		want    string
	}{
		{100, domain.CategoryExcellent},
		{85, domain.CategoryExcellent},
		{84, domain.CategoryGood},
		{70, domain.CategoryGood},
		{69, domain.CategoryFair},
		{50, domain.CategoryFair},
		{49, domain.CategoryPoor},
		{0, domain.CategoryPoor},
	}
	for _, tc := range cases {
		if got := e.categorize(tc.overall); got != tc.want {
			t.Errorf("categorize(%d) = %s, want %s", tc.overall, got, tc.want)
		}
	}
}

func TestCalculateMatch_Idempotent(t *testing.T) {
	fixed := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	e := NewEngineWithClock(func() time.Time { return fixed })

	creator := engineTestCreator()
	brand := engineTestBrand()

	first := e.CalculateMatch(creator, brand)
	second := e.CalculateMatch(creator, brand)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical inputs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCalculateMatch_BlacklistZeroesValuesOnly(t *testing.T) {
	fixed := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	e := NewEngineWithClock(func() time.Time { return fixed })

	creator := engineTestCreator()
	creator.BlacklistedBrands = []string{"fastfashion"}
	brand := engineTestBrand()
	brand.Name = "FastFashionCo"

	match := e.CalculateMatch(creator, brand)

	if match.ValuesAlignment.Score != 0 {
		t.Fatalf("expected values alignment 0, got %v", match.ValuesAlignment.Score)
	}
	if len(match.ValuesAlignment.Details) != 1 || match.ValuesAlignment.Details[0] != blacklistDetail {
		t.Fatalf("expected only the blacklist detail, got %v", match.ValuesAlignment.Details)
	}

	// The other three dimensions still contribute to the overall score.
	if match.AudienceResonance.Score != 100 {
		t.Errorf("expected audience resonance 100, got %v", match.AudienceResonance.Score)
	}
	if match.ContentStyle.Score != 90 {
		t.Errorf("expected content style 90, got %v", match.ContentStyle.Score)
	}
	if match.SuccessProbability.Score != 100 {
		t.Errorf("expected success probability 100, got %v", match.SuccessProbability.Score)
	}
	// 0*.20 + 100*.50 + 90*.20 + 100*.10
	if match.OverallScore != 78 {
		t.Errorf("expected overall score 78, got %d", match.OverallScore)
	}
	if match.MatchCategory != domain.CategoryGood {
		t.Errorf("expected good category, got %s", match.MatchCategory)
	}
}

func TestCalculateMatch_ZeroGeographicOverlapConcern(t *testing.T) {
	e := NewEngine()

	creator := engineTestCreator()
	creator.AudienceLocations = []domain.AudienceLocation{{Country: "Germany", Percentage: 100}}
	brand := engineTestBrand()
	brand.TargetCountries = []string{"United States"}

	match := e.CalculateMatch(creator, brand)

	found := false
	for _, concern := range match.Insights.Concerns {
		if concern == "No geographic overlap with the brand's target markets" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a no-geographic-overlap concern, got %v", match.Insights.Concerns)
	}
}

func TestCalculateMatch_SetsIdentityAndStatus(t *testing.T) {
	e := NewEngine()
	creator := engineTestCreator()
	brand := engineTestBrand()

	match := e.CalculateMatch(creator, brand)

	if match.ID != domain.MatchID(creator.ID, brand.ID) {
		t.Fatalf("expected composite match id, got %s", match.ID)
	}
	if match.CreatorID != creator.ID || match.BrandID != brand.ID {
		t.Fatalf("expected creator/brand ids carried through")
	}
	if match.BrandName != brand.Name {
		t.Fatalf("expected brand name %q, got %q", brand.Name, match.BrandName)
	}
	if match.Status != domain.StatusDiscovered {
		t.Fatalf("expected discovered status, got %s", match.Status)
	}
}

// engineTestCreator is a creator that maxes the audience, content and success
// scorers against engineTestBrand.
func engineTestCreator() domain.CreatorProfile {
	return domain.CreatorProfile{
		ID:                uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		DisplayName:       "Jordan Vale",
		FollowerCount:     50_000,
		EngagementRate:    4.0,
		AudienceAgeRanges: []string{"18-24"},
		AudienceFemalePct: 60,
		AudienceLocations: []domain.AudienceLocation{{Country: "United States", Percentage: 80}},
		AudienceInterests: []string{"fashion"},
		AudienceIncome:    "medium",
		ContentStyle: domain.ContentStyle{
			PrimaryFormat:   "reel",
			Aesthetics:      []string{"minimal"},
			ProductionValue: "authentic",
			CaptionStyle:    "punchy",
		},
		WeeklyAvailabilityHours: 30,
	}
}

func engineTestBrand() domain.EnhancedBrand {
	return domain.EnhancedBrand{
		ID:                   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:                 "ThreadHaus",
		Industry:             "fashion",
		MinEngagement:        3.0,
		PreferredEngagement:  4.0,
		Niches:               []string{"fashion"},
		ContentFormats:       []string{"reel"},
		Aesthetics:           []string{"minimal"},
		MaxApprovalRounds:    1,
		AudienceAgeRanges:    []string{"18-24"},
		IncomeLevels:         []string{"medium"},
		TargetCountries:      []string{"United States"},
		PreferredCreatorSize: domain.SizeMicro,
		AvgPartnerEngagement: 4.5,
	}
}
