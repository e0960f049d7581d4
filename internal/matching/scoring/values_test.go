package scoring

import (
	"strings"
	"testing"

	"creatorhub_backend/internal/matching/domain"
)

func TestScoreValuesAlignment_SharedValueESGAndDreamBrand(t *testing.T) {
	creator := domain.CreatorProfile{
		BrandValues: []string{"sustainability", "inclusivity"},
		DreamBrands: []string{"EcoWear"},
	}
	brand := domain.EnhancedBrand{
		Name:       "EcoWear",
		CoreValues: []string{"sustainability", "innovation"},
		ESGRating:  80,
	}

	result := scoreValuesAlignment(creator, brand, DefaultBonuses())

	// 1 of 2 shared values (20) + ESG above threshold (20) + dream brand (20)
	if result.SubScore.Score != 60 {
		t.Fatalf("expected values score 60, got %d", result.SubScore.Score)
	}
	if !result.DreamBrand {
		t.Fatalf("expected dream brand flag to be set")
	}
	if result.Blacklisted {
		t.Fatalf("expected blacklisted flag to be unset")
	}
}

func TestScoreValuesAlignment_BlacklistZeroesScoreOnly(t *testing.T) {
	creator := domain.CreatorProfile{
		BrandValues:       []string{"sustainability"},
		BlacklistedBrands: []string{"FastFashionCo"},
	}
	brand := domain.EnhancedBrand{
		Name:       "FastFashionCo",
		CoreValues: []string{"sustainability"},
		ESGRating:  90,
	}

	result := scoreValuesAlignment(creator, brand, DefaultBonuses())

	if result.SubScore.Score != 0 {
		t.Fatalf("expected blacklisted values score 0, got %d", result.SubScore.Score)
	}
	if len(result.SubScore.Details) != 1 || result.SubScore.Details[0] != blacklistDetail {
		t.Fatalf("expected only the blacklist detail, got %v", result.SubScore.Details)
	}
	if !result.Blacklisted {
		t.Fatalf("expected blacklisted flag to be set")
	}
}

func TestScoreValuesAlignment_BlacklistMatchesIndustrySubstring(t *testing.T) {
	creator := domain.CreatorProfile{BlacklistedBrands: []string{"gambling"}}
	brand := domain.EnhancedBrand{Name: "LuckySpin", Industry: "Online Gambling"}

	result := scoreValuesAlignment(creator, brand, DefaultBonuses())

	if !result.Blacklisted {
		t.Fatalf("expected industry substring to trigger the blacklist")
	}
}

func TestScoreValuesAlignment_ControversyPenaltyApplies(t *testing.T) {
	creator := domain.CreatorProfile{BrandValues: []string{"sustainability"}}
	brand := domain.EnhancedBrand{
		Name:             "GreenishCo",
		CoreValues:       []string{"sustainability"},
		HasControversies: true,
	}

	result := scoreValuesAlignment(creator, brand, DefaultBonuses())

	// full value overlap (40) - controversy (20)
	if result.SubScore.Score != 20 {
		t.Fatalf("expected values score 20, got %d", result.SubScore.Score)
	}
	found := false
	for _, d := range result.SubScore.Details {
		if strings.Contains(d, "controversies") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a controversy detail, got %v", result.SubScore.Details)
	}
}

func TestScoreValuesAlignment_SegmentAndRepeatPartnerBonuses(t *testing.T) {
	creator := domain.CreatorProfile{
		PastCollaborations: []domain.PastCollaboration{
			{Name: "GlowLab", Industry: "beauty"},
		},
	}
	brand := domain.EnhancedBrand{
		Name:     "GlowLab",
		Industry: "cosmetics",
	}

	result := scoreValuesAlignment(creator, brand, DefaultBonuses())

	// segment match (15) + repeat partner (10)
	if result.SubScore.Score != 25 {
		t.Fatalf("expected values score 25, got %d", result.SubScore.Score)
	}
}

func TestScoreValuesAlignment_CertifiedSupplyChainNeedsSustainabilityValue(t *testing.T) {
	brand := domain.EnhancedBrand{Name: "CleanThreads", SupplyChainStatus: "certified"}

	without := scoreValuesAlignment(domain.CreatorProfile{}, brand, DefaultBonuses())
	if without.SubScore.Score != 0 {
		t.Fatalf("expected no bonus without the sustainability value, got %d", without.SubScore.Score)
	}

	with := scoreValuesAlignment(domain.CreatorProfile{BrandValues: []string{"sustainability"}}, brand, DefaultBonuses())
	// certified supply chain bonus only; no core value overlap
	if with.SubScore.Score != 10 {
		t.Fatalf("expected values score 10, got %d", with.SubScore.Score)
	}
}
