package scoring

import (
	"testing"

	"creatorhub_backend/internal/matching/domain"
)

func TestScoreContentStyle_FullCompatibility(t *testing.T) {
	creator := domain.CreatorProfile{
		ContentStyle: domain.ContentStyle{
			PrimaryFormat:   "reel",
			Aesthetics:      []string{"minimal", "warm"},
			ProductionValue: "authentic",
			CaptionStyle:    "storytelling",
		},
	}
	brand := domain.EnhancedBrand{
		ContentFormats:    []string{"reel", "photo"},
		Aesthetics:        []string{"minimal", "warm"},
		MaxApprovalRounds: 1,
		CoreValues:        []string{"authenticity"},
	}

	result := scoreContentStyle(creator, brand, DefaultBonuses())

	// format (30) + aesthetics 2/2 (40) + production (20) + storytelling (10)
	if result.SubScore.Score != 100 {
		t.Fatalf("expected content score 100, got %d", result.SubScore.Score)
	}
	if len(result.Concerns) != 0 {
		t.Fatalf("expected no concerns, got %v", result.Concerns)
	}
}

func TestScoreContentStyle_MismatchesBecomeConcerns(t *testing.T) {
	creator := domain.CreatorProfile{
		ContentStyle: domain.ContentStyle{
			PrimaryFormat:   "podcast",
			ProductionValue: "professional",
		},
	}
	brand := domain.EnhancedBrand{
		ContentFormats:    []string{"reel"},
		MaxApprovalRounds: 1,
	}

	result := scoreContentStyle(creator, brand, DefaultBonuses())

	if result.SubScore.Score != 0 {
		t.Fatalf("expected content score 0, got %d", result.SubScore.Score)
	}
	if len(result.Concerns) != 2 {
		t.Fatalf("expected 2 concerns, got %v", result.Concerns)
	}
}

func TestProductionMatches_ApprovalRoundBoundary(t *testing.T) {
	if productionMatches("professional", 2) {
		t.Fatalf("professional should need more than 2 approval rounds")
	}
	if !productionMatches("professional", 3) {
		t.Fatalf("professional should match 3 approval rounds")
	}
	if !productionMatches("authentic", 2) {
		t.Fatalf("authentic should match 2 approval rounds")
	}
	if productionMatches("authentic", 3) {
		t.Fatalf("authentic should not match 3 approval rounds")
	}
	if productionMatches("", 1) {
		t.Fatalf("unknown production value should never match")
	}
}
