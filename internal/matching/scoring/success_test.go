package scoring

import (
	"testing"
	"time"

	"creatorhub_backend/internal/matching/domain"
)

var successNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestScoreSuccessProbability_StartsFromZero(t *testing.T) {
	recent := successNow.AddDate(0, 0, -30)
	creator := domain.CreatorProfile{
		FollowerCount:  5_000, // nano
		EngagementRate: 1.0,
	}
	brand := domain.EnhancedBrand{
		PreferredCreatorSize: "mega",
		MinEngagement:        10,
		PreferredEngagement:  12,
		AvgPartnerEngagement: 10,
		LastCampaignDate:     &recent,
	}

	result := scoreSuccessProbability(creator, brand, DefaultBonuses(), successNow)

	if result.SubScore.Score != 0 {
		t.Fatalf("expected success score 0 when no bonus applies, got %d", result.SubScore.Score)
	}
	if result.OpenToNewPartnerships {
		t.Fatalf("expected a 30-day-old campaign to block the timing bonus")
	}
}

func TestScoreSuccessProbability_AllBonuses(t *testing.T) {
	creator := domain.CreatorProfile{
		FollowerCount:  50_000, // micro
		EngagementRate: 5.0,
	}
	brand := domain.EnhancedBrand{
		PreferredCreatorSize: "micro",
		MinEngagement:        3.0,
		PreferredEngagement:  4.5,
		AvgPartnerEngagement: 4.0,
		LastCampaignDate:     nil,
	}

	result := scoreSuccessProbability(creator, brand, DefaultBonuses(), successNow)

	// size (30) + min engagement (25) + preferred engagement (15) + similar engagement (20) + timing (10)
	if result.SubScore.Score != 100 {
		t.Fatalf("expected success score 100, got %d", result.SubScore.Score)
	}
	if !result.OpenToNewPartnerships {
		t.Fatalf("expected no campaign history to mean open to partnerships")
	}
}

func TestOpenToNewPartnerships_WindowBoundary(t *testing.T) {
	inside := successNow.AddDate(0, 0, -90)
	if openToNewPartnerships(&inside, 90, successNow) {
		t.Fatalf("a campaign exactly 90 days ago should not count as open")
	}

	outside := successNow.AddDate(0, 0, -91)
	if !openToNewPartnerships(&outside, 90, successNow) {
		t.Fatalf("a campaign 91 days ago should count as open")
	}
}

func TestSizeBucket_Boundaries(t *testing.T) {
	cases := []struct {
		followers int64
		want      string
	}{
		{9_999, domain.SizeNano},
		{10_000, domain.SizeMicro},
		{99_999, domain.SizeMicro},
		{100_000, domain.SizeMacro},
		{999_999, domain.SizeMacro},
		{1_000_000, domain.SizeMega},
	}
	for _, tc := range cases {
		if got := domain.SizeBucket(tc.followers); got != tc.want {
			t.Errorf("SizeBucket(%d) = %s, want %s", tc.followers, got, tc.want)
		}
	}
}
