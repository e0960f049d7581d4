package scoring

import (
	"fmt"
	"math"
	"time"

	"creatorhub_backend/internal/matching/domain"
)

// SuccessResult is the success-probability sub-score plus the partnership
// timing flag the insight generator surfaces as an opportunity.
type SuccessResult struct {
	SubScore              domain.SubScore
	OpenToNewPartnerships bool
}

// scoreSuccessProbability compares creator size and engagement against the
// brand's historical partner profile. The base score is 0; every point is an
// earned bonus. This is the only scorer that reads the clock, and only to
// judge how long ago the brand's last campaign ran.
func scoreSuccessProbability(creator domain.CreatorProfile, brand domain.EnhancedBrand, b Bonuses, now time.Time) SuccessResult {
	score := 0.0
	details := make([]string, 0, 4)

	bucket := domain.SizeBucket(creator.FollowerCount)
	if equalFold(bucket, brand.PreferredCreatorSize) {
		score += b.SizeMatchBonus
		details = append(details, fmt.Sprintf("Creator size (%s) matches the brand's preferred partner size", bucket))
	}

	if creator.EngagementRate >= brand.MinEngagement {
		score += b.MinEngagementBonus
		details = append(details, "Engagement rate clears the brand's minimum threshold")
		if creator.EngagementRate >= brand.PreferredEngagement {
			score += b.PreferredEngagementBonus
			details = append(details, "Engagement rate also meets the brand's preferred threshold")
		}
	}

	if math.Abs(creator.EngagementRate-brand.AvgPartnerEngagement) < b.EngagementSimilarityBand {
		score += b.SimilarEngagementBonus
		details = append(details, "Engagement profile resembles the brand's past partners")
	}

	open := openToNewPartnerships(brand.LastCampaignDate, b.PartnershipTimingDays, now)
	if open {
		score += b.PartnershipTimingBonus
		details = append(details, "Brand is likely open to new partnerships")
	}

	return SuccessResult{
		SubScore:              domain.SubScore{Score: clampScore(score), Details: details},
		OpenToNewPartnerships: open,
	}
}

// openToNewPartnerships is true when the brand has no campaign on record or
// its last campaign ended more than the timing window ago.
func openToNewPartnerships(lastCampaign *time.Time, windowDays int, now time.Time) bool {
	if lastCampaign == nil {
		return true
	}
	return now.Sub(*lastCampaign) > time.Duration(windowDays)*24*time.Hour
}
