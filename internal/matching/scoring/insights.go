package scoring

import (
	"fmt"

	"creatorhub_backend/internal/matching/domain"
)

// Geographic overlap below this raw percentage is surfaced as a concern.
const lowGeoOverlapPct = 20.0

// Creators with less than this weekly availability conflict with exclusivity
// demands.
const exclusivityAvailabilityHours = 20

// Suggested approach thresholds: both sub-scores must clear these for the
// alignment-led opening.
const (
	approachValuesFloor   = 90
	approachAudienceFloor = 85
)

// Strength thresholds on the values and audience sub-scores.
const (
	strengthValuesFloor   = 80
	strengthAudienceFloor = 85
)

// buildInsights derives strengths, opportunities, concerns, the suggested
// approach and a response-rate estimate from the four sub-score results.
// Geographic concerns read the raw location overlap, not the clamped
// sub-score, so a zero-overlap pair is flagged even when other audience
// signals keep the sub-score up.
func buildInsights(creator domain.CreatorProfile, brand domain.EnhancedBrand, card scorecard, b Bonuses) domain.MatchInsights {
	strengths := make([]string, 0, 3)
	opportunities := make([]string, 0, 2)
	concerns := make([]string, 0, 4)

	if card.values.SubScore.Score >= strengthValuesFloor {
		strengths = append(strengths, "Exceptional brand values alignment")
	}
	if card.audience.SubScore.Score >= strengthAudienceFloor {
		strengths = append(strengths, "Strong audience overlap with high conversion potential")
	}
	if card.values.DreamBrand {
		strengths = append(strengths, "Creator has pre-declared enthusiasm for this brand")
	}

	if len(brand.UpcomingCampaigns) > 0 {
		opportunities = append(opportunities, fmt.Sprintf("Upcoming campaign: %s", brand.UpcomingCampaigns[0]))
	}
	if card.success.OpenToNewPartnerships {
		opportunities = append(opportunities, "Brand is likely open to new partnerships")
	}

	concerns = append(concerns, card.content.Concerns...)
	switch {
	case card.audience.LocationOverlapPct == 0:
		concerns = append(concerns, "No geographic overlap with the brand's target markets")
	case card.audience.LocationOverlapPct < lowGeoOverlapPct:
		concerns = append(concerns, fmt.Sprintf("Low geographic overlap (%.0f%%) with the brand's target markets", card.audience.LocationOverlapPct))
	}
	if brand.RequiresExclusivity && creator.WeeklyAvailabilityHours < exclusivityAvailabilityHours {
		concerns = append(concerns, "Brand requires exclusivity but creator availability is under 20 hours per week")
	}

	return domain.MatchInsights{
		Strengths:             strengths,
		Opportunities:         opportunities,
		Concerns:              concerns,
		SuggestedApproach:     suggestApproach(card, len(opportunities) > 0),
		EstimatedResponseRate: estimateResponseRate(card, brand, b),
	}
}

// suggestApproach picks the opening angle in fixed priority order.
func suggestApproach(card scorecard, hasOpportunity bool) string {
	switch {
	case card.values.SubScore.Score > approachValuesFloor && card.audience.SubScore.Score > approachAudienceFloor:
		return "Lead with your values and audience alignment; this is a near-ideal fit on both"
	case card.values.DreamBrand:
		return "Lead with genuine enthusiasm; mention this brand is one you have wanted to work with"
	case hasOpportunity:
		return "Reference the brand's current campaign activity and propose how you would contribute"
	default:
		return "Open with a concise media-kit introduction and one concrete collaboration idea"
	}
}

// estimateResponseRate combines the overall tier with dream-brand and
// decision-maker signals, capped at the configured ceiling.
func estimateResponseRate(card scorecard, brand domain.EnhancedBrand, b Bonuses) int {
	rate := b.ResponseRateBase

	switch {
	case card.overall > 85:
		rate += b.ResponseTierExcellent
	case card.overall > 70:
		rate += b.ResponseTierGood
	case card.overall > 50:
		rate += b.ResponseTierFair
	}

	if card.values.DreamBrand {
		rate += b.ResponseDreamBonus
	}
	if brand.DecisionMakerActive {
		rate += b.ResponseDecisionMaker
	}

	if rate > b.ResponseRateCap {
		return b.ResponseRateCap
	}
	return rate
}
