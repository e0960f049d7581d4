package scoring

import "creatorhub_backend/internal/matching/domain"

// Market rate baseline: $10 (1000 cents) per 1000 followers, before the
// engagement multiplier.
const centsPerThousandFollowers = 1000

// Engagement multipliers over the baseline rate.
const (
	highEngagementPct        = 5.0
	midEngagementPct         = 3.0
	highEngagementMultiplier = 1.5
	midEngagementMultiplier  = 1.2
)

// Dream-brand discount: creators self-select a lower rate for access.
const dreamBrandRateFactor = 0.8

// Negotiation room bands on suggested/market ratio.
const (
	highRoomRatio     = 0.7
	moderateRoomRatio = 0.9
	strongROIFloor    = 3.0
)

// estimateFinancials derives a market rate from reach and engagement, then
// fits it to the brand's budget.
func estimateFinancials(creator domain.CreatorProfile, brand domain.EnhancedBrand, card scorecard) domain.FinancialEstimate {
	marketRate := int64(float64(creator.FollowerCount/1000*centsPerThousandFollowers) * engagementMultiplier(creator.EngagementRate))

	suggested := marketRate
	if brand.BudgetMaxCents > 0 && suggested > brand.BudgetMaxCents {
		suggested = brand.BudgetMaxCents
	}
	if suggested < brand.BudgetMinCents {
		suggested = brand.BudgetMinCents
	}

	if card.values.DreamBrand {
		suggested = int64(float64(suggested) * dreamBrandRateFactor)
	}

	return domain.FinancialEstimate{
		MarketRateCents:    marketRate,
		SuggestedRateCents: suggested,
		NegotiationRoom:    negotiationRoom(marketRate, suggested, brand.HistoricalROI),
	}
}

func engagementMultiplier(engagementRate float64) float64 {
	switch {
	case engagementRate > highEngagementPct:
		return highEngagementMultiplier
	case engagementRate > midEngagementPct:
		return midEngagementMultiplier
	default:
		return 1.0
	}
}

// negotiationRoom categorizes how far the suggested rate sits below market.
// A brand with strong historical ROI can be pushed one band further.
func negotiationRoom(marketRate, suggested int64, historicalROI float64) string {
	if marketRate <= 0 {
		return "limited"
	}

	ratio := float64(suggested) / float64(marketRate)
	room := "limited"
	switch {
	case ratio <= highRoomRatio:
		room = "high"
	case ratio <= moderateRoomRatio:
		room = "moderate"
	}

	if historicalROI >= strongROIFloor {
		switch room {
		case "limited":
			room = "moderate"
		case "moderate":
			room = "high"
		}
	}

	return room
}
