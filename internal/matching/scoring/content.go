package scoring

import (
	"fmt"

	"creatorhub_backend/internal/matching/domain"
)

// Production-value expectations: polished creators need brands that run more
// than two approval rounds, authentic creators need two or fewer.
const productionApprovalRounds = 2

// ContentResult is the content-style sub-score plus the concerns the insight
// generator passes through.
type ContentResult struct {
	SubScore domain.SubScore
	Concerns []string
}

// scoreContentStyle compares format, aesthetic and production compatibility.
func scoreContentStyle(creator domain.CreatorProfile, brand domain.EnhancedBrand, b Bonuses) ContentResult {
	score := 0.0
	details := make([]string, 0, 4)
	concerns := make([]string, 0, 2)

	style := creator.ContentStyle

	if containsFold(brand.ContentFormats, style.PrimaryFormat) {
		score += b.FormatMatchBonus
		details = append(details, fmt.Sprintf("Primary format (%s) is accepted by the brand", style.PrimaryFormat))
	} else {
		concerns = append(concerns, fmt.Sprintf("Creator's primary format (%s) is not among the brand's accepted formats", style.PrimaryFormat))
	}

	if len(brand.Aesthetics) > 0 {
		matched := intersectFold(style.Aesthetics, brand.Aesthetics)
		contribution := float64(len(matched)) / float64(len(brand.Aesthetics)) * b.AestheticOverlapWeight
		score += contribution
		if len(matched) > 0 {
			details = append(details, fmt.Sprintf("Aesthetic overlap on %d of %d brand keywords",
				len(matched), len(brand.Aesthetics)))
		}
	}

	if productionMatches(style.ProductionValue, brand.MaxApprovalRounds) {
		score += b.ProductionMatchBonus
		details = append(details, "Production value fits the brand's approval process")
	} else {
		concerns = append(concerns, "Creator's production style does not fit the brand's approval process")
	}

	if equalFold(style.CaptionStyle, "storytelling") && containsFold(brand.CoreValues, "authenticity") {
		score += b.StorytellingBonus
		details = append(details, "Storytelling captions suit a brand that values authenticity")
	}

	return ContentResult{
		SubScore: domain.SubScore{Score: clampScore(score), Details: details},
		Concerns: concerns,
	}
}

// productionMatches checks the creator's production value against the
// brand's approval-round expectation.
func productionMatches(productionValue string, approvalRounds int) bool {
	switch {
	case equalFold(productionValue, "professional"):
		return approvalRounds > productionApprovalRounds
	case equalFold(productionValue, "authentic"):
		return approvalRounds <= productionApprovalRounds
	default:
		return false
	}
}
