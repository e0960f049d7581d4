package scoring

import (
	"fmt"

	"creatorhub_backend/internal/matching/domain"
)

// locationScoreTable maps the raw geographic overlap percentage to the
// discrete location contribution (out of 25).
var locationScoreTable = []struct {
	minOverlap float64 // exclusive lower bound
	score      float64
}{
	{80, 25},
	{60, 20},
	{40, 15},
	{20, 10},
	{0, 5},
}

// AudienceResult is the audience-resonance sub-score plus the raw geographic
// overlap, which the insight generator reads before clamping/discretization.
type AudienceResult struct {
	SubScore           domain.SubScore
	LocationOverlapPct float64
	SharedInterests    []string
}

// scoreAudienceResonance compares demographic and geographic overlap between
// the creator's audience and the brand's targeting.
func scoreAudienceResonance(creator domain.CreatorProfile, brand domain.EnhancedBrand, b Bonuses) AudienceResult {
	score := 0.0
	details := make([]string, 0, 5)

	if len(brand.AudienceAgeRanges) > 0 {
		matched := intersectFold(creator.AudienceAgeRanges, brand.AudienceAgeRanges)
		contribution := float64(len(matched)) / float64(len(brand.AudienceAgeRanges)) * b.AgeOverlapWeight
		score += contribution
		if len(matched) > 0 {
			details = append(details, fmt.Sprintf("Audience age overlap in %d of %d target ranges",
				len(matched), len(brand.AudienceAgeRanges)))
		}
	}

	overlap := locationOverlap(creator.AudienceLocations, brand, b)
	score += locationScore(overlap)
	if overlap > 0 {
		details = append(details, fmt.Sprintf("%.0f%% of audience in brand target markets", overlap))
	}

	if creator.AudienceIncome != "" && containsFold(brand.IncomeLevels, creator.AudienceIncome) {
		score += b.IncomeMatchBonus
		details = append(details, fmt.Sprintf("Audience income level (%s) matches brand targeting", creator.AudienceIncome))
	}

	var shared []string
	if len(brand.Niches) > 0 {
		shared = intersectFold(creator.AudienceInterests, brand.Niches)
		contribution := float64(len(shared)) / float64(len(brand.Niches)) * b.InterestOverlapWeight
		score += contribution
		if len(shared) > 0 {
			details = append(details, fmt.Sprintf("Audience interests cover %d of %d brand niches",
				len(shared), len(brand.Niches)))
		}
	}

	if genderAligned(creator, brand) {
		score += b.GenderMatchBonus
		details = append(details, "Audience gender profile fits brand preference")
	}

	return AudienceResult{
		SubScore:           domain.SubScore{Score: clampScore(score), Details: details},
		LocationOverlapPct: overlap,
		SharedInterests:    shared,
	}
}

// locationOverlap sums the audience percentages located in the brand's
// target countries. A city-level match adds half of that location's
// percentage on top.
func locationOverlap(locations []domain.AudienceLocation, brand domain.EnhancedBrand, b Bonuses) float64 {
	total := 0.0
	for _, loc := range locations {
		if !containsFold(brand.TargetCountries, loc.Country) {
			continue
		}
		total += loc.Percentage
		if loc.City != "" && containsFold(brand.TargetCities, loc.City) {
			total += loc.Percentage * b.CityMatchMultiplier
		}
	}
	return total
}

// locationScore discretizes the raw overlap percentage.
func locationScore(overlap float64) float64 {
	if overlap <= 0 {
		return 0
	}
	for _, entry := range locationScoreTable {
		if overlap > entry.minOverlap {
			return entry.score
		}
	}
	return 0
}

// genderAligned reports whether the brand has no gender preference or its
// preference matches the dominant gender of the creator's audience.
func genderAligned(creator domain.CreatorProfile, brand domain.EnhancedBrand) bool {
	if brand.GenderPreference == "" {
		return true
	}
	switch {
	case creator.AudienceFemalePct > 50:
		return equalFold(brand.GenderPreference, "female")
	case creator.AudienceMalePct > 50:
		return equalFold(brand.GenderPreference, "male")
	default:
		return false
	}
}
