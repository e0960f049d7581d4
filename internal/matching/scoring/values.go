package scoring

import (
	"fmt"
	"strings"

	"creatorhub_backend/internal/matching/domain"
)

const blacklistDetail = "Brand is on creator's blacklist"

// ValuesResult is the values-alignment sub-score plus the flags other
// components derive from it.
type ValuesResult struct {
	SubScore    domain.SubScore
	DreamBrand  bool
	Blacklisted bool
}

// scoreValuesAlignment compares brand values, ethics and history against the
// creator's identity constraints. A blacklist hit zeroes this sub-score only;
// the other three dimensions still compute normally.
func scoreValuesAlignment(creator domain.CreatorProfile, brand domain.EnhancedBrand, b Bonuses) ValuesResult {
	dream := containsFold(creator.DreamBrands, brand.Name)

	if matchesBlacklist(creator.BlacklistedBrands, brand) {
		return ValuesResult{
			SubScore:    domain.SubScore{Score: 0, Details: []string{blacklistDetail}},
			DreamBrand:  dream,
			Blacklisted: true,
		}
	}

	score := 0.0
	details := make([]string, 0, 6)

	if len(creator.BrandValues) > 0 {
		shared := intersectFold(creator.BrandValues, brand.CoreValues)
		contribution := float64(len(shared)) / float64(len(creator.BrandValues)) * 100 * b.SharedValuesWeight
		score += contribution
		if len(shared) > 0 {
			details = append(details, fmt.Sprintf("Shares %d of %d brand values (%s)",
				len(shared), len(creator.BrandValues), strings.Join(shared, ", ")))
		}
	}

	if brand.ESGRating > b.ESGThreshold {
		score += b.HighESGBonus
		details = append(details, fmt.Sprintf("Strong ESG rating (%d/100)", brand.ESGRating))
	}

	if brand.HasControversies {
		score -= b.ControversyPenalty
		details = append(details, "Brand has documented controversies")
	}

	if dream {
		score += b.DreamBrandBonus
		details = append(details, "On creator's dream brand list")
	}

	if segment := marketSegment(brand.Industry); segment != "" {
		for _, past := range creator.PastCollaborations {
			if marketSegment(past.Industry) == segment {
				score += b.SegmentMatchBonus
				details = append(details, fmt.Sprintf("Creator has worked in the %s segment before", segment))
				break
			}
		}
	}

	for _, past := range creator.PastCollaborations {
		if equalFold(past.Name, brand.Name) {
			score += b.RepeatPartnerBonus
			details = append(details, "Previous collaboration with this brand")
			break
		}
	}

	if equalFold(brand.SupplyChainStatus, "certified") && containsFold(creator.BrandValues, "sustainability") {
		score += b.CertifiedSupplyBonus
		details = append(details, "Certified supply chain matches creator's sustainability values")
	}

	return ValuesResult{
		SubScore:   domain.SubScore{Score: clampScore(score), Details: details},
		DreamBrand: dream,
	}
}

// matchesBlacklist reports whether the brand's name or industry contains any
// blacklist entry as a case-insensitive substring.
func matchesBlacklist(blacklist []string, brand domain.EnhancedBrand) bool {
	name := strings.ToLower(brand.Name)
	industry := strings.ToLower(brand.Industry)
	for _, entry := range blacklist {
		needle := strings.ToLower(strings.TrimSpace(entry))
		if needle == "" {
			continue
		}
		if strings.Contains(name, needle) || strings.Contains(industry, needle) {
			return true
		}
	}
	return false
}
