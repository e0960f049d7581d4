package adapters

import (
	brrepo "creatorhub_backend/internal/brands/repository"
	"creatorhub_backend/internal/matching/domain"
)

// NormalizeBrand converts a raw, sparsely-populated brand row into the
// fully-populated EnhancedBrand shape the scorers consume. Missing fields
// default to empty collections and neutral values, so an incomplete record
// simply earns fewer bonuses instead of failing the batch.
func NormalizeBrand(b brrepo.Brand) domain.EnhancedBrand {
	return domain.EnhancedBrand{
		ID:       b.ID,
		Name:     b.Name,
		Industry: b.Industry,

		FollowerMin:         int64Val(b.Targeting.FollowerMin),
		FollowerMax:         int64Val(b.Targeting.FollowerMax),
		MinEngagement:       floatVal(b.Targeting.MinEngagement),
		PreferredEngagement: floatVal(b.Targeting.PreferredEngagement),
		Niches:              strings(b.Targeting.Niches),
		ContentFormats:      strings(b.Targeting.ContentFormats),
		Aesthetics:          strings(b.Targeting.Aesthetics),
		MaxApprovalRounds:   intVal(b.Targeting.MaxApprovalRounds),
		AudienceAgeRanges:   strings(b.Targeting.AudienceAgeRanges),
		GenderPreference:    strVal(b.Targeting.GenderPreference),
		IncomeLevels:        strings(b.Targeting.IncomeLevels),
		TargetCountries:     strings(b.Targeting.TargetCountries),
		TargetCities:        strings(b.Targeting.TargetCities),

		CoreValues:        strings(b.Values.CoreValues),
		ESGRating:         intVal(b.Values.ESGRating),
		HasControversies:  boolVal(b.Values.HasControversies),
		SupplyChainStatus: strVal(b.Values.SupplyChainStatus),

		BudgetMinCents:      int64Val(b.Campaign.BudgetMinCents),
		BudgetMaxCents:      int64Val(b.Campaign.BudgetMaxCents),
		ContentRequirements: strings(b.Campaign.ContentRequirements),
		RequiresExclusivity: boolVal(b.Campaign.RequiresExclusivity),

		PastCollaborators:    strings(b.History.PastCollaborators),
		PreferredCreatorSize: strVal(b.History.PreferredCreatorSize),
		AvgPartnerEngagement: floatVal(b.History.AvgPartnerEngagement),
		HistoricalROI:        floatVal(b.History.HistoricalROI),
		LastCampaignDate:     b.History.LastCampaignDate,

		UpcomingCampaigns:   strings(b.Intelligence.UpcomingCampaigns),
		DecisionMakerActive: boolVal(b.Intelligence.DecisionMakerActive),
		InstagramHandle:     strVal(b.Intelligence.InstagramHandle),

		PreferredChannel:       strVal(b.Automation.PreferredChannel),
		PreferredOutreachTimes: strings(b.Automation.PreferredOutreachTimes),

		IsLocalOnly:      b.IsLocalOnly,
		ShipsToCountries: strings(b.ShipsToCountries),
		HeadquartersCity: strVal(b.HeadquartersCity),
	}
}

func strings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func strVal(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intVal(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func int64Val(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatVal(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func boolVal(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
