package adapters

import (
	"testing"
	"time"

	"github.com/google/uuid"

	brrepo "creatorhub_backend/internal/brands/repository"
)

func TestNormalizeBrand_EmptyRecordGetsNeutralDefaults(t *testing.T) {
	raw := brrepo.Brand{ID: uuid.New(), Name: "Blank Co", Industry: "retail"}

	brand := NormalizeBrand(raw)

	if brand.ID != raw.ID || brand.Name != "Blank Co" || brand.Industry != "retail" {
		t.Fatalf("expected identity carried through, got %+v", brand)
	}
	for name, slice := range map[string][]string{
		"niches":           brand.Niches,
		"contentFormats":   brand.ContentFormats,
		"aesthetics":       brand.Aesthetics,
		"coreValues":       brand.CoreValues,
		"shipsToCountries": brand.ShipsToCountries,
		"targetCountries":  brand.TargetCountries,
	} {
		if slice == nil {
			t.Errorf("expected %s to default to an empty slice, got nil", name)
		}
		if len(slice) != 0 {
			t.Errorf("expected %s empty, got %v", name, slice)
		}
	}
	if brand.ESGRating != 0 || brand.MinEngagement != 0 || brand.BudgetMaxCents != 0 {
		t.Fatalf("expected zero numeric defaults, got %+v", brand)
	}
	if brand.HasControversies || brand.DecisionMakerActive || brand.RequiresExclusivity {
		t.Fatalf("expected false boolean defaults, got %+v", brand)
	}
	if brand.GenderPreference != "" || brand.SupplyChainStatus != "" || brand.HeadquartersCity != "" {
		t.Fatalf("expected empty string defaults, got %+v", brand)
	}
	if brand.LastCampaignDate != nil {
		t.Fatalf("expected no campaign date, got %v", brand.LastCampaignDate)
	}
}

func TestNormalizeBrand_PopulatedFieldsCarryThrough(t *testing.T) {
	esg := 82
	minEng := 3.5
	exclusive := true
	size := "micro"
	city := "Austin"
	campaign := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	raw := brrepo.Brand{
		ID:               uuid.New(),
		Name:             "GlowLab",
		Industry:         "beauty",
		IsLocalOnly:      true,
		HeadquartersCity: &city,
		ShipsToCountries: []string{"United States"},
		Targeting: brrepo.Targeting{
			MinEngagement: &minEng,
			Niches:        []string{"skincare"},
		},
		Values: brrepo.Values{ESGRating: &esg},
		Campaign: brrepo.Campaign{
			RequiresExclusivity: &exclusive,
		},
		History: brrepo.History{
			PreferredCreatorSize: &size,
			LastCampaignDate:     &campaign,
		},
	}

	brand := NormalizeBrand(raw)

	if brand.MinEngagement != 3.5 {
		t.Errorf("expected min engagement 3.5, got %v", brand.MinEngagement)
	}
	if len(brand.Niches) != 1 || brand.Niches[0] != "skincare" {
		t.Errorf("expected niches carried through, got %v", brand.Niches)
	}
	if brand.ESGRating != 82 {
		t.Errorf("expected ESG rating 82, got %d", brand.ESGRating)
	}
	if !brand.RequiresExclusivity {
		t.Errorf("expected exclusivity flag carried through")
	}
	if brand.PreferredCreatorSize != "micro" {
		t.Errorf("expected preferred size micro, got %s", brand.PreferredCreatorSize)
	}
	if brand.LastCampaignDate == nil || !brand.LastCampaignDate.Equal(campaign) {
		t.Errorf("expected campaign date carried through, got %v", brand.LastCampaignDate)
	}
	if !brand.IsLocalOnly || brand.HeadquartersCity != "Austin" {
		t.Errorf("expected locality fields carried through, got %+v", brand)
	}
}
