package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnhancedBrand is the fully-populated brand side of a match. It is produced
// by the normalization step over raw brand rows; every collection field is
// non-nil and every numeric field carries a neutral default, so scorers never
// branch on "is this field present".
type EnhancedBrand struct {
	ID       uuid.UUID
	Name     string
	Industry string

	// Targeting
	FollowerMin         int64
	FollowerMax         int64
	MinEngagement       float64 // percentage points
	PreferredEngagement float64
	Niches              []string
	ContentFormats      []string
	Aesthetics          []string
	MaxApprovalRounds   int
	AudienceAgeRanges   []string
	GenderPreference    string // "", "female" or "male"
	IncomeLevels        []string
	TargetCountries     []string
	TargetCities        []string

	// Values
	CoreValues        []string
	ESGRating         int // 0-100
	HasControversies  bool
	SupplyChainStatus string // "certified" when audited

	// Campaign terms
	BudgetMinCents      int64
	BudgetMaxCents      int64
	ContentRequirements []string
	RequiresExclusivity bool

	// History
	PastCollaborators    []string
	PreferredCreatorSize string // nano/micro/macro/mega
	AvgPartnerEngagement float64
	HistoricalROI        float64
	LastCampaignDate     *time.Time

	// Intelligence
	UpcomingCampaigns   []string
	DecisionMakerActive bool
	InstagramHandle     string

	// Automation
	PreferredChannel       string
	PreferredOutreachTimes []string

	// Eligibility
	IsLocalOnly      bool
	ShipsToCountries []string
	HeadquartersCity string
}
