// Package scoring implements the brand-creator match scoring engine: four
// pure sub-scorers, their composition into an overall score, and the
// post-processors that derive insights, a financial estimate and an outreach
// strategy from the scored pair.
package scoring

// Weights control how the four sub-scores combine into the overall score.
// Audience overlap dominates because it is the strongest predictor of
// campaign ROI; values and style act as secondary filters and success
// probability is a light tie-breaker. The weights must sum to 1.0.
type Weights struct {
	Values   float64
	Audience float64
	Style    float64
	Success  float64
}

// DefaultWeights returns the production weighting.
func DefaultWeights() Weights {
	return Weights{
		Values:   0.20,
		Audience: 0.50,
		Style:    0.20,
		Success:  0.10,
	}
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Values + w.Audience + w.Style + w.Success
}

// Thresholds are the category cut points, inclusive at the floor.
type Thresholds struct {
	Excellent int
	Good      int
	Fair      int
}

// DefaultThresholds returns the production category boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Excellent: 85, Good: 70, Fair: 50}
}

// Bonuses are the named point contributions used by the sub-scorers and the
// response-rate estimate. Keeping them here lets tuning and snapshot tests
// avoid touching scorer code.
type Bonuses struct {
	// Values alignment
	SharedValuesWeight   float64 // share of the 0-100 value overlap kept
	HighESGBonus         float64 // ESG rating above ESGThreshold
	ESGThreshold         int
	ControversyPenalty   float64
	DreamBrandBonus      float64
	SegmentMatchBonus    float64 // brand segment matches a past collaboration
	RepeatPartnerBonus   float64 // exact past-collaboration name match
	CertifiedSupplyBonus float64

	// Audience resonance
	AgeOverlapWeight      float64
	InterestOverlapWeight float64
	IncomeMatchBonus      float64
	GenderMatchBonus      float64
	CityMatchMultiplier   float64 // extra share of a location's percentage

	// Content style
	FormatMatchBonus       float64
	AestheticOverlapWeight float64
	ProductionMatchBonus   float64
	StorytellingBonus      float64

	// Success probability
	SizeMatchBonus           float64
	MinEngagementBonus       float64
	PreferredEngagementBonus float64
	SimilarEngagementBonus   float64
	EngagementSimilarityBand float64 // percentage points
	PartnershipTimingBonus   float64
	PartnershipTimingDays    int

	// Response rate estimate
	ResponseRateBase      int
	ResponseRateCap       int
	ResponseTierExcellent int
	ResponseTierGood      int
	ResponseTierFair      int
	ResponseDreamBonus    int
	ResponseDecisionMaker int
}

// DefaultBonuses returns the production bonus table.
func DefaultBonuses() Bonuses {
	return Bonuses{
		SharedValuesWeight:   0.4,
		HighESGBonus:         20,
		ESGThreshold:         70,
		ControversyPenalty:   20,
		DreamBrandBonus:      20,
		SegmentMatchBonus:    15,
		RepeatPartnerBonus:   10,
		CertifiedSupplyBonus: 10,

		AgeOverlapWeight:      30,
		InterestOverlapWeight: 25,
		IncomeMatchBonus:      15,
		GenderMatchBonus:      10,
		CityMatchMultiplier:   0.5,

		FormatMatchBonus:       30,
		AestheticOverlapWeight: 40,
		ProductionMatchBonus:   20,
		StorytellingBonus:      10,

		SizeMatchBonus:           30,
		MinEngagementBonus:       25,
		PreferredEngagementBonus: 15,
		SimilarEngagementBonus:   20,
		EngagementSimilarityBand: 2,
		PartnershipTimingBonus:   10,
		PartnershipTimingDays:    90,

		ResponseRateBase:      15,
		ResponseRateCap:       75,
		ResponseTierExcellent: 25,
		ResponseTierGood:      15,
		ResponseTierFair:      5,
		ResponseDreamBonus:    20,
		ResponseDecisionMaker: 10,
	}
}
