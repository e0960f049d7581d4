package scoring

import (
	"math"
	"time"

	"creatorhub_backend/internal/matching/domain"
)

// Engine composes the four sub-scorers into a BrandMatch. It is stateless
// apart from its configuration and the injected clock, so a single instance
// is safe for concurrent use across candidates.
type Engine struct {
	weights    Weights
	thresholds Thresholds
	bonuses    Bonuses
	now        func() time.Time
}

// NewEngine creates an engine with the production configuration.
func NewEngine() *Engine {
	return NewEngineWithClock(time.Now)
}

// NewEngineWithClock creates an engine with an injected clock. The clock is
// the engine's only non-deterministic input: it feeds the last-campaign
// recency check and the seasonal content idea.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{
		weights:    DefaultWeights(),
		thresholds: DefaultThresholds(),
		bonuses:    DefaultBonuses(),
		now:        now,
	}
}

// scorecard carries the sub-scorer outputs into the post-processors.
type scorecard struct {
	values   ValuesResult
	audience AudienceResult
	content  ContentResult
	success  SuccessResult
	overall  int
}

// CalculateMatch scores one (creator, brand) pair. Pure arithmetic over
// normalized records: it performs no I/O and never fails.
func (e *Engine) CalculateMatch(creator domain.CreatorProfile, brand domain.EnhancedBrand) domain.BrandMatch {
	now := e.now()

	card := scorecard{
		values:   scoreValuesAlignment(creator, brand, e.bonuses),
		audience: scoreAudienceResonance(creator, brand, e.bonuses),
		content:  scoreContentStyle(creator, brand, e.bonuses),
		success:  scoreSuccessProbability(creator, brand, e.bonuses, now),
	}
	card.overall = e.composeOverall(card)

	return domain.BrandMatch{
		ID:        domain.MatchID(creator.ID, brand.ID),
		CreatorID: creator.ID,
		BrandID:   brand.ID,
		BrandName: brand.Name,

		ValuesAlignment:    card.values.SubScore,
		AudienceResonance:  card.audience.SubScore,
		ContentStyle:       card.content.SubScore,
		SuccessProbability: card.success.SubScore,

		OverallScore:  card.overall,
		MatchCategory: e.categorize(card.overall),

		Insights:         buildInsights(creator, brand, card, e.bonuses),
		Financials:       estimateFinancials(creator, brand, card),
		OutreachStrategy: buildOutreachStrategy(creator, brand, card, now),

		Status: domain.StatusDiscovered,
	}
}

func (e *Engine) composeOverall(card scorecard) int {
	weighted := float64(card.values.SubScore.Score)*e.weights.Values +
		float64(card.audience.SubScore.Score)*e.weights.Audience +
		float64(card.content.SubScore.Score)*e.weights.Style +
		float64(card.success.SubScore.Score)*e.weights.Success
	return int(math.Round(weighted))
}

// categorize maps an overall score to its category; boundaries are inclusive
// at the floor.
func (e *Engine) categorize(overall int) string {
	switch {
	case overall >= e.thresholds.Excellent:
		return domain.CategoryExcellent
	case overall >= e.thresholds.Good:
		return domain.CategoryGood
	case overall >= e.thresholds.Fair:
		return domain.CategoryFair
	default:
		return domain.CategoryPoor
	}
}
