package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Match categories derived from the overall score via fixed thresholds.
const (
	CategoryExcellent = "excellent"
	CategoryGood      = "good"
	CategoryFair      = "fair"
	CategoryPoor      = "poor"
)

// Outreach lifecycle statuses. The engine only ever creates matches in
// StatusDiscovered; every later transition is driven by callers.
const (
	StatusDiscovered  = "discovered"
	StatusQualified   = "qualified"
	StatusContacted   = "contacted"
	StatusResponded   = "responded"
	StatusNegotiating = "negotiating"
	StatusClosedWon   = "closed_won"
	StatusClosedLost  = "closed_lost"
)

var validStatuses = map[string]struct{}{
	StatusDiscovered:  {},
	StatusQualified:   {},
	StatusContacted:   {},
	StatusResponded:   {},
	StatusNegotiating: {},
	StatusClosedWon:   {},
	StatusClosedLost:  {},
}

// IsValidStatus reports whether s is a known lifecycle status.
func IsValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}

// SubScore is one scored dimension of a match.
type SubScore struct {
	Score   int      `json:"score"` // 0-100
	Details []string `json:"details"`
}

// MatchInsights are derived observations over the four sub-scores.
type MatchInsights struct {
	Strengths             []string `json:"strengths"`
	Opportunities         []string `json:"opportunities"`
	Concerns              []string `json:"concerns"`
	SuggestedApproach     string   `json:"suggestedApproach"`
	EstimatedResponseRate int      `json:"estimatedResponseRate"` // percentage
}

// FinancialEstimate suggests a rate for the collaboration.
type FinancialEstimate struct {
	MarketRateCents    int64  `json:"marketRateCents"`
	SuggestedRateCents int64  `json:"suggestedRateCents"`
	NegotiationRoom    string `json:"negotiationRoom"` // "high", "moderate" or "limited"
}

// OutreachStrategy is actionable first-contact guidance for the creator.
type OutreachStrategy struct {
	Channel           string   `json:"channel"` // "email", "instagram", ...
	PersonalizedHooks []string `json:"personalizedHooks"`
	ContentIdeas      []string `json:"contentIdeas"`
	BestTiming        string   `json:"bestTiming"`
}

// BrandMatch is the engine's output for one (creator, brand) pair.
// Recomputation is idempotent: the same inputs always produce the same match.
type BrandMatch struct {
	ID        string
	CreatorID uuid.UUID
	BrandID   uuid.UUID
	BrandName string

	ValuesAlignment    SubScore
	AudienceResonance  SubScore
	ContentStyle       SubScore
	SuccessProbability SubScore

	OverallScore  int
	MatchCategory string

	Insights         MatchInsights
	Financials       FinancialEstimate
	OutreachStrategy OutreachStrategy

	Status string
}

// MatchID builds the canonical match identifier for a pair.
func MatchID(creatorID, brandID uuid.UUID) string {
	return fmt.Sprintf("%s-%s", creatorID, brandID)
}
