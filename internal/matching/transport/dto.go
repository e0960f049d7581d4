package transport

import (
	"creatorhub_backend/internal/matching/domain"

	"github.com/google/uuid"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// RefreshMatchesRequest tunes a synchronous match run. Absent fields take
// the run defaults; a missing excludeMatched means brands the creator
// already has a match for stay out of the run.
type RefreshMatchesRequest struct {
	Limit          int   `json:"limit" validate:"omitempty,min=1,max=500"`
	MinScore       *int  `json:"minScore" validate:"omitempty,min=0,max=100"`
	ExcludeMatched *bool `json:"excludeMatched"`
}

// UpdateMatchStatusRequest advances the outreach lifecycle of a match.
type UpdateMatchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=discovered qualified contacted responded negotiating closed_won closed_lost"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

type SubScoreResponse struct {
	Score   int      `json:"score"`
	Details []string `json:"details"`
}

type MatchResponse struct {
	ID        string    `json:"id"`
	CreatorID uuid.UUID `json:"creatorId"`
	BrandID   uuid.UUID `json:"brandId"`
	BrandName string    `json:"brandName"`

	ValuesAlignment    SubScoreResponse `json:"valuesAlignment"`
	AudienceResonance  SubScoreResponse `json:"audienceResonance"`
	ContentStyle       SubScoreResponse `json:"contentStyle"`
	SuccessProbability SubScoreResponse `json:"successProbability"`

	OverallScore  int    `json:"overallScore"`
	MatchCategory string `json:"matchCategory"`

	Insights         domain.MatchInsights     `json:"insights"`
	Financials       domain.FinancialEstimate `json:"financials"`
	OutreachStrategy domain.OutreachStrategy  `json:"outreachStrategy"`

	Status string `json:"status"`
}

// MatchStatsResponse aggregates the kept matches per category.
type MatchStatsResponse struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
}

// MatchRunResponse is the payload of a synchronous refresh.
type MatchRunResponse struct {
	Matches             []MatchResponse    `json:"matches"`
	TotalBrandsAnalyzed int                `json:"totalBrandsAnalyzed"`
	TotalMatches        int                `json:"totalMatches"`
	MatchStats          MatchStatsResponse `json:"matchStats"`
}

// MatchListResponse is the payload of a persisted-match listing.
type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
	Total   int             `json:"total"`
}

// RefreshQueuedResponse acknowledges an asynchronous refresh request.
type RefreshQueuedResponse struct {
	CreatorID uuid.UUID `json:"creatorId"`
	Status    string    `json:"status"`
}

// MatchFromDomain maps a domain match onto the wire shape.
func MatchFromDomain(m domain.BrandMatch) MatchResponse {
	return MatchResponse{
		ID:                 m.ID,
		CreatorID:          m.CreatorID,
		BrandID:            m.BrandID,
		BrandName:          m.BrandName,
		ValuesAlignment:    SubScoreResponse(m.ValuesAlignment),
		AudienceResonance:  SubScoreResponse(m.AudienceResonance),
		ContentStyle:       SubScoreResponse(m.ContentStyle),
		SuccessProbability: SubScoreResponse(m.SuccessProbability),
		OverallScore:       m.OverallScore,
		MatchCategory:      m.MatchCategory,
		Insights:           m.Insights,
		Financials:         m.Financials,
		OutreachStrategy:   m.OutreachStrategy,
		Status:             m.Status,
	}
}

// MatchesFromDomain maps a slice of domain matches onto the wire shape.
func MatchesFromDomain(matches []domain.BrandMatch) []MatchResponse {
	out := make([]MatchResponse, len(matches))
	for i, m := range matches {
		out[i] = MatchFromDomain(m)
	}
	return out
}
