package transport

import (
	"time"

	"creatorhub_backend/internal/creators/repository"

	"github.com/google/uuid"
)

// ── Requests ──────────────────────────────────────────────────────────────────

type AudienceLocationRequest struct {
	Country    string  `json:"country" validate:"required"`
	City       string  `json:"city"`
	Percentage float64 `json:"percentage" validate:"min=0,max=100"`
}

type PastCollaborationRequest struct {
	Name     string `json:"name" validate:"required"`
	Industry string `json:"industry"`
}

type ContentStyleRequest struct {
	PrimaryFormat   string   `json:"primaryFormat" validate:"required"`
	Aesthetics      []string `json:"aesthetics"`
	ProductionValue string   `json:"productionValue" validate:"required,oneof=professional authentic"`
	CaptionStyle    string   `json:"captionStyle"`
}

// UpsertCreatorRequest is the request body for create and full update. The
// profile is replaced wholesale so scoring always sees a consistent record.
type UpsertCreatorRequest struct {
	DisplayName string `json:"displayName" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`

	FollowerCount     int64                     `json:"followerCount" validate:"min=0"`
	EngagementRate    float64                   `json:"engagementRate" validate:"min=0,max=100"`
	AudienceAgeRanges []string                  `json:"audienceAgeRanges"`
	AudienceFemalePct float64                   `json:"audienceFemalePct" validate:"min=0,max=100"`
	AudienceMalePct   float64                   `json:"audienceMalePct" validate:"min=0,max=100"`
	AudienceLocations []AudienceLocationRequest `json:"audienceLocations" validate:"omitempty,dive"`
	AudienceInterests []string                  `json:"audienceInterests"`
	AudienceIncome    string                    `json:"audienceIncome" validate:"omitempty,oneof=low medium high"`

	ContentPillars     []string                   `json:"contentPillars"`
	BrandValues        []string                   `json:"brandValues"`
	PastCollaborations []PastCollaborationRequest `json:"pastCollaborations" validate:"omitempty,dive"`
	DreamBrands        []string                   `json:"dreamBrands"`
	BlacklistedBrands  []string                   `json:"blacklistedBrands"`
	ContentStyle       ContentStyleRequest        `json:"contentStyle" validate:"required"`
	AudienceProblems   []string                   `json:"audienceProblems"`

	WeeklyAvailabilityHours int      `json:"weeklyAvailabilityHours" validate:"min=0,max=168"`
	Capabilities            []string `json:"capabilities"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

type CreatorResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`

	FollowerCount     int64                         `json:"followerCount"`
	EngagementRate    float64                       `json:"engagementRate"`
	AudienceAgeRanges []string                      `json:"audienceAgeRanges"`
	AudienceFemalePct float64                       `json:"audienceFemalePct"`
	AudienceMalePct   float64                       `json:"audienceMalePct"`
	AudienceLocations []repository.AudienceLocation `json:"audienceLocations"`
	AudienceInterests []string                      `json:"audienceInterests"`
	AudienceIncome    string                        `json:"audienceIncome"`

	ContentPillars     []string                       `json:"contentPillars"`
	BrandValues        []string                       `json:"brandValues"`
	PastCollaborations []repository.PastCollaboration `json:"pastCollaborations"`
	DreamBrands        []string                       `json:"dreamBrands"`
	BlacklistedBrands  []string                       `json:"blacklistedBrands"`
	ContentStyle       repository.ContentStyle        `json:"contentStyle"`
	AudienceProblems   []string                       `json:"audienceProblems"`

	WeeklyAvailabilityHours int      `json:"weeklyAvailabilityHours"`
	Capabilities            []string `json:"capabilities"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatorListResponse struct {
	Creators []CreatorResponse `json:"creators"`
	Total    int               `json:"total"`
}

// ToCreateParams maps the request onto repository parameters.
func (r UpsertCreatorRequest) ToCreateParams() repository.CreateParams {
	locations := make([]repository.AudienceLocation, len(r.AudienceLocations))
	for i, loc := range r.AudienceLocations {
		locations[i] = repository.AudienceLocation(loc)
	}
	collabs := make([]repository.PastCollaboration, len(r.PastCollaborations))
	for i, pc := range r.PastCollaborations {
		collabs[i] = repository.PastCollaboration(pc)
	}

	return repository.CreateParams{
		DisplayName:             r.DisplayName,
		Email:                   r.Email,
		FollowerCount:           r.FollowerCount,
		EngagementRate:          r.EngagementRate,
		AudienceAgeRanges:       r.AudienceAgeRanges,
		AudienceFemalePct:       r.AudienceFemalePct,
		AudienceMalePct:         r.AudienceMalePct,
		AudienceLocations:       locations,
		AudienceInterests:       r.AudienceInterests,
		AudienceIncome:          r.AudienceIncome,
		ContentPillars:          r.ContentPillars,
		BrandValues:             r.BrandValues,
		PastCollaborations:      collabs,
		DreamBrands:             r.DreamBrands,
		BlacklistedBrands:       r.BlacklistedBrands,
		ContentStyle:            repository.ContentStyle(r.ContentStyle),
		AudienceProblems:        r.AudienceProblems,
		WeeklyAvailabilityHours: r.WeeklyAvailabilityHours,
		Capabilities:            r.Capabilities,
	}
}

// FromCreator maps a repository record onto the wire shape.
func FromCreator(c repository.Creator) CreatorResponse {
	return CreatorResponse{
		ID:                      c.ID,
		DisplayName:             c.DisplayName,
		Email:                   c.Email,
		FollowerCount:           c.FollowerCount,
		EngagementRate:          c.EngagementRate,
		AudienceAgeRanges:       c.AudienceAgeRanges,
		AudienceFemalePct:       c.AudienceFemalePct,
		AudienceMalePct:         c.AudienceMalePct,
		AudienceLocations:       c.AudienceLocations,
		AudienceInterests:       c.AudienceInterests,
		AudienceIncome:          c.AudienceIncome,
		ContentPillars:          c.ContentPillars,
		BrandValues:             c.BrandValues,
		PastCollaborations:      c.PastCollaborations,
		DreamBrands:             c.DreamBrands,
		BlacklistedBrands:       c.BlacklistedBrands,
		ContentStyle:            c.ContentStyle,
		AudienceProblems:        c.AudienceProblems,
		WeeklyAvailabilityHours: c.WeeklyAvailabilityHours,
		Capabilities:            c.Capabilities,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}
