// Package domain defines the value types the matching engine scores over.
// Profiles are immutable inputs: the engine never mutates a CreatorProfile
// or an EnhancedBrand, it only derives BrandMatch records from them.
package domain

import "github.com/google/uuid"

// AudienceLocation is one geographic slice of a creator's audience.
type AudienceLocation struct {
	Country    string  `json:"country"`
	City       string  `json:"city,omitempty"`
	Percentage float64 `json:"percentage"` // 0-100 share of the audience
}

// PastCollaboration is a brand the creator has previously worked with.
type PastCollaboration struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

// ContentStyle describes how a creator produces and frames content.
type ContentStyle struct {
	PrimaryFormat   string   `json:"primaryFormat"`   // e.g. "reel", "video", "photo"
	Aesthetics      []string `json:"aesthetics"`      // e.g. "minimal", "vibrant"
	ProductionValue string   `json:"productionValue"` // "professional" or "authentic"
	CaptionStyle    string   `json:"captionStyle"`    // e.g. "storytelling", "punchy"
}

// CreatorProfile is the creator side of a match. Owned and mutated only by
// the creators module; the scoring engine reads it as-is.
type CreatorProfile struct {
	ID          uuid.UUID
	DisplayName string
	Email       string

	// Analytics
	FollowerCount     int64
	EngagementRate    float64 // percentage points, e.g. 4.2 means 4.2%
	AudienceAgeRanges []string
	AudienceFemalePct float64
	AudienceMalePct   float64
	AudienceLocations []AudienceLocation
	AudienceInterests []string
	AudienceIncome    string // e.g. "low", "medium", "high"

	// Identity
	ContentPillars     []string
	BrandValues        []string
	PastCollaborations []PastCollaboration
	DreamBrands        []string
	BlacklistedBrands  []string
	ContentStyle       ContentStyle
	AudienceProblems   []string

	// Professional
	WeeklyAvailabilityHours int
	Capabilities            []string
}

// AudienceCountries returns the distinct countries in the audience breakdown.
func (p CreatorProfile) AudienceCountries() []string {
	seen := make(map[string]struct{}, len(p.AudienceLocations))
	out := make([]string, 0, len(p.AudienceLocations))
	for _, loc := range p.AudienceLocations {
		if loc.Country == "" {
			continue
		}
		if _, ok := seen[loc.Country]; ok {
			continue
		}
		seen[loc.Country] = struct{}{}
		out = append(out, loc.Country)
	}
	return out
}

// AudienceCities returns the distinct cities in the audience breakdown.
func (p CreatorProfile) AudienceCities() []string {
	seen := make(map[string]struct{}, len(p.AudienceLocations))
	out := make([]string, 0, len(p.AudienceLocations))
	for _, loc := range p.AudienceLocations {
		if loc.City == "" {
			continue
		}
		if _, ok := seen[loc.City]; ok {
			continue
		}
		seen[loc.City] = struct{}{}
		out = append(out, loc.City)
	}
	return out
}

// Creator size buckets derived from follower count, used to match a brand's
// historical partner profile.
const (
	SizeNano  = "nano"
	SizeMicro = "micro"
	SizeMacro = "macro"
	SizeMega  = "mega"
)

// SizeBucket maps a follower count to its creator size bucket.
func SizeBucket(followers int64) string {
	switch {
	case followers < 10_000:
		return SizeNano
	case followers < 100_000:
		return SizeMicro
	case followers < 1_000_000:
		return SizeMacro
	default:
		return SizeMega
	}
}
