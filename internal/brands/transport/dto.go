package transport

import (
	"time"

	"creatorhub_backend/internal/brands/repository"

	"github.com/google/uuid"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// UpsertBrandRequest is the request body for create and full update. The
// nested documents are forwarded verbatim; sparse fields stay absent and get
// their defaults at normalization time.
type UpsertBrandRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry" validate:"required,min=1,max=200"`
	IsActive *bool  `json:"isActive"`

	IsLocalOnly      bool     `json:"isLocalOnly"`
	ShipsToCountries []string `json:"shipsToCountries"`
	HeadquartersCity *string  `json:"headquartersCity"`

	Targeting    repository.Targeting    `json:"targeting"`
	Values       repository.Values       `json:"values"`
	Campaign     repository.Campaign     `json:"campaign"`
	History      repository.History      `json:"history"`
	Intelligence repository.Intelligence `json:"intelligence"`
	Automation   repository.Automation   `json:"automation"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

type BrandResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Industry string    `json:"industry"`
	IsActive bool      `json:"isActive"`

	IsLocalOnly      bool     `json:"isLocalOnly"`
	ShipsToCountries []string `json:"shipsToCountries"`
	HeadquartersCity *string  `json:"headquartersCity,omitempty"`

	Targeting    repository.Targeting    `json:"targeting"`
	Values       repository.Values       `json:"values"`
	Campaign     repository.Campaign     `json:"campaign"`
	History      repository.History      `json:"history"`
	Intelligence repository.Intelligence `json:"intelligence"`
	Automation   repository.Automation   `json:"automation"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
	Total  int             `json:"total"`
}

// ToUpsertParams maps the request onto repository parameters. A missing
// isActive flag means active, new brands enter the candidate pool by default.
func (r UpsertBrandRequest) ToUpsertParams() repository.UpsertParams {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return repository.UpsertParams{
		Name:             r.Name,
		Industry:         r.Industry,
		IsActive:         active,
		IsLocalOnly:      r.IsLocalOnly,
		ShipsToCountries: r.ShipsToCountries,
		HeadquartersCity: r.HeadquartersCity,
		Targeting:        r.Targeting,
		Values:           r.Values,
		Campaign:         r.Campaign,
		History:          r.History,
		Intelligence:     r.Intelligence,
		Automation:       r.Automation,
	}
}

// FromBrand maps a repository record onto the wire shape.
func FromBrand(b repository.Brand) BrandResponse {
	return BrandResponse{
		ID:               b.ID,
		Name:             b.Name,
		Industry:         b.Industry,
		IsActive:         b.IsActive,
		IsLocalOnly:      b.IsLocalOnly,
		ShipsToCountries: b.ShipsToCountries,
		HeadquartersCity: b.HeadquartersCity,
		Targeting:        b.Targeting,
		Values:           b.Values,
		Campaign:         b.Campaign,
		History:          b.History,
		Intelligence:     b.Intelligence,
		Automation:       b.Automation,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
