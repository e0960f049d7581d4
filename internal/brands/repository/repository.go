package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("brand not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Targeting is the jsonb targeting document on a brand row. Every field is
// optional; normalization fills in defaults downstream.
type Targeting struct {
	FollowerMin         *int64   `json:"followerMin,omitempty"`
	FollowerMax         *int64   `json:"followerMax,omitempty"`
	MinEngagement       *float64 `json:"minEngagement,omitempty"`
	PreferredEngagement *float64 `json:"preferredEngagement,omitempty"`
	Niches              []string `json:"niches,omitempty"`
	ContentFormats      []string `json:"contentFormats,omitempty"`
	Aesthetics          []string `json:"aesthetics,omitempty"`
	MaxApprovalRounds   *int     `json:"maxApprovalRounds,omitempty"`
	AudienceAgeRanges   []string `json:"audienceAgeRanges,omitempty"`
	GenderPreference    *string  `json:"genderPreference,omitempty"`
	IncomeLevels        []string `json:"incomeLevels,omitempty"`
	TargetCountries     []string `json:"targetCountries,omitempty"`
	TargetCities        []string `json:"targetCities,omitempty"`
}

// Values is the jsonb brand-values document.
type Values struct {
	CoreValues        []string `json:"coreValues,omitempty"`
	ESGRating         *int     `json:"esgRating,omitempty"`
	HasControversies  *bool    `json:"hasControversies,omitempty"`
	SupplyChainStatus *string  `json:"supplyChainStatus,omitempty"`
}

// Campaign is the jsonb campaign-terms document.
type Campaign struct {
	BudgetMinCents      *int64   `json:"budgetMinCents,omitempty"`
	BudgetMaxCents      *int64   `json:"budgetMaxCents,omitempty"`
	ContentRequirements []string `json:"contentRequirements,omitempty"`
	RequiresExclusivity *bool    `json:"requiresExclusivity,omitempty"`
}

// History is the jsonb collaboration-history document.
type History struct {
	PastCollaborators    []string   `json:"pastCollaborators,omitempty"`
	PreferredCreatorSize *string    `json:"preferredCreatorSize,omitempty"`
	AvgPartnerEngagement *float64   `json:"avgPartnerEngagement,omitempty"`
	HistoricalROI        *float64   `json:"historicalRoi,omitempty"`
	LastCampaignDate     *time.Time `json:"lastCampaignDate,omitempty"`
}

// Intelligence is the jsonb market-intelligence document.
type Intelligence struct {
	UpcomingCampaigns   []string `json:"upcomingCampaigns,omitempty"`
	DecisionMakerActive *bool    `json:"decisionMakerActive,omitempty"`
	InstagramHandle     *string  `json:"instagramHandle,omitempty"`
}

// Automation is the jsonb outreach-automation document.
type Automation struct {
	PreferredChannel       *string  `json:"preferredChannel,omitempty"`
	PreferredOutreachTimes []string `json:"preferredOutreachTimes,omitempty"`
}

// Brand is the persisted brand record. The scalar columns drive eligibility
// pre-selection; the jsonb documents hold the sparse intelligence data.
type Brand struct {
	ID       uuid.UUID
	Name     string
	Industry string
	IsActive bool

	IsLocalOnly      bool
	ShipsToCountries []string
	HeadquartersCity *string

	Targeting    Targeting
	Values       Values
	Campaign     Campaign
	History      History
	Intelligence Intelligence
	Automation   Automation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpsertParams carries a full brand record for insert or replace.
type UpsertParams struct {
	Name     string
	Industry string
	IsActive bool

	IsLocalOnly      bool
	ShipsToCountries []string
	HeadquartersCity *string

	Targeting    Targeting
	Values       Values
	Campaign     Campaign
	History      History
	Intelligence Intelligence
	Automation   Automation
}

const brandColumns = `id, name, industry, is_active, is_local_only, ships_to_countries, headquarters_city,
	targeting, brand_values, campaign, history, intelligence, automation, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, params UpsertParams) (Brand, error) {
	docs, err := marshalBrandDocs(params)
	if err != nil {
		return Brand{}, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO brands (id, name, industry, is_active, is_local_only, ships_to_countries, headquarters_city,
			targeting, brand_values, campaign, history, intelligence, automation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+brandColumns+`
	`, uuid.New(), params.Name, params.Industry, params.IsActive, params.IsLocalOnly, params.ShipsToCountries,
		params.HeadquartersCity, docs[0], docs[1], docs[2], docs[3], docs[4], docs[5])
	return scanBrand(row)
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, params UpsertParams) (Brand, error) {
	docs, err := marshalBrandDocs(params)
	if err != nil {
		return Brand{}, err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE brands SET
			name = $2, industry = $3, is_active = $4, is_local_only = $5, ships_to_countries = $6,
			headquarters_city = $7, targeting = $8, brand_values = $9, campaign = $10, history = $11,
			intelligence = $12, automation = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING `+brandColumns+`
	`, id, params.Name, params.Industry, params.IsActive, params.IsLocalOnly, params.ShipsToCountries,
		params.HeadquartersCity, docs[0], docs[1], docs[2], docs[3], docs[4], docs[5])
	b, err := scanBrand(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Brand{}, ErrNotFound
	}
	return b, err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Brand, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id)
	b, err := scanBrand(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Brand{}, ErrNotFound
	}
	return b, err
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Brand, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM brands`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+brandColumns+` FROM brands
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectBrands(rows, total)
}

// ListEligible pre-selects active brands that could plausibly reach the
// given audience: any shipping overlap with the countries, or a local-only
// brand headquartered in one of the cities. The match orchestrator applies
// the exact eligibility rule per brand afterwards.
func (r *Repository) ListEligible(ctx context.Context, countries, cities []string) ([]Brand, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+brandColumns+` FROM brands
		WHERE is_active = true
		  AND (
			(NOT is_local_only AND ships_to_countries && $1)
			OR (is_local_only AND headquarters_city ILIKE ANY($2))
		  )
		ORDER BY name ASC
	`, countries, cities)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands, _, err := collectBrands(rows, 0)
	return brands, err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalBrandDocs(params UpsertParams) ([6][]byte, error) {
	var docs [6][]byte
	for i, doc := range []any{params.Targeting, params.Values, params.Campaign, params.History, params.Intelligence, params.Automation} {
		raw, err := json.Marshal(doc)
		if err != nil {
			return docs, fmt.Errorf("marshal brand document: %w", err)
		}
		docs[i] = raw
	}
	return docs, nil
}

func collectBrands(rows pgx.Rows, total int) ([]Brand, int, error) {
	brands := make([]Brand, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, 0, err
		}
		brands = append(brands, b)
	}
	return brands, total, rows.Err()
}

func scanBrand(row pgx.Row) (Brand, error) {
	var (
		b    Brand
		docs [6][]byte
	)
	err := row.Scan(
		&b.ID, &b.Name, &b.Industry, &b.IsActive, &b.IsLocalOnly, &b.ShipsToCountries, &b.HeadquartersCity,
		&docs[0], &docs[1], &docs[2], &docs[3], &docs[4], &docs[5], &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return Brand{}, err
	}

	targets := []any{&b.Targeting, &b.Values, &b.Campaign, &b.History, &b.Intelligence, &b.Automation}
	for i, raw := range docs {
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, targets[i]); err != nil {
			return Brand{}, fmt.Errorf("unmarshal brand document: %w", err)
		}
	}
	return b, nil
}
