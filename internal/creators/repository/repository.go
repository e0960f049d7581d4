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

var ErrNotFound = errors.New("creator not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// AudienceLocation is one geographic slice of the audience breakdown.
type AudienceLocation struct {
	Country    string  `json:"country"`
	City       string  `json:"city,omitempty"`
	Percentage float64 `json:"percentage"`
}

// PastCollaboration is a brand the creator previously worked with.
type PastCollaboration struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

// ContentStyle describes production and framing preferences.
type ContentStyle struct {
	PrimaryFormat   string   `json:"primaryFormat"`
	Aesthetics      []string `json:"aesthetics"`
	ProductionValue string   `json:"productionValue"`
	CaptionStyle    string   `json:"captionStyle"`
}

// Creator is the persisted creator record.
type Creator struct {
	ID          uuid.UUID
	DisplayName string
	Email       string

	FollowerCount     int64
	EngagementRate    float64
	AudienceAgeRanges []string
	AudienceFemalePct float64
	AudienceMalePct   float64
	AudienceLocations []AudienceLocation
	AudienceInterests []string
	AudienceIncome    string

	ContentPillars     []string
	BrandValues        []string
	PastCollaborations []PastCollaboration
	DreamBrands        []string
	BlacklistedBrands  []string
	ContentStyle       ContentStyle
	AudienceProblems   []string

	WeeklyAvailabilityHours int
	Capabilities            []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams carries the full profile for an insert; Update reuses it, the
// API replaces whole profiles rather than patching fields.
type CreateParams struct {
	DisplayName string
	Email       string

	FollowerCount     int64
	EngagementRate    float64
	AudienceAgeRanges []string
	AudienceFemalePct float64
	AudienceMalePct   float64
	AudienceLocations []AudienceLocation
	AudienceInterests []string
	AudienceIncome    string

	ContentPillars     []string
	BrandValues        []string
	PastCollaborations []PastCollaboration
	DreamBrands        []string
	BlacklistedBrands  []string
	ContentStyle       ContentStyle
	AudienceProblems   []string

	WeeklyAvailabilityHours int
	Capabilities            []string
}

const creatorColumns = `id, display_name, email, follower_count, engagement_rate, audience_age_ranges,
	audience_female_pct, audience_male_pct, audience_locations, audience_interests, audience_income,
	content_pillars, brand_values, past_collaborations, dream_brands, blacklisted_brands,
	content_style, audience_problems, weekly_availability_hours, capabilities, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, params CreateParams) (Creator, error) {
	locations, collabs, style, err := marshalProfileDocs(params)
	if err != nil {
		return Creator{}, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO creators (
			id, display_name, email, follower_count, engagement_rate, audience_age_ranges,
			audience_female_pct, audience_male_pct, audience_locations, audience_interests, audience_income,
			content_pillars, brand_values, past_collaborations, dream_brands, blacklisted_brands,
			content_style, audience_problems, weekly_availability_hours, capabilities
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING `+creatorColumns+`
	`,
		uuid.New(), params.DisplayName, params.Email, params.FollowerCount, params.EngagementRate, params.AudienceAgeRanges,
		params.AudienceFemalePct, params.AudienceMalePct, locations, params.AudienceInterests, params.AudienceIncome,
		params.ContentPillars, params.BrandValues, collabs, params.DreamBrands, params.BlacklistedBrands,
		style, params.AudienceProblems, params.WeeklyAvailabilityHours, params.Capabilities,
	)
	return scanCreator(row)
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, params CreateParams) (Creator, error) {
	locations, collabs, style, err := marshalProfileDocs(params)
	if err != nil {
		return Creator{}, err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE creators SET
			display_name = $2, email = $3, follower_count = $4, engagement_rate = $5, audience_age_ranges = $6,
			audience_female_pct = $7, audience_male_pct = $8, audience_locations = $9, audience_interests = $10,
			audience_income = $11, content_pillars = $12, brand_values = $13, past_collaborations = $14,
			dream_brands = $15, blacklisted_brands = $16, content_style = $17, audience_problems = $18,
			weekly_availability_hours = $19, capabilities = $20, updated_at = NOW()
		WHERE id = $1
		RETURNING `+creatorColumns+`
	`,
		id, params.DisplayName, params.Email, params.FollowerCount, params.EngagementRate, params.AudienceAgeRanges,
		params.AudienceFemalePct, params.AudienceMalePct, locations, params.AudienceInterests, params.AudienceIncome,
		params.ContentPillars, params.BrandValues, collabs, params.DreamBrands, params.BlacklistedBrands,
		style, params.AudienceProblems, params.WeeklyAvailabilityHours, params.Capabilities,
	)
	c, err := scanCreator(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Creator{}, ErrNotFound
	}
	return c, err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Creator, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+creatorColumns+` FROM creators WHERE id = $1`, id)
	c, err := scanCreator(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Creator{}, ErrNotFound
	}
	return c, err
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Creator, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM creators`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+creatorColumns+` FROM creators
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	creators := make([]Creator, 0)
	for rows.Next() {
		c, err := scanCreator(rows)
		if err != nil {
			return nil, 0, err
		}
		creators = append(creators, c)
	}
	return creators, total, rows.Err()
}

// ListIDs returns every creator id, used by the periodic match refresh.
func (r *Repository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM creators ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM creators WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalProfileDocs(params CreateParams) ([]byte, []byte, []byte, error) {
	locations, err := json.Marshal(params.AudienceLocations)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal audience locations: %w", err)
	}
	collabs, err := json.Marshal(params.PastCollaborations)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal past collaborations: %w", err)
	}
	style, err := json.Marshal(params.ContentStyle)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal content style: %w", err)
	}
	return locations, collabs, style, nil
}

func scanCreator(row pgx.Row) (Creator, error) {
	var (
		c         Creator
		locations []byte
		collabs   []byte
		style     []byte
	)
	err := row.Scan(
		&c.ID, &c.DisplayName, &c.Email, &c.FollowerCount, &c.EngagementRate, &c.AudienceAgeRanges,
		&c.AudienceFemalePct, &c.AudienceMalePct, &locations, &c.AudienceInterests, &c.AudienceIncome,
		&c.ContentPillars, &c.BrandValues, &collabs, &c.DreamBrands, &c.BlacklistedBrands,
		&style, &c.AudienceProblems, &c.WeeklyAvailabilityHours, &c.Capabilities, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return Creator{}, err
	}

	if err := json.Unmarshal(locations, &c.AudienceLocations); err != nil {
		return Creator{}, fmt.Errorf("unmarshal audience locations: %w", err)
	}
	if err := json.Unmarshal(collabs, &c.PastCollaborations); err != nil {
		return Creator{}, fmt.Errorf("unmarshal past collaborations: %w", err)
	}
	if err := json.Unmarshal(style, &c.ContentStyle); err != nil {
		return Creator{}, fmt.Errorf("unmarshal content style: %w", err)
	}
	return c, nil
}
