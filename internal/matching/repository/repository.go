package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"creatorhub_backend/internal/matching/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("match not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListParams narrows and bounds a match listing. MinScore filters on the
// overall score, Statuses on the lifecycle status; zero values mean "no
// filter". Limit must be positive.
type ListParams struct {
	MinScore int
	Statuses []string
	Limit    int
}

// subScoresDoc is the jsonb shape of the four scored dimensions.
type subScoresDoc struct {
	Values   domain.SubScore `json:"valuesAlignment"`
	Audience domain.SubScore `json:"audienceResonance"`
	Content  domain.SubScore `json:"contentStyle"`
	Success  domain.SubScore `json:"successProbability"`
}

const matchColumns = `match_id, creator_id, brand_id, brand_name, sub_scores, overall_score, match_category, insights, financials, outreach, status`

// UpsertMatches writes a match run in one batch. A re-run for the same
// (creator, brand) pair overwrites the scoring columns, last write wins.
// The lifecycle status is driven outside the engine and survives a
// re-score; only brand-new rows take the incoming status.
func (r *Repository) UpsertMatches(ctx context.Context, matches []domain.BrandMatch) error {
	if len(matches) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range matches {
		subScores, err := json.Marshal(subScoresDoc{
			Values:   m.ValuesAlignment,
			Audience: m.AudienceResonance,
			Content:  m.ContentStyle,
			Success:  m.SuccessProbability,
		})
		if err != nil {
			return fmt.Errorf("marshal sub scores: %w", err)
		}
		insights, err := json.Marshal(m.Insights)
		if err != nil {
			return fmt.Errorf("marshal insights: %w", err)
		}
		financials, err := json.Marshal(m.Financials)
		if err != nil {
			return fmt.Errorf("marshal financials: %w", err)
		}
		outreach, err := json.Marshal(m.OutreachStrategy)
		if err != nil {
			return fmt.Errorf("marshal outreach: %w", err)
		}

		batch.Queue(`
			INSERT INTO brand_matches (match_id, creator_id, brand_id, brand_name, sub_scores, overall_score, match_category, insights, financials, outreach, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (creator_id, brand_id) DO UPDATE SET
				brand_name = EXCLUDED.brand_name,
				sub_scores = EXCLUDED.sub_scores,
				overall_score = EXCLUDED.overall_score,
				match_category = EXCLUDED.match_category,
				insights = EXCLUDED.insights,
				financials = EXCLUDED.financials,
				outreach = EXCLUDED.outreach,
				status = brand_matches.status,
				updated_at = NOW()
		`, m.ID, m.CreatorID, m.BrandID, m.BrandName, subScores, m.OverallScore, m.MatchCategory, insights, financials, outreach, m.Status)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range matches {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert match: %w", err)
		}
	}
	return nil
}

// ListByCreator returns persisted matches ordered by overall score
// descending, ties broken by brand id ascending.
func (r *Repository) ListByCreator(ctx context.Context, creatorID uuid.UUID, params ListParams) ([]domain.BrandMatch, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM brand_matches
		WHERE creator_id = $1 AND overall_score >= $2
	`
	args := []any{creatorID, params.MinScore}

	if len(params.Statuses) > 0 {
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args)+1)
		args = append(args, params.Statuses)
	}

	query += fmt.Sprintf(" ORDER BY overall_score DESC, brand_id ASC LIMIT $%d", len(args)+1)
	args = append(args, params.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]domain.BrandMatch, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// ListMatchedBrandIDs returns the brand ids the creator already has a match
// row for, used to exclude previously surfaced brands from a run.
func (r *Repository) ListMatchedBrandIDs(ctx context.Context, creatorID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT brand_id FROM brand_matches WHERE creator_id = $1
	`, creatorID)
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

// UpdateStatus moves a match to a new lifecycle status and returns the
// updated row. Returns ErrNotFound when the pair has no match.
func (r *Repository) UpdateStatus(ctx context.Context, creatorID, brandID uuid.UUID, status string) (domain.BrandMatch, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE brand_matches
		SET status = $3, updated_at = NOW()
		WHERE creator_id = $1 AND brand_id = $2
		RETURNING `+matchColumns+`
	`, creatorID, brandID, status)

	m, err := scanMatch(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.BrandMatch{}, ErrNotFound
	}
	return m, err
}

func scanMatch(row pgx.Row) (domain.BrandMatch, error) {
	var (
		m          domain.BrandMatch
		subScores  []byte
		insights   []byte
		financials []byte
		outreach   []byte
	)
	if err := row.Scan(&m.ID, &m.CreatorID, &m.BrandID, &m.BrandName, &subScores, &m.OverallScore, &m.MatchCategory, &insights, &financials, &outreach, &m.Status); err != nil {
		return domain.BrandMatch{}, err
	}

	var doc subScoresDoc
	if err := json.Unmarshal(subScores, &doc); err != nil {
		return domain.BrandMatch{}, fmt.Errorf("unmarshal sub scores: %w", err)
	}
	m.ValuesAlignment = doc.Values
	m.AudienceResonance = doc.Audience
	m.ContentStyle = doc.Content
	m.SuccessProbability = doc.Success

	if err := json.Unmarshal(insights, &m.Insights); err != nil {
		return domain.BrandMatch{}, fmt.Errorf("unmarshal insights: %w", err)
	}
	if err := json.Unmarshal(financials, &m.Financials); err != nil {
		return domain.BrandMatch{}, fmt.Errorf("unmarshal financials: %w", err)
	}
	if err := json.Unmarshal(outreach, &m.OutreachStrategy); err != nil {
		return domain.BrandMatch{}, fmt.Errorf("unmarshal outreach: %w", err)
	}
	return m, nil
}
