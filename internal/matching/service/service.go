// Package service implements the match orchestrator: it selects eligible
// brands for a creator, scores every candidate through the engine, ranks
// and filters the results and persists the surviving matches.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"creatorhub_backend/internal/events"
	"creatorhub_backend/internal/matching/domain"
	"creatorhub_backend/internal/matching/ports"
	"creatorhub_backend/internal/matching/repository"
	"creatorhub_backend/internal/matching/scoring"
	"creatorhub_backend/platform/apperr"
	"creatorhub_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// scoreConcurrency bounds the candidate-scoring goroutines per run.
const scoreConcurrency = 8

// topBrandsInEvent caps how many brand names ride along on the
// MatchesDiscovered event.
const topBrandsInEvent = 3

// Options tunes one orchestrator run. Nil fields fall back to the defaults:
// MinScore to the configured threshold, ExcludeMatched to true. An explicit
// MinScore of 0 keeps every scored match.
type Options struct {
	Limit          int
	MinScore       *int
	ExcludeMatched *bool
}

// MatchStats counts the kept matches per category. Poor matches are kept in
// the result but not counted.
type MatchStats struct {
	Excellent int
	Good      int
	Fair      int
}

// RunResult summarizes a completed orchestrator run.
type RunResult struct {
	Matches             []domain.BrandMatch
	TotalBrandsAnalyzed int
	Stats               MatchStats
}

type Defaults struct {
	Limit    int
	MinScore int
}

type Service struct {
	profiles ports.ProfileReader
	brands   ports.BrandSource
	store    repository.Store
	engine   *scoring.Engine
	bus      events.Bus
	log      *logger.Logger
	defaults Defaults
}

func New(profiles ports.ProfileReader, brands ports.BrandSource, store repository.Store, engine *scoring.Engine, bus events.Bus, log *logger.Logger, defaults Defaults) *Service {
	return &Service{
		profiles: profiles,
		brands:   brands,
		store:    store,
		engine:   engine,
		bus:      bus,
		log:      log,
		defaults: defaults,
	}
}

// GetMatchesForCreator runs the full pipeline for one creator: load the
// profile, pull eligible brands, score every candidate, rank, cut to the
// requested window, persist and announce. The returned TotalBrandsAnalyzed
// counts every scored brand, including those later dropped by MinScore or
// the limit.
func (s *Service) GetMatchesForCreator(ctx context.Context, creatorID uuid.UUID, opts Options) (RunResult, error) {
	started := time.Now()

	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaults.Limit
	}
	minScore := s.defaults.MinScore
	if opts.MinScore != nil {
		minScore = *opts.MinScore
	}
	excludeMatched := true
	if opts.ExcludeMatched != nil {
		excludeMatched = *opts.ExcludeMatched
	}

	creator, err := s.profiles.GetCreatorProfile(ctx, creatorID)
	if err != nil {
		return RunResult{}, err
	}

	candidates, err := s.brands.ListEligibleBrands(ctx, ports.AudienceFilter{
		Countries: creator.AudienceCountries(),
		Cities:    creator.AudienceCities(),
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("list eligible brands: %w", err)
	}

	candidates = s.filterEligible(creator, candidates)

	if excludeMatched {
		candidates, err = s.dropAlreadyMatched(ctx, creatorID, candidates)
		if err != nil {
			return RunResult{}, err
		}
	}

	matches, err := s.scoreCandidates(ctx, creator, candidates)
	if err != nil {
		return RunResult{}, err
	}
	analyzed := len(matches)

	kept := make([]domain.BrandMatch, 0, len(matches))
	for _, m := range matches {
		if m.OverallScore >= minScore {
			kept = append(kept, m)
		}
	}

	sortMatches(kept)
	if len(kept) > limit {
		kept = kept[:limit]
	}

	if err := s.store.UpsertMatches(ctx, kept); err != nil {
		return RunResult{}, fmt.Errorf("persist matches: %w", err)
	}

	stats := countCategories(kept)
	s.publishDiscovered(ctx, creatorID, analyzed, kept, stats)
	s.log.MatchRun(creatorID.String(), analyzed, len(kept), float64(time.Since(started).Milliseconds()))

	return RunResult{Matches: kept, TotalBrandsAnalyzed: analyzed, Stats: stats}, nil
}

// ListPersistedMatches reads previously persisted matches without re-scoring.
func (s *Service) ListPersistedMatches(ctx context.Context, creatorID uuid.UUID, params repository.ListParams) ([]domain.BrandMatch, error) {
	if params.Limit <= 0 {
		params.Limit = s.defaults.Limit
	}
	matches, err := s.store.ListByCreator(ctx, creatorID, params)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// UpdateMatchStatus advances the outreach lifecycle of one match.
func (s *Service) UpdateMatchStatus(ctx context.Context, creatorID, brandID uuid.UUID, status string) (domain.BrandMatch, error) {
	if !domain.IsValidStatus(status) {
		return domain.BrandMatch{}, apperr.Validation(fmt.Sprintf("invalid match status %q", status))
	}

	match, err := s.store.UpdateStatus(ctx, creatorID, brandID, status)
	if err == repository.ErrNotFound {
		return domain.BrandMatch{}, apperr.NotFound("match not found")
	}
	if err != nil {
		return domain.BrandMatch{}, fmt.Errorf("update match status: %w", err)
	}

	s.bus.Publish(ctx, events.MatchStatusChanged{
		BaseEvent: events.NewBaseEvent(),
		MatchID:   match.ID,
		CreatorID: creatorID,
		BrandID:   brandID,
		NewStatus: status,
	})
	return match, nil
}

// filterEligible applies the shipping and locality rules. A brand stays in
// when it ships to at least one audience country, or when it is local-only
// and headquartered in one of the audience cities.
func (s *Service) filterEligible(creator domain.CreatorProfile, candidates []domain.EnhancedBrand) []domain.EnhancedBrand {
	countries := toFoldSet(creator.AudienceCountries())
	cities := toFoldSet(creator.AudienceCities())

	eligible := make([]domain.EnhancedBrand, 0, len(candidates))
	for _, b := range candidates {
		if b.IsLocalOnly {
			if _, ok := cities[fold(b.HeadquartersCity)]; ok {
				eligible = append(eligible, b)
			}
			continue
		}
		for _, country := range b.ShipsToCountries {
			if _, ok := countries[fold(country)]; ok {
				eligible = append(eligible, b)
				break
			}
		}
	}
	return eligible
}

func (s *Service) dropAlreadyMatched(ctx context.Context, creatorID uuid.UUID, candidates []domain.EnhancedBrand) ([]domain.EnhancedBrand, error) {
	matchedIDs, err := s.store.ListMatchedBrandIDs(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list matched brand ids: %w", err)
	}
	matched := make(map[uuid.UUID]struct{}, len(matchedIDs))
	for _, id := range matchedIDs {
		matched[id] = struct{}{}
	}

	fresh := make([]domain.EnhancedBrand, 0, len(candidates))
	for _, b := range candidates {
		if _, ok := matched[b.ID]; !ok {
			fresh = append(fresh, b)
		}
	}
	return fresh, nil
}

// scoreCandidates fans the candidates out over a bounded worker group. The
// engine is pure, so results land in pre-assigned slots and stay ordered.
func (s *Service) scoreCandidates(ctx context.Context, creator domain.CreatorProfile, candidates []domain.EnhancedBrand) ([]domain.BrandMatch, error) {
	matches := make([]domain.BrandMatch, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreConcurrency)
	for i, brand := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches[i] = s.engine.CalculateMatch(creator, brand)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}

func countCategories(matches []domain.BrandMatch) MatchStats {
	var stats MatchStats
	for _, m := range matches {
		switch m.MatchCategory {
		case domain.CategoryExcellent:
			stats.Excellent++
		case domain.CategoryGood:
			stats.Good++
		case domain.CategoryFair:
			stats.Fair++
		}
	}
	return stats
}

func (s *Service) publishDiscovered(ctx context.Context, creatorID uuid.UUID, analyzed int, kept []domain.BrandMatch, stats MatchStats) {
	if len(kept) == 0 {
		return
	}

	top := make([]string, 0, topBrandsInEvent)
	for _, m := range kept {
		if len(top) == topBrandsInEvent {
			break
		}
		top = append(top, m.BrandName)
	}

	s.bus.Publish(ctx, events.MatchesDiscovered{
		BaseEvent:      events.NewBaseEvent(),
		CreatorID:      creatorID,
		TotalAnalyzed:  analyzed,
		TotalPersisted: len(kept),
		ExcellentCount: stats.Excellent,
		GoodCount:      stats.Good,
		FairCount:      stats.Fair,
		TopBrandNames:  top,
	})
}

// sortMatches orders by overall score descending; equal scores fall back to
// brand id ascending so repeated runs rank identically.
func sortMatches(matches []domain.BrandMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].OverallScore != matches[j].OverallScore {
			return matches[i].OverallScore > matches[j].OverallScore
		}
		return matches[i].BrandID.String() < matches[j].BrandID.String()
	})
}

func toFoldSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[fold(v)] = struct{}{}
	}
	return set
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
