package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"creatorhub_backend/internal/events"
	"creatorhub_backend/internal/matching/domain"
	"creatorhub_backend/internal/matching/ports"
	"creatorhub_backend/internal/matching/repository"
	"creatorhub_backend/internal/matching/scoring"
	"creatorhub_backend/platform/apperr"
	"creatorhub_backend/platform/logger"
)

type stubProfiles struct {
	creator domain.CreatorProfile
	err     error
}

func (s *stubProfiles) GetCreatorProfile(ctx context.Context, creatorID uuid.UUID) (domain.CreatorProfile, error) {
	return s.creator, s.err
}

type stubBrands struct {
	brands     []domain.EnhancedBrand
	lastFilter ports.AudienceFilter
}

func (s *stubBrands) ListEligibleBrands(ctx context.Context, filter ports.AudienceFilter) ([]domain.EnhancedBrand, error) {
	s.lastFilter = filter
	return s.brands, nil
}

type stubStore struct {
	matchedIDs []uuid.UUID
	listed     []domain.BrandMatch
	upserted   []domain.BrandMatch
	updated    domain.BrandMatch
	updateErr  error
	lastStatus string
}

func (s *stubStore) ListByCreator(ctx context.Context, creatorID uuid.UUID, params repository.ListParams) ([]domain.BrandMatch, error) {
	return s.listed, nil
}

func (s *stubStore) ListMatchedBrandIDs(ctx context.Context, creatorID uuid.UUID) ([]uuid.UUID, error) {
	return s.matchedIDs, nil
}

func (s *stubStore) UpsertMatches(ctx context.Context, matches []domain.BrandMatch) error {
	s.upserted = matches
	return nil
}

func (s *stubStore) UpdateStatus(ctx context.Context, creatorID, brandID uuid.UUID, status string) (domain.BrandMatch, error) {
	s.lastStatus = status
	return s.updated, s.updateErr
}

type stubBus struct {
	published []events.Event
}

func (b *stubBus) Publish(ctx context.Context, e events.Event) {
	b.published = append(b.published, e)
}

func (b *stubBus) PublishSync(ctx context.Context, e events.Event) error {
	b.published = append(b.published, e)
	return nil
}

func (b *stubBus) Subscribe(eventName string, h events.Handler) {}

// testCreator scores 78 overall against shippingBrand and 10 against a brand
// with no targeting data.
func testCreator() domain.CreatorProfile {
	return domain.CreatorProfile{
		ID:                uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		DisplayName:       "Jordan Vale",
		FollowerCount:     50_000,
		EngagementRate:    4.0,
		AudienceAgeRanges: []string{"18-24"},
		AudienceFemalePct: 60,
		AudienceLocations: []domain.AudienceLocation{
			{Country: "United States", City: "Austin", Percentage: 80},
		},
		AudienceInterests: []string{"fashion"},
		AudienceIncome:    "medium",
		ContentStyle: domain.ContentStyle{
			PrimaryFormat:   "reel",
			Aesthetics:      []string{"minimal"},
			ProductionValue: "authentic",
		},
	}
}

func shippingBrand(id string) domain.EnhancedBrand {
	return domain.EnhancedBrand{
		ID:                   uuid.MustParse(id),
		Name:                 "ThreadHaus",
		Industry:             "fashion",
		MinEngagement:        3.0,
		PreferredEngagement:  4.0,
		Niches:               []string{"fashion"},
		ContentFormats:       []string{"reel"},
		Aesthetics:           []string{"minimal"},
		MaxApprovalRounds:    1,
		AudienceAgeRanges:    []string{"18-24"},
		IncomeLevels:         []string{"medium"},
		TargetCountries:      []string{"United States"},
		PreferredCreatorSize: domain.SizeMicro,
		AvgPartnerEngagement: 4.5,
		ShipsToCountries:     []string{"United States"},
	}
}

func localBrand(id, city string) domain.EnhancedBrand {
	return domain.EnhancedBrand{
		ID:               uuid.MustParse(id),
		Name:             "CornerRoast",
		Industry:         "coffee",
		IsLocalOnly:      true,
		HeadquartersCity: city,
	}
}

func intp(n int) *int { return &n }

func boolp(b bool) *bool { return &b }

func newTestService(profiles *stubProfiles, brands *stubBrands, store *stubStore, bus *stubBus, defaults Defaults) *Service {
	fixed := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	engine := scoring.NewEngineWithClock(func() time.Time { return fixed })
	return New(profiles, brands, store, engine, bus, logger.New("test"), defaults)
}

func TestGetMatchesForCreator_ProfileErrorPassesThrough(t *testing.T) {
	profiles := &stubProfiles{err: apperr.NotFound("creator not found")}
	svc := newTestService(profiles, &stubBrands{}, &stubStore{}, &stubBus{}, Defaults{Limit: 100, MinScore: 50})

	_, err := svc.GetMatchesForCreator(context.Background(), uuid.New(), Options{})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetMatchesForCreator_FiltersIneligibleBrands(t *testing.T) {
	brands := &stubBrands{brands: []domain.EnhancedBrand{
		shippingBrand("22222222-2222-2222-2222-222222222222"),
		localBrand("33333333-3333-3333-3333-333333333333", "Austin"),
		{ID: uuid.New(), Name: "FarCo", ShipsToCountries: []string{"Japan"}},
		localBrand("44444444-4444-4444-4444-444444444444", "Berlin"),
	}}
	store := &stubStore{}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, store, &stubBus{}, Defaults{Limit: 100, MinScore: 1})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalBrandsAnalyzed != 2 {
		t.Fatalf("expected 2 brands analyzed after eligibility, got %d", result.TotalBrandsAnalyzed)
	}
	if len(result.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(result.Matches))
	}
	if brands.lastFilter.Countries[0] != "United States" || brands.lastFilter.Cities[0] != "Austin" {
		t.Fatalf("expected audience-derived filter, got %+v", brands.lastFilter)
	}
	if len(store.upserted) != 2 {
		t.Fatalf("expected persisted matches, got %d", len(store.upserted))
	}
}

func TestGetMatchesForCreator_DefaultOptionsExcludeAlreadyMatched(t *testing.T) {
	shipping := shippingBrand("22222222-2222-2222-2222-222222222222")
	local := localBrand("33333333-3333-3333-3333-333333333333", "Austin")
	brands := &stubBrands{brands: []domain.EnhancedBrand{shipping, local}}
	store := &stubStore{matchedIDs: []uuid.UUID{shipping.ID}}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, store, &stubBus{}, Defaults{Limit: 100, MinScore: 1})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalBrandsAnalyzed != 1 {
		t.Fatalf("expected 1 brand analyzed, got %d", result.TotalBrandsAnalyzed)
	}
	for _, m := range result.Matches {
		if m.BrandID == shipping.ID {
			t.Fatalf("expected the already-matched brand to be excluded by default")
		}
	}
}

func TestGetMatchesForCreator_ExplicitIncludeRescoresMatchedBrands(t *testing.T) {
	shipping := shippingBrand("22222222-2222-2222-2222-222222222222")
	local := localBrand("33333333-3333-3333-3333-333333333333", "Austin")
	brands := &stubBrands{brands: []domain.EnhancedBrand{shipping, local}}
	store := &stubStore{matchedIDs: []uuid.UUID{shipping.ID}}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, store, &stubBus{}, Defaults{Limit: 100, MinScore: 1})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{ExcludeMatched: boolp(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalBrandsAnalyzed != 2 {
		t.Fatalf("expected both brands re-scored, got %d analyzed", result.TotalBrandsAnalyzed)
	}
}

func TestGetMatchesForCreator_ReturnsMatchStats(t *testing.T) {
	brands := &stubBrands{brands: []domain.EnhancedBrand{
		shippingBrand("22222222-2222-2222-2222-222222222222"),
		localBrand("33333333-3333-3333-3333-333333333333", "Austin"),
	}}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, &stubStore{}, &stubBus{}, Defaults{Limit: 100, MinScore: 1})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 2 {
		t.Fatalf("expected 2 kept matches, got %d", len(result.Matches))
	}
	want := MatchStats{Good: 1}
	if result.Stats != want {
		t.Fatalf("expected stats %+v (the poor match is kept but not counted), got %+v", want, result.Stats)
	}
}

func TestGetMatchesForCreator_ExplicitZeroMinScoreKeepsEverything(t *testing.T) {
	brands := &stubBrands{brands: []domain.EnhancedBrand{
		shippingBrand("22222222-2222-2222-2222-222222222222"),
		localBrand("33333333-3333-3333-3333-333333333333", "Austin"),
	}}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, &stubStore{}, &stubBus{}, Defaults{Limit: 100, MinScore: 50})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{MinScore: intp(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 2 {
		t.Fatalf("expected an explicit 0 threshold to keep both matches, got %d", len(result.Matches))
	}
}

func TestGetMatchesForCreator_MinScoreCutsMatchesNotAnalyzedCount(t *testing.T) {
	brands := &stubBrands{brands: []domain.EnhancedBrand{
		shippingBrand("22222222-2222-2222-2222-222222222222"),
		localBrand("33333333-3333-3333-3333-333333333333", "Austin"),
	}}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, &stubStore{}, &stubBus{}, Defaults{Limit: 100, MinScore: 50})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalBrandsAnalyzed != 2 {
		t.Fatalf("expected 2 brands analyzed, got %d", result.TotalBrandsAnalyzed)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected only the high-scoring match kept, got %d", len(result.Matches))
	}
	if result.Matches[0].BrandName != "ThreadHaus" {
		t.Fatalf("expected ThreadHaus to survive the score cut, got %s", result.Matches[0].BrandName)
	}
}

func TestGetMatchesForCreator_EqualScoresRankByBrandID(t *testing.T) {
	first := shippingBrand("aaaaaaaa-0000-0000-0000-000000000000")
	second := shippingBrand("bbbbbbbb-0000-0000-0000-000000000000")
	brands := &stubBrands{brands: []domain.EnhancedBrand{second, first}}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, &stubStore{}, &stubBus{}, Defaults{Limit: 100, MinScore: 1})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(result.Matches))
	}
	if result.Matches[0].OverallScore != result.Matches[1].OverallScore {
		t.Fatalf("expected a score tie, got %d and %d", result.Matches[0].OverallScore, result.Matches[1].OverallScore)
	}
	if result.Matches[0].BrandID != first.ID || result.Matches[1].BrandID != second.ID {
		t.Fatalf("expected tie broken by ascending brand id, got %s then %s",
			result.Matches[0].BrandID, result.Matches[1].BrandID)
	}
}

func TestGetMatchesForCreator_LimitTruncatesAfterRanking(t *testing.T) {
	first := shippingBrand("aaaaaaaa-0000-0000-0000-000000000000")
	second := shippingBrand("bbbbbbbb-0000-0000-0000-000000000000")
	brands := &stubBrands{brands: []domain.EnhancedBrand{second, first}}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, &stubStore{}, &stubBus{}, Defaults{Limit: 100, MinScore: 1})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalBrandsAnalyzed != 2 {
		t.Fatalf("expected 2 brands analyzed, got %d", result.TotalBrandsAnalyzed)
	}
	if len(result.Matches) != 1 {
		t.Fatalf("expected the window cut to 1 match, got %d", len(result.Matches))
	}
	if result.Matches[0].BrandID != first.ID {
		t.Fatalf("expected the ascending-first brand kept, got %s", result.Matches[0].BrandID)
	}
}

func TestGetMatchesForCreator_PublishesDiscoveredEvent(t *testing.T) {
	brands := &stubBrands{brands: []domain.EnhancedBrand{
		shippingBrand("22222222-2222-2222-2222-222222222222"),
	}}
	bus := &stubBus{}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, &stubStore{}, bus, Defaults{Limit: 100, MinScore: 50})

	result, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(bus.published))
	}
	discovered, ok := bus.published[0].(events.MatchesDiscovered)
	if !ok {
		t.Fatalf("expected a MatchesDiscovered event, got %T", bus.published[0])
	}
	if discovered.TotalAnalyzed != result.TotalBrandsAnalyzed || discovered.TotalPersisted != len(result.Matches) {
		t.Fatalf("expected event totals %d/%d, got %d/%d",
			result.TotalBrandsAnalyzed, len(result.Matches), discovered.TotalAnalyzed, discovered.TotalPersisted)
	}
	if discovered.GoodCount != 1 {
		t.Fatalf("expected one good match in the event, got %d", discovered.GoodCount)
	}
	if len(discovered.TopBrandNames) != 1 || discovered.TopBrandNames[0] != "ThreadHaus" {
		t.Fatalf("expected top brand names, got %v", discovered.TopBrandNames)
	}
}

func TestGetMatchesForCreator_NoEventWhenNothingKept(t *testing.T) {
	brands := &stubBrands{brands: []domain.EnhancedBrand{
		shippingBrand("22222222-2222-2222-2222-222222222222"),
	}}
	bus := &stubBus{}
	svc := newTestService(&stubProfiles{creator: testCreator()}, brands, &stubStore{}, bus, Defaults{Limit: 100, MinScore: 50})

	_, err := svc.GetMatchesForCreator(context.Background(), testCreator().ID, Options{MinScore: intp(90)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no events for an empty run, got %d", len(bus.published))
	}
}

func TestUpdateMatchStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(&stubProfiles{}, &stubBrands{}, &stubStore{}, &stubBus{}, Defaults{Limit: 100, MinScore: 50})

	_, err := svc.UpdateMatchStatus(context.Background(), uuid.New(), uuid.New(), "ghosted")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateMatchStatus_MapsMissingMatchToNotFound(t *testing.T) {
	store := &stubStore{updateErr: repository.ErrNotFound}
	svc := newTestService(&stubProfiles{}, &stubBrands{}, store, &stubBus{}, Defaults{Limit: 100, MinScore: 50})

	_, err := svc.UpdateMatchStatus(context.Background(), uuid.New(), uuid.New(), domain.StatusContacted)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestUpdateMatchStatus_PublishesStatusChange(t *testing.T) {
	creatorID := uuid.New()
	brandID := uuid.New()
	store := &stubStore{updated: domain.BrandMatch{
		ID:        domain.MatchID(creatorID, brandID),
		CreatorID: creatorID,
		BrandID:   brandID,
		Status:    domain.StatusContacted,
	}}
	bus := &stubBus{}
	svc := newTestService(&stubProfiles{}, &stubBrands{}, store, bus, Defaults{Limit: 100, MinScore: 50})

	match, err := svc.UpdateMatchStatus(context.Background(), creatorID, brandID, domain.StatusContacted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastStatus != domain.StatusContacted {
		t.Fatalf("expected status passed to the store, got %s", store.lastStatus)
	}
	if match.Status != domain.StatusContacted {
		t.Fatalf("expected updated match returned, got status %s", match.Status)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(bus.published))
	}
	changed, ok := bus.published[0].(events.MatchStatusChanged)
	if !ok {
		t.Fatalf("expected a MatchStatusChanged event, got %T", bus.published[0])
	}
	if changed.NewStatus != domain.StatusContacted || changed.MatchID != match.ID {
		t.Fatalf("expected event for match %s with status %s, got %+v", match.ID, domain.StatusContacted, changed)
	}
}
