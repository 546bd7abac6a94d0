// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend/scoring"
)

// mockDataProvider implements DataProvider for testing.
type mockDataProvider struct {
	likedOutfits  []models.Outfit
	likedProducts []models.Product
	outfits       []models.Outfit

	likedOutfitsErr  error
	likedProductsErr error
	outfitsErr       error

	likedOutfitsCalls  atomic.Int32
	likedProductsCalls atomic.Int32
	outfitsCalls       atomic.Int32

	mu        sync.Mutex
	lastQuery models.OutfitQuery
}

func (m *mockDataProvider) LikedOutfits(_ context.Context, _ string, _, _ int) ([]models.Outfit, error) {
	m.likedOutfitsCalls.Add(1)
	if m.likedOutfitsErr != nil {
		return nil, m.likedOutfitsErr
	}
	return m.likedOutfits, nil
}

func (m *mockDataProvider) LikedProducts(_ context.Context, _ string, _, _ int) ([]models.Product, error) {
	m.likedProductsCalls.Add(1)
	if m.likedProductsErr != nil {
		return nil, m.likedProductsErr
	}
	return m.likedProducts, nil
}

func (m *mockDataProvider) Outfits(_ context.Context, q models.OutfitQuery) ([]models.Outfit, error) {
	m.outfitsCalls.Add(1)
	m.mu.Lock()
	m.lastQuery = q
	m.mu.Unlock()
	if m.outfitsErr != nil {
		return nil, m.outfitsErr
	}
	return m.outfits, nil
}

func (m *mockDataProvider) query() models.OutfitQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuery
}

// mockScorer implements Scorer with a per-outfit function.
type mockScorer struct {
	scoreFn func(ctx context.Context, o *models.Outfit) (scoring.Result, error)
	calls   atomic.Int32
}

func (m *mockScorer) Score(ctx context.Context, o *models.Outfit, _ *models.User, _ *models.ProfileData) (scoring.Result, error) {
	m.calls.Add(1)
	return m.scoreFn(ctx, o)
}

func constantScorer(score float64) *mockScorer {
	return &mockScorer{scoreFn: func(context.Context, *models.Outfit) (scoring.Result, error) {
		return scoring.Result{Score: score, Reasoning: []string{}}, nil
	}}
}

func makeOutfits(n int) []models.Outfit {
	out := make([]models.Outfit, n)
	for i := range out {
		out[i] = models.Outfit{
			ID:     int64(i + 1),
			Title:  "Outfit",
			Style:  "casual",
			Points: 10,
		}
	}
	return out
}

func testUser() *models.User {
	return &models.User{
		ID:             "user-1",
		Name:           "Test",
		PositiveStyles: []string{"casual"},
		PositiveBrands: []string{"Acme"},
		PositiveColors: []string{"blue"},
	}
}

func newTestEngine(t *testing.T, cfg *Config, dp DataProvider, s Scorer) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if dp != nil {
		engine.SetDataProvider(dp)
	}
	if s != nil {
		engine.SetScorer(s)
	}
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		engine, err := NewEngine(nil, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		if got := engine.GetConfig().Limits.DefaultLimit; got != 20 {
			t.Errorf("DefaultLimit = %d, want 20", got)
		}
		if engine.ProfileCache() == nil {
			t.Error("ProfileCache() = nil")
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Batching.Size = 0
		if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
			t.Error("NewEngine() expected error for zero batch size")
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Scoring.Weights.OutfitPopularity = -1
		if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
			t.Error("NewEngine() expected error for negative weight")
		}
	})
}

func TestEngine_Recommend_Errors(t *testing.T) {
	t.Run("nil user", func(t *testing.T) {
		engine := newTestEngine(t, nil, &mockDataProvider{}, nil)
		if _, err := engine.Recommend(context.Background(), nil, Request{}); !errors.Is(err, ErrNilUser) {
			t.Errorf("error = %v, want ErrNilUser", err)
		}
	})

	t.Run("no data provider", func(t *testing.T) {
		engine := newTestEngine(t, nil, nil, nil)
		if _, err := engine.Recommend(context.Background(), testUser(), Request{}); !errors.Is(err, ErrNoDataProvider) {
			t.Errorf("error = %v, want ErrNoDataProvider", err)
		}
	})
}

func TestEngine_Recommend_BatchesAllCandidates(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(20)}
	scorer := &mockScorer{scoreFn: func(_ context.Context, o *models.Outfit) (scoring.Result, error) {
		return scoring.Result{Score: float64(o.ID) / 100, Reasoning: []string{}}, nil
	}}
	engine := newTestEngine(t, nil, dp, scorer)

	resp, err := engine.Recommend(context.Background(), testUser(), Request{Limit: 5, ExcludeLiked: true})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if got := scorer.calls.Load(); got != 20 {
		t.Errorf("scorer calls = %d, want 20", got)
	}
	if resp.Metadata.BatchesProcessed != 3 {
		t.Errorf("BatchesProcessed = %d, want 3", resp.Metadata.BatchesProcessed)
	}
	if resp.TotalCount != 20 {
		t.Errorf("TotalCount = %d, want 20", resp.TotalCount)
	}
	if len(resp.Recommendations) != 5 {
		t.Fatalf("len(Recommendations) = %d, want 5", len(resp.Recommendations))
	}
	for i, want := range []int64{20, 19, 18, 17, 16} {
		if got := resp.Recommendations[i].Outfit.ID; got != want {
			t.Errorf("Recommendations[%d].Outfit.ID = %d, want %d", i, got, want)
		}
	}
	if resp.Metadata.EarlyTerminated {
		t.Error("EarlyTerminated = true, want false")
	}
	if resp.AlgorithmVersion != AlgorithmVersion {
		t.Errorf("AlgorithmVersion = %q, want %q", resp.AlgorithmVersion, AlgorithmVersion)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("RequestID not generated")
	}
}

func TestEngine_Recommend_DropsNonPositiveScores(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(6)}
	scorer := &mockScorer{scoreFn: func(_ context.Context, o *models.Outfit) (scoring.Result, error) {
		if o.ID%2 == 0 {
			return scoring.Result{Score: 0}, nil
		}
		return scoring.Result{Score: 0.5}, nil
	}}
	engine := newTestEngine(t, nil, dp, scorer)

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", resp.TotalCount)
	}
	for _, rec := range resp.Recommendations {
		if rec.Score <= 0 {
			t.Errorf("outfit %d returned with score %v", rec.Outfit.ID, rec.Score)
		}
	}
}

func TestEngine_Recommend_StableOrderForTies(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(10)}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for i, rec := range resp.Recommendations {
		if rec.Outfit.ID != int64(i+1) {
			t.Fatalf("Recommendations[%d].Outfit.ID = %d, want %d", i, rec.Outfit.ID, i+1)
		}
	}
}

func TestEngine_Recommend_EarlyTermination(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Batching.EarlyStopTarget = 5
	dp := &mockDataProvider{outfits: makeOutfits(20)}
	scorer := constantScorer(0.9)
	engine := newTestEngine(t, cfg, dp, scorer)

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !resp.Metadata.EarlyTerminated {
		t.Error("EarlyTerminated = false, want true")
	}
	if got := scorer.calls.Load(); got != 8 {
		t.Errorf("scorer calls = %d, want 8 (one batch)", got)
	}
	if resp.Metadata.BatchesProcessed != 1 {
		t.Errorf("BatchesProcessed = %d, want 1", resp.Metadata.BatchesProcessed)
	}
	if got := engine.Stats().EarlyTerminations; got != 1 {
		t.Errorf("Stats().EarlyTerminations = %d, want 1", got)
	}
}

func TestEngine_Recommend_EarlyStopTargetCappedByCandidates(t *testing.T) {
	// 12 candidates, target 50: the effective target is 12, reached only
	// after the last batch, so nothing is cut short.
	dp := &mockDataProvider{outfits: makeOutfits(12)}
	scorer := constantScorer(0.9)
	engine := newTestEngine(t, nil, dp, scorer)

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.EarlyTerminated {
		t.Error("EarlyTerminated = true, want false")
	}
	if got := scorer.calls.Load(); got != 12 {
		t.Errorf("scorer calls = %d, want 12", got)
	}
}

func TestEngine_Recommend_BatchTimeout(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	cfg := DefaultConfig()
	cfg.Batching.Timeout = 50 * time.Millisecond
	dp := &mockDataProvider{outfits: makeOutfits(20)}
	scorer := &mockScorer{scoreFn: func(_ context.Context, o *models.Outfit) (scoring.Result, error) {
		if o.ID == 1 {
			<-release
		}
		return scoring.Result{Score: 0.5}, nil
	}}
	engine := newTestEngine(t, cfg, dp, scorer)

	resp, err := engine.Recommend(context.Background(), testUser(), Request{Limit: 50})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.BatchesDropped != 1 {
		t.Errorf("BatchesDropped = %d, want 1", resp.Metadata.BatchesDropped)
	}
	if resp.Metadata.BatchesProcessed != 2 {
		t.Errorf("BatchesProcessed = %d, want 2", resp.Metadata.BatchesProcessed)
	}
	if resp.TotalCount != 12 {
		t.Errorf("TotalCount = %d, want 12", resp.TotalCount)
	}
	for _, rec := range resp.Recommendations {
		if rec.Outfit.ID <= 8 {
			t.Errorf("outfit %d from the dropped batch was returned", rec.Outfit.ID)
		}
	}
}

func TestEngine_Recommend_ScorerFailures(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(8)}
	scorer := &mockScorer{scoreFn: func(_ context.Context, o *models.Outfit) (scoring.Result, error) {
		switch o.ID {
		case 3:
			panic("boom")
		case 5:
			return scoring.Result{}, errors.New("scoring failed")
		}
		return scoring.Result{Score: 0.4}, nil
	}}
	engine := newTestEngine(t, nil, dp, scorer)

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.ScoringErrors != 2 {
		t.Errorf("ScoringErrors = %d, want 2", resp.Metadata.ScoringErrors)
	}
	if resp.TotalCount != 6 {
		t.Errorf("TotalCount = %d, want 6", resp.TotalCount)
	}
}

func TestEngine_Recommend_CandidateFetchFailure(t *testing.T) {
	dp := &mockDataProvider{outfitsErr: errors.New("connection refused")}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v, want degraded response", err)
	}
	if !resp.Metadata.Degraded {
		t.Error("Degraded = false, want true")
	}
	if len(resp.Recommendations) != 0 || resp.TotalCount != 0 {
		t.Errorf("got %d recommendations, want none", len(resp.Recommendations))
	}
	if resp.ProfileStrength != 0 {
		t.Errorf("ProfileStrength = %v, want 0", resp.ProfileStrength)
	}
	if got := engine.Stats().ErrorCount; got != 1 {
		t.Errorf("Stats().ErrorCount = %d, want 1", got)
	}
}

func TestEngine_Recommend_NoCandidates(t *testing.T) {
	dp := &mockDataProvider{
		outfits:      []models.Outfit{},
		likedOutfits: makeOutfits(10),
	}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Recommendations == nil {
		t.Error("Recommendations = nil, want empty slice")
	}
	if resp.ProfileStrength != 0 {
		t.Errorf("ProfileStrength = %v, want 0 for empty candidates", resp.ProfileStrength)
	}
	if resp.Metadata.Degraded {
		t.Error("Degraded = true, want false")
	}
}

func TestEngine_Recommend_ProfileFetchFailuresDegradeGracefully(t *testing.T) {
	dp := &mockDataProvider{
		outfits:          makeOutfits(4),
		likedOutfitsErr:  errors.New("timeout"),
		likedProductsErr: errors.New("timeout"),
	}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", resp.TotalCount)
	}
	// Three stated preference lists, no interaction data.
	if want := 3.0 / 6.0; resp.ProfileStrength != want {
		t.Errorf("ProfileStrength = %v, want %v", resp.ProfileStrength, want)
	}
}

func TestEngine_Recommend_ProfileCached(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(3)}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))
	ctx := context.Background()

	first, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	second, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if first.Metadata.ProfileCacheHit {
		t.Error("first request reported cache hit")
	}
	if !second.Metadata.ProfileCacheHit {
		t.Error("second request did not report cache hit")
	}
	if got := dp.likedOutfitsCalls.Load(); got != 1 {
		t.Errorf("LikedOutfits calls = %d, want 1", got)
	}
	if got := dp.outfitsCalls.Load(); got != 2 {
		t.Errorf("Outfits calls = %d, want 2", got)
	}
}

func TestEngine_Recommend_DegradedProfileNotCached(t *testing.T) {
	dp := &mockDataProvider{
		outfits:         makeOutfits(3),
		likedOutfits:    makeOutfits(5),
		likedOutfitsErr: errors.New("connection reset"),
	}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))
	ctx := context.Background()

	first, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if want := 3.0 / 6.0; first.ProfileStrength != want {
		t.Errorf("degraded ProfileStrength = %v, want %v", first.ProfileStrength, want)
	}
	if got := engine.ProfileCache().Len(); got != 0 {
		t.Errorf("cache entries after failed fetch = %d, want 0", got)
	}

	dp.likedOutfitsErr = nil

	second, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if second.Metadata.ProfileCacheHit {
		t.Error("second request served the degraded profile from cache")
	}
	if got := dp.likedOutfitsCalls.Load(); got != 2 {
		t.Errorf("LikedOutfits calls = %d, want 2", got)
	}
	if want := (3.0 + 0.5) / 6.0; second.ProfileStrength != want {
		t.Errorf("recovered ProfileStrength = %v, want %v", second.ProfileStrength, want)
	}

	third, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !third.Metadata.ProfileCacheHit {
		t.Error("complete profile was not cached")
	}
}

// Likes recorded after a profile is cached stay invisible to scoring and
// profile strength until the entry expires.
func TestEngine_Recommend_NewLikesInvisibleWithinTTL(t *testing.T) {
	var now atomic.Int64
	now.Store(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).UnixNano())
	clock := func() time.Time { return time.Unix(0, now.Load()).UTC() }

	dp := &mockDataProvider{outfits: makeOutfits(3)}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))
	engine.SetProfileCache(NewProfileCache(5*time.Minute, clock))
	ctx := context.Background()

	before, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	dp.likedOutfits = makeOutfits(10)
	now.Add(int64(4 * time.Minute))

	within, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !within.Metadata.ProfileCacheHit {
		t.Error("request within TTL missed the cache")
	}
	if within.ProfileStrength != before.ProfileStrength {
		t.Errorf("ProfileStrength within TTL = %v, want unchanged %v", within.ProfileStrength, before.ProfileStrength)
	}

	now.Add(int64(2 * time.Minute))

	after, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if after.Metadata.ProfileCacheHit {
		t.Error("request after TTL hit the cache")
	}
	if want := 4.0 / 6.0; after.ProfileStrength != want {
		t.Errorf("ProfileStrength after TTL = %v, want %v", after.ProfileStrength, want)
	}
	if got := dp.likedOutfitsCalls.Load(); got != 2 {
		t.Errorf("LikedOutfits calls = %d, want 2", got)
	}
}

func TestEngine_Recommend_LimitHandling(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, 20},
		{"negative uses default", -3, 20},
		{"within range", 7, 7},
		{"capped at max", 500, 50},
	}

	dp := &mockDataProvider{outfits: makeOutfits(60)}
	cfg := DefaultConfig()
	cfg.Batching.EarlyStopTarget = 100
	engine := newTestEngine(t, cfg, dp, constantScorer(0.5))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := engine.Recommend(context.Background(), testUser(), Request{Limit: tt.limit})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(resp.Recommendations) != tt.want {
				t.Errorf("len(Recommendations) = %d, want %d", len(resp.Recommendations), tt.want)
			}
			if resp.TotalCount != 60 {
				t.Errorf("TotalCount = %d, want 60", resp.TotalCount)
			}
		})
	}
}

func TestEngine_Recommend_CandidateQuery(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(1)}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))

	_, err := engine.Recommend(context.Background(), testUser(), Request{StyleFilter: "Boho, casual"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	q := dp.query()
	if q.PageSize != 150 {
		t.Errorf("PageSize = %d, want 150", q.PageSize)
	}
	if q.Page != 1 {
		t.Errorf("Page = %d, want 1", q.Page)
	}
	if q.Style != "boho,casual" {
		t.Errorf("Style = %q, want %q", q.Style, "boho,casual")
	}
	if !q.IncludeLikes {
		t.Error("IncludeLikes = false, want true")
	}
}

func TestEngine_Recommend_ExcludeLiked(t *testing.T) {
	outfits := makeOutfits(4)
	outfits[1].IsLiked = true
	dp := &mockDataProvider{outfits: outfits}
	engine := newTestEngine(t, nil, dp, constantScorer(0.5))

	resp, err := engine.Recommend(context.Background(), testUser(), Request{ExcludeLiked: true})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", resp.TotalCount)
	}

	resp, err = engine.Recommend(context.Background(), testUser(), Request{ExcludeLiked: false})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", resp.TotalCount)
	}
}

func TestEngine_Recommend_CancelledContext(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(16)}
	scorer := constantScorer(0.5)
	engine := newTestEngine(t, nil, dp, scorer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := engine.Recommend(ctx, testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := scorer.calls.Load(); got != 0 {
		t.Errorf("scorer calls = %d, want 0", got)
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("len(Recommendations) = %d, want 0", len(resp.Recommendations))
	}
	if engine.ProfileCache().Len() != 0 {
		t.Error("profile from cancelled load was cached")
	}
}

func TestEngine_Recommend_WithProductionScorer(t *testing.T) {
	outfits := []models.Outfit{
		{
			ID: 1, Title: "Blue Casual", Style: "casual", Points: 80,
			Products: []models.Product{{ID: "p1", Type: "shirt", Title: "Blue shirt", Brand: "Acme", Price: 50}},
		},
		{
			ID: 2, Title: "Formal", Style: "formal", Points: 10,
			Products: []models.Product{{ID: "p2", Type: "suit", Title: "Grey suit", Brand: "Other", Price: 300}},
		},
	}
	dp := &mockDataProvider{outfits: outfits}
	engine := newTestEngine(t, nil, dp, nil)

	resp, err := engine.Recommend(context.Background(), testUser(), Request{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("no recommendations returned")
	}
	top := resp.Recommendations[0]
	if top.Outfit.ID != 1 {
		t.Errorf("top outfit = %d, want 1", top.Outfit.ID)
	}
	if top.Score < 0 || top.Score > 1 {
		t.Errorf("score %v outside [0, 1]", top.Score)
	}
	if _, ok := top.Factors[scoring.FactorUserPreferences]; !ok {
		t.Errorf("factors missing %q: %v", scoring.FactorUserPreferences, top.Factors)
	}
}

func TestEngine_StrengthReport(t *testing.T) {
	t.Run("nil user", func(t *testing.T) {
		engine := newTestEngine(t, nil, &mockDataProvider{}, nil)
		if _, err := engine.StrengthReport(context.Background(), nil); !errors.Is(err, ErrNilUser) {
			t.Errorf("error = %v, want ErrNilUser", err)
		}
	})

	t.Run("uses cached profile", func(t *testing.T) {
		dp := &mockDataProvider{likedOutfits: makeOutfits(10)}
		engine := newTestEngine(t, nil, dp, nil)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			report, err := engine.StrengthReport(ctx, testUser())
			if err != nil {
				t.Fatalf("StrengthReport() error = %v", err)
			}
			if report.DataSummary.LikedOutfits != 10 {
				t.Errorf("LikedOutfits = %d, want 10", report.DataSummary.LikedOutfits)
			}
		}
		if got := dp.likedOutfitsCalls.Load(); got != 1 {
			t.Errorf("LikedOutfits calls = %d, want 1", got)
		}
	})
}

func TestEngine_ConcurrentRecommend(t *testing.T) {
	dp := &mockDataProvider{outfits: makeOutfits(30)}
	engine := newTestEngine(t, nil, dp, constantScorer(0.6))

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := engine.Recommend(context.Background(), testUser(), Request{}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Recommend() error = %v", err)
	}
	if got := engine.Stats().RequestCount; got != 10 {
		t.Errorf("RequestCount = %d, want 10", got)
	}
}
