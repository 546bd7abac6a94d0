// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylist/internal/database"
	"github.com/tomtom215/stylist/internal/models"
	"github.com/tomtom215/stylist/internal/recommend"
)

// mockRecommender records the last request and returns a canned response.
type mockRecommender struct {
	mu          sync.Mutex
	lastRequest recommend.Request
	lastUser    *models.User

	resp   *recommend.Response
	report *recommend.StrengthReport
	err    error

	recommendCalls atomic.Int64
	reportCalls    atomic.Int64
}

func (m *mockRecommender) Recommend(_ context.Context, user *models.User, req recommend.Request) (*recommend.Response, error) {
	m.recommendCalls.Add(1)
	m.mu.Lock()
	m.lastRequest = req
	m.lastUser = user
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockRecommender) StrengthReport(_ context.Context, _ *models.User) (*recommend.StrengthReport, error) {
	m.reportCalls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockRecommender) Stats() recommend.Stats {
	return recommend.Stats{RequestCount: m.recommendCalls.Load()}
}

type mockUsers struct {
	users map[string]*models.User
	err   error
	calls atomic.Int64
}

func (m *mockUsers) GetUser(_ context.Context, id string) (*models.User, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	return u, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}

func sampleResponse() *recommend.Response {
	return &recommend.Response{
		Recommendations: []recommend.Recommendation{
			{
				Outfit:    models.Outfit{ID: 7, Style: "casual"},
				Score:     0.82,
				Reasoning: []string{"Matches your preferred style exactly"},
				Factors:   map[string]float64{"user_preferences": 0.9},
			},
			{
				Outfit:    models.Outfit{ID: 3, Style: "boho"},
				Score:     0.41,
				Reasoning: []string{"Highly rated outfit"},
				Factors:   map[string]float64{"user_preferences": 0.2},
			},
		},
		TotalCount:       5,
		ProfileStrength:  0.65,
		AlgorithmVersion: recommend.AlgorithmVersion,
		Metadata:         recommend.ResponseMetadata{RequestID: "r1", Candidates: 9},
	}
}

type testEnv struct {
	rec    *mockRecommender
	users  *mockUsers
	pinger *mockPinger
	server http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		rec: &mockRecommender{
			resp: sampleResponse(),
			report: &recommend.StrengthReport{
				ProfileStrength:        0.4,
				Level:                  "Fair",
				ImprovementSuggestions: []string{"Add preferred brands to your profile"},
			},
		},
		users:  &mockUsers{users: map[string]*models.User{"u1": {ID: "u1"}}},
		pinger: &mockPinger{},
	}
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	h := NewHandler(env.rec, env.users, env.pinger, "test")
	env.server = NewRouter(h, cfg).SetupChi()
	return env
}

// envelope mirrors APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func (env *testEnv) do(t *testing.T, method, target string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	var out envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, out
}

func TestGetRecommendations_Defaults(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if !resp.Success || resp.Meta == nil || resp.Meta.RequestID == "" {
		t.Errorf("envelope = %+v, want success with request id", resp)
	}

	got := env.rec.lastRequest
	if got.Limit != 20 || !got.ExcludeLiked || got.StyleFilter != "" {
		t.Errorf("engine request = %+v, want limit 20, exclude liked, no filter", got)
	}
	if got.RequestID != resp.Meta.RequestID {
		t.Errorf("engine request id %q != response request id %q", got.RequestID, resp.Meta.RequestID)
	}

	var payload RecommendationsPayload
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Recommendations) != 2 || payload.TotalCount != 5 {
		t.Errorf("payload = %d recs, total %d", len(payload.Recommendations), payload.TotalCount)
	}
	if payload.AlgorithmVersion != "v1.0" {
		t.Errorf("algorithm_version = %q", payload.AlgorithmVersion)
	}
	wantMsg := "Found 2 personalized recommendations based on your preferences and activity."
	if payload.Message != wantMsg {
		t.Errorf("message = %q, want %q", payload.Message, wantMsg)
	}
	if len(payload.Recommendations[0].Reasoning) != 1 || payload.Recommendations[0].Factors == nil {
		t.Errorf("reasoning should be included by default: %+v", payload.Recommendations[0])
	}
}

func TestGetRecommendations_QueryParams(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1?limit=5&exclude_liked=false&style_filter=boho,casual", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := env.rec.lastRequest
	if got.Limit != 5 || got.ExcludeLiked || got.StyleFilter != "boho,casual" {
		t.Errorf("engine request = %+v", got)
	}
}

func TestGetRecommendations_WithoutReasoning(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1?include_reasoning=false", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var raw struct {
		Recommendations []map[string]json.RawMessage `json:"recommendations"`
	}
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, r := range raw.Recommendations {
		if string(r["reasoning"]) != "[]" {
			t.Errorf("rec %d reasoning = %s, want []", i, r["reasoning"])
		}
		if _, ok := r["match_factors"]; ok {
			t.Errorf("rec %d has match_factors, want omitted", i)
		}
	}

	// the engine's own response must not be mutated
	if len(env.rec.resp.Recommendations[0].Reasoning) != 1 {
		t.Error("engine response was mutated")
	}
}

func TestGetRecommendations_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"limit zero", "limit=0"},
		{"limit above max", "limit=51"},
		{"limit not a number", "limit=ten"},
		{"bad bool", "exclude_liked=maybe"},
		{"bad include_reasoning", "include_reasoning=2"},
		{"bad style chars", "style_filter=boho%3Bdrop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1?"+tt.query, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			if resp.Success || resp.Error == nil || resp.Error.Code != ErrCodeValidationFailed {
				t.Errorf("envelope = %+v, want VALIDATION_FAILED", resp)
			}
			if resp.Error.RequestID == "" {
				t.Error("error should carry request_id")
			}
			if env.users.calls.Load() != 0 || env.rec.recommendCalls.Load() != 0 {
				t.Error("invalid request reached the user lookup or engine")
			}
		})
	}
}

func TestGetRecommendations_LimitBoundaries(t *testing.T) {
	for _, limit := range []string{"1", "50"} {
		env := newTestEnv(t)
		rec, _ := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1?limit="+limit, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("limit=%s status = %d, want 200", limit, rec.Code)
		}
	}
}

func TestGetRecommendations_UserErrors(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		lookupErr  error
		wantStatus int
		wantCode   string
	}{
		{"unknown user", "ghost", nil, http.StatusNotFound, ErrCodeNotFound},
		{"database failure", "u1", errors.New("disk I/O error"), http.StatusInternalServerError, ErrCodeDatabaseError},
		{"timeout", "u1", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.users.err = tt.lookupErr

			rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations/user/"+tt.userID, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
			if env.rec.recommendCalls.Load() != 0 {
				t.Error("engine should not run when the user lookup fails")
			}
		})
	}
}

func TestGetRecommendations_EngineError(t *testing.T) {
	env := newTestEnv(t)
	env.rec.err = recommend.ErrNoDataProvider

	rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if resp.Error.Code != ErrCodeInternalError {
		t.Errorf("code = %s, want INTERNAL_ERROR", resp.Error.Code)
	}
}

func TestGetRecommendations_EmptyMessages(t *testing.T) {
	tests := []struct {
		strength float64
		want     string
	}{
		{0.1, "No recommendations available. Try liking some outfits or products to improve recommendations."},
		{0.6, "No new recommendations available. Try adjusting your preferences or check back later."},
	}

	for _, tt := range tests {
		env := newTestEnv(t)
		env.rec.resp = &recommend.Response{ProfileStrength: tt.strength, AlgorithmVersion: recommend.AlgorithmVersion}

		_, resp := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1", nil)
		var payload RecommendationsPayload
		if err := json.Unmarshal(resp.Data, &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Message != tt.want {
			t.Errorf("strength %.1f message = %q, want %q", tt.strength, payload.Message, tt.want)
		}
		if payload.Recommendations == nil {
			t.Error("recommendations should encode as [] not null")
		}
	}
}

func TestPostRecommendations(t *testing.T) {
	tests := []struct {
		name       string
		body       []byte
		wantStatus int
		check      func(t *testing.T, req recommend.Request)
	}{
		{
			name:       "empty body uses defaults",
			body:       []byte{},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, req recommend.Request) {
				if req.Limit != 20 || !req.ExcludeLiked {
					t.Errorf("request = %+v, want defaults", req)
				}
			},
		},
		{
			name:       "explicit fields",
			body:       []byte(`{"limit": 3, "exclude_liked": false, "style_filter": "formal"}`),
			wantStatus: http.StatusOK,
			check: func(t *testing.T, req recommend.Request) {
				if req.Limit != 3 || req.ExcludeLiked || req.StyleFilter != "formal" {
					t.Errorf("request = %+v", req)
				}
			},
		},
		{
			name:       "explicit zero limit is invalid",
			body:       []byte(`{"limit": 0}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       []byte(`{"limit": `),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       []byte(`{"k": 5}`),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec, _ := env.do(t, http.MethodPost, "/api/v1/recommendations/user/u1", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.check != nil {
				tt.check(t, env.rec.lastRequest)
			}
		})
	}
}

func TestGetProfileStrength(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/recommendations/user/u1/profile-strength", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var report recommend.StrengthReport
	if err := json.Unmarshal(resp.Data, &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Level != "Fair" || len(report.ImprovementSuggestions) != 1 {
		t.Errorf("report = %+v", report)
	}

	rec, _ = env.do(t, http.MethodGet, "/api/v1/recommendations/user/ghost/profile-strength", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown user status = %d, want 404", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/api/v1/health/live", nil)
	if rec.Code != http.StatusOK || !resp.Success {
		t.Errorf("live = %d %+v", rec.Code, resp)
	}

	rec, _ = env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("ready = %d, want 200", rec.Code)
	}

	env.pinger.err = errors.New("database is locked")
	rec, resp = env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
	if rec.Code != http.StatusServiceUnavailable || resp.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("ready with failing db = %d %+v", rec.Code, resp.Error)
	}

	// liveness does not depend on the database
	rec, _ = env.do(t, http.MethodGet, "/api/v1/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("live with failing db = %d, want 200", rec.Code)
	}

	rec, resp = env.do(t, http.MethodGet, "/api/v1/health/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
	var status HealthStatus
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != "degraded" || status.DatabaseConnected || status.Version != "test" {
		t.Errorf("health = %+v", status)
	}
}

func TestHealthReady_NoDatabase(t *testing.T) {
	h := NewHandler(&mockRecommender{}, &mockUsers{}, nil, "test")
	rec := httptest.NewRecorder()
	h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
