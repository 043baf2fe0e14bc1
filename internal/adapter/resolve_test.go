// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/p3psi-boo/focalboard-mcp/internal/config"
	"github.com/p3psi-boo/focalboard-mcp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ID shape detection ──────────────────────────────────────────────────────

func TestLooksLikeID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"compact 27-char id", "b4f6a9zq3k8m2x7c1v5n9d0e4gh", true},
		{"compact exactly 20 chars", "abcdefghij0123456789", true},
		{"hyphenated hex id", "7c9e6679-7425-40de-944b-e07fc1f90ae7", true},
		{"uppercase hyphenated hex id", "7C9E6679-7425-40DE-944B-E07FC1F90AE7", true},
		{"too short", "abcdefghij012345678", false},
		{"contains uppercase", "B4f6a9zq3k8m2x7c1v5n9d0e4gh", false},
		{"contains space", "my project board 2026 plan", false},
		{"hyphens in wrong places", "7c9e66797-425-40de-944b-e07fc1f90ae7", false},
		{"plain name", "Roadmap", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeID(tt.input))
		})
	}
}

// ── ResolveBoard ────────────────────────────────────────────────────────────

func TestResolveBoard_IDShortCircuit(t *testing.T) {
	const boardID = "b4f6a9zq3k8m2x7c1v5n9d0e4gh"

	var searches int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/boards/" + boardID:
			_ = json.NewEncoder(w).Encode(models.Board{ID: boardID, Title: "Roadmap"})
		case "/api/v2/teams/team-1/boards/search":
			searches++
			_ = json.NewEncoder(w).Encode([]models.Board{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ResolveBoard(context.Background(), boardID, "team-1")

	require.NoError(t, err)
	assert.Equal(t, boardID, got.ID)
	assert.Zero(t, searches, "a successful direct fetch must not trigger a search")
}

func TestResolveBoard_IDFetchFailsFallsBackToSearch(t *testing.T) {
	const stale = "b4f6a9zq3k8m2x7c1v5n9d0e4gh"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/boards/" + stale:
			w.WriteHeader(http.StatusNotFound)
		case "/api/v2/teams/team-1/boards/search":
			assert.Equal(t, stale, r.URL.Query().Get("q"))
			_ = json.NewEncoder(w).Encode([]models.Board{{ID: "real-board-id-0123456789", Title: stale}})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ResolveBoard(context.Background(), stale, "team-1")

	require.NoError(t, err)
	assert.Equal(t, "real-board-id-0123456789", got.ID)
}

func TestResolveBoard_IDFetchRemoteErrorFallsBackToSearch(t *testing.T) {
	const lookedUp = "c5g7b0ar4l9n3y8d2w6p0e1f5hi"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/boards/" + lookedUp:
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/v2/teams/team-1/boards/search":
			_ = json.NewEncoder(w).Encode([]models.Board{{ID: "found-board-id-9876543210", Title: lookedUp}})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ResolveBoard(context.Background(), lookedUp, "team-1")

	require.NoError(t, err)
	assert.Equal(t, "found-board-id-9876543210", got.ID)
}

func TestResolveBoard_ExactTitleWinsOverNearMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Board{
			{ID: "b1", Title: "Roadmap 2026"},
			{ID: "b2", Title: "Roadmap"},
			{ID: "b3", Title: "Old Roadmap"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ResolveBoard(context.Background(), "Roadmap", "team-1")

	require.NoError(t, err)
	assert.Equal(t, "b2", got.ID)
}

func TestResolveBoard_SingleNearMatchAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Board{{ID: "b1", Title: "Roadmap 2026"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ResolveBoard(context.Background(), "Roadmap", "team-1")

	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
}

func TestResolveBoard_Ambiguous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Board{
			{ID: "b1", Title: "Roadmap 2025"},
			{ID: "b2", Title: "Roadmap 2026"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.ResolveBoard(context.Background(), "Roadmap", "team-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguous)

	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "board", ambiguous.Kind)
	assert.Equal(t, []string{"Roadmap 2025", "Roadmap 2026"}, ambiguous.Candidates)
}

func TestResolveBoard_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Board{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.ResolveBoard(context.Background(), "Nonexistent", "team-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveBoard_EmptyInput(t *testing.T) {
	a := newTestAdapter(t, config.Focalboard{BaseURL: "http://localhost:1"})
	_, err := a.ResolveBoard(context.Background(), "", "team-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

// ── ResolveBlock ────────────────────────────────────────────────────────────

func newBlockListServer(t *testing.T, blocks []models.Block) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/boards/board-1/blocks", r.URL.Path)
		_ = json.NewEncoder(w).Encode(blocks)
	}))
}

func TestResolveBlock_ByID(t *testing.T) {
	const blockID = "c4f6a9zq3k8m2x7c1v5n9d0e4gh"
	srv := newBlockListServer(t, []models.Block{
		{ID: blockID, Title: "some text"},
		{ID: "other-block-id-0123456789x", Title: blockID},
	})
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ResolveBlock(context.Background(), "board-1", blockID)

	require.NoError(t, err)
	assert.Equal(t, blockID, got.ID, "an ID match must win over a title match")
}

func TestResolveBlock_ByTitle(t *testing.T) {
	srv := newBlockListServer(t, []models.Block{
		{ID: "block-1", Title: "Intro"},
		{ID: "block-2", Title: "Summary"},
	})
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ResolveBlock(context.Background(), "board-1", "Summary")

	require.NoError(t, err)
	assert.Equal(t, "block-2", got.ID)
}

func TestResolveBlock_Ambiguous(t *testing.T) {
	srv := newBlockListServer(t, []models.Block{
		{ID: "block-1", Title: "Notes"},
		{ID: "block-2", Title: "Notes"},
	})
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.ResolveBlock(context.Background(), "board-1", "Notes")

	require.Error(t, err)

	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "block", ambiguous.Kind)
	assert.Equal(t, []string{"Notes (block-1)", "Notes (block-2)"}, ambiguous.Candidates)
}

func TestResolveBlock_NotFound(t *testing.T) {
	srv := newBlockListServer(t, []models.Block{{ID: "block-1", Title: "Intro"}})
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.ResolveBlock(context.Background(), "board-1", "Missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
