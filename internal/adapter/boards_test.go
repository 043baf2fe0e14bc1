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

// ── CreateBoard ─────────────────────────────────────────────────────────────

func TestCreateBoard_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/boards", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))

		var body models.CreateBoard
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "team-1", body.TeamID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Board{ID: "board-1", TeamID: body.TeamID, Title: body.Title})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL, Token: "tok", RequestedWith: "XMLHttpRequest"})
	got, err := a.CreateBoard(context.Background(), models.CreateBoard{TeamID: "team-1", Title: "Roadmap"})

	require.NoError(t, err)
	assert.Equal(t, "board-1", got.ID)
	assert.Equal(t, "Roadmap", got.Title)
}

func TestCreateBoard_MissingTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request must be sent for invalid params")
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.CreateBoard(context.Background(), models.CreateBoard{TeamID: "team-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

// ── GetBoard / DeleteBoard ──────────────────────────────────────────────────

func TestGetBoard_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"board not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.GetBoard(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBoard_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	err := a.DeleteBoard(context.Background(), "board-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteAPI)
}

// ── PatchBoard property merge ───────────────────────────────────────────────

func TestPatchBoard_MergesPropertiesBeforeSend(t *testing.T) {
	current := models.Board{
		ID:         "board-1",
		Properties: map[string]any{"keep": "v1", "replace": "old", "drop": "v3"},
	}

	var gets int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets++
			_ = json.NewEncoder(w).Encode(current)
		case http.MethodPatch:
			var patch models.BoardPatch
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))

			// the wire payload carries the fully merged map and no deletions
			assert.Equal(t, map[string]any{"keep": "v1", "replace": "new", "added": "v4"}, patch.UpdatedProperties)
			assert.Empty(t, patch.DeletedProperties)

			_ = json.NewEncoder(w).Encode(models.Board{ID: "board-1", Properties: patch.UpdatedProperties})
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.PatchBoard(context.Background(), "board-1", models.BoardPatch{
		UpdatedProperties: map[string]any{"replace": "new", "added": "v4"},
		DeletedProperties: []string{"drop"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gets)
	assert.Equal(t, "new", got.Properties["replace"])
}

func TestPatchBoard_NoPropertyChanges_SkipsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method, "a scalar patch must not trigger a merge fetch")
		_ = json.NewEncoder(w).Encode(models.Board{ID: "board-1", Title: "Renamed"})
	}))
	defer srv.Close()

	title := "Renamed"
	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.PatchBoard(context.Background(), "board-1", models.BoardPatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestMergeProperties(t *testing.T) {
	existing := map[string]any{"a": "1", "b": "2"}

	merged := mergeProperties(existing, map[string]any{"b": "3", "c": "4"}, []string{"a", "c"})

	// caller's keys win, deletions run after the merge
	assert.Equal(t, map[string]any{"b": "3"}, merged)
	// the input map is left untouched
	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, existing)
}

func TestMergeCardProperties(t *testing.T) {
	existing := []models.PropertyTemplate{
		{ID: "p1", Name: "Status", Type: models.PropertyTypeSelect},
		{ID: "p2", Name: "Owner", Type: models.PropertyTypePerson},
	}

	merged := mergeCardProperties(existing, []models.PropertyTemplate{
		{ID: "p2", Name: "Assignee", Type: models.PropertyTypePerson},
		{ID: "p3", Name: "Due", Type: models.PropertyTypeDate},
	}, []string{"p1"})

	require.Len(t, merged, 2)
	assert.Equal(t, "p2", merged[0].ID)
	assert.Equal(t, "Assignee", merged[0].Name)
	assert.Equal(t, "p3", merged[1].ID)
}

// ── Listing and search ──────────────────────────────────────────────────────

func TestListBoards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/teams/team-1/boards", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Board{{ID: "b1"}, {ID: "b2"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.ListBoards(context.Background(), "team-1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchBoards_QueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/teams/team-1/boards/search", r.URL.Path)
		assert.Equal(t, "Roadmap", r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode([]models.Board{{ID: "b1", Title: "Roadmap"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.SearchBoards(context.Background(), "team-1", "Roadmap")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Roadmap", got[0].Title)
}

func TestGetBoardMembers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/boards/b1/members", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.BoardMember{{BoardID: "b1", UserID: "u1", SchemeAdmin: true}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.GetBoardMembers(context.Background(), "b1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].SchemeAdmin)
}
