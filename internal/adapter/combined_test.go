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

func TestInsertBoardsAndBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/boards-and-blocks", r.URL.Path)

		var payload struct {
			Boards []models.CreateBoard `json:"boards"`
			Blocks []models.Block       `json:"blocks"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Boards, 1)
		require.Len(t, payload.Blocks, 1)
		assert.Len(t, payload.Blocks[0].ID, 27)
		assert.Positive(t, payload.Blocks[0].CreateAt)

		_ = json.NewEncoder(w).Encode(models.BoardsAndBlocks{
			Boards: []models.Board{{ID: "b1", Title: payload.Boards[0].Title}},
			Blocks: payload.Blocks,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	got, err := a.InsertBoardsAndBlocks(context.Background(), models.InsertBoardsAndBlocks{
		Boards: []models.CreateBoard{{TeamID: "team-1", Title: "Roadmap"}},
		Blocks: []models.CreateBlock{{Type: models.BlockTypeText, Title: "hello"}},
	})

	require.NoError(t, err)
	assert.Len(t, got.Boards, 1)
	assert.Len(t, got.Blocks, 1)
}

func TestInsertBoardsAndBlocks_InvalidBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request must be sent for an invalid batch")
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.InsertBoardsAndBlocks(context.Background(), models.InsertBoardsAndBlocks{
		Boards: []models.CreateBoard{{Title: "teamless"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPatchBoardsAndBlocks_TransmitsEnvelopeAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var payload models.PatchBoardsAndBlocks
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"b1"}, payload.BoardIDs)
		assert.Equal(t, []string{"blk1", "blk2"}, payload.BlockIDs)

		_ = json.NewEncoder(w).Encode(models.BoardsAndBlocks{})
	}))
	defer srv.Close()

	title := "Renamed"
	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	_, err := a.PatchBoardsAndBlocks(context.Background(), models.PatchBoardsAndBlocks{
		BoardIDs:     []string{"b1"},
		BoardPatches: []models.BoardPatch{{Title: &title}},
		BlockIDs:     []string{"blk1", "blk2"},
		BlockPatches: []models.BlockPatch{{Title: &title}, {Title: &title}},
	})

	require.NoError(t, err)
}

func TestDeleteBoardsAndBlocks_EmptyEnvelope(t *testing.T) {
	a := newTestAdapter(t, config.Focalboard{BaseURL: "http://localhost:1"})
	err := a.DeleteBoardsAndBlocks(context.Background(), models.DeleteBoardsAndBlocks{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteBoardsAndBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v2/boards-and-blocks", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, config.Focalboard{BaseURL: srv.URL})
	err := a.DeleteBoardsAndBlocks(context.Background(), models.DeleteBoardsAndBlocks{
		Boards: []string{"b1"},
	})

	require.NoError(t, err)
}
