// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"testing"

	"github.com/p3psi-boo/focalboard-mcp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBoardTool_DefaultsTeamAndType(t *testing.T) {
	var got models.CreateBoard
	svc := &fakeBoardService{
		createBoardFn: func(ctx context.Context, board models.CreateBoard) (models.Board, error) {
			got = board
			return models.Board{ID: "b1", Title: board.Title}, nil
		},
	}
	r := newTestRegistry(svc)

	_, err := r.Call(context.Background(), "create_board", map[string]any{"title": "Roadmap"})

	require.NoError(t, err)
	assert.Equal(t, "default-team", got.TeamID)
	assert.Equal(t, models.BoardTypePrivate, got.Type)
	assert.Equal(t, "Roadmap", got.Title)
}

func TestCreateBoardTool_ExplicitTeamWins(t *testing.T) {
	var got models.CreateBoard
	svc := &fakeBoardService{
		createBoardFn: func(ctx context.Context, board models.CreateBoard) (models.Board, error) {
			got = board
			return models.Board{}, nil
		},
	}
	r := newTestRegistry(svc)

	_, err := r.Call(context.Background(), "create_board", map[string]any{
		"title":  "Roadmap",
		"teamId": "other-team",
		"type":   "O",
	})

	require.NoError(t, err)
	assert.Equal(t, "other-team", got.TeamID)
	assert.Equal(t, models.BoardTypeOpen, got.Type)
}

func TestGetBoardTool_ResolvesNameOrID(t *testing.T) {
	var resolvedName, resolvedTeam string
	svc := &fakeBoardService{
		resolveFn: func(ctx context.Context, nameOrID, teamID string) (models.Board, error) {
			resolvedName, resolvedTeam = nameOrID, teamID
			return models.Board{ID: "b1", Title: nameOrID}, nil
		},
	}
	r := newTestRegistry(svc)

	got, err := r.Call(context.Background(), "get_board", map[string]any{"board": "Roadmap"})

	require.NoError(t, err)
	assert.Equal(t, "Roadmap", resolvedName)
	assert.Equal(t, "default-team", resolvedTeam)

	board, ok := got.(models.Board)
	require.True(t, ok)
	assert.Equal(t, "b1", board.ID)
}

func TestUpdateBoardTool_PatchesResolvedID(t *testing.T) {
	var patchedID string
	var patched models.BoardPatch
	svc := &fakeBoardService{
		resolveFn: func(ctx context.Context, nameOrID, teamID string) (models.Board, error) {
			return models.Board{ID: "b1"}, nil
		},
		patchBoardFn: func(ctx context.Context, boardID string, patch models.BoardPatch) (models.Board, error) {
			patchedID, patched = boardID, patch
			return models.Board{ID: boardID}, nil
		},
	}
	r := newTestRegistry(svc)

	_, err := r.Call(context.Background(), "update_board", map[string]any{
		"board":             "Roadmap",
		"title":             "Renamed",
		"updatedProperties": map[string]any{"k": "v"},
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", patchedID)
	require.NotNil(t, patched.Title)
	assert.Equal(t, "Renamed", *patched.Title)
	assert.Equal(t, map[string]any{"k": "v"}, patched.UpdatedProperties)
}

func TestDeleteBoardTool(t *testing.T) {
	var deletedID string
	svc := &fakeBoardService{
		resolveFn: func(ctx context.Context, nameOrID, teamID string) (models.Board, error) {
			return models.Board{ID: "b1"}, nil
		},
		deleteBoardFn: func(ctx context.Context, boardID string) error {
			deletedID = boardID
			return nil
		},
	}
	r := newTestRegistry(svc)

	got, err := r.Call(context.Background(), "delete_board", map[string]any{"board": "Roadmap"})

	require.NoError(t, err)
	assert.Equal(t, "b1", deletedID)
	assert.Equal(t, map[string]any{"deleted": "b1"}, got)
}

func TestListBoardsTool_FormatsOutput(t *testing.T) {
	svc := &fakeBoardService{
		listBoardsFn: func(ctx context.Context, teamID string) ([]models.Board, error) {
			return []models.Board{{ID: "b1", Title: "Roadmap", Type: models.BoardTypeOpen}}, nil
		},
	}
	r := newTestRegistry(svc)

	got, err := r.Call(context.Background(), "list_boards", map[string]any{})

	require.NoError(t, err)
	boards, ok := got.([]map[string]any)
	require.True(t, ok)
	require.Len(t, boards, 1)
	assert.Equal(t, "b1", boards[0]["id"])
	assert.NotContains(t, boards[0], "description", "empty optional fields are omitted")
}

func TestSearchBoardsTool(t *testing.T) {
	var gotQuery string
	svc := &fakeBoardService{
		searchBoardsFn: func(ctx context.Context, teamID, query string) ([]models.Board, error) {
			gotQuery = query
			return nil, nil
		},
	}
	r := newTestRegistry(svc)

	_, err := r.Call(context.Background(), "search_boards", map[string]any{"query": "Roadmap"})

	require.NoError(t, err)
	assert.Equal(t, "Roadmap", gotQuery)
}
