// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

func (t *toolset) registerBoardTools(r *Registry) {
	r.register(Definition{
		Name:        "create_board",
		Description: "Create a new board in a team",
		InputSchema: objectSchema(map[string]any{
			"teamId":      map[string]any{"type": "string", "description": "Team ID (defaults to the configured team)"},
			"title":       map[string]any{"type": "string", "description": "Board title"},
			"description": map[string]any{"type": "string", "description": "Board description"},
			"icon":        map[string]any{"type": "string", "description": "Board icon emoji"},
			"type":        map[string]any{"type": "string", "enum": []string{"O", "P"}, "default": "P", "description": "O=Open, P=Private"},
		}, "title"),
	}, t.handleCreateBoard)

	r.register(Definition{
		Name:        "get_board",
		Description: "Get board details by name or ID",
		InputSchema: objectSchema(map[string]any{
			"board": map[string]any{"type": "string", "description": "Board name or ID"},
		}, "board"),
	}, t.handleGetBoard)

	r.register(Definition{
		Name:        "update_board",
		Description: "Update board properties incrementally. updatedProperties/updatedCardProperties only change what is specified.",
		InputSchema: objectSchema(map[string]any{
			"board":                 map[string]any{"type": "string", "description": "Board name or ID"},
			"title":                 map[string]any{"type": "string"},
			"description":           map[string]any{"type": "string"},
			"icon":                  map[string]any{"type": "string"},
			"type":                  map[string]any{"type": "string", "enum": []string{"O", "P"}},
			"updatedProperties":     map[string]any{"type": "object"},
			"deletedProperties":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"updatedCardProperties": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
			"deletedCardProperties": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		}, "board"),
	}, t.handleUpdateBoard)

	r.register(Definition{
		Name:        "delete_board",
		Description: "Delete a board",
		InputSchema: objectSchema(map[string]any{
			"board": map[string]any{"type": "string", "description": "Board name or ID"},
		}, "board"),
	}, t.handleDeleteBoard)

	r.register(Definition{
		Name:        "list_boards",
		Description: "List all boards in a team",
		InputSchema: objectSchema(map[string]any{
			"teamId": map[string]any{"type": "string", "description": "Team ID (defaults to the configured team)"},
		}),
	}, t.handleListBoards)

	r.register(Definition{
		Name:        "search_boards",
		Description: "Search boards by title",
		InputSchema: objectSchema(map[string]any{
			"teamId": map[string]any{"type": "string", "description": "Team ID (defaults to the configured team)"},
			"query":  map[string]any{"type": "string", "description": "Search query"},
		}, "query"),
	}, t.handleSearchBoards)

	r.register(Definition{
		Name:        "get_board_members",
		Description: "List the members of a board",
		InputSchema: objectSchema(map[string]any{
			"board": map[string]any{"type": "string", "description": "Board name or ID"},
		}, "board"),
	}, t.handleGetBoardMembers)

	r.register(Definition{
		Name:        "list_team_users",
		Description: "List the users of a team",
		InputSchema: objectSchema(map[string]any{
			"teamId": map[string]any{"type": "string", "description": "Team ID (defaults to the configured team)"},
		}),
	}, t.handleListTeamUsers)
}

func (t *toolset) handleCreateBoard(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		TeamID      string           `json:"teamId"`
		Title       string           `json:"title"`
		Description string           `json:"description"`
		Icon        string           `json:"icon"`
		Type        models.BoardType `json:"type"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}
	if req.Type == "" {
		req.Type = models.BoardTypePrivate
	}

	return t.svc.CreateBoard(ctx, models.CreateBoard{
		TeamID:      t.team(req.TeamID),
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Type:        req.Type,
	})
}

func (t *toolset) handleGetBoard(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board string `json:"board"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	return t.svc.ResolveBoard(ctx, req.Board, t.teamID)
}

func (t *toolset) handleUpdateBoard(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board string `json:"board"`
		models.BoardPatch
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}

	return t.svc.PatchBoard(ctx, board.ID, req.BoardPatch)
}

func (t *toolset) handleDeleteBoard(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board string `json:"board"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}
	if err := t.svc.DeleteBoard(ctx, board.ID); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": board.ID}, nil
}

func (t *toolset) handleListBoards(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		TeamID string `json:"teamId"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	boards, err := t.svc.ListBoards(ctx, t.team(req.TeamID))
	if err != nil {
		return nil, err
	}
	return formatBoards(boards), nil
}

func (t *toolset) handleSearchBoards(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		TeamID string `json:"teamId"`
		Query  string `json:"query"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	boards, err := t.svc.SearchBoards(ctx, t.team(req.TeamID), req.Query)
	if err != nil {
		return nil, err
	}
	return formatBoards(boards), nil
}

func (t *toolset) handleGetBoardMembers(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board string `json:"board"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}
	return t.svc.GetBoardMembers(ctx, board.ID)
}

func (t *toolset) handleListTeamUsers(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		TeamID string `json:"teamId"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	return t.svc.ListTeamUsers(ctx, t.team(req.TeamID))
}

// objectSchema builds the JSON-schema descriptor shared by every tool: an
// object with the given properties and required names.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
