// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

func (t *toolset) registerBlockTools(r *Registry) {
	r.register(Definition{
		Name:        "create_blocks",
		Description: "Create blocks in a board",
		InputSchema: objectSchema(map[string]any{
			"board":         map[string]any{"type": "string", "description": "Board name or ID"},
			"blocks":        map[string]any{"type": "array", "items": map[string]any{"type": "object"}, "description": "Array of blocks to create"},
			"disableNotify": map[string]any{"type": "boolean", "default": false},
		}, "board", "blocks"),
	}, t.handleCreateBlocks)

	r.register(Definition{
		Name:        "get_blocks",
		Description: "Get blocks from a board",
		InputSchema: objectSchema(map[string]any{
			"board":    map[string]any{"type": "string", "description": "Board name or ID"},
			"parentId": map[string]any{"type": "string", "description": "Filter by parent block ID"},
			"type":     map[string]any{"type": "string", "description": "Filter by block type"},
		}, "board"),
	}, t.handleGetBlocks)

	r.register(Definition{
		Name:        "update_block",
		Description: "Update a block",
		InputSchema: objectSchema(map[string]any{
			"board":         map[string]any{"type": "string", "description": "Board name or ID"},
			"block":         map[string]any{"type": "string", "description": "Block title or ID"},
			"title":         map[string]any{"type": "string"},
			"updatedFields": map[string]any{"type": "object"},
			"deletedFields": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"disableNotify": map[string]any{"type": "boolean", "default": false},
		}, "board", "block"),
	}, t.handleUpdateBlock)

	r.register(Definition{
		Name:        "delete_block",
		Description: "Delete a block",
		InputSchema: objectSchema(map[string]any{
			"board":         map[string]any{"type": "string", "description": "Board name or ID"},
			"block":         map[string]any{"type": "string", "description": "Block title or ID"},
			"disableNotify": map[string]any{"type": "boolean", "default": false},
		}, "board", "block"),
	}, t.handleDeleteBlock)
}

func (t *toolset) handleCreateBlocks(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board         string               `json:"board"`
		Blocks        []models.CreateBlock `json:"blocks"`
		DisableNotify bool                 `json:"disableNotify"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}

	created, err := t.svc.InsertBlocks(ctx, board.ID, req.Blocks, req.DisableNotify)
	if err != nil {
		return nil, err
	}
	return formatBlocks(created), nil
}

func (t *toolset) handleGetBlocks(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board    string           `json:"board"`
		ParentID string           `json:"parentId"`
		Type     models.BlockType `json:"type"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}

	blocks, err := t.svc.GetBlocks(ctx, board.ID, req.ParentID, req.Type)
	if err != nil {
		return nil, err
	}
	return formatBlocks(blocks), nil
}

func (t *toolset) handleUpdateBlock(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board         string `json:"board"`
		Block         string `json:"block"`
		DisableNotify bool   `json:"disableNotify"`
		models.BlockPatch
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}
	block, err := t.svc.ResolveBlock(ctx, board.ID, req.Block)
	if err != nil {
		return nil, err
	}

	patched, err := t.svc.PatchBlock(ctx, board.ID, block.ID, req.BlockPatch, req.DisableNotify)
	if err != nil {
		return nil, err
	}
	return formatBlock(patched), nil
}

func (t *toolset) handleDeleteBlock(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board         string `json:"board"`
		Block         string `json:"block"`
		DisableNotify bool   `json:"disableNotify"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}
	block, err := t.svc.ResolveBlock(ctx, board.ID, req.Block)
	if err != nil {
		return nil, err
	}

	if err := t.svc.DeleteBlock(ctx, board.ID, block.ID, req.DisableNotify); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": block.ID}, nil
}
