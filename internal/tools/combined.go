// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

func (t *toolset) registerCombinedTools(r *Registry) {
	r.register(Definition{
		Name:        "insert_boards_and_blocks",
		Description: "Atomically create boards and blocks together",
		InputSchema: objectSchema(map[string]any{
			"boards": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
			"blocks": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
		}, "boards", "blocks"),
	}, t.handleInsertBoardsAndBlocks)

	r.register(Definition{
		Name:        "patch_boards_and_blocks",
		Description: "Atomically update boards and blocks together. IDs pair with patches positionally.",
		InputSchema: objectSchema(map[string]any{
			"boardIDs":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"boardPatches": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
			"blockIDs":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"blockPatches": map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
		}, "boardIDs", "boardPatches", "blockIDs", "blockPatches"),
	}, t.handlePatchBoardsAndBlocks)

	r.register(Definition{
		Name:        "delete_boards_and_blocks",
		Description: "Atomically delete boards and blocks by ID",
		InputSchema: objectSchema(map[string]any{
			"boards": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"blocks": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		}),
	}, t.handleDeleteBoardsAndBlocks)
}

func (t *toolset) handleInsertBoardsAndBlocks(ctx context.Context, args map[string]any) (any, error) {
	var req models.InsertBoardsAndBlocks
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	return t.svc.InsertBoardsAndBlocks(ctx, req)
}

func (t *toolset) handlePatchBoardsAndBlocks(ctx context.Context, args map[string]any) (any, error) {
	var req models.PatchBoardsAndBlocks
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	return t.svc.PatchBoardsAndBlocks(ctx, req)
}

func (t *toolset) handleDeleteBoardsAndBlocks(ctx context.Context, args map[string]any) (any, error) {
	var req models.DeleteBoardsAndBlocks
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	if err := t.svc.DeleteBoardsAndBlocks(ctx, req); err != nil {
		return nil, err
	}
	return map[string]any{"deletedBoards": len(req.Boards), "deletedBlocks": len(req.Blocks)}, nil
}
