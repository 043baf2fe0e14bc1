// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

// InsertBlocks implements [BoardService]. Each creation payload is expanded
// into a full block record before transmission: a client-generated ID, the
// owning board ID, and creation/update timestamps. Client-side IDs keep
// intra-batch ParentID references valid before the server echoes canonical
// records back.
func (a *focalboardAdapter) InsertBlocks(ctx context.Context, boardID string, blocks []models.CreateBlock, disableNotify bool) ([]models.Block, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no blocks provided", ErrValidation)
	}

	now := time.Now().UnixMilli()
	payload := make([]models.Block, 0, len(blocks))
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		payload = append(payload, models.Block{
			ID:       NewBlockID(),
			BoardID:  boardID,
			ParentID: b.ParentID,
			Type:     b.Type,
			Title:    b.Title,
			Fields:   b.Fields,
			CreateAt: now,
			UpdateAt: now,
		})
	}

	resp, err := a.authedRequest(ctx).
		SetQueryParam("disable_notify", strconv.FormatBool(disableNotify)).
		SetBody(payload).
		Post(a.apiPath("/boards/%s/blocks", boardID))
	if err != nil {
		return nil, fmt.Errorf("insert blocks request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var created []models.Block
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("decode insert blocks response: %w", err)
	}
	return created, nil
}

// GetBlocks implements [BoardService]. Empty parentID and blockType mean
// "no filter".
func (a *focalboardAdapter) GetBlocks(ctx context.Context, boardID, parentID string, blockType models.BlockType) ([]models.Block, error) {
	req := a.authedRequest(ctx)
	if parentID != "" {
		req.SetQueryParam("parent_id", parentID)
	}
	if blockType != "" {
		req.SetQueryParam("type", string(blockType))
	}

	resp, err := req.Get(a.apiPath("/boards/%s/blocks", boardID))
	if err != nil {
		return nil, fmt.Errorf("get blocks request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var blocks []models.Block
	if err = json.Unmarshal(resp.Body(), &blocks); err != nil {
		return nil, fmt.Errorf("decode blocks response: %w", err)
	}
	return blocks, nil
}

// PatchBlock implements [BoardService]. Field-level merge/removal semantics
// (UpdatedFields/DeletedFields) are applied by the server for blocks, so the
// patch is transmitted as-is.
func (a *focalboardAdapter) PatchBlock(ctx context.Context, boardID, blockID string, patch models.BlockPatch, disableNotify bool) (models.Block, error) {
	if err := patch.Validate(); err != nil {
		return models.Block{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	resp, err := a.authedRequest(ctx).
		SetQueryParam("disable_notify", strconv.FormatBool(disableNotify)).
		SetBody(patch).
		Patch(a.apiPath("/boards/%s/blocks/%s", boardID, blockID))
	if err != nil {
		return models.Block{}, fmt.Errorf("patch block request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Block{}, err
	}

	var block models.Block
	if err = json.Unmarshal(resp.Body(), &block); err != nil {
		return models.Block{}, fmt.Errorf("decode patched block response: %w", err)
	}
	return block, nil
}

// DeleteBlock implements [BoardService].
func (a *focalboardAdapter) DeleteBlock(ctx context.Context, boardID, blockID string, disableNotify bool) error {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("disable_notify", strconv.FormatBool(disableNotify)).
		Delete(a.apiPath("/boards/%s/blocks/%s", boardID, blockID))
	if err != nil {
		return fmt.Errorf("delete block request: %w", err)
	}
	return mapAPIError(resp)
}
