// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

// InsertBoardsAndBlocks implements [BoardService]. Boards are validated
// locally before transmission; blocks get client-side IDs and timestamps the
// same way single-board block creation does, so a batch can link its own
// boards and blocks together.
func (a *focalboardAdapter) InsertBoardsAndBlocks(ctx context.Context, bab models.InsertBoardsAndBlocks) (models.BoardsAndBlocks, error) {
	for _, board := range bab.Boards {
		if err := board.Validate(); err != nil {
			return models.BoardsAndBlocks{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	now := time.Now().UnixMilli()
	blocks := make([]models.Block, 0, len(bab.Blocks))
	for _, b := range bab.Blocks {
		if err := b.Validate(); err != nil {
			return models.BoardsAndBlocks{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		blocks = append(blocks, models.Block{
			ID:       NewBlockID(),
			BoardID:  b.BoardID,
			ParentID: b.ParentID,
			Type:     b.Type,
			Title:    b.Title,
			Fields:   b.Fields,
			CreateAt: now,
			UpdateAt: now,
		})
	}

	payload := struct {
		Boards []models.CreateBoard `json:"boards"`
		Blocks []models.Block       `json:"blocks"`
	}{Boards: bab.Boards, Blocks: blocks}

	resp, err := a.authedRequest(ctx).
		SetBody(payload).
		Post(a.apiPath("/boards-and-blocks"))
	if err != nil {
		return models.BoardsAndBlocks{}, fmt.Errorf("insert boards and blocks request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.BoardsAndBlocks{}, err
	}

	var created models.BoardsAndBlocks
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.BoardsAndBlocks{}, fmt.Errorf("decode boards and blocks response: %w", err)
	}
	return created, nil
}

// PatchBoardsAndBlocks implements [BoardService]. The envelope pairs IDs
// with patches positionally and is transmitted exactly as supplied: whether
// the remote service rejects, truncates or pads mismatched array lengths is
// unverified, so no length check is imposed here.
func (a *focalboardAdapter) PatchBoardsAndBlocks(ctx context.Context, pbab models.PatchBoardsAndBlocks) (models.BoardsAndBlocks, error) {
	for _, patch := range pbab.BoardPatches {
		if err := patch.Validate(); err != nil {
			return models.BoardsAndBlocks{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	for _, patch := range pbab.BlockPatches {
		if err := patch.Validate(); err != nil {
			return models.BoardsAndBlocks{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	resp, err := a.authedRequest(ctx).
		SetBody(pbab).
		Patch(a.apiPath("/boards-and-blocks"))
	if err != nil {
		return models.BoardsAndBlocks{}, fmt.Errorf("patch boards and blocks request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.BoardsAndBlocks{}, err
	}

	var patched models.BoardsAndBlocks
	if err = json.Unmarshal(resp.Body(), &patched); err != nil {
		return models.BoardsAndBlocks{}, fmt.Errorf("decode patched boards and blocks response: %w", err)
	}
	return patched, nil
}

// DeleteBoardsAndBlocks implements [BoardService].
func (a *focalboardAdapter) DeleteBoardsAndBlocks(ctx context.Context, dbab models.DeleteBoardsAndBlocks) error {
	if len(dbab.Boards) == 0 && len(dbab.Blocks) == 0 {
		return fmt.Errorf("%w: nothing to delete", ErrValidation)
	}

	resp, err := a.authedRequest(ctx).
		SetBody(dbab).
		Delete(a.apiPath("/boards-and-blocks"))
	if err != nil {
		return fmt.Errorf("delete boards and blocks request: %w", err)
	}
	return mapAPIError(resp)
}
