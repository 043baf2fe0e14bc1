// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

// CreateBoard implements [BoardService]. It POSTs the creation payload to
// POST {prefix}/boards and returns the server record with the assigned ID.
func (a *focalboardAdapter) CreateBoard(ctx context.Context, board models.CreateBoard) (models.Board, error) {
	if err := board.Validate(); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	resp, err := a.authedRequest(ctx).
		SetBody(board).
		Post(a.apiPath("/boards"))
	if err != nil {
		return models.Board{}, fmt.Errorf("create board request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Board{}, err
	}

	var created models.Board
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Board{}, fmt.Errorf("decode create board response: %w", err)
	}
	return created, nil
}

// GetBoard implements [BoardService].
func (a *focalboardAdapter) GetBoard(ctx context.Context, boardID string) (models.Board, error) {
	resp, err := a.authedRequest(ctx).
		Get(a.apiPath("/boards/%s", boardID))
	if err != nil {
		return models.Board{}, fmt.Errorf("get board request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Board{}, err
	}

	var board models.Board
	if err = json.Unmarshal(resp.Body(), &board); err != nil {
		return models.Board{}, fmt.Errorf("decode board response: %w", err)
	}
	return board, nil
}

// PatchBoard implements [BoardService]. The remote PATCH endpoint is
// documented as incremental but replaces the board property map and the card
// property schema wholesale, so property-level changes in the patch are
// merged onto the current board state here before the request goes out.
//
// The fetch-merge-write sequence is not isolated: a concurrent external
// mutation between the fetch and the write is silently lost. See coerceBoardPatch.
func (a *focalboardAdapter) PatchBoard(ctx context.Context, boardID string, patch models.BoardPatch) (models.Board, error) {
	if err := patch.Validate(); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	coerced, err := a.coerceBoardPatch(ctx, boardID, patch)
	if err != nil {
		return models.Board{}, err
	}

	resp, err := a.authedRequest(ctx).
		SetBody(coerced).
		Patch(a.apiPath("/boards/%s", boardID))
	if err != nil {
		return models.Board{}, fmt.Errorf("patch board request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Board{}, err
	}

	var board models.Board
	if err = json.Unmarshal(resp.Body(), &board); err != nil {
		return models.Board{}, fmt.Errorf("decode patched board response: %w", err)
	}
	return board, nil
}

// coerceBoardPatch rewrites property-level changes into the wholesale
// replacement shapes the server actually applies: the current board state is
// fetched, updated entries are merged on top (caller's keys win), deletions
// are applied after the merge, and the fully merged result is sent.
func (a *focalboardAdapter) coerceBoardPatch(ctx context.Context, boardID string, patch models.BoardPatch) (models.BoardPatch, error) {
	needsMerge := len(patch.UpdatedProperties) > 0 || len(patch.DeletedProperties) > 0 ||
		len(patch.UpdatedCardProperties) > 0 || len(patch.DeletedCardProperties) > 0
	if !needsMerge {
		return patch, nil
	}

	current, err := a.GetBoard(ctx, boardID)
	if err != nil {
		return models.BoardPatch{}, fmt.Errorf("fetch board for patch merge: %w", err)
	}

	if len(patch.UpdatedProperties) > 0 || len(patch.DeletedProperties) > 0 {
		patch.UpdatedProperties = mergeProperties(current.Properties, patch.UpdatedProperties, patch.DeletedProperties)
		patch.DeletedProperties = nil
	}

	if len(patch.UpdatedCardProperties) > 0 || len(patch.DeletedCardProperties) > 0 {
		patch.UpdatedCardProperties = mergeCardProperties(current.CardProperties, patch.UpdatedCardProperties, patch.DeletedCardProperties)
		patch.DeletedCardProperties = nil
	}

	return patch, nil
}

// mergeProperties shallow-merges updated on top of existing (caller's keys
// win), then removes deleted keys. Deletion runs after the merge, so a key
// present in both updated and deleted ends up removed.
func mergeProperties(existing, updated map[string]any, deleted []string) map[string]any {
	merged := make(map[string]any, len(existing)+len(updated))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range updated {
		merged[k] = v
	}
	for _, k := range deleted {
		delete(merged, k)
	}
	return merged
}

// mergeCardProperties merges template updates into the board's ordered card
// property schema by template ID: existing templates are replaced in place,
// unknown ones appended, and deletions applied after the merge.
func mergeCardProperties(existing, updated []models.PropertyTemplate, deleted []string) []models.PropertyTemplate {
	merged := make([]models.PropertyTemplate, len(existing))
	copy(merged, existing)

	for _, tmpl := range updated {
		replaced := false
		for i := range merged {
			if merged[i].ID == tmpl.ID {
				merged[i] = tmpl
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, tmpl)
		}
	}

	if len(deleted) == 0 {
		return merged
	}
	deletedIDs := make(map[string]struct{}, len(deleted))
	for _, id := range deleted {
		deletedIDs[id] = struct{}{}
	}
	kept := merged[:0]
	for _, tmpl := range merged {
		if _, drop := deletedIDs[tmpl.ID]; !drop {
			kept = append(kept, tmpl)
		}
	}
	return kept
}

// DeleteBoard implements [BoardService].
func (a *focalboardAdapter) DeleteBoard(ctx context.Context, boardID string) error {
	resp, err := a.authedRequest(ctx).
		Delete(a.apiPath("/boards/%s", boardID))
	if err != nil {
		return fmt.Errorf("delete board request: %w", err)
	}
	return mapAPIError(resp)
}

// ListBoards implements [BoardService].
func (a *focalboardAdapter) ListBoards(ctx context.Context, teamID string) ([]models.Board, error) {
	resp, err := a.authedRequest(ctx).
		Get(a.apiPath("/teams/%s/boards", teamID))
	if err != nil {
		return nil, fmt.Errorf("list boards request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var boards []models.Board
	if err = json.Unmarshal(resp.Body(), &boards); err != nil {
		return nil, fmt.Errorf("decode boards response: %w", err)
	}
	return boards, nil
}

// SearchBoards implements [BoardService].
func (a *focalboardAdapter) SearchBoards(ctx context.Context, teamID, query string) ([]models.Board, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("q", query).
		Get(a.apiPath("/teams/%s/boards/search", teamID))
	if err != nil {
		return nil, fmt.Errorf("search boards request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var boards []models.Board
	if err = json.Unmarshal(resp.Body(), &boards); err != nil {
		return nil, fmt.Errorf("decode board search response: %w", err)
	}
	return boards, nil
}

// GetBoardMembers implements [BoardService].
func (a *focalboardAdapter) GetBoardMembers(ctx context.Context, boardID string) ([]models.BoardMember, error) {
	resp, err := a.authedRequest(ctx).
		Get(a.apiPath("/boards/%s/members", boardID))
	if err != nil {
		return nil, fmt.Errorf("get board members request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var members []models.BoardMember
	if err = json.Unmarshal(resp.Body(), &members); err != nil {
		return nil, fmt.Errorf("decode board members response: %w", err)
	}
	return members, nil
}

// ListTeamUsers implements [BoardService].
func (a *focalboardAdapter) ListTeamUsers(ctx context.Context, teamID string) ([]models.User, error) {
	resp, err := a.authedRequest(ctx).
		Get(a.apiPath("/teams/%s/users", teamID))
	if err != nil {
		return nil, fmt.Errorf("list team users request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode team users response: %w", err)
	}
	return users, nil
}
