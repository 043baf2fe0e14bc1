// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

// looksLikeID reports whether s lexically matches one of the identifier
// shapes the remote service uses: a lowercase-alphanumeric token of at least
// 20 characters, or a canonical 36-character hyphenated hex identifier.
// Name-shaped inputs (spaces, uppercase, short strings) fall through to
// title search.
func looksLikeID(s string) bool {
	if isCompactID(s) {
		return true
	}
	return isHyphenatedID(s)
}

func isCompactID(s string) bool {
	if len(s) < 20 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func isHyphenatedID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 8 || i == 13 || i == 18 || i == 23 {
			if c != '-' {
				return false
			}
			continue
		}
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// ResolveBoard implements [BoardService]. ID-shaped inputs short-circuit to
// a direct fetch; if that succeeds no search call is issued at all. On a
// failed direct fetch, and for name-shaped inputs, a title search scoped to
// teamID decides: an exact title match wins over near-matches, a single
// result of any kind is accepted, multiple results raise an
// [AmbiguousError] naming all candidate titles, and zero results raise
// [ErrNotFound].
func (a *focalboardAdapter) ResolveBoard(ctx context.Context, nameOrID, teamID string) (models.Board, error) {
	if nameOrID == "" {
		return models.Board{}, fmt.Errorf("%w: board name or ID is empty", ErrValidation)
	}

	if looksLikeID(nameOrID) {
		// Any direct-fetch failure falls through to title search; an
		// ID-shaped string can still be a board title.
		if board, err := a.GetBoard(ctx, nameOrID); err == nil {
			return board, nil
		}
	}

	results, err := a.SearchBoards(ctx, teamID, nameOrID)
	if err != nil {
		return models.Board{}, err
	}

	var exact []models.Board
	for _, b := range results {
		if b.Title == nameOrID {
			exact = append(exact, b)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	switch len(results) {
	case 0:
		return models.Board{}, fmt.Errorf("%w: no board matches %q in team %q", ErrNotFound, nameOrID, teamID)
	case 1:
		return results[0], nil
	default:
		titles := make([]string, 0, len(results))
		for _, b := range results {
			titles = append(titles, b.Title)
		}
		return models.Board{}, &AmbiguousError{Kind: "board", Name: nameOrID, Candidates: titles}
	}
}

// ResolveBlock implements [BoardService]. Blocks have no reliable direct
// get-by-ID endpoint across deployments, so resolution always lists the
// board's blocks and filters in memory. Ambiguity candidates are reported as
// "title (id)" pairs so the caller can disambiguate with the ID directly
// next time.
func (a *focalboardAdapter) ResolveBlock(ctx context.Context, boardID, nameOrID string) (models.Block, error) {
	if nameOrID == "" {
		return models.Block{}, fmt.Errorf("%w: block name or ID is empty", ErrValidation)
	}

	blocks, err := a.GetBlocks(ctx, boardID, "", "")
	if err != nil {
		return models.Block{}, err
	}

	if looksLikeID(nameOrID) {
		for _, b := range blocks {
			if b.ID == nameOrID {
				return b, nil
			}
		}
	}

	var matches []models.Block
	for _, b := range blocks {
		if b.Title == nameOrID {
			matches = append(matches, b)
		}
	}

	switch len(matches) {
	case 0:
		return models.Block{}, fmt.Errorf("%w: no block matches %q in board %q", ErrNotFound, nameOrID, boardID)
	case 1:
		return matches[0], nil
	default:
		candidates := make([]string, 0, len(matches))
		for _, b := range matches {
			candidates = append(candidates, fmt.Sprintf("%s (%s)", b.Title, b.ID))
		}
		return models.Block{}, &AmbiguousError{Kind: "block", Name: nameOrID, Candidates: candidates}
	}
}
