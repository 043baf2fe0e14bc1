// SPDX-License-Identifier: Apache-2.0

// Package adapter implements the client side of the remote board service:
// authentication-mode negotiation, name-to-ID resolution, request execution
// and the schema coercions the remote PATCH endpoints require.
//
// The primary abstraction is [BoardService], which decouples the tool layer
// from the underlying REST protocol. The package ships an HTTP/REST
// implementation ([NewFocalboardAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapAPIError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrRemoteAPI] for any other
// non-2xx response).
package adapter

import (
	"context"

	"github.com/p3psi-boo/focalboard-mcp/models"
)

// BoardService defines transport-agnostic communication with the remote
// board service. Implementations are responsible for serialisation,
// authentication header management, name resolution, and mapping
// transport-level errors to the sentinel values defined in this package.
type BoardService interface {
	// Login authenticates against the remote deployment using one of the
	// two supported protocols and stores the obtained session credential
	// for all subsequent requests. See [LoginParams] for mode selection.
	Login(ctx context.Context, params LoginParams) (LoginResult, error)

	// Logout posts a best-effort logout to the protocol-appropriate
	// endpoint and always clears the locally held credential. The returned
	// error reports only whether the remote acknowledged the logout; local
	// state is cleared regardless, so callers on a shutdown path may
	// deliberately ignore it.
	Logout(ctx context.Context, mode AuthMode) error

	// SetSession stores a token/CSRF pair obtained out of band (e.g. from
	// configuration). Either value may be empty.
	SetSession(token, csrfToken string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if no session is established.
	Token() string

	// CreateBoard creates a board; the server assigns its ID.
	CreateBoard(ctx context.Context, board models.CreateBoard) (models.Board, error)
	// GetBoard fetches a board by its canonical ID.
	GetBoard(ctx context.Context, boardID string) (models.Board, error)
	// PatchBoard applies a partial board update. Property-level changes in
	// the patch are merged client-side onto the current board state before
	// transmission; see the implementation for the replace-vs-merge quirk.
	PatchBoard(ctx context.Context, boardID string, patch models.BoardPatch) (models.Board, error)
	// DeleteBoard deletes a board by ID.
	DeleteBoard(ctx context.Context, boardID string) error
	// ListBoards lists all boards of a team.
	ListBoards(ctx context.Context, teamID string) ([]models.Board, error)
	// SearchBoards searches the team's boards by title.
	SearchBoards(ctx context.Context, teamID, query string) ([]models.Board, error)
	// GetBoardMembers lists the membership records of a board.
	GetBoardMembers(ctx context.Context, boardID string) ([]models.BoardMember, error)
	// ListTeamUsers lists the members of a team.
	ListTeamUsers(ctx context.Context, teamID string) ([]models.User, error)

	// InsertBlocks creates blocks in a board. Blocks without an ID are
	// assigned one client-side so intra-batch parent links stay valid.
	InsertBlocks(ctx context.Context, boardID string, blocks []models.CreateBlock, disableNotify bool) ([]models.Block, error)
	// GetBlocks lists the blocks of a board, optionally filtered by parent
	// block ID and/or block type.
	GetBlocks(ctx context.Context, boardID, parentID string, blockType models.BlockType) ([]models.Block, error)
	// PatchBlock applies a partial update to a single block.
	PatchBlock(ctx context.Context, boardID, blockID string, patch models.BlockPatch, disableNotify bool) (models.Block, error)
	// DeleteBlock deletes a single block.
	DeleteBlock(ctx context.Context, boardID, blockID string, disableNotify bool) error

	// ListCards pages through the cards of a board.
	ListCards(ctx context.Context, boardID string, page, perPage int) ([]models.Card, error)
	// GetCard fetches a single card with all its properties.
	GetCard(ctx context.Context, cardID string) (models.Card, error)
	// CreateCard creates a card in a board.
	CreateCard(ctx context.Context, boardID string, card models.CreateCard, disableNotify bool) (models.Card, error)
	// PatchCard applies a partial card update. UpdatedProperties are merged
	// onto the card's current property map client-side before transmission;
	// see the implementation for the replace-vs-merge quirk.
	PatchCard(ctx context.Context, cardID string, patch models.CardPatch, disableNotify bool) (models.Card, error)

	// InsertBoardsAndBlocks atomically creates boards and blocks together.
	InsertBoardsAndBlocks(ctx context.Context, bab models.InsertBoardsAndBlocks) (models.BoardsAndBlocks, error)
	// PatchBoardsAndBlocks atomically patches boards and blocks together.
	// The envelope is transmitted as-is; ID/patch array length equality is
	// the caller's responsibility.
	PatchBoardsAndBlocks(ctx context.Context, pbab models.PatchBoardsAndBlocks) (models.BoardsAndBlocks, error)
	// DeleteBoardsAndBlocks atomically deletes boards and blocks by ID.
	DeleteBoardsAndBlocks(ctx context.Context, dbab models.DeleteBoardsAndBlocks) error

	// ResolveBoard translates a human-supplied board name or ID into the
	// canonical board record, scoped to teamID. ID-shaped inputs attempt a
	// direct fetch first; name inputs go through title search with
	// exact-match priority and ambiguity reporting.
	ResolveBoard(ctx context.Context, nameOrID, teamID string) (models.Board, error)
	// ResolveBlock translates a human-supplied block name or ID into the
	// block record within boardID, listing the board's blocks and matching
	// in memory.
	ResolveBlock(ctx context.Context, boardID, nameOrID string) (models.Block, error)
}
