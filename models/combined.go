// SPDX-License-Identifier: Apache-2.0

package models

// BoardsAndBlocks is the bulk-create envelope of the combined
// /boards-and-blocks endpoint and also the shape of its responses.
type BoardsAndBlocks struct {
	Boards []Board `json:"boards"`
	Blocks []Block `json:"blocks"`
}

// InsertBoardsAndBlocks is the request payload for the atomic bulk create.
type InsertBoardsAndBlocks struct {
	Boards []CreateBoard `json:"boards"`
	Blocks []CreateBlock `json:"blocks"`
}

// PatchBoardsAndBlocks pairs IDs with patches positionally: BoardIDs[i]
// pairs with BoardPatches[i], BlockIDs[i] with BlockPatches[i]. Keeping the
// array lengths equal is the caller's responsibility; the envelope is
// transmitted as-is, and how the remote service treats a mismatch is not
// verified from this codebase.
type PatchBoardsAndBlocks struct {
	BoardIDs     []string     `json:"boardIDs"`
	BoardPatches []BoardPatch `json:"boardPatches"`
	BlockIDs     []string     `json:"blockIDs"`
	BlockPatches []BlockPatch `json:"blockPatches"`
}

// DeleteBoardsAndBlocks is the request payload for the atomic bulk delete.
type DeleteBoardsAndBlocks struct {
	Boards []string `json:"boards"`
	Blocks []string `json:"blocks"`
}

// ErrorResponse is the error body shape of the remote service.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorCode int    `json:"errorCode,omitempty"`
}
