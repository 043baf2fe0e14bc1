// SPDX-License-Identifier: Apache-2.0

package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BlockType is the closed enumeration of block kinds understood by the
// remote service. The semantics of Block.Fields depend on it.
type BlockType string

const (
	BlockTypeText       BlockType = "text"
	BlockTypeImage      BlockType = "image"
	BlockTypeDivider    BlockType = "divider"
	BlockTypeCheckbox   BlockType = "checkbox"
	BlockTypeH1         BlockType = "h1"
	BlockTypeH2         BlockType = "h2"
	BlockTypeH3         BlockType = "h3"
	BlockTypeListItem   BlockType = "list-item"
	BlockTypeAttachment BlockType = "attachment"
	BlockTypeQuote      BlockType = "quote"
	BlockTypeVideo      BlockType = "video"
	BlockTypeCard       BlockType = "card"
	BlockTypeView       BlockType = "view"
	BlockTypeComment    BlockType = "comment"
)

func blockTypeRule() validation.Rule {
	return validation.In(
		BlockTypeText, BlockTypeImage, BlockTypeDivider, BlockTypeCheckbox,
		BlockTypeH1, BlockTypeH2, BlockTypeH3, BlockTypeListItem,
		BlockTypeAttachment, BlockTypeQuote, BlockTypeVideo, BlockTypeCard,
		BlockTypeView, BlockTypeComment,
	)
}

// Block is the atomic content unit within a board. Blocks with a ParentID
// form a forest scoped to their board; the parent relation is
// server-authoritative and not verified client-side.
//
// Timestamps are epoch milliseconds. DeleteAt == 0 means "not deleted".
type Block struct {
	ID       string `json:"id"`
	BoardID  string `json:"boardId"`
	ParentID string `json:"parentId,omitempty"`

	CreatedBy  string `json:"createdBy,omitempty"`
	ModifiedBy string `json:"modifiedBy,omitempty"`

	Schema int       `json:"schema,omitempty"`
	Type   BlockType `json:"type"`
	Title  string    `json:"title,omitempty"`

	// Fields is an open-ended map whose shape is defined by Type.
	Fields map[string]any `json:"fields,omitempty"`

	CreateAt int64 `json:"createAt,omitempty"`
	UpdateAt int64 `json:"updateAt,omitempty"`
	DeleteAt int64 `json:"deleteAt,omitempty"`
}

// CreateBlock is the payload for block creation. IDs are assigned client-side
// before transmission so that ParentID references between blocks of the same
// batch hold up before the server has echoed canonical records.
type CreateBlock struct {
	BoardID  string         `json:"boardId,omitempty"`
	ParentID string         `json:"parentId,omitempty"`
	Type     BlockType      `json:"type"`
	Title    string         `json:"title,omitempty"`
	Fields   map[string]any `json:"fields,omitempty"`
}

// Validate enforces the creation invariant: type is required and must be one
// of the known block kinds. Runs before any network call.
func (b CreateBlock) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Type, validation.Required, blockTypeRule()),
	)
}

// BlockPatch is a partial block update. UpdatedFields/DeletedFields express
// field-level merge/removal on Block.Fields, distinct from replacing the
// whole map.
type BlockPatch struct {
	Title    *string    `json:"title,omitempty"`
	ParentID *string    `json:"parentId,omitempty"`
	Schema   *int       `json:"schema,omitempty"`
	Type     *BlockType `json:"type,omitempty"`

	UpdatedFields map[string]any `json:"updatedFields,omitempty"`
	DeletedFields []string       `json:"deletedFields,omitempty"`
}

// Validate checks the optional type field of the patch.
func (p BlockPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, blockTypeRule()),
	)
}
