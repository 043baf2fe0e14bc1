// SPDX-License-Identifier: Apache-2.0

package models

// Card is a specialized block variant carrying a structured property map and
// an ordered content sequence. Property keys should correspond to the IDs
// declared in the owning board's CardProperties; that correspondence is
// server-side knowledge and is not enforced here.
type Card struct {
	ID      string `json:"id"`
	BoardID string `json:"boardId"`

	CreatedBy  string `json:"createdBy,omitempty"`
	ModifiedBy string `json:"modifiedBy,omitempty"`

	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`

	// Properties maps property-template IDs to values. For select
	// properties the value is the option ID.
	Properties map[string]any `json:"properties,omitempty"`

	// ContentOrder is the visible sequence of child-block IDs.
	ContentOrder []any `json:"contentOrder,omitempty"`

	IsTemplate bool `json:"isTemplate,omitempty"`

	CreateAt int64 `json:"createAt,omitempty"`
	UpdateAt int64 `json:"updateAt,omitempty"`
	DeleteAt int64 `json:"deleteAt,omitempty"`
}

// CreateCard is the payload for card creation within a board.
type CreateCard struct {
	Title        string         `json:"title,omitempty"`
	Icon         string         `json:"icon,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
	ContentOrder []any          `json:"contentOrder,omitempty"`
}

// CardPatch is a partial card update. UpdatedProperties/DeletedProperties
// express property-level merge/removal; the remote PATCH endpoint replaces
// the property map wholesale regardless, which is why the adapter merges
// client-side before transmission.
type CardPatch struct {
	Title        *string `json:"title,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	ContentOrder []any   `json:"contentOrder,omitempty"`

	UpdatedProperties map[string]any `json:"updatedProperties,omitempty"`
	DeletedProperties []string       `json:"deletedProperties,omitempty"`
}
