// SPDX-License-Identifier: Apache-2.0

package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BoardType controls board visibility.
type BoardType string

const (
	// BoardTypeOpen boards are visible to every team member.
	BoardTypeOpen BoardType = "O"
	// BoardTypePrivate boards are visible to explicit members only.
	BoardTypePrivate BoardType = "P"
)

// PropertyType is the value type of a card property template.
type PropertyType string

const (
	PropertyTypeText        PropertyType = "text"
	PropertyTypeNumber      PropertyType = "number"
	PropertyTypeSelect      PropertyType = "select"
	PropertyTypeMultiSelect PropertyType = "multiSelect"
	PropertyTypeDate        PropertyType = "date"
	PropertyTypePerson      PropertyType = "person"
	PropertyTypeCheckbox    PropertyType = "checkbox"
	PropertyTypeURL         PropertyType = "url"
	PropertyTypeEmail       PropertyType = "email"
	PropertyTypePhone       PropertyType = "phone"
	PropertyTypeCreatedTime PropertyType = "createdTime"
	PropertyTypeCreatedBy   PropertyType = "createdBy"
	PropertyTypeUpdatedTime PropertyType = "updatedTime"
	PropertyTypeUpdatedBy   PropertyType = "updatedBy"
)

// PropertyOption is a single choice of a select/multiSelect property template.
type PropertyOption struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// PropertyTemplate declares one card property on a board: its ID, display
// name, value type and (for enumerated types) the option set. Card property
// maps are keyed by the template ID, not its name.
type PropertyTemplate struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Type    PropertyType     `json:"type"`
	Options []PropertyOption `json:"options,omitempty"`
}

// Validate checks that the template carries an ID, a name and a known type.
func (p PropertyTemplate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Type, validation.Required, validation.In(
			PropertyTypeText, PropertyTypeNumber, PropertyTypeSelect,
			PropertyTypeMultiSelect, PropertyTypeDate, PropertyTypePerson,
			PropertyTypeCheckbox, PropertyTypeURL, PropertyTypeEmail,
			PropertyTypePhone, PropertyTypeCreatedTime, PropertyTypeCreatedBy,
			PropertyTypeUpdatedTime, PropertyTypeUpdatedBy,
		)),
	)
}

// Board is a named container that groups blocks and defines their property
// schema. All boards are owned by the remote service; this model is a
// transient representation of a fetched or about-to-be-sent record.
//
// Timestamps are epoch milliseconds. DeleteAt == 0 means "not deleted".
type Board struct {
	// ID is assigned by the server on creation.
	ID     string `json:"id"`
	TeamID string `json:"teamId"`

	ChannelID string `json:"channelId,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	ModifiedBy string `json:"modifiedBy,omitempty"`

	Type        BoardType `json:"type"`
	MinimumRole string    `json:"minimumRole,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`

	ShowDescription bool `json:"showDescription,omitempty"`
	IsTemplate      bool `json:"isTemplate,omitempty"`
	TemplateVersion int  `json:"templateVersion,omitempty"`

	// Properties is an open-ended board-level key/value map.
	Properties map[string]any `json:"properties,omitempty"`

	// CardProperties is the ordered property schema for cards on this board.
	CardProperties []PropertyTemplate `json:"cardProperties,omitempty"`

	CreateAt int64 `json:"createAt,omitempty"`
	UpdateAt int64 `json:"updateAt,omitempty"`
	DeleteAt int64 `json:"deleteAt,omitempty"`
}

// CreateBoard is the payload for board creation. The server assigns the ID.
type CreateBoard struct {
	TeamID         string             `json:"teamId"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Icon           string             `json:"icon,omitempty"`
	Type           BoardType          `json:"type,omitempty"`
	CardProperties []PropertyTemplate `json:"cardProperties,omitempty"`
}

// Validate enforces the creation invariant: teamId and title are required,
// and the type, when present, must be open or private.
func (b CreateBoard) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.TeamID, validation.Required),
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.Type, validation.In(BoardTypeOpen, BoardTypePrivate)),
	)
}

// BoardPatch is a partial board update. Every field is optional; nil means
// "leave as is". UpdatedProperties/DeletedProperties express field-level
// merge/removal on the board property map, UpdatedCardProperties/
// DeletedCardProperties the same for the card property schema, both distinct
// from wholesale replacement.
type BoardPatch struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Icon            *string    `json:"icon,omitempty"`
	ShowDescription *bool      `json:"showDescription,omitempty"`
	Type            *BoardType `json:"type,omitempty"`
	MinimumRole     *string    `json:"minimumRole,omitempty"`
	ChannelID       *string    `json:"channelId,omitempty"`

	UpdatedProperties map[string]any `json:"updatedProperties,omitempty"`
	DeletedProperties []string       `json:"deletedProperties,omitempty"`

	UpdatedCardProperties []PropertyTemplate `json:"updatedCardProperties,omitempty"`
	DeletedCardProperties []string           `json:"deletedCardProperties,omitempty"`
}

// Validate checks the optional enum fields of the patch.
func (p BoardPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.In(BoardTypeOpen, BoardTypePrivate)),
	)
}

// BoardMember is one membership record of a board.
type BoardMember struct {
	BoardID      string `json:"boardId"`
	UserID       string `json:"userId"`
	Roles        string `json:"roles,omitempty"`
	SchemeAdmin  bool   `json:"schemeAdmin,omitempty"`
	SchemeEditor bool   `json:"schemeEditor,omitempty"`
	SchemeViewer bool   `json:"schemeViewer,omitempty"`
}

// User is a team member as reported by the remote service.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname,omitempty"`
	IsBot    bool   `json:"is_bot,omitempty"`
	CreateAt int64  `json:"create_at,omitempty"`
}
