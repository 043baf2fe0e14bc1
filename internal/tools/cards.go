// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"

	"github.com/p3psi-boo/focalboard-mcp/internal/adapter"
	"github.com/p3psi-boo/focalboard-mcp/models"
)

const maxCardsPerPage = 100

func (t *toolset) registerCardTools(r *Registry) {
	r.register(Definition{
		Name:        "list_cards",
		Description: "List cards in a board with pagination. Returns cards with their properties. Much more efficient than get_blocks for card listing.",
		InputSchema: objectSchema(map[string]any{
			"board":    map[string]any{"type": "string", "description": "Board name or ID"},
			"page":     map[string]any{"type": "number", "description": "Page number (0-based, default 0)"},
			"per_page": map[string]any{"type": "number", "description": "Cards per page (default 20, max 100)"},
		}, "board"),
	}, t.handleListCards)

	r.register(Definition{
		Name:        "get_card",
		Description: "Get a single card with all its properties",
		InputSchema: objectSchema(map[string]any{
			"card": map[string]any{"type": "string", "description": "Card ID"},
		}, "card"),
	}, t.handleGetCard)

	r.register(Definition{
		Name:        "create_card",
		Description: "Create a new card in a board with properties. Use get_board first to understand the board's property schema (property IDs and option IDs).",
		InputSchema: objectSchema(map[string]any{
			"board":        map[string]any{"type": "string", "description": "Board name or ID"},
			"title":        map[string]any{"type": "string", "description": "Card title"},
			"icon":         map[string]any{"type": "string", "description": "Card icon (emoji)"},
			"properties":   map[string]any{"type": "object", "description": "Card properties as {propertyId: value}. For select properties, value is the option ID."},
			"description":  map[string]any{"type": "string", "description": "Card description (creates a text block as card content and sets contentOrder automatically)"},
			"contentOrder": map[string]any{"type": "array", "description": "Content block ordering (ignored when description is provided)"},
		}, "board"),
	}, t.handleCreateCard)

	r.register(Definition{
		Name:        "update_card",
		Description: "Update a card's title, icon, or properties incrementally. Uses updatedProperties for partial property updates (only changes specified properties, leaves others untouched).",
		InputSchema: objectSchema(map[string]any{
			"card":  map[string]any{"type": "string", "description": "Card ID"},
			"patch": map[string]any{"type": "object", "description": "Fields to update: title, icon, updatedProperties, deletedProperties, contentOrder"},
		}, "card", "patch"),
	}, t.handleUpdateCard)
}

func (t *toolset) handleListCards(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board   string `json:"board"`
		Page    int    `json:"page"`
		PerPage int    `json:"per_page"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}

	perPage := req.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > maxCardsPerPage {
		perPage = maxCardsPerPage
	}

	cards, err := t.svc.ListCards(ctx, board.ID, req.Page, perPage)
	if err != nil {
		return nil, err
	}
	return formatCards(cards), nil
}

func (t *toolset) handleGetCard(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Card string `json:"card"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	card, err := t.svc.GetCard(ctx, req.Card)
	if err != nil {
		return nil, err
	}
	return formatCard(card), nil
}

func (t *toolset) handleCreateCard(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Board        string         `json:"board"`
		Title        string         `json:"title"`
		Icon         string         `json:"icon"`
		Properties   map[string]any `json:"properties"`
		Description  string         `json:"description"`
		ContentOrder []any          `json:"contentOrder"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	board, err := t.svc.ResolveBoard(ctx, req.Board, t.teamID)
	if err != nil {
		return nil, err
	}

	card, err := t.svc.CreateCard(ctx, board.ID, models.CreateCard{
		Title:        req.Title,
		Icon:         req.Icon,
		Properties:   req.Properties,
		ContentOrder: req.ContentOrder,
	}, false)
	if err != nil {
		return nil, err
	}

	if req.Description == "" {
		return formatCard(card), nil
	}

	// A description becomes a text block owned by the card, made visible by
	// putting its ID into the card's content order.
	blocks, err := t.svc.InsertBlocks(ctx, board.ID, []models.CreateBlock{{
		Type:     models.BlockTypeText,
		Title:    req.Description,
		ParentID: card.ID,
	}}, false)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: description block was not created", adapter.ErrRemoteAPI)
	}

	patched, err := t.svc.PatchCard(ctx, card.ID, models.CardPatch{
		ContentOrder: []any{blocks[0].ID},
	}, false)
	if err != nil {
		return nil, err
	}
	return formatCard(patched), nil
}

func (t *toolset) handleUpdateCard(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Card  string         `json:"card"`
		Patch map[string]any `json:"patch"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}
	if req.Patch == nil {
		return nil, fmt.Errorf("%w: patch is required", adapter.ErrValidation)
	}

	// Callers tend to say "properties" the way create_card does; the PATCH
	// API speaks updatedProperties.
	if props, ok := req.Patch["properties"]; ok {
		if _, hasUpdated := req.Patch["updatedProperties"]; !hasUpdated {
			req.Patch["updatedProperties"] = props
		}
		delete(req.Patch, "properties")
	}

	var patch models.CardPatch
	if err := decodeArgs(req.Patch, &patch); err != nil {
		return nil, err
	}

	card, err := t.svc.PatchCard(ctx, req.Card, patch, false)
	if err != nil {
		return nil, err
	}
	return formatCard(card), nil
}
