package tools

import (
	"github.com/p3psi-boo/focalboard-mcp/models"
)

// The format helpers compact remote records for tool output: empty optional
// fields are omitted so an agent reading the result is not flooded with
// zero values.

func formatBoard(b models.Board) map[string]any {
	out := map[string]any{
		"id":    b.ID,
		"title": b.Title,
		"type":  b.Type,
	}
	if b.Description != "" {
		out["description"] = b.Description
	}
	if b.Icon != "" {
		out["icon"] = b.Icon
	}
	if len(b.CardProperties) > 0 {
		out["cardProperties"] = b.CardProperties
	}
	return out
}

func formatBoards(boards []models.Board) []map[string]any {
	out := make([]map[string]any, 0, len(boards))
	for _, b := range boards {
		out = append(out, formatBoard(b))
	}
	return out
}

func formatBlock(b models.Block) map[string]any {
	out := map[string]any{
		"id":      b.ID,
		"boardId": b.BoardID,
		"type":    b.Type,
	}
	if b.Title != "" {
		out["title"] = b.Title
	}
	if b.ParentID != "" {
		out["parentId"] = b.ParentID
	}
	if len(b.Fields) > 0 {
		out["fields"] = b.Fields
	}
	return out
}

func formatBlocks(blocks []models.Block) []map[string]any {
	out := make([]map[string]any, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, formatBlock(b))
	}
	return out
}

func formatCard(c models.Card) map[string]any {
	out := map[string]any{
		"id":      c.ID,
		"boardId": c.BoardID,
	}
	if c.Title != "" {
		out["title"] = c.Title
	}
	if c.Icon != "" {
		out["icon"] = c.Icon
	}
	if len(c.Properties) > 0 {
		out["properties"] = c.Properties
	}
	if len(c.ContentOrder) > 0 {
		out["contentOrder"] = c.ContentOrder
	}
	return out
}

func formatCards(cards []models.Card) []map[string]any {
	out := make([]map[string]any, 0, len(cards))
	for _, c := range cards {
		out = append(out, formatCard(c))
	}
	return out
}
