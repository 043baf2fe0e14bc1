// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/p3psi-boo/focalboard-mcp/internal/logger"
	"github.com/p3psi-boo/focalboard-mcp/internal/tools"
)

// ServerInfo identifies this server to the client during initialize.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Server dispatches JSON-RPC requests to the tool registry. It holds no
// transport state; a binding feeds it one request at a time.
type Server struct {
	info     ServerInfo
	registry *tools.Registry
}

// NewServer returns a protocol server exposing the registry's tools.
// Logging is request-scoped: the transport attaches a logger to the
// context and handlers retrieve it with logger.FromContext.
func NewServer(info ServerInfo, registry *tools.Registry) *Server {
	return &Server{info: info, registry: registry}
}

type initializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      ServerInfo     `json:"serverInfo"`
}

type listToolsResult struct {
	Tools []tools.Definition `json:"tools"`
}

type callToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callToolResult struct {
	Content []contentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// Handle processes a single request and returns the response to send, or
// nil when the request is a notification.
func (s *Server) Handle(ctx context.Context, req *Request) *Response {
	if req.JSONRPC != "2.0" || req.Method == "" {
		return newErrorResponse(req.ID, codeInvalidRequest, "invalid request")
	}

	switch req.Method {
	case "initialize":
		return newResponse(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    map[string]any{"tools": map[string]any{}},
			ServerInfo:      s.info,
		})
	case "notifications/initialized":
		return nil
	case "ping":
		return newResponse(req.ID, map[string]any{})
	case "tools/list":
		return newResponse(req.ID, listToolsResult{Tools: s.registry.Definitions()})
	case "tools/call":
		return s.callTool(ctx, req)
	default:
		if req.IsNotification() {
			return nil
		}
		return newErrorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func (s *Server) callTool(ctx context.Context, req *Request) *Response {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return newErrorResponse(req.ID, codeInvalidParams, "invalid tools/call params")
	}

	// Tool failures, unknown names included, come back as structured
	// isError results rather than protocol errors.
	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("tool", params.Name).Msg("tool call failed")
		return newResponse(req.ID, callToolResult{
			Content: []contentItem{{Type: "text", Text: "Error: " + err.Error()}},
			IsError: true,
		})
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return newResponse(req.ID, callToolResult{
			Content: []contentItem{{Type: "text", Text: "Error: encoding tool result: " + err.Error()}},
			IsError: true,
		})
	}

	return newResponse(req.ID, callToolResult{
		Content: []contentItem{{Type: "text", Text: string(text)}},
	})
}
