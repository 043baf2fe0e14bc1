// SPDX-License-Identifier: Apache-2.0

// Package tools declares the externally callable operations of
// focalboard-mcp: their names, JSON-schema input descriptors and handler
// functions. The registry is populated once, synchronously, at startup; the
// MCP transports dispatch into it and convert every handler error into a
// structured tool failure.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/p3psi-boo/focalboard-mcp/internal/adapter"
	"github.com/p3psi-boo/focalboard-mcp/internal/logger"
)

// Definition describes one callable tool for discovery: its name, a
// human-readable description, and a JSON-schema-shaped input descriptor.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Handler executes one tool call. The returned value is serialized as the
// tool result; errors are converted to structured failures at the dispatch
// boundary, never propagated as transport faults.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Registry maps operation names to their definition/handler pairs.
// Registration happens once at construction time, before any dispatch, so
// no locking is needed. Re-registering a name overwrites the previous entry
// (last registration wins); registration order is fixed and deterministic.
type Registry struct {
	order    []string
	defs     map[string]Definition
	handlers map[string]Handler

	logger *logger.Logger
}

// NewRegistry builds the full tool set over the given board service. teamID
// is the default team scope applied when a tool call omits an explicit one.
func NewRegistry(svc adapter.BoardService, teamID string, log *logger.Logger) *Registry {
	r := &Registry{
		defs:     make(map[string]Definition),
		handlers: make(map[string]Handler),
		logger:   log,
	}

	ts := &toolset{svc: svc, teamID: teamID}
	ts.registerAuthTools(r)
	ts.registerBoardTools(r)
	ts.registerBlockTools(r)
	ts.registerCardTools(r)
	ts.registerCombinedTools(r)

	return r
}

func (r *Registry) register(def Definition, handler Handler) {
	if _, exists := r.defs[def.Name]; !exists {
		r.order = append(r.order, def.Name)
	}
	r.defs[def.Name] = def
	r.handlers[def.Name] = handler
}

// Definitions returns all registered tool definitions in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.defs[name])
	}
	return defs
}

// Call dispatches a named operation. An unregistered name yields
// [ErrUnknownTool]; every other error comes from the handler itself.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if args == nil {
		args = map[string]any{}
	}

	r.logger.Debug().Str("tool", name).Msg("dispatching tool call")
	return handler(ctx, args)
}

// toolset carries the shared dependencies of all tool handlers.
type toolset struct {
	svc    adapter.BoardService
	teamID string
}

// team returns the explicit team argument or falls back to the configured
// default scope.
func (t *toolset) team(arg string) string {
	if arg != "" {
		return arg
	}
	return t.teamID
}

// decodeArgs converts the free-form argument map into a typed request
// struct. Schema mismatches (wrong types, malformed nesting) surface as
// validation errors before any network call.
func decodeArgs(args map[string]any, dst any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%w: %v", adapter.ErrValidation, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", adapter.ErrValidation, err)
	}
	return nil
}
