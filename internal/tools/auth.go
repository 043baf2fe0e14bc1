// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/p3psi-boo/focalboard-mcp/internal/adapter"
)

func (t *toolset) registerAuthTools(r *Registry) {
	r.register(Definition{
		Name:        "login",
		Description: "Log in to the remote board service. The protocol is inferred from the API prefix unless mode is given.",
		InputSchema: objectSchema(map[string]any{
			"loginId":  map[string]any{"type": "string", "description": "Login ID (email or username, Mattermost deployments)"},
			"username": map[string]any{"type": "string", "description": "Username (standalone deployments)"},
			"password": map[string]any{"type": "string"},
			"mode":     map[string]any{"type": "string", "enum": []string{"auto", "focalboard", "mattermost"}, "default": "auto"},
		}, "password"),
	}, t.handleLogin)

	r.register(Definition{
		Name:        "logout",
		Description: "Log out and clear the local session. The local session is cleared even when the remote call fails.",
		InputSchema: objectSchema(map[string]any{
			"mode": map[string]any{"type": "string", "enum": []string{"auto", "focalboard", "mattermost"}, "default": "auto"},
		}),
	}, t.handleLogout)
}

func (t *toolset) handleLogin(ctx context.Context, args map[string]any) (any, error) {
	var req adapter.LoginParams
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	result, err := t.svc.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	// The token itself stays inside the adapter; callers only learn that a
	// session exists and which protocol produced it.
	return map[string]any{"mode": result.Mode, "loggedIn": true}, nil
}

func (t *toolset) handleLogout(ctx context.Context, args map[string]any) (any, error) {
	var req struct {
		Mode adapter.AuthMode `json:"mode"`
	}
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}

	// Remote failure is reported, not raised: the caller's intent is to end
	// the local session, which Logout guarantees regardless.
	remoteErr := t.svc.Logout(ctx, req.Mode)
	return map[string]any{
		"loggedOut":          true,
		"remoteAcknowledged": remoteErr == nil,
	}, nil
}
