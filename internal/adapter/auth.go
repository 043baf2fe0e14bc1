// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/p3psi-boo/focalboard-mcp/internal/config"
)

// AuthMode selects which of the two mutually incompatible login protocols to
// use against the remote deployment.
type AuthMode string

const (
	// AuthModeAuto infers the protocol from the configured API prefix.
	AuthModeAuto AuthMode = "auto"
	// AuthModeFocalboard is the standalone login protocol: JSON credentials
	// to a login path under the API prefix, token in the response body.
	AuthModeFocalboard AuthMode = "focalboard"
	// AuthModeMattermost is the host-platform login protocol: credentials
	// to a fixed path outside the API prefix, token in a response header
	// and CSRF token in a Set-Cookie header.
	AuthModeMattermost AuthMode = "mattermost"
)

// mattermostPrefixMarker in the API prefix means the board service runs as a
// Mattermost plugin, so logins must go through the platform endpoints.
const mattermostPrefixMarker = "/plugins/focalboard/"

const mattermostCSRFCookie = "MMCSRF"

// LoginParams carries the credentials for [BoardService.Login]. Exactly one
// of LoginID or Username is required (either is accepted by both protocols).
// A Mode of "" or [AuthModeAuto] defers to the configured override, then to
// prefix inference.
type LoginParams struct {
	LoginID  string   `json:"loginId,omitempty"`
	Username string   `json:"username,omitempty"`
	Password string   `json:"password"`
	Mode     AuthMode `json:"mode,omitempty"`
}

// LoginResult reports the established session: the protocol that was used,
// the session token, and the CSRF token when the protocol supplies one.
type LoginResult struct {
	Mode      AuthMode `json:"mode"`
	Token     string   `json:"token"`
	CSRFToken string   `json:"csrfToken,omitempty"`
}

// InferAuthMode infers the login protocol from the API path prefix: a prefix
// containing the plugin marker means a Mattermost-hosted deployment,
// anything else a standalone one.
func InferAuthMode(apiPrefix string) AuthMode {
	if strings.Contains(apiPrefix, mattermostPrefixMarker) {
		return AuthModeMattermost
	}
	return AuthModeFocalboard
}

// resolveMode applies the precedence order: explicit argument, configured
// override, prefix inference.
func (a *focalboardAdapter) resolveMode(mode AuthMode) AuthMode {
	if mode != "" && mode != AuthModeAuto {
		return mode
	}
	if a.cfg.AuthMode != "" && a.cfg.AuthMode != config.AuthModeAuto {
		return AuthMode(a.cfg.AuthMode)
	}
	return InferAuthMode(a.cfg.APIPrefix)
}

// Login implements [BoardService]. The obtained credential replaces any
// previously held session (last write wins).
func (a *focalboardAdapter) Login(ctx context.Context, params LoginParams) (LoginResult, error) {
	mode := a.resolveMode(params.Mode)

	var result LoginResult
	var err error
	switch mode {
	case AuthModeMattermost:
		result, err = a.loginMattermost(ctx, params)
	default:
		result, err = a.loginFocalboard(ctx, params)
	}
	if err != nil {
		return LoginResult{}, err
	}

	a.session = session{token: result.Token, csrfToken: result.CSRFToken, mode: result.Mode}
	a.logger.Info().Str("mode", string(result.Mode)).Msg("login succeeded")
	return result, nil
}

func (a *focalboardAdapter) loginFocalboard(ctx context.Context, params LoginParams) (LoginResult, error) {
	username := params.Username
	if username == "" {
		username = params.LoginID
	}
	if username == "" {
		return LoginResult{}, fmt.Errorf("%w: login requires username or loginId", ErrValidation)
	}

	resp, err := a.unauthenticatedRequest(ctx).
		SetBody(map[string]string{"username": username, "password": params.Password}).
		Post(a.apiPath("/login"))
	if err != nil {
		return LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if !resp.IsSuccess() {
		return LoginResult{}, fmt.Errorf("%w: %s", ErrAuth, remoteErrorMessage(resp))
	}

	var body struct {
		Token string `json:"token"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil || body.Token == "" {
		return LoginResult{}, fmt.Errorf("%w: login succeeded but response had no token", ErrAuth)
	}

	return LoginResult{Mode: AuthModeFocalboard, Token: body.Token}, nil
}

func (a *focalboardAdapter) loginMattermost(ctx context.Context, params LoginParams) (LoginResult, error) {
	loginID := params.LoginID
	if loginID == "" {
		loginID = params.Username
	}
	if loginID == "" {
		return LoginResult{}, fmt.Errorf("%w: login requires loginId or username", ErrValidation)
	}

	resp, err := a.unauthenticatedRequest(ctx).
		SetBody(map[string]string{"login_id": loginID, "password": params.Password}).
		Post("/api/v4/users/login")
	if err != nil {
		return LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if !resp.IsSuccess() {
		return LoginResult{}, fmt.Errorf("%w: %s", ErrAuth, remoteErrorMessage(resp))
	}

	token := resp.Header().Get("Token")
	if token == "" {
		token = resp.Header().Get("token")
	}
	if token == "" {
		return LoginResult{}, fmt.Errorf("%w: login succeeded but no Token header returned", ErrAuth)
	}

	csrfToken := findCookie(setCookieValues(resp.Header().Values("Set-Cookie")), mattermostCSRFCookie)

	return LoginResult{Mode: AuthModeMattermost, Token: token, CSRFToken: csrfToken}, nil
}

// Logout implements [BoardService]. The local credential is cleared
// unconditionally; the returned error covers only the remote
// acknowledgement, and the caller decides whether to ignore it.
func (a *focalboardAdapter) Logout(ctx context.Context, mode AuthMode) error {
	resolved := a.resolveMode(mode)

	path := a.apiPath("/logout")
	if resolved == AuthModeMattermost {
		path = "/api/v4/users/logout"
	}

	req := a.authedRequest(ctx)

	a.session = session{}
	a.logger.Info().Str("mode", string(resolved)).Msg("local session cleared")

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapAPIError(resp)
}

func (a *focalboardAdapter) unauthenticatedRequest(ctx context.Context) *resty.Request {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if a.cfg.RequestedWith != "" {
		req.SetHeader("X-Requested-With", a.cfg.RequestedWith)
	}
	return req
}

// setCookieValues normalises the Set-Cookie response headers into one entry
// per cookie. Some transports fold multiple Set-Cookie headers into a single
// comma-joined string, so each value is additionally split on commas that
// begin a new `key=` pair. Commas inside attribute values (the day/date
// separator in `Expires=Wed, 21 Oct ...`) do not start a `key=` pair and are
// left alone.
func setCookieValues(raw []string) []string {
	var out []string
	for _, value := range raw {
		out = append(out, splitFoldedCookies(value)...)
	}
	return out
}

func splitFoldedCookies(value string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(value); i++ {
		if value[i] != ',' {
			continue
		}
		if !startsCookiePair(value[i+1:]) {
			continue
		}
		parts = append(parts, strings.TrimSpace(value[start:i]))
		start = i + 1
	}
	parts = append(parts, strings.TrimSpace(value[start:]))

	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// startsCookiePair reports whether s, after optional spaces, begins with a
// cookie-name token followed by '='.
func startsCookiePair(s string) bool {
	s = strings.TrimLeft(s, " ")
	eq := strings.IndexByte(s, '=')
	if eq <= 0 {
		return false
	}
	return !strings.ContainsAny(s[:eq], "; ,")
}

func findCookie(setCookies []string, name string) string {
	prefix := name + "="
	for _, sc := range setCookies {
		if !strings.HasPrefix(sc, prefix) {
			continue
		}
		cookieValue := sc[len(prefix):]
		if semi := strings.IndexByte(cookieValue, ';'); semi >= 0 {
			cookieValue = cookieValue[:semi]
		}
		return cookieValue
	}
	return ""
}
