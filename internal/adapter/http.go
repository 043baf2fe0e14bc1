// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/p3psi-boo/focalboard-mcp/internal/config"
	"github.com/p3psi-boo/focalboard-mcp/internal/logger"
)

// session is the volatile credential state of the adapter. It is owned by a
// single adapter value rather than held in package-level state, so a future
// multi-tenant deployment can hold one adapter per logical session.
//
// Concurrent logins overwrite the fields with last-write-wins semantics and
// no mutual exclusion; a login racing an in-flight request can send that
// request with either the old or the new credential. The intended
// single-agent deployment issues one logical operation at a time, which
// tolerates this.
type session struct {
	token     string
	csrfToken string
	mode      AuthMode
}

type focalboardAdapter struct {
	client *resty.Client

	cfg     config.Focalboard
	session session

	logger *logger.Logger
}

// NewFocalboardAdapter constructs the HTTP/REST implementation of
// [BoardService]. It normalises and validates the base URL from cfg.BaseURL,
// configures the underlying resty client with the resolved base URL and
// request timeout, and seeds the session from any token/CSRF pair present in
// the configuration.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewFocalboardAdapter(cfg config.Focalboard, log *logger.Logger) (BoardService, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid focalboard base url: %w", err)
	}
	cfg.BaseURL = baseURL

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	a := &focalboardAdapter{client: client, cfg: cfg, logger: log}
	a.SetSession(cfg.Token, cfg.CSRFToken)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [BoardService]. It stores the (whitespace-trimmed)
// token and CSRF token for use on all subsequent requests.
func (a *focalboardAdapter) SetSession(token, csrfToken string) {
	a.session.token = strings.TrimSpace(token)
	a.session.csrfToken = strings.TrimSpace(csrfToken)
}

// Token implements [BoardService].
func (a *focalboardAdapter) Token() string {
	return a.session.token
}

// apiPath prefixes p with the configured API prefix. The prefix is part of
// the request path, not the resty base URL, because the Mattermost login
// endpoints live outside it.
func (a *focalboardAdapter) apiPath(format string, args ...any) string {
	return a.cfg.APIPrefix + fmt.Sprintf(format, args...)
}

// authedRequest returns a request carrying the standard header set: JSON
// content type, bearer token and CSRF token when held, and the configured
// X-Requested-With value.
func (a *focalboardAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if a.session.token != "" {
		req.SetHeader("Authorization", "Bearer "+a.session.token)
	}
	if a.session.csrfToken != "" {
		req.SetHeader("X-CSRF-Token", a.session.csrfToken)
	}
	if a.cfg.RequestedWith != "" {
		req.SetHeader("X-Requested-With", a.cfg.RequestedWith)
	}
	return req
}
