// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Config is the top-level configuration container for focalboard-mcp. It is
// populated once at startup by merging environment variables, command-line
// flags, an optional JSON file and built-in defaults, and is never mutated
// afterwards.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Focalboard holds the remote board service connection and
	// authentication settings.
	Focalboard Focalboard `envPrefix:"FOCALBOARD_"`

	// Transport holds the MCP delivery-binding settings.
	Transport Transport `envPrefix:"MCP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Focalboard holds everything needed to talk to the remote board service.
type Focalboard struct {
	// BaseURL is the root URL of the Focalboard or Mattermost deployment
	// (e.g. "http://localhost:8000").
	// Env: FOCALBOARD_URL
	BaseURL string `env:"URL"`

	// APIPrefix is the path prefix of the board API.
	//   - standalone Focalboard: "/api/v2"
	//   - Mattermost plugin:     "/plugins/focalboard/api/v2"
	// The prefix also drives auth-mode inference when AuthMode is "auto".
	// Env: FOCALBOARD_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`

	// Token is an initial session token. When set, no startup login is
	// needed.
	// Env: FOCALBOARD_TOKEN
	Token string `env:"TOKEN"`

	// CSRFToken is the initial CSRF token paired with Token on Mattermost
	// deployments (the MMCSRF cookie value).
	// Env: FOCALBOARD_CSRF_TOKEN
	CSRFToken string `env:"CSRF_TOKEN"`

	// RequestedWith is sent as the X-Requested-With header when non-empty.
	// Mattermost deployments require it.
	// Env: FOCALBOARD_REQUESTED_WITH
	RequestedWith string `env:"REQUESTED_WITH"`

	// TeamID is the default team scope for board listing, search and
	// name resolution.
	// Env: FOCALBOARD_TEAM_ID
	TeamID string `env:"TEAM_ID"`

	// AuthMode selects the login protocol: "focalboard", "mattermost" or
	// "auto" (infer from APIPrefix).
	// Env: FOCALBOARD_AUTH_MODE
	AuthMode string `env:"AUTH_MODE"`

	// Password, together with LoginID or Username, triggers an automatic
	// login before the transport accepts any traffic. Setting Password
	// without an identifying credential is a fatal startup error.
	// Env: FOCALBOARD_PASSWORD, FOCALBOARD_LOGIN_ID, FOCALBOARD_USERNAME
	Password string `env:"PASSWORD"`
	LoginID  string `env:"LOGIN_ID"`
	Username string `env:"USERNAME"`

	// RequestTimeout bounds every single remote call (e.g. "15s").
	// Env: FOCALBOARD_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Transport holds the MCP delivery-binding settings.
type Transport struct {
	// Mode selects the binding: "stdio" (line-oriented stream) or "http"
	// (session-keyed streamable HTTP).
	// Env: MCP_TRANSPORT
	Mode string `env:"TRANSPORT"`

	// HTTPPort is the listen port of the HTTP binding.
	// Env: MCP_HTTP_PORT
	HTTPPort int `env:"HTTP_PORT"`

	// HTTPPath is the endpoint path of the HTTP binding.
	// Env: MCP_HTTP_PATH
	HTTPPath string `env:"HTTP_PATH"`
}

// Transport mode values.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// GetConfig loads, merges and validates the application configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
