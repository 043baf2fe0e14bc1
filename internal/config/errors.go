package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidFocalboardConfigs indicates invalid remote service settings
	// (for example, empty base URL, unknown auth mode, or a password
	// without an identifying credential).
	ErrInvalidFocalboardConfigs = errors.New("invalid focalboard configuration")
	// ErrInvalidTransportConfigs indicates invalid MCP transport settings
	// (for example, an unknown binding mode or an out-of-range port).
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
)
