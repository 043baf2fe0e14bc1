package config

import "fmt"

// Auth mode values accepted by FOCALBOARD_AUTH_MODE.
const (
	AuthModeAuto       = "auto"
	AuthModeFocalboard = "focalboard"
	AuthModeMattermost = "mattermost"
)

// validate checks the merged configuration. Startup-time configuration
// errors are fatal: they abort process startup instead of being deferred to
// first-tool-call time.
func (c *Config) validate() error {
	if c.Focalboard.BaseURL == "" {
		return fmt.Errorf("%w: remote base URL is empty", ErrInvalidFocalboardConfigs)
	}

	switch c.Focalboard.AuthMode {
	case AuthModeAuto, AuthModeFocalboard, AuthModeMattermost:
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidFocalboardConfigs, c.Focalboard.AuthMode)
	}

	if c.Focalboard.Password != "" && c.Focalboard.LoginID == "" && c.Focalboard.Username == "" {
		return fmt.Errorf("%w: password is set but neither login id nor username is set", ErrInvalidFocalboardConfigs)
	}

	switch c.Transport.Mode {
	case TransportStdio:
	case TransportHTTP:
		if c.Transport.HTTPPort < 1 || c.Transport.HTTPPort > 65535 {
			return fmt.Errorf("%w: http port %d out of range", ErrInvalidTransportConfigs, c.Transport.HTTPPort)
		}
		if c.Transport.HTTPPath == "" || c.Transport.HTTPPath[0] != '/' {
			return fmt.Errorf("%w: http path must start with /", ErrInvalidTransportConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport mode %q", ErrInvalidTransportConfigs, c.Transport.Mode)
	}

	return nil
}
