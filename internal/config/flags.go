package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-url remote Focalboard/Mattermost base URL
//	-api-prefix board API path prefix
//	-team default team ID for resolution scope
//	-auth-mode login protocol: auto, focalboard or mattermost
//	-request-timeout remote call timeout (e.g., "15s", "1m")
//	-transport MCP binding: stdio or http
//	-http-port HTTP binding listen port
//	-http-path HTTP binding endpoint path
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var baseURL string
	var apiPrefix string
	var teamID string
	var authMode string
	var requestTimeout time.Duration
	var transportMode string
	var httpPort int
	var httpPath string
	var jsonConfigPath string

	flag.StringVar(&baseURL, "url", "", "Remote base URL")
	flag.StringVar(&apiPrefix, "api-prefix", "", "Board API path prefix")
	flag.StringVar(&teamID, "team", "", "Default team ID")
	flag.StringVar(&authMode, "auth-mode", "", "Auth mode: auto, focalboard or mattermost")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.StringVar(&transportMode, "transport", "", "MCP transport: stdio or http")
	flag.IntVar(&httpPort, "http-port", 0, "HTTP transport listen port")
	flag.StringVar(&httpPath, "http-path", "", "HTTP transport endpoint path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Focalboard: Focalboard{
			BaseURL:        baseURL,
			APIPrefix:      apiPrefix,
			TeamID:         teamID,
			AuthMode:       authMode,
			RequestTimeout: requestTimeout,
		},
		Transport: Transport{
			Mode:     transportMode,
			HTTPPort: httpPort,
			HTTPPath: httpPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}
