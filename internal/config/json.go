package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	Focalboard struct {
		BaseURL        string   `json:"url"`
		APIPrefix      string   `json:"api_prefix"`
		Token          string   `json:"token"`
		CSRFToken      string   `json:"csrf_token"`
		RequestedWith  string   `json:"requested_with"`
		TeamID         string   `json:"team_id"`
		AuthMode       string   `json:"auth_mode"`
		Password       string   `json:"password"`
		LoginID        string   `json:"login_id"`
		Username       string   `json:"username"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"focalboard,omitempty"`

	Transport struct {
		Mode     string `json:"mode"`
		HTTPPort int    `json:"http_port"`
		HTTPPath string `json:"http_path"`
	} `json:"transport,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Focalboard: Focalboard{
			BaseURL:        jsonCfg.Focalboard.BaseURL,
			APIPrefix:      jsonCfg.Focalboard.APIPrefix,
			Token:          jsonCfg.Focalboard.Token,
			CSRFToken:      jsonCfg.Focalboard.CSRFToken,
			RequestedWith:  jsonCfg.Focalboard.RequestedWith,
			TeamID:         jsonCfg.Focalboard.TeamID,
			AuthMode:       jsonCfg.Focalboard.AuthMode,
			Password:       jsonCfg.Focalboard.Password,
			LoginID:        jsonCfg.Focalboard.LoginID,
			Username:       jsonCfg.Focalboard.Username,
			RequestTimeout: time.Duration(jsonCfg.Focalboard.RequestTimeout),
		},
		Transport: Transport{
			Mode:     jsonCfg.Transport.Mode,
			HTTPPort: jsonCfg.Transport.HTTPPort,
			HTTPPath: jsonCfg.Transport.HTTPPath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}
