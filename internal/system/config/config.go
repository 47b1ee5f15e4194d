/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/asgardeo/teamsauth/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

const (
	defaultHostname          = "localhost"
	defaultPort              = 8443
	defaultAuthority         = "https://login.microsoftonline.com"
	defaultScope             = "openid"
	defaultPopupWidth        = 600
	defaultPopupHeight       = 535
	defaultLanguage          = "en"
	defaultDiagnosticsPath   = "/diagnostics"
	defaultHostSDKURL        = "https://res.cdn.office.net/teams-js/2.22.0/js/MicrosoftTeams.min.js"
	defaultRatePerMinute     = 30
	defaultRateBurst         = 10
	defaultMaxDetailLength   = 2048
	defaultStaticDirectory   = "repository/resources/frame"
	defaultDiagnosticsDBType = "sqlite"
	defaultDiagnosticsDBPath = "repository/database/diagnostics.db"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Diagnostics DataSource `yaml:"diagnostics"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// PopupConfig holds the dimensions of the authentication popup.
type PopupConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FrameConfig holds the configuration of the hosted authentication frame.
type FrameConfig struct {
	Authority           string      `yaml:"authority"`
	Scope               string      `yaml:"scope"`
	Popup               PopupConfig `yaml:"popup"`
	DefaultLanguage     string      `yaml:"default_language"`
	StaticDirectory     string      `yaml:"static_directory"`
	DiagnosticsEndpoint string      `yaml:"diagnostics_endpoint"`
	HostSDKURL          string      `yaml:"host_sdk_url"`
}

// RateLimitConfig holds the rate limiting configuration of a public endpoint.
type RateLimitConfig struct {
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	Burst             int  `yaml:"burst"`
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

// DiagnosticsConfig holds the configuration of the operator diagnostics intake.
type DiagnosticsConfig struct {
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	MaxDetailLength int             `yaml:"max_detail_length"`
}

// ProbeConfig holds the configuration of the silent probe.
type ProbeConfig struct {
	// Timeout is the probe request timeout in seconds. Zero disables the timeout.
	Timeout int `yaml:"timeout"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Security    SecurityConfig    `yaml:"security"`
	Database    DatabaseConfig    `yaml:"database"`
	CORS        CORSConfig        `yaml:"cors"`
	Frame       FrameConfig       `yaml:"frame"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Probe       ProbeConfig       `yaml:"probe"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills in values that were left empty in the configuration file.
func (c *Config) applyDefaults() {
	if c.Server.Hostname == "" {
		c.Server.Hostname = defaultHostname
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}

	if c.Frame.Authority == "" {
		c.Frame.Authority = defaultAuthority
	}
	if c.Frame.Scope == "" {
		c.Frame.Scope = defaultScope
	}
	if c.Frame.Popup.Width == 0 {
		c.Frame.Popup.Width = defaultPopupWidth
	}
	if c.Frame.Popup.Height == 0 {
		c.Frame.Popup.Height = defaultPopupHeight
	}
	if c.Frame.DefaultLanguage == "" {
		c.Frame.DefaultLanguage = defaultLanguage
	}
	if c.Frame.StaticDirectory == "" {
		c.Frame.StaticDirectory = defaultStaticDirectory
	}
	if c.Frame.DiagnosticsEndpoint == "" {
		c.Frame.DiagnosticsEndpoint = defaultDiagnosticsPath
	}
	if c.Frame.HostSDKURL == "" {
		c.Frame.HostSDKURL = defaultHostSDKURL
	}

	if c.Diagnostics.RateLimit.RequestsPerMinute == 0 {
		c.Diagnostics.RateLimit.RequestsPerMinute = defaultRatePerMinute
	}
	if c.Diagnostics.RateLimit.Burst == 0 {
		c.Diagnostics.RateLimit.Burst = defaultRateBurst
	}
	if c.Diagnostics.MaxDetailLength == 0 {
		c.Diagnostics.MaxDetailLength = defaultMaxDetailLength
	}

	if c.Database.Diagnostics.Type == "" {
		c.Database.Diagnostics.Type = defaultDiagnosticsDBType
		if c.Database.Diagnostics.Path == "" {
			c.Database.Diagnostics.Path = defaultDiagnosticsDBPath
		}
	}
}
