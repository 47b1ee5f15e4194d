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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const validDeploymentYAML = `
server:
  hostname: "0.0.0.0"
  port: 9443
  http_only: true

security:
  cert_file: "repository/resources/security/server.cert"
  key_file: "repository/resources/security/server.key"

database:
  diagnostics:
    type: "postgres"
    hostname: "db.internal"
    port: 5432
    name: "teamsauth"
    username: "teamsauth"
    password: "secret"
    sslmode: "require"

cors:
  allowed_origins:
    - "https://teams.microsoft.com"

frame:
  authority: "https://login.example.com"
  popup:
    width: 700
  default_language: "fr"

diagnostics:
  rate_limit:
    requests_per_minute: 60
    trust_proxy_headers: true

probe:
  timeout: 15
`

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeFile(name, content string) string {
	path := filepath.Join(suite.dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	suite.Require().NoError(err)
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	config, err := LoadConfig(suite.writeFile("deployment.yaml", validDeploymentYAML))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "0.0.0.0", config.Server.Hostname)
	assert.Equal(suite.T(), 9443, config.Server.Port)
	assert.True(suite.T(), config.Server.HTTPOnly)

	assert.Equal(suite.T(), "repository/resources/security/server.cert", config.Security.CertFile)

	assert.Equal(suite.T(), "postgres", config.Database.Diagnostics.Type)
	assert.Equal(suite.T(), "db.internal", config.Database.Diagnostics.Hostname)
	assert.Empty(suite.T(), config.Database.Diagnostics.Path)

	assert.Equal(suite.T(), []string{"https://teams.microsoft.com"}, config.CORS.AllowedOrigins)

	assert.Equal(suite.T(), "https://login.example.com", config.Frame.Authority)
	assert.Equal(suite.T(), 700, config.Frame.Popup.Width)
	assert.Equal(suite.T(), defaultPopupHeight, config.Frame.Popup.Height)
	assert.Equal(suite.T(), "fr", config.Frame.DefaultLanguage)
	assert.Equal(suite.T(), defaultScope, config.Frame.Scope)

	assert.Equal(suite.T(), 60, config.Diagnostics.RateLimit.RequestsPerMinute)
	assert.Equal(suite.T(), defaultRateBurst, config.Diagnostics.RateLimit.Burst)
	assert.True(suite.T(), config.Diagnostics.RateLimit.TrustProxyHeaders)
	assert.Equal(suite.T(), 15, config.Probe.Timeout)
}

func (suite *ConfigTestSuite) TestLoadConfigAppliesDefaults() {
	config, err := LoadConfig(suite.writeFile("empty.yaml", "server: {}\n"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), defaultHostname, config.Server.Hostname)
	assert.Equal(suite.T(), defaultPort, config.Server.Port)
	assert.Equal(suite.T(), defaultAuthority, config.Frame.Authority)
	assert.Equal(suite.T(), defaultPopupWidth, config.Frame.Popup.Width)
	assert.Equal(suite.T(), defaultPopupHeight, config.Frame.Popup.Height)
	assert.Equal(suite.T(), defaultLanguage, config.Frame.DefaultLanguage)
	assert.Equal(suite.T(), defaultDiagnosticsPath, config.Frame.DiagnosticsEndpoint)
	assert.Equal(suite.T(), defaultHostSDKURL, config.Frame.HostSDKURL)
	assert.Equal(suite.T(), defaultDiagnosticsDBType, config.Database.Diagnostics.Type)
	assert.Equal(suite.T(), defaultDiagnosticsDBPath, config.Database.Diagnostics.Path)
	assert.Equal(suite.T(), defaultMaxDetailLength, config.Diagnostics.MaxDetailLength)
	assert.False(suite.T(), config.Diagnostics.RateLimit.TrustProxyHeaders)
	assert.Zero(suite.T(), config.Probe.Timeout)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(filepath.Join(suite.dir, "non_existent_config.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	config, err := LoadConfig(suite.writeFile("invalid.yaml", "server: [unterminated"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}

func (suite *ConfigTestSuite) TestServerRuntime() {
	ResetServerRuntime()
	defer ResetServerRuntime()

	assert.Panics(suite.T(), func() {
		_ = GetServerRuntime()
	})

	cfg := &Config{Server: ServerConfig{Hostname: "first"}}
	assert.NoError(suite.T(), InitializeServerRuntime("/opt/teamsauth", cfg))
	assert.NoError(suite.T(), InitializeServerRuntime("/ignored", &Config{}))

	runtime := GetServerRuntime()
	assert.Equal(suite.T(), "/opt/teamsauth", runtime.ServerHome)
	assert.Equal(suite.T(), "first", runtime.Config.Server.Hostname)
}
