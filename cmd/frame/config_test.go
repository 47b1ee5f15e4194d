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

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/teamsauth/internal/authflow"
	"github.com/asgardeo/teamsauth/internal/frame/model"
)

func TestParseClientConfig(t *testing.T) {
	cfg, err := parseClientConfig(` {"authority":"https://login.example","scopes":["openid"],"popupWidth":600,` +
		`"popupHeight":535,"defaultLanguage":"fr","diagnosticsEndpoint":"/diagnostics","probeTimeout":3} `)

	require.NoError(t, err)
	assert.Equal(t, model.ClientConfig{
		Authority:           "https://login.example",
		Scopes:              []string{"openid"},
		PopupWidth:          600,
		PopupHeight:         535,
		DefaultLanguage:     "fr",
		DiagnosticsEndpoint: "/diagnostics",
		ProbeTimeout:        3,
	}, cfg)
}

func TestParseClientConfigDefaults(t *testing.T) {
	cfg, err := parseClientConfig("")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.DefaultLanguage)

	cfg, err = parseClientConfig("{not json")
	assert.ErrorContains(t, err, "failed to decode client configuration")
	assert.Equal(t, model.ClientConfig{}, cfg)
}

func TestFlowConfig(t *testing.T) {
	cfg := model.ClientConfig{Authority: "https://a", Scopes: []string{"openid"}, PopupWidth: 1, PopupHeight: 2,
		DefaultLanguage: "de"}

	assert.Equal(t, authflow.Config{Authority: "https://a", Scopes: []string{"openid"}, PopupWidth: 1,
		PopupHeight: 2, Language: "es"}, flowConfig(cfg, "es-MX"))
	assert.Equal(t, "de", flowConfig(cfg, "").Language)
	assert.Equal(t, "fr", flowConfig(cfg, "fr-CA").Language)
}

func TestFlowConfigUnsupportedBrowserLanguageUsesConfiguredDefault(t *testing.T) {
	cfg := model.ClientConfig{DefaultLanguage: "de"}

	assert.Equal(t, "de", flowConfig(cfg, "pt-BR").Language)
	assert.Equal(t, "de", flowConfig(cfg, "not a tag").Language)
	assert.Equal(t, "en", flowConfig(model.ClientConfig{DefaultLanguage: "en"}, "ja").Language)
}

func TestProbeTimeout(t *testing.T) {
	assert.Equal(t, time.Duration(0), probeTimeout(model.ClientConfig{}))
	assert.Equal(t, time.Duration(0), probeTimeout(model.ClientConfig{ProbeTimeout: -1}))
	assert.Equal(t, 4*time.Second, probeTimeout(model.ClientConfig{ProbeTimeout: 4}))
}

func TestResolveEndpoint(t *testing.T) {
	page := "https://frame.example/auth-start?tenantId=t&appId=a"

	assert.Equal(t, "https://frame.example/diagnostics", resolveEndpoint(page, "/diagnostics"))
	assert.Equal(t, "https://ops.example/intake", resolveEndpoint(page, "https://ops.example/intake"))
	assert.Empty(t, resolveEndpoint(page, ""))
	assert.Empty(t, resolveEndpoint("not a url", "/diagnostics"))
	assert.Empty(t, resolveEndpoint(page, "%zz"))
}
