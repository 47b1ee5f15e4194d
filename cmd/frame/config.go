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
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/asgardeo/teamsauth/internal/authflow"
	"github.com/asgardeo/teamsauth/internal/frame/model"
	"github.com/asgardeo/teamsauth/internal/i18n"
)

// parseClientConfig decodes the configuration embedded in the frame page. An empty document yields defaults.
func parseClientConfig(raw string) (model.ClientConfig, error) {
	var cfg model.ClientConfig
	if raw = strings.TrimSpace(raw); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return model.ClientConfig{}, fmt.Errorf("failed to decode client configuration: %w", err)
		}
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = i18n.DefaultLanguage
	}
	return cfg, nil
}

// flowConfig derives the flow settings. A supported browser language wins over the configured
// default; an unsupported one falls back to it.
func flowConfig(cfg model.ClientConfig, browserLanguage string) authflow.Config {
	languages := make([]string, 0, 2)
	if browserLanguage = strings.TrimSpace(browserLanguage); browserLanguage != "" {
		languages = append(languages, browserLanguage)
	}
	languages = append(languages, cfg.DefaultLanguage)
	lang := i18n.MatchLanguage(languages...)

	return authflow.Config{
		Authority:   cfg.Authority,
		Scopes:      cfg.Scopes,
		PopupWidth:  cfg.PopupWidth,
		PopupHeight: cfg.PopupHeight,
		Language:    lang,
	}
}

// probeTimeout converts the configured probe timeout in seconds.
func probeTimeout(cfg model.ClientConfig) time.Duration {
	if cfg.ProbeTimeout <= 0 {
		return 0
	}
	return time.Duration(cfg.ProbeTimeout) * time.Second
}

// resolveEndpoint resolves a possibly relative endpoint against the document URL.
// An endpoint that cannot be resolved is dropped, which disables reporting.
func resolveEndpoint(documentURL, endpoint string) string {
	if endpoint == "" {
		return ""
	}
	ref, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	base, err := url.Parse(documentURL)
	if err != nil || !base.IsAbs() {
		return ""
	}
	return base.ResolveReference(ref).String()
}
