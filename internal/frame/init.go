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

// Package frame serves the hosted authentication page and the client artifacts it loads.
package frame

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/asgardeo/teamsauth/internal/frame/model"
	"github.com/asgardeo/teamsauth/internal/system/config"
)

// Initialize registers the frame routes for the given configuration.
func Initialize(mux *http.ServeMux, cfg *config.Config, serverHome string) {
	handler := newFrameHandler(NewClientConfig(cfg), cfg.Frame.HostSDKURL,
		resolveStaticDir(cfg.Frame.StaticDirectory, serverHome))
	registerRoutes(mux, handler)
}

// NewClientConfig derives the client configuration embedded in the frame page.
func NewClientConfig(cfg *config.Config) model.ClientConfig {
	return model.ClientConfig{
		Authority:           cfg.Frame.Authority,
		Scopes:              strings.Fields(cfg.Frame.Scope),
		PopupWidth:          cfg.Frame.Popup.Width,
		PopupHeight:         cfg.Frame.Popup.Height,
		DefaultLanguage:     cfg.Frame.DefaultLanguage,
		DiagnosticsEndpoint: cfg.Frame.DiagnosticsEndpoint,
		ProbeTimeout:        cfg.Probe.Timeout,
	}
}

func resolveStaticDir(dir, serverHome string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(serverHome, dir)
}

func registerRoutes(mux *http.ServeMux, handler *frameHandler) {
	mux.HandleFunc("GET /auth-start", handler.HandleAuthStartRequest)
	mux.HandleFunc("GET "+assetsPathPrefix+"{file}", handler.HandleAssetRequest)
	mux.HandleFunc("GET /locales/{lang}", handler.HandleLocaleRequest)
}
