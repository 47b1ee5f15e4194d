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

package frame

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/teamsauth/internal/frame/model"
	"github.com/asgardeo/teamsauth/internal/system/config"
)

type FrameHandlerTestSuite struct {
	suite.Suite
	staticDir string
	mux       *http.ServeMux
}

func TestFrameHandlerSuite(t *testing.T) {
	suite.Run(t, new(FrameHandlerTestSuite))
}

func (suite *FrameHandlerTestSuite) SetupTest() {
	suite.staticDir = suite.T().TempDir()
	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.staticDir, wasmFileName), []byte("\x00asm"), 0o600))
	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.staticDir, "secret.txt"), []byte("x"), 0o600))

	cfg := &config.Config{
		Frame: config.FrameConfig{
			Authority:           "https://login.example",
			Scope:               "openid profile",
			Popup:               config.PopupConfig{Width: 600, Height: 535},
			DefaultLanguage:     "de",
			StaticDirectory:     suite.staticDir,
			DiagnosticsEndpoint: "/diagnostics",
			HostSDKURL:          "https://cdn.example/teams.js",
		},
		Probe: config.ProbeConfig{Timeout: 5},
	}
	suite.mux = http.NewServeMux()
	Initialize(suite.mux, cfg, "/unused")
}

func (suite *FrameHandlerTestSuite) serve(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *FrameHandlerTestSuite) TestAuthStartRendersPage() {
	rr := suite.serve(http.MethodGet, "/auth-start?tenantId=t&appId=a&nextUri=https://d/", nil)

	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal("text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	suite.Equal("no-store", rr.Header().Get("Cache-Control"))

	body := rr.Body.String()
	suite.Contains(body, `<html lang="de">`)
	suite.Contains(body, `id="pulseLoader"`)
	suite.Contains(body, `id="warningIcon"`)
	suite.Contains(body, `id="error"`)
	suite.Contains(body, `id="btnRetry"`)
	suite.Contains(body, `<script src="https://cdn.example/teams.js"></script>`)
	suite.Contains(body, `<script src="/frame/assets/wasm_exec.js"></script>`)
	suite.Contains(body, `id="clientConfig"`)
	suite.Contains(body, `"popupWidth":600`)
	suite.Contains(body, `"scopes":["openid","profile"]`)
	suite.Contains(body, `"probeTimeout":5`)
}

func (suite *FrameHandlerTestSuite) TestAuthStartNegotiatesLanguage() {
	rr := suite.serve(http.MethodGet, "/auth-start", map[string]string{"Accept-Language": "fr-CA,fr;q=0.9,en;q=0.5"})

	suite.Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), `<html lang="fr">`)
	suite.Contains(rr.Body.String(), "Vérification de vos identifiants...")
	suite.Contains(rr.Body.String(), "Réessayer")
}

func (suite *FrameHandlerTestSuite) TestServesWasmAsset() {
	rr := suite.serve(http.MethodGet, "/frame/assets/frame.wasm", nil)

	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal("application/wasm", rr.Header().Get("Content-Type"))
	suite.Equal("\x00asm", rr.Body.String())
}

func (suite *FrameHandlerTestSuite) TestRejectsOtherAssets() {
	for _, target := range []string{"/frame/assets/secret.txt", "/frame/assets/wasm_exec.js"} {
		rr := suite.serve(http.MethodGet, target, nil)
		suite.Equal(http.StatusNotFound, rr.Code, target)
	}
}

func (suite *FrameHandlerTestSuite) TestLocaleEndpoint() {
	rr := suite.serve(http.MethodGet, "/locales/es-MX", nil)

	suite.Equal(http.StatusOK, rr.Code)
	var resp localeResponse
	suite.Require().NoError(json.NewDecoder(rr.Body).Decode(&resp))
	suite.Equal("es", resp.Language)
	suite.NotEmpty(resp.Messages["general_error"])

	rr = suite.serve(http.MethodGet, "/locales/zz", nil)
	suite.Require().NoError(json.NewDecoder(rr.Body).Decode(&resp))
	suite.Equal("en", resp.Language)
}

func TestNewClientConfig(t *testing.T) {
	cfg := &config.Config{
		Frame: config.FrameConfig{
			Authority:           "https://login.example",
			Scope:               " openid  ",
			Popup:               config.PopupConfig{Width: 1, Height: 2},
			DefaultLanguage:     "fr",
			DiagnosticsEndpoint: "https://ops.example/diagnostics",
		},
	}

	assert.Equal(t, model.ClientConfig{
		Authority:           "https://login.example",
		Scopes:              []string{"openid"},
		PopupWidth:          1,
		PopupHeight:         2,
		DefaultLanguage:     "fr",
		DiagnosticsEndpoint: "https://ops.example/diagnostics",
	}, NewClientConfig(cfg))
}

func TestResolveStaticDir(t *testing.T) {
	assert.Equal(t, "/abs/frame", resolveStaticDir("/abs/frame", "/home"))
	assert.Equal(t, filepath.Join("/home", "repository/resources/frame"),
		resolveStaticDir("repository/resources/frame", "/home"))
}

func TestRequestLanguages(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-AT, en;q=0.5")
	assert.Equal(t, []string{"de-AT", "en", "fr"}, requestLanguages(req, "fr"))

	req.Header.Set("Accept-Language", "")
	assert.Equal(t, []string{}, requestLanguages(req, " "))
}
