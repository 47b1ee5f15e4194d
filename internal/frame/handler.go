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
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/asgardeo/teamsauth/internal/frame/model"
	"github.com/asgardeo/teamsauth/internal/i18n"
	"github.com/asgardeo/teamsauth/internal/system/constants"
	"github.com/asgardeo/teamsauth/internal/system/log"
	"github.com/asgardeo/teamsauth/internal/system/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var authStartTemplate = template.Must(template.ParseFS(templateFS, "templates/auth-start.html"))

// assetContentTypes lists the only files served from the static directory.
var assetContentTypes = map[string]string{
	wasmFileName:     constants.ContentTypeWasm,
	wasmExecFileName: constants.ContentTypeJavaScript,
}

// pageView is the data rendered into the frame page.
type pageView struct {
	Title                string
	Language             string
	StatusText           string
	RetryText            string
	HostSDKURL           string
	WasmURL              string
	WasmExecURL          string
	ClientConfig         model.ClientConfig
	ConfigElementID      string
	LoaderElementID      string
	WarningIconElementID string
	StatusElementID      string
	RetryButtonElementID string
}

// localeResponse is the translation table of a negotiated language.
type localeResponse struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}

// frameHandler serves the frame page and the artifacts it loads.
type frameHandler struct {
	clientConfig model.ClientConfig
	hostSDKURL   string
	staticDir    string
}

// newFrameHandler creates a new instance of frameHandler.
func newFrameHandler(clientConfig model.ClientConfig, hostSDKURL, staticDir string) *frameHandler {
	return &frameHandler{
		clientConfig: clientConfig,
		hostSDKURL:   hostSDKURL,
		staticDir:    staticDir,
	}
}

// HandleAuthStartRequest renders the frame page. The query string is left for the client to read.
func (fh *frameHandler) HandleAuthStartRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	translator := i18n.NewTranslator(requestLanguages(r, fh.clientConfig.DefaultLanguage)...)
	view := pageView{
		Title:                pageTitle,
		Language:             translator.Language(),
		StatusText:           translator.GetMessage(messageKeyVerifyingCredentials),
		RetryText:            translator.GetMessage(messageKeyRetry),
		HostSDKURL:           fh.hostSDKURL,
		WasmURL:              assetsPathPrefix + wasmFileName,
		WasmExecURL:          assetsPathPrefix + wasmExecFileName,
		ClientConfig:         fh.clientConfig,
		ConfigElementID:      model.ElementIDClientConfig,
		LoaderElementID:      model.ElementIDLoader,
		WarningIconElementID: model.ElementIDWarningIcon,
		StatusElementID:      model.ElementIDStatus,
		RetryButtonElementID: model.ElementIDRetryButton,
	}

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeHTML)
	w.Header().Set("Cache-Control", "no-store")
	if err := authStartTemplate.Execute(w, view); err != nil {
		logger.Error("Failed to render frame page", log.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// HandleAssetRequest serves the wasm client and its loader from the static directory.
func (fh *frameHandler) HandleAssetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	name := r.PathValue("file")
	contentType, ok := assetContentTypes[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	file, err := os.Open(filepath.Join(fh.staticDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Frame asset is missing from the static directory", log.String("file", name),
				log.String("directory", fh.staticDir))
			http.NotFound(w, r)
			return
		}
		logger.Error("Failed to open frame asset", log.String("file", name), log.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Error("Failed to close frame asset", log.String("file", name), log.Error(closeErr))
		}
	}()

	info, err := file.Stat()
	if err != nil {
		logger.Error("Failed to stat frame asset", log.String("file", name), log.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set(constants.ContentTypeHeaderName, contentType)
	http.ServeContent(w, r, name, info.ModTime(), file)
}

// HandleLocaleRequest returns the translation table negotiated for the requested language.
func (fh *frameHandler) HandleLocaleRequest(w http.ResponseWriter, r *http.Request) {
	translator := i18n.NewTranslator(r.PathValue("lang"))
	utils.WriteJSON(w, http.StatusOK, localeResponse{
		Language: translator.Language(),
		Messages: translator.Messages(),
	})
}

// requestLanguages returns the Accept-Language tags of r in preference order, followed by fallback.
func requestLanguages(r *http.Request, fallback string) []string {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	languages := make([]string, 0, len(tags)+1)
	if err == nil {
		for _, tag := range tags {
			languages = append(languages, tag.String())
		}
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		languages = append(languages, fallback)
	}
	return languages
}
