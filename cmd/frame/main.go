//go:build js && wasm

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
	"context"
	"net/url"
	"syscall/js"

	"github.com/asgardeo/teamsauth/internal/authflow"
	"github.com/asgardeo/teamsauth/internal/browser"
	"github.com/asgardeo/teamsauth/internal/diagnostics/reporter"
	"github.com/asgardeo/teamsauth/internal/frame/model"
	"github.com/asgardeo/teamsauth/internal/i18n"
	"github.com/asgardeo/teamsauth/internal/probe"
	syshttp "github.com/asgardeo/teamsauth/internal/system/http"
	"github.com/asgardeo/teamsauth/internal/system/log"
)

func main() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Frame"))
	defer log.Sync()

	document := js.Global().Get("document")
	cfg, err := parseClientConfig(browser.ReadElementText(document, model.ElementIDClientConfig))
	if err != nil {
		logger.Error("Falling back to default client configuration", log.Error(err))
	}

	navigator := browser.NewLocationNavigator()
	query := url.Values{}
	if current, err := url.Parse(navigator.Href()); err == nil {
		query = current.Query()
	}

	flowCfg := flowConfig(cfg, browser.BrowserLanguage())
	status := browser.NewDOMStatusReporter(document)
	flow := authflow.NewFlow(query, authflow.Dependencies{
		Host:        browser.LookupTeamsHost,
		Prober:      probe.NewSilentProberWithTimeout(probeTimeout(cfg)),
		Status:      status,
		Navigator:   navigator,
		Translator:  i18n.NewTranslator(flowCfg.Language),
		Diagnostics: reporter.NewHTTPReporter(resolveEndpoint(navigator.Href(), cfg.DiagnosticsEndpoint),
			syshttp.NewHTTPClient()),
	}, flowCfg)

	// Clicks are queued so attempts never overlap.
	retries := make(chan struct{}, 1)
	release := status.OnRetry(func() {
		select {
		case retries <- struct{}{}:
		default:
		}
	})
	defer release()

	ctx := context.Background()
	outcome := flow.Start(ctx)
	logger.Debug("Flow attempt finished", log.String(log.LoggerKeyFlowID, flow.AttemptID()),
		log.String("outcome", outcome.String()))

	for range retries {
		outcome = flow.Retry(ctx)
		logger.Debug("Flow attempt finished", log.String(log.LoggerKeyFlowID, flow.AttemptID()),
			log.String("outcome", outcome.String()))
	}
}
