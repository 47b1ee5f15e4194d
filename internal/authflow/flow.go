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

// Package authflow implements the authentication state machine of the hosted frame. It validates the
// query parameters, checks for the host SDK, skips authentication for plain browser tabs, probes the
// destination silently and falls back to a host mediated popup before redirecting.
package authflow

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
	"github.com/asgardeo/teamsauth/internal/diagnostics/reporter"
	"github.com/asgardeo/teamsauth/internal/host"
	"github.com/asgardeo/teamsauth/internal/i18n"
	"github.com/asgardeo/teamsauth/internal/probe"
	"github.com/asgardeo/teamsauth/internal/system/log"
)

// Config holds the authorization request settings of a flow.
type Config struct {
	Authority   string
	Scopes      []string
	PopupWidth  int
	PopupHeight int
	Language    string
}

// Dependencies are the collaborators of a flow. Diagnostics is optional.
type Dependencies struct {
	Host        host.LookupFunc
	Prober      probe.ProberInterface
	Status      StatusReporterInterface
	Navigator   NavigatorInterface
	Translator  i18n.TranslatorInterface
	Diagnostics reporter.ReporterInterface
}

// Flow runs the authentication attempts of a single document. It is not safe for concurrent use.
type Flow struct {
	query       url.Values
	params      FlowParameters
	hostLookup  host.LookupFunc
	prober      probe.ProberInterface
	status      StatusReporterInterface
	navigator   NavigatorInterface
	translator  i18n.TranslatorInterface
	diagnostics reporter.ReporterInterface
	authorizer  *popupAuthorizer
	retry       *retryController
	language    string

	attemptID   string
	phase       Phase
	statusText  string
	lastOutcome Outcome
	clientType  host.ClientType

	pendingReports sync.WaitGroup
}

// NewFlow creates a flow over the query string of the current document.
func NewFlow(query url.Values, deps Dependencies, cfg Config) *Flow {
	diagnostics := deps.Diagnostics
	if diagnostics == nil {
		diagnostics = reporter.NoopReporter{}
	}
	hostLookup := deps.Host
	if hostLookup == nil {
		hostLookup = host.Static(nil)
	}

	return &Flow{
		query:       query,
		hostLookup:  hostLookup,
		prober:      deps.Prober,
		status:      deps.Status,
		navigator:   deps.Navigator,
		translator:  deps.Translator,
		diagnostics: diagnostics,
		authorizer:  newPopupAuthorizer(cfg),
		retry:       newRetryController(deps.Status),
		language:    cfg.Language,
	}
}

// Start runs the first attempt: parameters are resolved, then the flow proceeds from the capability gate.
func (f *Flow) Start(ctx context.Context) Outcome {
	f.showLoading()

	params, validation := ResolveParameters(f.query)
	if !validation.IsValid() {
		f.showError(validation.MessageKey(), validation.MissingList())
		f.report(ctx, ErrorKindConfiguration, validation.MessageKey(),
			fmt.Errorf("%w: %s", ErrMissingParameters, validation.MissingList()))
		return f.finish(OutcomeConfigurationError)
	}
	f.params = params

	return f.run(ctx)
}

// Retry handles the retry action. It reloads the document when the host binding was missing and
// otherwise restarts from the capability gate with the parameters resolved by Start. Retry is a
// no-op returning the last outcome while the retry action is hidden.
func (f *Flow) Retry(ctx context.Context) Outcome {
	state := f.retry.state
	if !state.IsRetryVisible {
		return f.lastOutcome
	}

	if state.WillReloadOnRetry {
		f.logger().Debug("Reloading document on retry")
		f.navigator.Reload()
		return f.finish(OutcomeReloaded)
	}

	f.showLoading()
	return f.run(ctx)
}

// run executes an attempt from the capability gate onwards.
func (f *Flow) run(ctx context.Context) Outcome {
	logger := f.logger()

	h, ok := f.hostLookup()
	if !ok {
		f.retry.markReloadRequired()
		f.showError(MessageKeyHostSDKError)
		f.report(ctx, ErrorKindHostUnavailable, MessageKeyHostSDKError, ErrHostUnavailable)
		return f.finish(OutcomeHostUnavailable)
	}

	if err := h.Initialize(ctx); err != nil {
		return f.handleError(ctx, fmt.Errorf("failed to initialize host: %w", err))
	}

	hostCtx, err := h.GetContext(ctx)
	if err != nil {
		return f.handleError(ctx, fmt.Errorf("failed to get host context: %w", err))
	}
	if hostCtx != nil {
		f.clientType = hostCtx.App.Host.ClientType
	}

	if hostCtx.IsWebClient() {
		logger.Debug("Host is a web client, redirecting without authentication")
		return f.redirect()
	}

	err = f.prober.Probe(ctx, f.params.NextURI)
	if err == nil {
		logger.Debug("Existing session grants access, redirecting")
		return f.redirect()
	}
	logger.Debug("Silent probe did not confirm a session, opening popup",
		log.String("kind", string(ClassifyError(err))), log.Error(err))

	logger.Debug("Opening authorization popup", log.String("loginHint", log.MaskString(hostCtx.LoginHint())))
	if err := f.authorizer.Authorize(ctx, h, f.params, hostCtx); err != nil {
		return f.handleError(ctx, err)
	}

	return f.redirect()
}

// handleError is the single failure path for host and popup errors.
func (f *Flow) handleError(ctx context.Context, err error) Outcome {
	if errors.Is(err, host.ErrCancelledByUser) {
		f.retry.markRestartable()
		f.showError(MessageKeyAuthPopupClosed)
		f.report(ctx, ErrorKindCancelled, MessageKeyAuthPopupClosed, err)
		return f.finish(OutcomeCancelled)
	}

	f.showError(MessageKeyGeneralError)
	f.report(ctx, ErrorKindGeneral, MessageKeyGeneralError, err)
	return f.finish(OutcomeFailed)
}

func (f *Flow) redirect() Outcome {
	f.logger().Info("Redirecting to destination", log.String("nextUri", f.params.NextURI))
	f.navigator.Redirect(f.params.NextURI)
	return f.finish(OutcomeRedirected)
}

// showLoading begins a new attempt and clears any error state of the previous one.
func (f *Flow) showLoading() {
	f.attemptID = ulid.Make().String()
	f.clientType = ""
	f.retry.reset()
	f.phase = PhaseLoading
	f.statusText = f.translator.GetMessage(MessageKeyVerifyingCredentials)
	f.status.ShowLoading(f.statusText)
}

func (f *Flow) showError(messageKey string, values ...string) {
	f.phase = PhaseError
	f.statusText = f.translator.GetMessage(messageKey, values...)
	f.status.ShowError(f.statusText)
}

// report logs the failure and forwards it to the diagnostics channel without waiting for delivery.
func (f *Flow) report(ctx context.Context, kind ErrorKind, messageKey string, err error) {
	f.logger().Error("Authentication attempt failed", log.String("kind", string(kind)), log.Error(err))

	report := model.Report{
		FlowID:     f.attemptID,
		Kind:       model.Kind(kind),
		MessageKey: messageKey,
		Detail:     err.Error(),
		Language:   f.language,
		ClientType: string(f.clientType),
	}
	reportCtx := context.WithoutCancel(ctx)

	f.pendingReports.Add(1)
	go func() {
		defer f.pendingReports.Done()
		f.diagnostics.Report(reportCtx, report)
	}()
}

// WaitForReports blocks until every diagnostics report sent so far has been handed off.
func (f *Flow) WaitForReports() {
	f.pendingReports.Wait()
}

func (f *Flow) finish(outcome Outcome) Outcome {
	f.lastOutcome = outcome
	return outcome
}

func (f *Flow) logger() *log.Logger {
	return log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyFlowID, f.attemptID))
}

// AttemptID returns the identifier of the current attempt.
func (f *Flow) AttemptID() string {
	return f.attemptID
}

// Parameters returns the parameters resolved by Start.
func (f *Flow) Parameters() FlowParameters {
	return f.params
}

// RetryState returns the current retry state.
func (f *Flow) RetryState() RetryState {
	return f.retry.state
}

// Phase returns the current UI phase and status text.
func (f *Flow) Phase() (Phase, string) {
	return f.phase, f.statusText
}

// LastOutcome returns the outcome of the most recent attempt.
func (f *Flow) LastOutcome() Outcome {
	return f.lastOutcome
}
