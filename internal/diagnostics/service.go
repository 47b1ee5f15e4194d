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

package diagnostics

import (
	"strings"
	"time"

	"github.com/mileusna/useragent"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
	"github.com/asgardeo/teamsauth/internal/system/constants"
	"github.com/asgardeo/teamsauth/internal/system/error/serviceerror"
	"github.com/asgardeo/teamsauth/internal/system/log"
	"github.com/asgardeo/teamsauth/internal/system/utils"
)

// DiagnosticsServiceInterface defines the operations of the diagnostics intake.
type DiagnosticsServiceInterface interface {
	RecordReport(report *model.Report, userAgent string) (*model.Report, *serviceerror.ServiceError)
	ListReports(limit int) ([]model.Report, *serviceerror.ServiceError)
}

// diagnosticsService is the default implementation of DiagnosticsServiceInterface.
type diagnosticsService struct {
	store           diagnosticsStoreInterface
	failures        *prometheus.CounterVec
	maxDetailLength int
	now             func() time.Time
}

// newDiagnosticsService creates a new instance of diagnosticsService.
func newDiagnosticsService(store diagnosticsStoreInterface, failures *prometheus.CounterVec,
	maxDetailLength int) DiagnosticsServiceInterface {
	if maxDetailLength <= 0 {
		maxDetailLength = defaultMaxDetailLength
	}
	return &diagnosticsService{
		store:           store,
		failures:        failures,
		maxDetailLength: maxDetailLength,
		now:             time.Now,
	}
}

// RecordReport validates, enriches and stores a report sent by a frame.
func (ds *diagnosticsService) RecordReport(report *model.Report,
	userAgent string) (*model.Report, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateReport(report); svcErr != nil {
		return nil, svcErr
	}

	stored := model.Report{
		ID:         utils.GenerateUUID(),
		FlowID:     report.FlowID,
		Kind:       report.Kind,
		MessageKey: report.MessageKey,
		Detail:     utils.TruncateString(report.Detail, ds.maxDetailLength),
		Language:   utils.TruncateString(strings.ToLower(strings.TrimSpace(report.Language)), maxLanguageLength),
		ClientType: utils.TruncateString(strings.TrimSpace(report.ClientType), maxClientTypeLength),
		CreatedAt:  ds.now().UTC(),
	}
	enrichFromUserAgent(&stored, userAgent)

	if err := ds.store.CreateReport(stored); err != nil {
		logger.Error("Failed to store diagnostic report", log.String("flowId", stored.FlowID), log.Error(err))
		return nil, &serviceerror.InternalServerError
	}

	if ds.failures != nil {
		ds.failures.WithLabelValues(string(stored.Kind)).Inc()
	}
	logger.Debug("Stored diagnostic report", log.String("id", stored.ID), log.String("flowId", stored.FlowID),
		log.String("kind", string(stored.Kind)))

	return &stored, nil
}

// ListReports returns up to limit of the latest reports. A non positive limit selects the default page size.
func (ds *diagnosticsService) ListReports(limit int) ([]model.Report, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	reports, err := ds.store.ListReports(limit)
	if err != nil {
		logger.Error("Failed to list diagnostic reports", log.Error(err))
		return nil, &serviceerror.InternalServerError
	}
	return reports, nil
}

// validateReport checks the fields a frame is required to send.
func validateReport(report *model.Report) *serviceerror.ServiceError {
	if report == nil {
		return &ErrorInvalidRequestFormat
	}
	if !report.Kind.IsKnown() {
		return &ErrorInvalidKind
	}
	if !utils.IsValidULID(report.FlowID) {
		return &ErrorInvalidFlowID
	}
	if len(report.MessageKey) > maxMessageKeyLength || !messageKeyPattern.MatchString(report.MessageKey) {
		return &ErrorInvalidMessageKey
	}
	return nil
}

// enrichFromUserAgent fills the browser, OS and device of a report from the request user agent.
func enrichFromUserAgent(report *model.Report, userAgent string) {
	if userAgent == "" {
		return
	}

	ua := useragent.Parse(userAgent)
	report.Browser = utils.TruncateString(ua.Name, maxUserAgentFieldLength)
	report.OS = utils.TruncateString(ua.OS, maxUserAgentFieldLength)

	switch {
	case ua.Bot:
		report.Device = deviceBot
	case ua.Tablet:
		report.Device = deviceTablet
	case ua.Mobile:
		report.Device = deviceMobile
	case ua.Desktop:
		report.Device = deviceDesktop
	}
}
