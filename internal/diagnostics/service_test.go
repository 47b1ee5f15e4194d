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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
	"github.com/asgardeo/teamsauth/internal/system/error/serviceerror"
	"github.com/asgardeo/teamsauth/internal/system/utils"
)

const (
	testFlowID    = "01ARZ3NDEKTSV4RRFFQ69G5FAV"
	testUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
)

type storeMock struct {
	mockCreateReport func(report model.Report) error
	mockListReports  func(limit int) ([]model.Report, error)
	created          []model.Report
	listLimits       []int
}

func (m *storeMock) CreateReport(report model.Report) error {
	m.created = append(m.created, report)
	if m.mockCreateReport != nil {
		return m.mockCreateReport(report)
	}
	return nil
}

func (m *storeMock) ListReports(limit int) ([]model.Report, error) {
	m.listLimits = append(m.listLimits, limit)
	if m.mockListReports != nil {
		return m.mockListReports(limit)
	}
	return []model.Report{}, nil
}

type DiagnosticsServiceTestSuite struct {
	suite.Suite
	store    *storeMock
	failures *prometheus.CounterVec
	service  *diagnosticsService
	fixedNow time.Time
}

func TestDiagnosticsServiceSuite(t *testing.T) {
	suite.Run(t, new(DiagnosticsServiceTestSuite))
}

func (suite *DiagnosticsServiceTestSuite) SetupTest() {
	suite.store = &storeMock{}
	suite.failures = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "failures_total"}, []string{"kind"})
	suite.fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.FixedZone("IST", 19800))
	svc := newDiagnosticsService(suite.store, suite.failures, 16).(*diagnosticsService)
	svc.now = func() time.Time { return suite.fixedNow }
	suite.service = svc
}

func validReport() *model.Report {
	return &model.Report{
		FlowID:     testFlowID,
		Kind:       model.KindCancelled,
		MessageKey: "auth_popup_closed",
		Detail:     "CancelledByUser",
		Language:   " FR ",
		ClientType: "desktop",
	}
}

func (suite *DiagnosticsServiceTestSuite) TestRecordReport() {
	stored, svcErr := suite.service.RecordReport(validReport(), testUserAgent)

	suite.Nil(svcErr)
	suite.Require().NotNil(stored)
	suite.True(utils.IsValidUUID(stored.ID))
	suite.Equal(testFlowID, stored.FlowID)
	suite.Equal(model.KindCancelled, stored.Kind)
	suite.Equal("auth_popup_closed", stored.MessageKey)
	suite.Equal("CancelledByUser", stored.Detail)
	suite.Equal("fr", stored.Language)
	suite.Equal("desktop", stored.ClientType)
	suite.Equal("Chrome", stored.Browser)
	suite.Equal("Windows", stored.OS)
	suite.Equal(deviceDesktop, stored.Device)
	suite.Equal(suite.fixedNow.UTC(), stored.CreatedAt)
	suite.Equal(time.UTC, stored.CreatedAt.Location())

	suite.Require().Len(suite.store.created, 1)
	suite.Equal(*stored, suite.store.created[0])
	suite.Equal(1.0, testutil.ToFloat64(suite.failures.WithLabelValues("cancelled")))
}

func (suite *DiagnosticsServiceTestSuite) TestRecordReportTruncatesDetail() {
	report := validReport()
	report.Detail = strings.Repeat("x", 40)

	stored, svcErr := suite.service.RecordReport(report, "")

	suite.Nil(svcErr)
	suite.Len(stored.Detail, 16)
	suite.Empty(stored.Browser)
	suite.Empty(stored.Device)
}

func (suite *DiagnosticsServiceTestSuite) TestRecordReportValidation() {
	testCases := []struct {
		name     string
		mutate   func(r *model.Report)
		expected serviceerror.ServiceError
	}{
		{"UnknownKind", func(r *model.Report) { r.Kind = "exploded" }, ErrorInvalidKind},
		{"EmptyKind", func(r *model.Report) { r.Kind = "" }, ErrorInvalidKind},
		{"EmptyFlowID", func(r *model.Report) { r.FlowID = "" }, ErrorInvalidFlowID},
		{"UUIDFlowID", func(r *model.Report) { r.FlowID = utils.GenerateUUID() }, ErrorInvalidFlowID},
		{"EmptyMessageKey", func(r *model.Report) { r.MessageKey = "" }, ErrorInvalidMessageKey},
		{"UppercaseMessageKey", func(r *model.Report) { r.MessageKey = "General_Error" }, ErrorInvalidMessageKey},
		{"LongMessageKey", func(r *model.Report) { r.MessageKey = strings.Repeat("a", 65) }, ErrorInvalidMessageKey},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			report := validReport()
			tc.mutate(report)

			stored, svcErr := suite.service.RecordReport(report, testUserAgent)

			suite.Nil(stored)
			suite.Require().NotNil(svcErr)
			suite.Equal(tc.expected.Code, svcErr.Code)
		})
	}
	suite.Empty(suite.store.created)
	suite.Equal(0.0, testutil.ToFloat64(suite.failures.WithLabelValues("cancelled")))
}

func (suite *DiagnosticsServiceTestSuite) TestRecordReportNil() {
	stored, svcErr := suite.service.RecordReport(nil, testUserAgent)

	suite.Nil(stored)
	suite.Equal(&ErrorInvalidRequestFormat, svcErr)
}

func (suite *DiagnosticsServiceTestSuite) TestRecordReportStoreFailure() {
	suite.store.mockCreateReport = func(model.Report) error { return errors.New("disk full") }

	stored, svcErr := suite.service.RecordReport(validReport(), testUserAgent)

	suite.Nil(stored)
	suite.Equal(&serviceerror.InternalServerError, svcErr)
	suite.Equal(0.0, testutil.ToFloat64(suite.failures.WithLabelValues("cancelled")))
}

func (suite *DiagnosticsServiceTestSuite) TestListReportsLimits() {
	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{"Default", 0, 30},
		{"Negative", -5, 30},
		{"Within", 10, 10},
		{"Capped", 1000, 100},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.store.listLimits = nil

			reports, svcErr := suite.service.ListReports(tc.limit)

			suite.Nil(svcErr)
			suite.NotNil(reports)
			suite.Equal([]int{tc.expected}, suite.store.listLimits)
		})
	}
}

func (suite *DiagnosticsServiceTestSuite) TestListReportsStoreFailure() {
	suite.store.mockListReports = func(int) ([]model.Report, error) { return nil, errors.New("gone") }

	reports, svcErr := suite.service.ListReports(5)

	suite.Nil(reports)
	suite.Equal(&serviceerror.InternalServerError, svcErr)
}

func (suite *DiagnosticsServiceTestSuite) TestEnrichFromUserAgentDevices() {
	testCases := []struct {
		name      string
		userAgent string
		device    string
	}{
		{
			"Mobile",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) " +
				"Version/16.0 Mobile/15E148 Safari/604.1",
			deviceMobile,
		},
		{
			"Tablet",
			"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) " +
				"Version/16.0 Mobile/15E148 Safari/604.1",
			deviceTablet,
		},
		{"Bot", "Googlebot/2.1 (+http://www.google.com/bot.html)", deviceBot},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			report := model.Report{}
			enrichFromUserAgent(&report, tc.userAgent)
			suite.Equal(tc.device, report.Device)
		})
	}
}

func (suite *DiagnosticsServiceTestSuite) TestNewServiceDefaultsDetailLength() {
	svc := newDiagnosticsService(suite.store, nil, 0).(*diagnosticsService)
	suite.Equal(defaultMaxDetailLength, svc.maxDetailLength)

	_, svcErr := svc.RecordReport(validReport(), "")
	suite.Nil(svcErr)
}
