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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
	"github.com/asgardeo/teamsauth/internal/system/error/apierror"
	"github.com/asgardeo/teamsauth/internal/system/error/serviceerror"
)

type serviceMock struct {
	mockRecordReport func(report *model.Report, userAgent string) (*model.Report, *serviceerror.ServiceError)
	mockListReports  func(limit int) ([]model.Report, *serviceerror.ServiceError)
	recorded         []*model.Report
	userAgents       []string
	limits           []int
}

func (m *serviceMock) RecordReport(report *model.Report,
	userAgent string) (*model.Report, *serviceerror.ServiceError) {
	m.recorded = append(m.recorded, report)
	m.userAgents = append(m.userAgents, userAgent)
	if m.mockRecordReport != nil {
		return m.mockRecordReport(report, userAgent)
	}
	stored := *report
	stored.ID = "generated-id"
	return &stored, nil
}

func (m *serviceMock) ListReports(limit int) ([]model.Report, *serviceerror.ServiceError) {
	m.limits = append(m.limits, limit)
	if m.mockListReports != nil {
		return m.mockListReports(limit)
	}
	return []model.Report{}, nil
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) apierror.ErrorResponse {
	t.Helper()
	var resp apierror.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestHandleReportPostRequest(t *testing.T) {
	svc := &serviceMock{}
	handler := newDiagnosticsHandler(svc)
	body := `{"flowId":"` + testFlowID + `","kind":"cancelled","messageKey":"auth_popup_closed",` +
		`"detail":"CancelledByUser","language":"fr","clientType":"desktop"}`
	req := httptest.NewRequest(http.MethodPost, "/diagnostics", strings.NewReader(body))
	req.Header.Set("User-Agent", testUserAgent)
	rr := httptest.NewRecorder()

	handler.HandleReportPostRequest(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"generated-id"}`, rr.Body.String())
	require.Len(t, svc.recorded, 1)
	assert.Equal(t, &model.Report{
		FlowID: testFlowID, Kind: model.KindCancelled, MessageKey: "auth_popup_closed",
		Detail: "CancelledByUser", Language: "fr", ClientType: "desktop",
	}, svc.recorded[0])
	assert.Equal(t, []string{testUserAgent}, svc.userAgents)
}

func TestHandleReportPostRequestMalformed(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"NotJSON", "flowId=1"},
		{"UnknownField", `{"flowId":"x","token":"secret"}`},
		{"Empty", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &serviceMock{}
			req := httptest.NewRequest(http.MethodPost, "/diagnostics", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			newDiagnosticsHandler(svc).HandleReportPostRequest(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, ErrorInvalidRequestFormat.Code, decodeErrorResponse(t, rr).Code)
			assert.Empty(t, svc.recorded)
		})
	}
}

func TestHandleReportPostRequestServiceErrors(t *testing.T) {
	testCases := []struct {
		name     string
		svcErr   *serviceerror.ServiceError
		expected int
	}{
		{"ClientError", &ErrorInvalidKind, http.StatusBadRequest},
		{"ServerError", &serviceerror.InternalServerError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &serviceMock{
				mockRecordReport: func(*model.Report, string) (*model.Report, *serviceerror.ServiceError) {
					return nil, tc.svcErr
				},
			}
			req := httptest.NewRequest(http.MethodPost, "/diagnostics",
				strings.NewReader(`{"flowId":"x","kind":"y","messageKey":"z"}`))
			rr := httptest.NewRecorder()

			newDiagnosticsHandler(svc).HandleReportPostRequest(rr, req)

			assert.Equal(t, tc.expected, rr.Code)
			assert.Equal(t, tc.svcErr.Code, decodeErrorResponse(t, rr).Code)
		})
	}
}

func TestHandleReportListRequest(t *testing.T) {
	createdAt := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	svc := &serviceMock{
		mockListReports: func(int) ([]model.Report, *serviceerror.ServiceError) {
			return []model.Report{{ID: "r1", FlowID: testFlowID, Kind: model.KindGeneral,
				MessageKey: "general_error", CreatedAt: createdAt}}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/diagnostics?limit=5", nil)
	rr := httptest.NewRecorder()

	newDiagnosticsHandler(svc).HandleReportListRequest(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int{5}, svc.limits)
	assert.JSONEq(t, `{"count":1,"reports":[{"id":"r1","flowId":"`+testFlowID+
		`","kind":"general","messageKey":"general_error","createdAt":"2025-02-03T04:05:06Z"}]}`, rr.Body.String())
}

func TestHandleReportListRequestDefaultLimit(t *testing.T) {
	svc := &serviceMock{}
	rr := httptest.NewRecorder()

	newDiagnosticsHandler(svc).HandleReportListRequest(rr, httptest.NewRequest(http.MethodGet, "/diagnostics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int{0}, svc.limits)
	assert.JSONEq(t, `{"count":0,"reports":[]}`, rr.Body.String())
}

func TestHandleReportListRequestInvalidLimit(t *testing.T) {
	for _, limit := range []string{"abc", "0", "-3"} {
		t.Run(limit, func(t *testing.T) {
			svc := &serviceMock{}
			rr := httptest.NewRecorder()

			newDiagnosticsHandler(svc).HandleReportListRequest(rr,
				httptest.NewRequest(http.MethodGet, "/diagnostics?limit="+limit, nil))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, ErrorInvalidLimit.Code, decodeErrorResponse(t, rr).Code)
			assert.Empty(t, svc.limits)
		})
	}
}

func TestHandleReportListRequestServerError(t *testing.T) {
	svc := &serviceMock{
		mockListReports: func(int) ([]model.Report, *serviceerror.ServiceError) {
			return nil, &serviceerror.InternalServerError
		},
	}
	rr := httptest.NewRecorder()

	newDiagnosticsHandler(svc).HandleReportListRequest(rr, httptest.NewRequest(http.MethodGet, "/diagnostics", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
