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
	"net/http"
	"strconv"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
	"github.com/asgardeo/teamsauth/internal/system/constants"
	"github.com/asgardeo/teamsauth/internal/system/log"
	"github.com/asgardeo/teamsauth/internal/system/utils"
)

// reportCreatedResponse is returned for an accepted report.
type reportCreatedResponse struct {
	ID string `json:"id"`
}

// reportListResponse is returned by the list endpoint.
type reportListResponse struct {
	Count   int            `json:"count"`
	Reports []model.Report `json:"reports"`
}

// diagnosticsHandler serves the diagnostics endpoints.
type diagnosticsHandler struct {
	service DiagnosticsServiceInterface
}

// newDiagnosticsHandler creates a new instance of diagnosticsHandler.
func newDiagnosticsHandler(service DiagnosticsServiceInterface) *diagnosticsHandler {
	return &diagnosticsHandler{
		service: service,
	}
}

// HandleReportPostRequest handles a report posted by a frame.
func (dh *diagnosticsHandler) HandleReportPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DiagnosticsHandler"))

	request, err := utils.DecodeJSONBody[model.ReportRequest](r)
	if err != nil {
		logger.Debug("Rejected malformed diagnostic report", log.Error(err))
		utils.WriteServiceErrorResponse(w, &ErrorInvalidRequestFormat, http.StatusBadRequest)
		return
	}

	report := request.Report()
	stored, svcErr := dh.service.RecordReport(&report, r.Header.Get(constants.UserAgentHeaderName))
	if svcErr != nil {
		utils.WriteServiceErrorResponse(w, svcErr, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, reportCreatedResponse{ID: stored.ID})
}

// HandleReportListRequest handles the operator request listing the latest reports.
func (dh *diagnosticsHandler) HandleReportListRequest(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.WriteServiceErrorResponse(w, &ErrorInvalidLimit, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	reports, svcErr := dh.service.ListReports(limit)
	if svcErr != nil {
		utils.WriteServiceErrorResponse(w, svcErr, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reportListResponse{
		Count:   len(reports),
		Reports: reports,
	})
}
