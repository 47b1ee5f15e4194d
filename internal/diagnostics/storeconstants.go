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

import "github.com/asgardeo/teamsauth/internal/system/database/model"

var (
	// queryCreateReport is the query to store a diagnostic report.
	queryCreateReport = model.DBQuery{
		ID: "DGQ-DIAG_MGT-01",
		Query: "INSERT INTO DIAGNOSTIC_REPORT (REPORT_ID, FLOW_ID, KIND, MESSAGE_KEY, DETAIL, LANGUAGE, " +
			"CLIENT_TYPE, BROWSER, OS, DEVICE, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
	}
	// queryListReports is the query to list the latest diagnostic reports.
	queryListReports = model.DBQuery{
		ID: "DGQ-DIAG_MGT-02",
		Query: "SELECT REPORT_ID, FLOW_ID, KIND, MESSAGE_KEY, DETAIL, LANGUAGE, CLIENT_TYPE, BROWSER, OS, " +
			"DEVICE, CREATED_AT FROM DIAGNOSTIC_REPORT ORDER BY CREATED_AT DESC LIMIT $1",
	}
)
