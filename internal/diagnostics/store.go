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
	"fmt"
	"time"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
	"github.com/asgardeo/teamsauth/internal/system/database/provider"
)

// diagnosticsStoreInterface defines the persistence operations for diagnostic reports.
type diagnosticsStoreInterface interface {
	CreateReport(report model.Report) error
	ListReports(limit int) ([]model.Report, error)
}

// diagnosticsStore is the database backed implementation of diagnosticsStoreInterface.
type diagnosticsStore struct {
	dbProvider provider.DBProviderInterface
}

// newDiagnosticsStore creates a new instance of diagnosticsStore.
func newDiagnosticsStore(dbProvider provider.DBProviderInterface) diagnosticsStoreInterface {
	return &diagnosticsStore{
		dbProvider: dbProvider,
	}
}

// CreateReport persists a diagnostic report.
func (s *diagnosticsStore) CreateReport(report model.Report) error {
	dbClient, err := s.dbProvider.GetDBClient(provider.DiagnosticsDB)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateReport, report.ID, report.FlowID, string(report.Kind), report.MessageKey,
		report.Detail, report.Language, report.ClientType, report.Browser, report.OS, report.Device,
		report.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// ListReports returns the latest reports, newest first.
func (s *diagnosticsStore) ListReports(limit int) ([]model.Report, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.DiagnosticsDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryListReports, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	reports := make([]model.Report, 0, len(results))
	for _, row := range results {
		report, err := buildReportFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build report from result row: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// buildReportFromResultRow maps a result row to a report.
func buildReportFromResultRow(row map[string]interface{}) (model.Report, error) {
	id, ok := row["report_id"].(string)
	if !ok {
		return model.Report{}, fmt.Errorf("failed to parse report_id as string")
	}
	flowID, ok := row["flow_id"].(string)
	if !ok {
		return model.Report{}, fmt.Errorf("failed to parse flow_id as string")
	}
	kind, ok := row["kind"].(string)
	if !ok {
		return model.Report{}, fmt.Errorf("failed to parse kind as string")
	}
	messageKey, ok := row["message_key"].(string)
	if !ok {
		return model.Report{}, fmt.Errorf("failed to parse message_key as string")
	}
	createdAt, err := parseTimestamp(row["created_at"])
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return model.Report{
		ID:         id,
		FlowID:     flowID,
		Kind:       model.Kind(kind),
		MessageKey: messageKey,
		Detail:     optionalString(row["detail"]),
		Language:   optionalString(row["language"]),
		ClientType: optionalString(row["client_type"]),
		Browser:    optionalString(row["browser"]),
		OS:         optionalString(row["os"]),
		Device:     optionalString(row["device"]),
		CreatedAt:  createdAt,
	}, nil
}

// optionalString returns the string value of a nullable column.
func optionalString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// timestampLayouts are the text layouts a driver may return for a TIMESTAMP column.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// parseTimestamp converts a TIMESTAMP column value to a UTC time.
func parseTimestamp(value interface{}) (time.Time, error) {
	var text string
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", value)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", text)
}
