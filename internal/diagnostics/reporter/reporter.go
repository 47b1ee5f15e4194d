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

// Package reporter sends diagnostic reports from the frame to the operator intake.
package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
	"github.com/asgardeo/teamsauth/internal/system/constants"
	syshttp "github.com/asgardeo/teamsauth/internal/system/http"
	"github.com/asgardeo/teamsauth/internal/system/log"
)

const loggerComponentName = "DiagnosticsReporter"

// ReporterInterface delivers diagnostic reports. Delivery failures never reach the caller.
type ReporterInterface interface {
	Report(ctx context.Context, report model.Report)
}

// HTTPReporter posts reports as JSON to the diagnostics endpoint.
type HTTPReporter struct {
	endpoint string
	client   syshttp.HTTPClientInterface
}

// NewHTTPReporter creates a reporter posting to endpoint. An empty endpoint yields a no-op reporter.
func NewHTTPReporter(endpoint string, client syshttp.HTTPClientInterface) ReporterInterface {
	if endpoint == "" {
		return NoopReporter{}
	}
	return &HTTPReporter{
		endpoint: endpoint,
		client:   client,
	}
}

// Report posts the report and logs any failure.
func (r *HTTPReporter) Report(ctx context.Context, report model.Report) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyFlowID, report.FlowID))

	if err := r.send(ctx, report); err != nil {
		logger.Warn("Failed to deliver diagnostic report", log.String("kind", string(report.Kind)), log.Error(err))
		return
	}
	logger.Debug("Diagnostic report delivered", log.String("kind", string(report.Kind)))
}

func (r *HTTPReporter) send(ctx context.Context, report model.Report) error {
	body, err := json.Marshal(model.NewReportRequest(report))
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted &&
		resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from diagnostics endpoint", resp.StatusCode)
	}
	return nil
}

// NoopReporter discards every report.
type NoopReporter struct{}

// Report discards the report.
func (NoopReporter) Report(context.Context, model.Report) {}
