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

// Package diagnosticsmock provides mock implementations for the diagnostics channel.
package diagnosticsmock

import (
	"context"
	"sync"

	"github.com/asgardeo/teamsauth/internal/diagnostics/model"
)

// MockReporter records reports passed to reporter.ReporterInterface. It is safe for concurrent use.
// When Gate is set, Report blocks until the gate is closed or the context is done.
type MockReporter struct {
	Gate <-chan struct{}

	mu      sync.Mutex
	reports []model.Report
}

// Report waits on the gate, if any, and records the report.
func (m *MockReporter) Report(ctx context.Context, report model.Report) {
	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, report)
}

// Reports returns a copy of the recorded reports.
func (m *MockReporter) Reports() []model.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Report(nil), m.reports...)
}
