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

// Package probemock provides a mock implementation of the silent prober.
package probemock

import "context"

// MockProber is a mock implementation of probe.ProberInterface.
type MockProber struct {
	// MockProbe defines the behavior for the Probe method.
	MockProbe func(ctx context.Context, uri string) error

	// ProbeCalls tracks the URIs passed to Probe.
	ProbeCalls []string
}

// Probe mocks the Probe method of probe.ProberInterface. It succeeds by default.
func (m *MockProber) Probe(ctx context.Context, uri string) error {
	m.ProbeCalls = append(m.ProbeCalls, uri)
	if m.MockProbe != nil {
		return m.MockProbe(ctx, uri)
	}
	return nil
}
