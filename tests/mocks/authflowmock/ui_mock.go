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

// Package authflowmock provides mock implementations of the flow's UI and navigation collaborators.
package authflowmock

// StatusEvent is a single call recorded by MockStatusReporter.
type StatusEvent struct {
	Method  string
	Text    string
	Visible bool
}

// MockStatusReporter records calls to authflow.StatusReporterInterface.
type MockStatusReporter struct {
	Events       []StatusEvent
	Loading      bool
	Text         string
	RetryVisible bool
}

// ShowLoading records the loading state.
func (m *MockStatusReporter) ShowLoading(text string) {
	m.Events = append(m.Events, StatusEvent{Method: "ShowLoading", Text: text})
	m.Loading = true
	m.Text = text
}

// ShowError records the error state.
func (m *MockStatusReporter) ShowError(text string) {
	m.Events = append(m.Events, StatusEvent{Method: "ShowError", Text: text})
	m.Loading = false
	m.Text = text
}

// SetRetryVisible records the retry visibility.
func (m *MockStatusReporter) SetRetryVisible(visible bool) {
	m.Events = append(m.Events, StatusEvent{Method: "SetRetryVisible", Visible: visible})
	m.RetryVisible = visible
}

// MockNavigator records calls to authflow.NavigatorInterface.
type MockNavigator struct {
	// Redirects tracks the URIs passed to Redirect.
	Redirects []string

	// ReloadCalls tracks the calls to Reload.
	ReloadCalls int
}

// Redirect records the navigation target.
func (m *MockNavigator) Redirect(uri string) {
	m.Redirects = append(m.Redirects, uri)
}

// Reload records a reload.
func (m *MockNavigator) Reload() {
	m.ReloadCalls++
}
