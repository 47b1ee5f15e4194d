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

package authflow

// StatusReporterInterface renders the flow state to the user.
type StatusReporterInterface interface {
	// ShowLoading shows the loading indicator with the given status text.
	ShowLoading(text string)
	// ShowError shows the warning indicator with the given error text.
	ShowError(text string)
	// SetRetryVisible toggles the retry action.
	SetRetryVisible(visible bool)
}

// NavigatorInterface performs document level navigation.
type NavigatorInterface interface {
	// Redirect navigates the document to uri.
	Redirect(uri string)
	// Reload reloads the current document.
	Reload()
}

// Phase is the UI phase of the flow.
type Phase int

const (
	// PhaseLoading is shown while an attempt is in progress.
	PhaseLoading Phase = iota
	// PhaseError is shown after an attempt failed.
	PhaseError
)

// String returns the name of the phase.
func (p Phase) String() string {
	if p == PhaseError {
		return "error"
	}
	return "loading"
}
