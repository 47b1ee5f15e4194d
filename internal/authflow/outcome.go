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

// Outcome is the terminal result of one flow attempt.
type Outcome int

const (
	// OutcomeNone is reported before the first attempt.
	OutcomeNone Outcome = iota
	// OutcomeRedirected means the document was sent to the destination URI.
	OutcomeRedirected
	// OutcomeConfigurationError means required parameters were missing.
	OutcomeConfigurationError
	// OutcomeHostUnavailable means the host SDK binding was not present.
	OutcomeHostUnavailable
	// OutcomeCancelled means the user closed the authorization popup.
	OutcomeCancelled
	// OutcomeFailed means any other failure.
	OutcomeFailed
	// OutcomeReloaded means the document was reloaded from the retry action.
	OutcomeReloaded
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:               "none",
	OutcomeRedirected:         "redirected",
	OutcomeConfigurationError: "configuration_error",
	OutcomeHostUnavailable:    "host_unavailable",
	OutcomeCancelled:          "cancelled",
	OutcomeFailed:             "failed",
	OutcomeReloaded:           "reloaded",
}

// String returns the name of the outcome.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}
