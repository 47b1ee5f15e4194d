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

// RetryState describes the retry action offered to the user after a failed attempt.
type RetryState struct {
	IsRetryVisible    bool
	WillReloadOnRetry bool
}

// retryController owns the retry state and mirrors its visibility to the status reporter.
type retryController struct {
	state    RetryState
	reporter StatusReporterInterface
}

func newRetryController(reporter StatusReporterInterface) *retryController {
	return &retryController{reporter: reporter}
}

// markReloadRequired offers a full page reload. Used when the host binding is missing.
func (c *retryController) markReloadRequired() {
	c.set(RetryState{IsRetryVisible: true, WillReloadOnRetry: true})
}

// markRestartable offers a restart of the flow from the capability gate.
func (c *retryController) markRestartable() {
	c.set(RetryState{IsRetryVisible: true, WillReloadOnRetry: false})
}

// reset hides the retry action.
func (c *retryController) reset() {
	c.set(RetryState{})
}

func (c *retryController) set(state RetryState) {
	c.state = state
	c.reporter.SetRetryVisible(state.IsRetryVisible)
}
