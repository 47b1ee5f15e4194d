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

// Query string parameters read by the flow.
const (
	TenantIDSearchParam = "tenantId"
	AppIDSearchParam    = "appId"
	NextURISearchParam  = "nextUri"
)

// AuthCompleteSearchParam is appended to the redirect URI to signal that authentication just completed.
const AuthCompleteSearchParam = "msTeamsAuthComplete"

// Authorization request defaults.
const (
	DefaultAuthority   = "https://login.microsoftonline.com"
	DefaultScope       = "openid"
	DefaultPopupWidth  = 600
	DefaultPopupHeight = 535
)

// Message keys resolved through the translator.
const (
	MessageKeyVerifyingCredentials = "verifying_credentials"
	MessageKeyGeneralError         = "general_error"
	MessageKeyHostSDKError         = "teams_sdk_error"
	MessageKeyMissingParamSingle   = "missing_param_single"
	MessageKeyMissingParamMultiple = "missing_param_multiple"
	MessageKeyAuthPopupClosed      = "auth_popup_closed"
)

const loggerComponentName = "AuthFlow"
