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

// Package model defines the data the frame page hands to the client running inside it.
package model

// Element IDs of the frame page.
const (
	ElementIDLoader       = "pulseLoader"
	ElementIDWarningIcon  = "warningIcon"
	ElementIDStatus       = "error"
	ElementIDRetryButton  = "btnRetry"
	ElementIDClientConfig = "clientConfig"
)

// ClientConfig is the slice of the server configuration the frame client needs.
type ClientConfig struct {
	Authority           string   `json:"authority"`
	Scopes              []string `json:"scopes"`
	PopupWidth          int      `json:"popupWidth"`
	PopupHeight         int      `json:"popupHeight"`
	DefaultLanguage     string   `json:"defaultLanguage"`
	DiagnosticsEndpoint string   `json:"diagnosticsEndpoint,omitempty"`
	// ProbeTimeout is the silent probe timeout in seconds. Zero disables it.
	ProbeTimeout int `json:"probeTimeout,omitempty"`
}
