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

// Package constants defines global constants used across the system module.
package constants

const (
	// LogLevelEnvironmentVariable is the environment variable name for the log level.
	LogLevelEnvironmentVariable = "LOG_LEVEL"
	// DefaultLogLevel is the default log level used if not specified.
	DefaultLogLevel = "info"
)

// ContentTypeHeaderName is the name of the content type header used in HTTP requests.
const ContentTypeHeaderName = "Content-Type"

// UserAgentHeaderName is the name of the user agent header used in HTTP requests.
const UserAgentHeaderName = "User-Agent"

// ContentTypeJSON is the content type for JSON data.
const ContentTypeJSON = "application/json"

// ContentTypeHTML is the content type for HTML documents.
const ContentTypeHTML = "text/html; charset=utf-8"

// ContentTypeWasm is the content type for WebAssembly binaries.
const ContentTypeWasm = "application/wasm"

// ContentTypeJavaScript is the content type for JavaScript sources.
const ContentTypeJavaScript = "text/javascript; charset=utf-8"

// DefaultPageSize is the default limit for list operations when not specified.
const DefaultPageSize = 30

// MaxPageSize is the maximum allowed limit for list operations.
const MaxPageSize = 100
