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

package diagnostics

import "regexp"

const (
	loggerComponentName = "DiagnosticsService"

	// maxMessageKeyLength bounds the message key of a report.
	maxMessageKeyLength = 64
	// maxLanguageLength bounds the language tag of a report.
	maxLanguageLength = 16
	// maxClientTypeLength bounds the host client type of a report.
	maxClientTypeLength = 16
	// maxUserAgentFieldLength bounds the browser and OS names derived from the user agent.
	maxUserAgentFieldLength = 64
	// defaultMaxDetailLength is used when the configured detail length is not positive.
	defaultMaxDetailLength = 2048
)

// Device classes derived from the user agent.
const (
	deviceMobile  = "mobile"
	deviceTablet  = "tablet"
	deviceDesktop = "desktop"
	deviceBot     = "bot"
)

// migrationsDir is the directory of the embedded schema migrations.
const migrationsDir = "migrations"

var messageKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
