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

import "github.com/asgardeo/teamsauth/internal/system/error/serviceerror"

// Client errors for diagnostic report operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be decoded.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DGN-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains unknown fields",
	}
	// ErrorInvalidKind is the error returned when the report kind is not recognised.
	ErrorInvalidKind = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DGN-1002",
		Error:            "Invalid report kind",
		ErrorDescription: "The report kind must be one of configuration, host_unavailable, probe_failed, " +
			"cancelled or general",
	}
	// ErrorInvalidFlowID is the error returned when the flow identifier is not a ULID.
	ErrorInvalidFlowID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DGN-1003",
		Error:            "Invalid flow ID",
		ErrorDescription: "The flow ID must be a valid ULID",
	}
	// ErrorInvalidMessageKey is the error returned when the message key is empty or malformed.
	ErrorInvalidMessageKey = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DGN-1004",
		Error:            "Invalid message key",
		ErrorDescription: "The message key must be a non empty lowercase identifier",
	}
	// ErrorInvalidLimit is the error returned when the list limit is not a positive integer.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DGN-1005",
		Error:            "Invalid limit",
		ErrorDescription: "The limit must be a positive integer",
	}
)
