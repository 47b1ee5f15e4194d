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

// Package utils provides utility functions for HTTP and server wide operations.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/asgardeo/teamsauth/internal/system/constants"
	"github.com/asgardeo/teamsauth/internal/system/error/apierror"
	"github.com/asgardeo/teamsauth/internal/system/error/serviceerror"
	"github.com/asgardeo/teamsauth/internal/system/log"
)

// maxRequestBodySize caps JSON request bodies read by DecodeJSONBody.
const maxRequestBodySize = 64 << 10

// DecodeJSONBody decodes the JSON request body into a value of type T. Unknown fields are rejected.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	decoder.DisallowUnknownFields()

	var data T
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON body: %w", err)
	}
	return &data, nil
}

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HTTPUtil"))

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}

// WriteServiceErrorResponse maps a service error to an API error response.
// Client errors are written as 400 unless statusCode overrides them; server errors are always 500.
func WriteServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, statusCode int) {
	if svcErr.Type == serviceerror.ServerErrorType {
		statusCode = http.StatusInternalServerError
	} else if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}

	WriteJSON(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	})
}

// GetClientIP extracts the client IP address, honouring X-Forwarded-For and X-Real-IP.
// The headers are client controlled, so use it only behind a proxy that overwrites them.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return GetRemoteIP(r)
}

// GetRemoteIP returns the IP address of the connection peer.
func GetRemoteIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
