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

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/teamsauth/internal/system/error/apierror"
	"github.com/asgardeo/teamsauth/internal/system/error/serviceerror"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

type samplePayload struct {
	Name string `json:"name"`
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"frame"}`))
	payload, err := DecodeJSONBody[samplePayload](req)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "frame", payload.Name)
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBodyRejectsInvalidInput() {
	testCases := []struct {
		name string
		body string
	}{
		{"Malformed", `{"name":`},
		{"Unknown field", `{"name":"a","token":"b"}`},
		{"Empty", ``},
	}
	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			_, err := DecodeJSONBody[samplePayload](req)
			assert.Error(t, err)
		})
	}
}

func (suite *HTTPUtilTestSuite) TestWriteServiceErrorResponse() {
	clientErr := serviceerror.ServiceError{Type: serviceerror.ClientErrorType, Code: "DGN-1001",
		Error: "Invalid request", ErrorDescription: "bad"}

	recorder := httptest.NewRecorder()
	WriteServiceErrorResponse(recorder, &clientErr, 0)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Equal(suite.T(), "application/json", recorder.Header().Get("Content-Type"))

	var body apierror.ErrorResponse
	require.NoError(suite.T(), json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(suite.T(), apierror.ErrorResponse{Code: "DGN-1001", Message: "Invalid request",
		Description: "bad"}, body)

	recorder = httptest.NewRecorder()
	WriteServiceErrorResponse(recorder, &clientErr, http.StatusNotFound)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	recorder = httptest.NewRecorder()
	WriteServiceErrorResponse(recorder, &serviceerror.InternalServerError, http.StatusBadRequest)
	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

func (suite *HTTPUtilTestSuite) TestGetClientIP() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(suite.T(), "10.0.0.1", GetClientIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(suite.T(), "10.0.0.2", GetClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.3")
	assert.Equal(suite.T(), "203.0.113.7", GetClientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "pipe"
	assert.Equal(suite.T(), "pipe", GetClientIP(req))
}

func (suite *HTTPUtilTestSuite) TestGetRemoteIPIgnoresForwardingHeaders() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("X-Real-IP", "10.0.0.2")

	assert.Equal(suite.T(), "10.0.0.1", GetRemoteIP(req))

	req.RemoteAddr = "pipe"
	assert.Equal(suite.T(), "pipe", GetRemoteIP(req))
}

func (suite *HTTPUtilTestSuite) TestGetAllowedOrigin() {
	origins := []string{"https://teams.microsoft.com", "https://app.example.com/"}

	assert.Equal(suite.T(), "https://teams.microsoft.com", GetAllowedOrigin(origins, "https://teams.microsoft.com"))
	assert.Equal(suite.T(), "https://app.example.com", GetAllowedOrigin(origins, "https://app.example.com"))
	assert.Empty(suite.T(), GetAllowedOrigin(origins, "https://teams.microsoft.com.evil.example"))
	assert.Empty(suite.T(), GetAllowedOrigin(nil, "https://teams.microsoft.com"))
	assert.Equal(suite.T(), "https://any.example", GetAllowedOrigin([]string{"*"}, "https://any.example"))
}

func (suite *HTTPUtilTestSuite) TestIdentifiers() {
	id := GenerateUUID()
	assert.True(suite.T(), IsValidUUID(id))
	assert.False(suite.T(), IsValidUUID("not-a-uuid"))

	assert.True(suite.T(), IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.False(suite.T(), IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FA"))
	assert.False(suite.T(), IsValidULID(id))
}

func (suite *HTTPUtilTestSuite) TestTruncateString() {
	assert.Equal(suite.T(), "abc", TruncateString("abc", 5))
	assert.Equal(suite.T(), "ab", TruncateString("abcdef", 2))
	assert.Equal(suite.T(), "a", TruncateString("aé", 2))
	assert.Equal(suite.T(), "abc", TruncateString("abc", 0))
}
