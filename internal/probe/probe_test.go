//go:build !(js && wasm)

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

package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	syshttp "github.com/asgardeo/teamsauth/internal/system/http"
)

type SilentProberTestSuite struct {
	suite.Suite
}

func TestSilentProberSuite(t *testing.T) {
	suite.Run(t, new(SilentProberTestSuite))
}

func (suite *SilentProberTestSuite) newServer(status int, methods *[]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if methods != nil {
			*methods = append(*methods, r.Method)
		}
		w.WriteHeader(status)
	}))
}

func (suite *SilentProberTestSuite) TestProbeSucceedsOnStatusOK() {
	var methods []string
	server := suite.newServer(http.StatusOK, &methods)
	defer server.Close()

	prober := NewSilentProber(syshttp.NewHTTPClient())
	err := prober.Probe(context.Background(), server.URL+"/app")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{http.MethodHead}, methods)
}

func (suite *SilentProberTestSuite) TestProbeFailsOnOtherStatuses() {
	statuses := []int{
		http.StatusNoContent,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusInternalServerError,
	}

	for _, status := range statuses {
		server := suite.newServer(status, nil)
		prober := NewSilentProber(syshttp.NewHTTPClient())

		err := prober.Probe(context.Background(), server.URL)
		assert.ErrorIs(suite.T(), err, ErrProbeFailed, "status %d", status)
		server.Close()
	}
}

func (suite *SilentProberTestSuite) TestProbeFailsOnNetworkError() {
	server := suite.newServer(http.StatusOK, nil)
	server.Close()

	err := NewSilentProber(syshttp.NewHTTPClient()).Probe(context.Background(), server.URL)
	assert.ErrorIs(suite.T(), err, ErrProbeFailed)
}

func (suite *SilentProberTestSuite) TestProbeFailsOnMalformedURI() {
	err := NewSilentProber(syshttp.NewHTTPClient()).Probe(context.Background(), "://not a uri")
	assert.ErrorIs(suite.T(), err, ErrProbeFailed)
}

func (suite *SilentProberTestSuite) TestProbeFailsWhenContextCancelled() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewSilentProber(syshttp.NewHTTPClient()).Probe(ctx, server.URL)
	assert.ErrorIs(suite.T(), err, ErrProbeFailed)
	assert.ErrorIs(suite.T(), err, context.DeadlineExceeded)
}

func (suite *SilentProberTestSuite) TestProbeSendsSessionCookies() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
			w.WriteHeader(http.StatusOK)
			return
		}
		if cookie, err := r.Cookie("session"); err == nil && cookie.Value == "abc" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	prober := NewSilentProberWithTimeout(time.Second)
	assert.ErrorIs(suite.T(), prober.Probe(context.Background(), server.URL+"/app"), ErrProbeFailed)

	// Establish a session through the same client, then probe again.
	assert.NoError(suite.T(), prober.Probe(context.Background(), server.URL+"/login"))
	assert.NoError(suite.T(), prober.Probe(context.Background(), server.URL+"/app"))
}
