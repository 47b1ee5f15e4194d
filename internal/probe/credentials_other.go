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
	"net/http"
	"net/http/cookiejar"
	"time"

	syshttp "github.com/asgardeo/teamsauth/internal/system/http"
)

// includeCredentials is a no-op outside the browser; ambient cookies come from the client's jar.
func includeCredentials(_ *http.Request) {}

// newCredentialedClient returns a client with its own cookie jar standing in for the browser session.
func newCredentialedClient(timeout time.Duration) syshttp.HTTPClientInterface {
	jar, _ := cookiejar.New(nil)
	return syshttp.NewHTTPClientWithConfig(&http.Client{
		Timeout: timeout,
		Jar:     jar,
	})
}
