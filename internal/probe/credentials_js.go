//go:build js && wasm

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
	"time"

	syshttp "github.com/asgardeo/teamsauth/internal/system/http"
)

// fetchCredentialsHeader is consumed by the wasm fetch transport and never sent on the wire.
const fetchCredentialsHeader = "js.fetch:credentials"

// includeCredentials asks the browser fetch API to attach cookies for the destination origin.
func includeCredentials(req *http.Request) {
	req.Header.Set(fetchCredentialsHeader, "include")
}

// newCredentialedClient returns a client backed by the browser fetch transport.
func newCredentialedClient(timeout time.Duration) syshttp.HTTPClientInterface {
	return syshttp.NewHTTPClientWithTimeout(timeout)
}
