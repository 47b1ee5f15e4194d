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

import (
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// BuildLoginURL builds the tenant scoped authorization request opened in the popup.
// The redirect URI is the destination with the completion marker appended. Scopes default to openid.
func BuildLoginURL(authority string, params FlowParameters, loginHint string, scopes ...string) string {
	if authority == "" {
		authority = DefaultAuthority
	}
	if len(scopes) == 0 {
		scopes = []string{DefaultScope}
	}

	cfg := oauth2.Config{
		ClientID: params.AppID,
		Endpoint: oauth2.Endpoint{
			AuthURL: strings.TrimSuffix(authority, "/") + "/" + url.PathEscape(params.TenantID) + "/oauth2/authorize",
		},
		RedirectURL: CompletionRedirectURI(params.NextURI),
		Scopes:      scopes,
	}

	return cfg.AuthCodeURL("",
		oauth2.SetAuthURLParam("sso_reload", "true"),
		oauth2.SetAuthURLParam("login_hint", loginHint),
	)
}

// CompletionRedirectURI appends the completion marker to the destination URI, adding a trailing
// slash first when the destination does not end with one.
func CompletionRedirectURI(nextURI string) string {
	if !strings.HasSuffix(nextURI, "/") {
		nextURI += "/"
	}
	return nextURI + "?" + AuthCompleteSearchParam + "=true"
}

// StripCompletionMarker removes the completion marker from uri. Other query parameters are kept.
// A uri that cannot be parsed is returned unchanged.
func StripCompletionMarker(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	query := parsed.Query()
	if !query.Has(AuthCompleteSearchParam) {
		return uri
	}
	query.Del(AuthCompleteSearchParam)
	parsed.RawQuery = query.Encode()
	parsed.ForceQuery = false
	return parsed.String()
}
