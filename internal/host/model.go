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

package host

// ClientType identifies the kind of client the embedding host runs in.
type ClientType string

const (
	// ClientTypeWeb is reported when the host runs as a plain browser tab.
	ClientTypeWeb ClientType = "web"
	// ClientTypeDesktop is reported by the native desktop host.
	ClientTypeDesktop ClientType = "desktop"
	// ClientTypeAndroid is reported by the Android host.
	ClientTypeAndroid ClientType = "android"
	// ClientTypeIOS is reported by the iOS host.
	ClientTypeIOS ClientType = "ios"
)

// HostInfo describes the embedding host application.
type HostInfo struct {
	Name       string     `json:"name,omitempty"`
	ClientType ClientType `json:"clientType,omitempty"`
}

// AppInfo describes the hosted application.
type AppInfo struct {
	Locale string   `json:"locale,omitempty"`
	Host   HostInfo `json:"host"`
}

// UserInfo describes the signed in host user.
type UserInfo struct {
	ID        string `json:"id,omitempty"`
	LoginHint string `json:"loginHint,omitempty"`
}

// Context is the read only view of the embedding environment returned by the host SDK.
type Context struct {
	App  AppInfo  `json:"app"`
	User UserInfo `json:"user"`
}

// IsWebClient reports whether the host identified itself as a plain browser tab.
func (c *Context) IsWebClient() bool {
	return c != nil && c.App.Host.ClientType == ClientTypeWeb
}

// LoginHint returns the login hint of the signed in user, or an empty string.
func (c *Context) LoginHint() string {
	if c == nil {
		return ""
	}
	return c.User.LoginHint
}

// AuthenticateOptions are the parameters of a host mediated authentication popup.
type AuthenticateOptions struct {
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	IsExternal bool   `json:"isExternal"`
}
