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

package browser

import "syscall/js"

// LocationNavigator navigates through window.location.
type LocationNavigator struct {
	location js.Value
}

// NewLocationNavigator returns a navigator over the current window location.
func NewLocationNavigator() *LocationNavigator {
	return &LocationNavigator{location: js.Global().Get("location")}
}

// Redirect navigates the document to uri.
func (n *LocationNavigator) Redirect(uri string) {
	n.location.Set("href", uri)
}

// Reload reloads the current document.
func (n *LocationNavigator) Reload() {
	n.location.Call("reload")
}

// Href returns the current document URL.
func (n *LocationNavigator) Href() string {
	return n.location.Get("href").String()
}

// BrowserLanguage returns navigator.language, or an empty string when it is not set.
func BrowserLanguage() string {
	lang := js.Global().Get("navigator").Get("language")
	if lang.Type() != js.TypeString {
		return ""
	}
	return lang.String()
}

// ReadElementText returns the text content of the element with id, or an empty string.
func ReadElementText(document js.Value, id string) string {
	element := document.Call("getElementById", id)
	if !isElement(element) {
		return ""
	}
	return element.Get("textContent").String()
}
