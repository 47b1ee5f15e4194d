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

import (
	"syscall/js"

	"github.com/asgardeo/teamsauth/internal/frame/model"
)

// DOMStatusReporter renders the flow state into the frame page elements.
type DOMStatusReporter struct {
	loader      js.Value
	warningIcon js.Value
	status      js.Value
	retryButton js.Value
}

// NewDOMStatusReporter looks up the frame page elements of document.
func NewDOMStatusReporter(document js.Value) *DOMStatusReporter {
	return &DOMStatusReporter{
		loader:      document.Call("getElementById", model.ElementIDLoader),
		warningIcon: document.Call("getElementById", model.ElementIDWarningIcon),
		status:      document.Call("getElementById", model.ElementIDStatus),
		retryButton: document.Call("getElementById", model.ElementIDRetryButton),
	}
}

// ShowLoading shows the loader with text.
func (r *DOMStatusReporter) ShowLoading(text string) {
	setDisplay(r.loader, true)
	setDisplay(r.warningIcon, false)
	setText(r.status, text)
}

// ShowError shows the warning icon with text.
func (r *DOMStatusReporter) ShowError(text string) {
	setDisplay(r.loader, false)
	setDisplay(r.warningIcon, true)
	setText(r.status, text)
}

// SetRetryVisible toggles the retry button.
func (r *DOMStatusReporter) SetRetryVisible(visible bool) {
	setDisplay(r.retryButton, visible)
}

// OnRetry registers fn as the click handler of the retry button. The returned func releases it.
func (r *DOMStatusReporter) OnRetry(fn func()) func() {
	if !isElement(r.retryButton) {
		return func() {}
	}
	callback := js.FuncOf(func(_ js.Value, _ []js.Value) any {
		fn()
		return nil
	})
	r.retryButton.Call("addEventListener", "click", callback)
	return func() {
		r.retryButton.Call("removeEventListener", "click", callback)
		callback.Release()
	}
}

func isElement(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

func setDisplay(element js.Value, visible bool) {
	if !isElement(element) {
		return
	}
	display := "none"
	if visible {
		display = "block"
	}
	element.Get("style").Set("display", display)
}

func setText(element js.Value, text string) {
	if isElement(element) {
		element.Set("innerText", text)
	}
}
