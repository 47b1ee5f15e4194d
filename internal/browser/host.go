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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/asgardeo/teamsauth/internal/host"
)

// hostSDKGlobal is the global the Teams JS SDK installs on window.
const hostSDKGlobal = "microsoftTeams"

// TeamsHost adapts the Teams JS SDK global to host.HostInterface.
type TeamsHost struct {
	sdk js.Value
}

// LookupTeamsHost resolves the SDK global. It is looked up on every call so a late loading script is seen.
func LookupTeamsHost() (host.HostInterface, bool) {
	sdk := js.Global().Get(hostSDKGlobal)
	if sdk.IsUndefined() || sdk.IsNull() {
		return nil, false
	}
	return &TeamsHost{sdk: sdk}, true
}

// Initialize calls microsoftTeams.app.initialize.
func (h *TeamsHost) Initialize(ctx context.Context) error {
	_, err := h.call(ctx, "app", "initialize")
	return err
}

// GetContext calls microsoftTeams.app.getContext and decodes the fields the flow reads.
func (h *TeamsHost) GetContext(ctx context.Context) (*host.Context, error) {
	value, err := h.call(ctx, "app", "getContext")
	if err != nil {
		return nil, err
	}

	raw, err := invoke(func() js.Value { return js.Global().Get("JSON").Call("stringify", value) })
	if err != nil {
		return nil, fmt.Errorf("failed to serialize host context: %w", err)
	}
	if raw.Type() != js.TypeString {
		return nil, errors.New("host context is not an object")
	}
	var hostCtx host.Context
	if err := json.Unmarshal([]byte(raw.String()), &hostCtx); err != nil {
		return nil, fmt.Errorf("failed to decode host context: %w", err)
	}
	return &hostCtx, nil
}

// Authenticate calls microsoftTeams.authentication.authenticate and waits for the popup to settle.
func (h *TeamsHost) Authenticate(ctx context.Context, options host.AuthenticateOptions) error {
	params := js.ValueOf(map[string]any{
		"url":        options.URL,
		"width":      options.Width,
		"height":     options.Height,
		"isExternal": options.IsExternal,
	})
	_, err := h.call(ctx, "authentication", "authenticate", params)
	return err
}

// call invokes namespace.method on the SDK and awaits the returned promise. A synchronous throw is
// classified the same way as a rejection.
func (h *TeamsHost) call(ctx context.Context, namespace, method string, args ...any) (js.Value, error) {
	ns := h.sdk.Get(namespace)
	if ns.Type() != js.TypeObject || ns.Get(method).Type() != js.TypeFunction {
		return js.Undefined(), fmt.Errorf("%s.%s.%s is not available", hostSDKGlobal, namespace, method)
	}
	promise, err := invoke(func() js.Value { return ns.Call(method, args...) })
	if err != nil {
		return js.Undefined(), err
	}
	return await(ctx, promise)
}
