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
	"context"
	"fmt"

	"github.com/asgardeo/teamsauth/internal/host"
)

// popupAuthorizer opens the host mediated authorization popup.
type popupAuthorizer struct {
	authority string
	scopes    []string
	width     int
	height    int
}

func newPopupAuthorizer(cfg Config) *popupAuthorizer {
	width, height := cfg.PopupWidth, cfg.PopupHeight
	if width <= 0 {
		width = DefaultPopupWidth
	}
	if height <= 0 {
		height = DefaultPopupHeight
	}
	return &popupAuthorizer{
		authority: cfg.Authority,
		scopes:    cfg.Scopes,
		width:     width,
		height:    height,
	}
}

// Authorize opens the popup for the given parameters and waits for it to settle.
func (a *popupAuthorizer) Authorize(ctx context.Context, h host.HostInterface, params FlowParameters,
	hostCtx *host.Context) error {
	options := host.AuthenticateOptions{
		URL:        BuildLoginURL(a.authority, params, hostCtx.LoginHint(), a.scopes...),
		Width:      a.width,
		Height:     a.height,
		IsExternal: false,
	}
	if err := h.Authenticate(ctx, options); err != nil {
		return fmt.Errorf("popup authorization failed: %w", err)
	}
	return nil
}
