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

// Package host defines the capability surface the authentication flow needs from the embedding host SDK.
package host

import (
	"context"
	"errors"
)

// CancelledByUserMessage is the rejection message the host SDK uses when the user closes the popup.
const CancelledByUserMessage = "CancelledByUser"

// ErrCancelledByUser is returned by Authenticate when the user closed the authentication popup.
var ErrCancelledByUser = errors.New("authentication cancelled by user")

// HostInterface is the narrow host SDK capability used by the authentication flow.
type HostInterface interface {
	// Initialize initializes the SDK binding with the embedding host.
	Initialize(ctx context.Context) error
	// GetContext retrieves the host context.
	GetContext(ctx context.Context) (*Context, error)
	// Authenticate opens the host mediated authentication popup and waits for it to settle.
	Authenticate(ctx context.Context, options AuthenticateOptions) error
}

// LookupFunc resolves the host SDK binding. It returns false when the binding is not present.
type LookupFunc func() (HostInterface, bool)

// Static returns a LookupFunc that always resolves to h. A nil h is reported as absent.
func Static(h HostInterface) LookupFunc {
	return func() (HostInterface, bool) {
		return h, h != nil
	}
}

// ClassifyRejection maps a host SDK rejection message to an error, recognising user cancellation.
func ClassifyRejection(message string) error {
	if message == CancelledByUserMessage {
		return ErrCancelledByUser
	}
	if message == "" {
		return errors.New("host request rejected")
	}
	return errors.New(message)
}
