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

// Package hostmock provides a mock implementation of the host SDK capability.
package hostmock

import (
	"context"

	"github.com/asgardeo/teamsauth/internal/host"
)

// MockHost is a mock implementation of host.HostInterface.
type MockHost struct {
	// MockInitialize defines the behavior for the Initialize method.
	MockInitialize func(ctx context.Context) error

	// MockGetContext defines the behavior for the GetContext method.
	MockGetContext func(ctx context.Context) (*host.Context, error)

	// MockAuthenticate defines the behavior for the Authenticate method.
	MockAuthenticate func(ctx context.Context, options host.AuthenticateOptions) error

	// InitializeCalls tracks the calls to Initialize.
	InitializeCalls int

	// GetContextCalls tracks the calls to GetContext.
	GetContextCalls int

	// AuthenticateCalls tracks the options passed to Authenticate.
	AuthenticateCalls []host.AuthenticateOptions
}

// Initialize mocks the Initialize method of host.HostInterface.
func (m *MockHost) Initialize(ctx context.Context) error {
	m.InitializeCalls++
	if m.MockInitialize != nil {
		return m.MockInitialize(ctx)
	}
	return nil
}

// GetContext mocks the GetContext method of host.HostInterface.
// By default it reports a desktop client.
func (m *MockHost) GetContext(ctx context.Context) (*host.Context, error) {
	m.GetContextCalls++
	if m.MockGetContext != nil {
		return m.MockGetContext(ctx)
	}
	return &host.Context{
		App: host.AppInfo{Host: host.HostInfo{ClientType: host.ClientTypeDesktop}},
	}, nil
}

// Authenticate mocks the Authenticate method of host.HostInterface.
func (m *MockHost) Authenticate(ctx context.Context, options host.AuthenticateOptions) error {
	m.AuthenticateCalls = append(m.AuthenticateCalls, options)
	if m.MockAuthenticate != nil {
		return m.MockAuthenticate(ctx, options)
	}
	return nil
}

// Lookup returns a host.LookupFunc resolving to the mock and counts the lookups.
func (m *MockHost) Lookup(calls *int) host.LookupFunc {
	return func() (host.HostInterface, bool) {
		if calls != nil {
			*calls++
		}
		return m, true
	}
}
