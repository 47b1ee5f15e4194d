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

// Package probe implements the silent credential probe that decides whether an authentication popup is needed.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/asgardeo/teamsauth/internal/system/log"
	syshttp "github.com/asgardeo/teamsauth/internal/system/http"
)

const loggerComponentName = "SilentProber"

// ErrProbeFailed is returned when the destination could not be reached with the ambient session.
var ErrProbeFailed = errors.New("silent probe failed")

// ProberInterface checks whether the current session already grants access to a destination.
type ProberInterface interface {
	// Probe returns nil when the destination answers 200 to a credentialed HEAD request.
	Probe(ctx context.Context, uri string) error
}

// SilentProber is the default ProberInterface implementation.
type SilentProber struct {
	client syshttp.HTTPClientInterface
}

// NewSilentProber creates a prober using the given HTTP client.
func NewSilentProber(client syshttp.HTTPClientInterface) ProberInterface {
	return &SilentProber{client: client}
}

// NewSilentProberWithTimeout creates a prober with a dedicated client. A zero timeout means no timeout.
func NewSilentProberWithTimeout(timeout time.Duration) ProberInterface {
	return NewSilentProber(newCredentialedClient(timeout))
}

// Probe issues a HEAD request carrying the ambient session credentials.
// Any status other than 200, and any transport failure, is reported as ErrProbeFailed.
func (p *SilentProber) Probe(ctx context.Context, uri string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, uri, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProbeFailed, err)
	}
	includeCredentials(req)

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Debug("Probe request failed", log.Error(err))
		return fmt.Errorf("%w: %w", ErrProbeFailed, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug("Failed to close probe response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		logger.Debug("Probe returned a non success status", log.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: unexpected status %d", ErrProbeFailed, resp.StatusCode)
	}

	return nil
}
