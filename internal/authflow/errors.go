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
	"errors"

	"github.com/asgardeo/teamsauth/internal/host"
	"github.com/asgardeo/teamsauth/internal/probe"
)

// ErrorKind classifies flow failures for operators.
type ErrorKind string

const (
	// ErrorKindConfiguration is a missing required parameter.
	ErrorKindConfiguration ErrorKind = "configuration"
	// ErrorKindHostUnavailable is a missing host SDK binding.
	ErrorKindHostUnavailable ErrorKind = "host_unavailable"
	// ErrorKindProbeFailed is a silent probe that did not confirm a session. It is never shown to the user.
	ErrorKindProbeFailed ErrorKind = "probe_failed"
	// ErrorKindCancelled is a popup closed by the user.
	ErrorKindCancelled ErrorKind = "cancelled"
	// ErrorKindGeneral is any other failure.
	ErrorKindGeneral ErrorKind = "general"
)

var (
	// ErrMissingParameters is reported when required query parameters are absent.
	ErrMissingParameters = errors.New("required parameters are missing")
	// ErrHostUnavailable is reported when the host SDK binding is not present.
	ErrHostUnavailable = errors.New("host SDK binding is not available")
)

// ClassifyError maps a flow error to its kind.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMissingParameters):
		return ErrorKindConfiguration
	case errors.Is(err, ErrHostUnavailable):
		return ErrorKindHostUnavailable
	case errors.Is(err, probe.ErrProbeFailed):
		return ErrorKindProbeFailed
	case errors.Is(err, host.ErrCancelledByUser):
		return ErrorKindCancelled
	default:
		return ErrorKindGeneral
	}
}
