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

// Package model defines the diagnostic report exchanged between the frame and the server.
package model

import "time"

// Kind classifies a reported flow failure.
type Kind string

const (
	// KindConfiguration is a flow aborted by missing query parameters.
	KindConfiguration Kind = "configuration"
	// KindHostUnavailable is a flow started outside the embedding host.
	KindHostUnavailable Kind = "host_unavailable"
	// KindProbeFailed is a silent probe that did not confirm a session.
	KindProbeFailed Kind = "probe_failed"
	// KindCancelled is a popup closed by the user.
	KindCancelled Kind = "cancelled"
	// KindGeneral is any other failure.
	KindGeneral Kind = "general"
)

// IsKnown reports whether k is one of the defined kinds.
func (k Kind) IsKnown() bool {
	switch k {
	case KindConfiguration, KindHostUnavailable, KindProbeFailed, KindCancelled, KindGeneral:
		return true
	default:
		return false
	}
}

// Report is a single operator facing failure report of a flow attempt. It never carries tokens.
type Report struct {
	ID         string    `json:"id,omitempty"`
	FlowID     string    `json:"flowId"`
	Kind       Kind      `json:"kind"`
	MessageKey string    `json:"messageKey"`
	Detail     string    `json:"detail,omitempty"`
	Language   string    `json:"language,omitempty"`
	ClientType string    `json:"clientType,omitempty"`
	Browser    string    `json:"browser,omitempty"`
	OS         string    `json:"os,omitempty"`
	Device     string    `json:"device,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// ReportRequest is the body a frame posts to the diagnostics intake.
type ReportRequest struct {
	FlowID     string `json:"flowId"`
	Kind       string `json:"kind"`
	MessageKey string `json:"messageKey"`
	Detail     string `json:"detail,omitempty"`
	Language   string `json:"language,omitempty"`
	ClientType string `json:"clientType,omitempty"`
}

// NewReportRequest returns the wire form of r. Server assigned fields are dropped.
func NewReportRequest(r Report) ReportRequest {
	return ReportRequest{
		FlowID:     r.FlowID,
		Kind:       string(r.Kind),
		MessageKey: r.MessageKey,
		Detail:     r.Detail,
		Language:   r.Language,
		ClientType: r.ClientType,
	}
}

// Report converts the request to a report awaiting enrichment.
func (r ReportRequest) Report() Report {
	return Report{
		FlowID:     r.FlowID,
		Kind:       Kind(r.Kind),
		MessageKey: r.MessageKey,
		Detail:     r.Detail,
		Language:   r.Language,
		ClientType: r.ClientType,
	}
}
