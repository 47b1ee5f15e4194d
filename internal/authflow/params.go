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
	"fmt"
	"net/url"
	"strings"
)

// FlowParameters are the required inputs of a flow, read once from the query string.
type FlowParameters struct {
	TenantID string
	AppID    string
	NextURI  string
}

// ParameterValidation lists the required parameters that were missing or empty.
type ParameterValidation struct {
	Missing []string
}

// IsValid reports whether every required parameter was present.
func (v *ParameterValidation) IsValid() bool {
	return v == nil || len(v.Missing) == 0
}

// MessageKey returns the message key describing the missing parameters.
func (v *ParameterValidation) MessageKey() string {
	if v.IsValid() {
		return ""
	}
	if len(v.Missing) == 1 {
		return MessageKeyMissingParamSingle
	}
	return MessageKeyMissingParamMultiple
}

// MissingList returns the missing parameter names joined for display.
func (v *ParameterValidation) MissingList() string {
	if v.IsValid() {
		return ""
	}
	return strings.Join(v.Missing, ", ")
}

// ResolveParameters reads the flow parameters from the query, checking them in the order
// tenantId, appId, nextUri. The returned validation is nil when all of them are present.
func ResolveParameters(query url.Values) (FlowParameters, *ParameterValidation) {
	params := FlowParameters{
		TenantID: query.Get(TenantIDSearchParam),
		AppID:    query.Get(AppIDSearchParam),
		NextURI:  query.Get(NextURISearchParam),
	}

	missing := make([]string, 0, 3)
	if params.TenantID == "" {
		missing = append(missing, TenantIDSearchParam)
	}
	if params.AppID == "" {
		missing = append(missing, AppIDSearchParam)
	}
	if params.NextURI == "" {
		missing = append(missing, NextURISearchParam)
	}

	if len(missing) > 0 {
		return params, &ParameterValidation{Missing: missing}
	}
	return params, nil
}

// ParseFlowParameters resolves the flow parameters from a full document location.
func ParseFlowParameters(rawURL string) (FlowParameters, *ParameterValidation, error) {
	location, err := url.Parse(rawURL)
	if err != nil {
		return FlowParameters{}, nil, fmt.Errorf("invalid document location: %w", err)
	}
	params, validation := ResolveParameters(location.Query())
	return params, validation, nil
}
