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

// Package managers provides functionality for managing and registering system services.
package managers

import (
	"fmt"
	"net/http"

	"github.com/asgardeo/teamsauth/internal/diagnostics"
	"github.com/asgardeo/teamsauth/internal/frame"
	"github.com/asgardeo/teamsauth/internal/services"
	"github.com/asgardeo/teamsauth/internal/system/config"
	"github.com/asgardeo/teamsauth/internal/system/database/provider"
)

// ServiceManagerInterface defines the interface for registering the server's services.
type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager registers the services of the frame host on a multiplexer.
type ServiceManager struct {
	mux        *http.ServeMux
	config     *config.Config
	serverHome string
	dbProvider provider.DBProviderInterface
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, cfg *config.Config, serverHome string,
	dbProvider provider.DBProviderInterface) ServiceManagerInterface {
	return &ServiceManager{
		mux:        mux,
		config:     cfg,
		serverHome: serverHome,
		dbProvider: dbProvider,
	}
}

// RegisterServices registers all the services with the provided HTTP multiplexer.
func (sm *ServiceManager) RegisterServices() error {
	// Register the frame page and its artifacts.
	frame.Initialize(sm.mux, sm.config, sm.serverHome)

	// Register the diagnostics intake.
	if _, err := diagnostics.Initialize(sm.mux, sm.dbProvider, sm.config.Diagnostics); err != nil {
		return fmt.Errorf("failed to initialize diagnostics service: %w", err)
	}

	// Register the health service.
	services.NewHealthCheckService(sm.mux, sm.dbProvider)

	// Register the metrics service.
	services.NewMetricsService(sm.mux)

	return nil
}
