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

// Package diagnostics hosts the operator facing intake for flow failure reports.
package diagnostics

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/asgardeo/teamsauth/internal/system/config"
	"github.com/asgardeo/teamsauth/internal/system/database/provider"
	"github.com/asgardeo/teamsauth/internal/system/metrics"
	"github.com/asgardeo/teamsauth/internal/system/middleware"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Initialize prepares the diagnostics store schema, creates the service and registers its routes.
func Initialize(mux *http.ServeMux, dbProvider provider.DBProviderInterface,
	cfg config.DiagnosticsConfig) (DiagnosticsServiceInterface, error) {
	dbClient, err := dbProvider.GetDBClient(provider.DiagnosticsDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostics database client: %w", err)
	}
	if err := dbClient.ApplyMigrations(migrationFS, migrationsDir); err != nil {
		return nil, fmt.Errorf("failed to migrate diagnostics database: %w", err)
	}

	service := newDiagnosticsService(newDiagnosticsStore(dbProvider), metrics.GetCollectors().FlowFailures,
		cfg.MaxDetailLength)
	registerRoutes(mux, newDiagnosticsHandler(service), cfg.RateLimit)
	return service, nil
}

// registerRoutes registers the routes for diagnostic report operations.
func registerRoutes(mux *http.ServeMux, handler *diagnosticsHandler, rateLimit config.RateLimitConfig) {
	opts := middleware.CORSOptions{
		AllowedMethods: "POST",
		AllowedHeaders: "Content-Type",
	}
	limited := middleware.WithRateLimit(handler.HandleReportPostRequest, middleware.RateLimitOptions{
		RequestsPerMinute: rateLimit.RequestsPerMinute,
		Burst:             rateLimit.Burst,
		TrustProxyHeaders: rateLimit.TrustProxyHeaders,
	})
	mux.HandleFunc(middleware.WithCORS("POST /diagnostics", limited, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /diagnostics",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))

	mux.HandleFunc("GET /diagnostics", handler.HandleReportListRequest)
}
