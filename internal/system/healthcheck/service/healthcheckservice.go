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

// Package service provides health check related business logic and operations.
package service

import (
	"context"
	"time"

	"github.com/asgardeo/teamsauth/internal/system/database/provider"
	"github.com/asgardeo/teamsauth/internal/system/healthcheck/model"
	"github.com/asgardeo/teamsauth/internal/system/log"
)

const pingTimeout = 3 * time.Second

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
}

// NewHealthCheckService creates a new instance of HealthCheckService.
func NewHealthCheckService(dbProvider provider.DBProviderInterface) HealthCheckServiceInterface {
	return &HealthCheckService{
		DBProvider: dbProvider,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	diagnosticsDBStatus := model.ServiceStatus{
		ServiceName: "DiagnosticsDB",
		Status:      hcs.checkDatabaseStatus(ctx, provider.DiagnosticsDB),
	}

	return model.ServerStatus{
		Status:        diagnosticsDBStatus.Status,
		ServiceStatus: []model.ServiceStatus{diagnosticsDBStatus},
	}
}

// checkDatabaseStatus pings the named database.
func (hcs *HealthCheckService) checkDatabaseStatus(ctx context.Context, dbName string) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.DBProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.String("db", dbName), log.Error(err))
		return model.StatusDown
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := dbClient.Ping(pingCtx); err != nil {
		logger.Error("Database ping failed", log.String("db", dbName), log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
