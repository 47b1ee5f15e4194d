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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path"
	"sync"
	"syscall"
	"time"

	"github.com/asgardeo/teamsauth/internal/system/config"
	"github.com/asgardeo/teamsauth/internal/system/database/client"
	"github.com/asgardeo/teamsauth/internal/system/database/model"
	"github.com/asgardeo/teamsauth/internal/system/log"
)

// DiagnosticsDB is the name of the data source holding diagnostic reports.
const DiagnosticsDB = "diagnostics"

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	diagnosticsClient client.DBClientInterface
	diagnosticsMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
		instance.closeOnInterrupt()
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// The returned client shares the provider's connection pool and must not be closed by the caller.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case DiagnosticsDB:
		runtime := config.GetServerRuntime()
		return d.getOrInitClient(&d.diagnosticsClient, &d.diagnosticsMutex,
			runtime.Config.Database.Diagnostics, runtime.ServerHome)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(clientPtr *client.DBClientInterface, mutex *sync.RWMutex,
	dataSource config.DataSource, serverHome string) (client.DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		existing := *clientPtr
		mutex.RUnlock()
		return existing, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	dbClient, err := openClient(dataSource, serverHome)
	if err != nil {
		return nil, err
	}
	*clientPtr = dbClient
	return dbClient, nil
}

// openClient opens and verifies a connection pool for the data source.
func openClient(dataSource config.DataSource, serverHome string) (client.DBClientInterface, error) {
	dbConfig, err := getDBConfig(dataSource, serverHome)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dataSource.Name, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}

	return client.NewDBClient(model.NewDB(db), dbConfig.driverName), nil
}

// getDBConfig returns the driver name and DSN for the data source.
func getDBConfig(dataSource config.DataSource, serverHome string) (dbConfig, error) {
	switch dataSource.Type {
	case dataSourceTypePostgres:
		return dbConfig{
			driverName: dataSourceTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case dataSourceTypeSQLite:
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if !path.IsAbs(dbPath) {
			dbPath = path.Join(serverHome, dbPath)
		}
		return dbConfig{
			driverName: dataSourceTypeSQLite,
			dsn:        dbPath + options,
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported data source type: %s", dataSource.Type)
	}
}

// closeOnInterrupt closes the connection pools when the process is asked to stop.
func (d *DBProvider) closeOnInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger := log.GetLogger()
		if err := d.close(); err != nil {
			logger.Error("Error closing database connections", log.Error(err))
		} else {
			logger.Debug("Database connections closed successfully")
		}
	}()
}

// close closes the database connections.
func (d *DBProvider) close() error {
	d.diagnosticsMutex.Lock()
	defer d.diagnosticsMutex.Unlock()
	if d.diagnosticsClient != nil {
		if err := d.diagnosticsClient.Close(); err != nil {
			return fmt.Errorf("failed to close %s client: %w", DiagnosticsDB, err)
		}
		d.diagnosticsClient = nil
	}
	return nil
}
