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

// Package migration applies embedded schema migrations with golang-migrate.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/asgardeo/teamsauth/internal/system/log"
)

// Apply runs all pending up migrations found under dir in source against db.
// A database that is already up to date is not an error.
func Apply(db *sql.DB, dbType string, source fs.FS, dir string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Migration"))

	driver, err := newDatabaseDriver(db, dbType)
	if err != nil {
		return err
	}

	sourceDriver, err := iofs.New(source, dir)
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", sourceDriver, dbType, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = instance.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("Database schema is up to date", log.String("dbType", dbType))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := instance.Version()
	if err == nil {
		logger.Info("Database migrations applied", log.String("dbType", dbType),
			log.Int("version", int(version)), log.Bool("dirty", dirty))
	}
	return nil
}

func newDatabaseDriver(db *sql.DB, dbType string) (database.Driver, error) {
	switch dbType {
	case "postgres":
		driver, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
		}
		return driver, nil
	case "sqlite":
		driver, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite migration driver: %w", err)
		}
		return driver, nil
	default:
		return nil, fmt.Errorf("unsupported database type for migrations: %s", dbType)
	}
}
