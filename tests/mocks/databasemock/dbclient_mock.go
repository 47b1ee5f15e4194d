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

package databasemock

import (
	"context"
	"io/fs"

	"github.com/asgardeo/teamsauth/internal/system/database/model"
)

// QueryCall is a recorded call to Query or Execute.
type QueryCall struct {
	Query model.DBQuery
	Args  []interface{}
}

// MockDBClient is a mock implementation of the DBClientInterface.
type MockDBClient struct {
	// MockQuery defines the behavior for the Query method.
	MockQuery func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)

	// MockExecute defines the behavior for the Execute method.
	MockExecute func(query model.DBQuery, args ...interface{}) (int64, error)

	// MockBeginTx defines the behavior for the BeginTx method.
	MockBeginTx func() (model.TxInterface, error)

	// MockPing defines the behavior for the Ping method.
	MockPing func(ctx context.Context) error

	// MockApplyMigrations defines the behavior for the ApplyMigrations method.
	MockApplyMigrations func(source fs.FS, dir string) error

	// QueryCalls tracks the arguments passed to Query.
	QueryCalls []QueryCall

	// ExecuteCalls tracks the arguments passed to Execute.
	ExecuteCalls []QueryCall

	// ApplyMigrationsCalls tracks the directories passed to ApplyMigrations.
	ApplyMigrationsCalls []string

	// CloseCalls tracks the calls to Close.
	CloseCalls int
}

// Query mocks the Query method of the DBClientInterface.
func (m *MockDBClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	m.QueryCalls = append(m.QueryCalls, QueryCall{query, args})

	if m.MockQuery != nil {
		return m.MockQuery(query, args...)
	}
	return []map[string]interface{}{}, nil
}

// Execute mocks the Execute method of the DBClientInterface.
func (m *MockDBClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, QueryCall{query, args})

	if m.MockExecute != nil {
		return m.MockExecute(query, args...)
	}
	return 1, nil
}

// BeginTx mocks the BeginTx method of the DBClientInterface.
func (m *MockDBClient) BeginTx() (model.TxInterface, error) {
	if m.MockBeginTx != nil {
		return m.MockBeginTx()
	}
	return &MockTx{}, nil
}

// Ping mocks the Ping method of the DBClientInterface.
func (m *MockDBClient) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// ApplyMigrations mocks the ApplyMigrations method of the DBClientInterface.
func (m *MockDBClient) ApplyMigrations(source fs.FS, dir string) error {
	m.ApplyMigrationsCalls = append(m.ApplyMigrationsCalls, dir)

	if m.MockApplyMigrations != nil {
		return m.MockApplyMigrations(source, dir)
	}
	return nil
}

// Close mocks the Close method of the DBClientInterface.
func (m *MockDBClient) Close() error {
	m.CloseCalls++
	return nil
}
