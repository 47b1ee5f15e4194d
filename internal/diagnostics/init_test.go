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

package diagnostics

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/teamsauth/internal/system/config"
	"github.com/asgardeo/teamsauth/internal/system/database/client"
	"github.com/asgardeo/teamsauth/tests/mocks/databasemock"
)

func TestInitializeRegistersRoutes(t *testing.T) {
	config.ResetServerRuntime()
	require.NoError(t, config.InitializeServerRuntime("", &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"https://teams.example"}},
	}))
	defer config.ResetServerRuntime()

	dbClient := &databasemock.MockDBClient{}
	dbProvider := &databasemock.MockDBProvider{
		MockGetDBClient: func(string) (client.DBClientInterface, error) { return dbClient, nil },
	}
	mux := http.NewServeMux()

	svc, err := Initialize(mux, dbProvider, config.DiagnosticsConfig{
		RateLimit:       config.RateLimitConfig{RequestsPerMinute: 60, Burst: 1},
		MaxDetailLength: 128,
	})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, []string{migrationsDir}, dbClient.ApplyMigrationsCalls)

	body := `{"flowId":"` + testFlowID + `","kind":"general","messageKey":"general_error"}`
	req := httptest.NewRequest(http.MethodPost, "/diagnostics", strings.NewReader(body))
	req.Header.Set("Origin", "https://teams.example")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "https://teams.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Len(t, dbClient.ExecuteCalls, 1)

	req = httptest.NewRequest(http.MethodPost, "/diagnostics", strings.NewReader(body))
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/diagnostics", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/diagnostics?limit=2", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, dbClient.QueryCalls, 1)
	assert.Equal(t, []interface{}{2}, dbClient.QueryCalls[0].Args)
}

func TestInitializeFailures(t *testing.T) {
	_, err := Initialize(http.NewServeMux(), &databasemock.MockDBProvider{
		MockGetDBClient: func(string) (client.DBClientInterface, error) { return nil, errors.New("no db") },
	}, config.DiagnosticsConfig{})
	assert.ErrorContains(t, err, "failed to get diagnostics database client")

	_, err = Initialize(http.NewServeMux(), &databasemock.MockDBProvider{
		MockGetDBClient: func(string) (client.DBClientInterface, error) {
			return &databasemock.MockDBClient{
				MockApplyMigrations: func(fs.FS, string) error { return errors.New("dirty") },
			}, nil
		},
	}, config.DiagnosticsConfig{})
	assert.ErrorContains(t, err, "failed to migrate diagnostics database")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, migrationsDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Equal(t, []string{"1_create_diagnostic_report.down.sql", "1_create_diagnostic_report.up.sql"}, names)
}
