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

// Package main is the entry point for starting the frame host server.
package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/asgardeo/teamsauth/internal/managers"
	"github.com/asgardeo/teamsauth/internal/system/cert"
	"github.com/asgardeo/teamsauth/internal/system/config"
	"github.com/asgardeo/teamsauth/internal/system/database/provider"
	"github.com/asgardeo/teamsauth/internal/system/log"
	"github.com/asgardeo/teamsauth/internal/system/metrics"
	"github.com/asgardeo/teamsauth/internal/system/middleware"
)

// metricsRoots are the route roots kept as metric path labels.
var metricsRoots = []string{"/auth-start", "/frame", "/locales", "/diagnostics", "/health", "/metrics"}

func main() {
	logger := log.GetLogger()
	defer log.Sync()

	opts, err := parseOptions(os.Args[1:])
	if isHelpRequest(err) {
		fmt.Println(err)
		return
	}
	if err != nil {
		logger.Fatal("Failed to parse command line options", log.Error(err))
	}

	serverHome := getServerHome(logger, opts)

	cfg := initConfigurations(logger, serverHome, opts)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	handler := initMultiplexer(logger, cfg, serverHome)
	if handler == nil {
		logger.Fatal("Failed to initialize multiplexer")
	}

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, handler)
	} else {
		startTLSServer(logger, cfg, handler, serverHome)
	}
}

// getServerHome returns the server home directory from the options or the working directory.
func getServerHome(logger *log.Logger, opts *options) string {
	if opts.Home != "" {
		logger.Info("Using server home from command line argument", log.String("home", opts.Home))
		return opts.Home
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initConfigurations loads the deployment configuration and initializes the server runtime.
func initConfigurations(logger *log.Logger, serverHome string, opts *options) *config.Config {
	cfg, err := config.LoadConfig(opts.configPath(serverHome))
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// initMultiplexer registers the services and wraps the multiplexer with request metrics.
func initMultiplexer(logger *log.Logger, cfg *config.Config, serverHome string) http.Handler {
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, cfg, serverHome, provider.GetDBProvider())

	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	return middleware.WithMetrics("frame-host", metrics.GetCollectors(), metricsRoots, mux)
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, handler http.Handler, serverHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, handler)

	tlsConfig, err := cert.GetTLSConfig(cfg, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("Frame host started (HTTPS)...", log.String("address", serverAddr))

	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, handler http.Handler) {
	server, serverAddr := createHTTPServer(logger, cfg, handler)

	logger.Info("Frame host started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, handler http.Handler) (*http.Server, string) {
	wrapped := log.AccessLogHandler(logger, handler)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
