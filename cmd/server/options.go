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

package main

import (
	"errors"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// defaultConfigPath is the deployment configuration relative to the server home.
var defaultConfigPath = filepath.Join("repository", "conf", "deployment.yaml")

// options are the command line options of the server. The struct tags are interpreted by go-flags.
type options struct {
	Home   string `long:"home" description:"server home directory, defaults to the working directory"`
	Config string `short:"c" long:"config" description:"deployment configuration path, relative to the home directory unless absolute"`
}

// parseOptions parses args into options.
func parseOptions(args []string) (*options, error) {
	opts := &options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// isHelpRequest reports whether err is the usage message returned for -h/--help.
func isHelpRequest(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

// configPath resolves the deployment configuration path against serverHome.
func (o *options) configPath(serverHome string) string {
	path := o.Config
	if path == "" {
		path = defaultConfigPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(serverHome, path)
}
