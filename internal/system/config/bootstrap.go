/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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


package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// DeploymentConfigFile is the configuration file relative to the home directory.
	DeploymentConfigFile = "/repository/conf/deployment.yaml"

	envFilePattern = "config/*.env"
)

// Bootstrap loads the .env files under home, reads the deployment configuration and initializes
// the runtime. It returns the names of the env files that were loaded.
func Bootstrap(home string) (*Config, []string, error) {

	envFiles, err := filepath.Glob(filepath.Join(home, envFilePattern))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid env file pattern: %w", err)
	}
	if len(envFiles) > 0 {
		// Variables already set in the environment win over the files.
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, nil, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	cfg, err := LoadConfig(home, DeploymentConfigFile)
	if err != nil {
		return nil, envFiles, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := InitializeRuntime(home, cfg); err != nil {
		return nil, envFiles, fmt.Errorf("failed to initialize runtime: %w", err)
	}
	return cfg, envFiles, nil
}
