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
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	defaultPort        = 8900
	defaultSessionTTL  = 120
	defaultIssuer      = "gdpr-notice-generator"
	defaultDriver      = "memory"
	defaultS3Prefix    = "progress/"
	defaultCollection  = "questionnaire_progress"
	defaultMCPAddr     = ":8901"
	defaultSQLitePath  = "repository/data/progress.db"
	defaultLogLevel    = "INFO"
	defaultMongoDBName = "gdpr_notice"
)

// LoadConfig reads the YAML file at home/filePath, expands environment variables and
// applies defaults for anything left unset.
func LoadConfig(home, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(home, filePath))
	if err != nil {
		return nil, err
	}
	return ParseConfig(file)
}

// ParseConfig parses raw YAML configuration.
func ParseConfig(raw []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(raw))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Addr.Port == 0 {
		cfg.Addr.Port = defaultPort
	}
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = defaultLogLevel
	}
	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = defaultSessionTTL
	}
	if cfg.Session.Issuer == "" {
		cfg.Session.Issuer = defaultIssuer
	}
	cfg.Persistence.Driver = strings.ToLower(strings.TrimSpace(cfg.Persistence.Driver))
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = defaultDriver
	}
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = defaultSQLitePath
	}
	if cfg.MongoDB.Database == "" {
		cfg.MongoDB.Database = defaultMongoDBName
	}
	if cfg.MongoDB.Collection == "" {
		cfg.MongoDB.Collection = defaultCollection
	}
	if cfg.S3.Prefix == "" {
		cfg.S3.Prefix = defaultS3Prefix
	}
	if cfg.MCP.Addr == "" {
		cfg.MCP.Addr = defaultMCPAddr
	}
	if cfg.Organizations == nil {
		cfg.Organizations = map[string]string{}
	}
}
