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

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// SessionConfig controls how unlocked sessions are signed and how long they live.
type SessionConfig struct {
	SigningKey string `yaml:"signing_key"`
	Issuer     string `yaml:"issuer"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type CatalogConfig struct {
	File string `yaml:"file"`
}

type PersistenceConfig struct {
	Driver string `yaml:"driver"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type MongoDBConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

type MCPConfig struct {
	Addr    string   `yaml:"addr"`
	APIKeys []string `yaml:"api_keys"`
}

type Config struct {
	Addr          AddrConfig        `yaml:"addr"`
	Log           LogConfig         `yaml:"log"`
	Auth          AuthConfig        `yaml:"auth"`
	Session       SessionConfig     `yaml:"session"`
	Organizations map[string]string `yaml:"organizations"`
	Catalog       CatalogConfig     `yaml:"catalog"`
	Persistence   PersistenceConfig `yaml:"persistence"`
	DataSource    DataSourceConfig  `yaml:"datasource"`
	SQLite        SQLiteConfig      `yaml:"sqlite"`
	MongoDB       MongoDBConfig     `yaml:"mongodb"`
	S3            S3Config          `yaml:"s3"`
	MCP           MCPConfig         `yaml:"mcp"`
}
