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


package provider

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	"github.com/wso2/gdpr-notice-generator/internal/system/database/client"
	"github.com/wso2/gdpr-notice-generator/internal/system/database/scripts"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
	dbType     string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(ctx context.Context) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	home string
	cfg  config.Config
}

// NewDBProvider creates a provider for the SQL database named by the configuration.
func NewDBProvider(home string, cfg config.Config) DBProviderInterface {

	return &DBProvider{home: home, cfg: cfg}
}

// GetDBClient opens and pings a database client for the configured driver and makes sure the
// progress schema exists.
func (d *DBProvider) GetDBClient(ctx context.Context) (client.DBClientInterface, error) {

	dbConfig, err := getDBConfig(d.home, d.cfg)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if dbConfig.dbType == constants.DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	// Test the database connection.
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	dbClient := client.NewDBClient(db, dbConfig.dbType)
	if err := dbClient.InitDatabase(ctx, scripts.CreateProgressTable[dbConfig.dbType]); err != nil {
		_ = dbClient.Close()
		return nil, fmt.Errorf("failed to create progress schema: %w", err)
	}
	return dbClient, nil
}

// getDBConfig returns the database configuration based on the configured persistence driver.
func getDBConfig(home string, cfg config.Config) (DBConfig, error) {

	switch cfg.Persistence.Driver {
	case constants.DriverPostgres:
		ds := cfg.DataSource
		sslMode := ds.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return DBConfig{
			driverName: "postgres",
			dbType:     constants.DriverPostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				ds.Hostname, ds.Port, ds.Username, ds.Password, ds.Name, sslMode),
		}, nil
	case constants.DriverSQLite:
		path := cfg.SQLite.Path
		if !filepath.IsAbs(path) && home != "" {
			path = filepath.Join(home, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return DBConfig{}, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		return DBConfig{
			driverName: "sqlite",
			dbType:     constants.DriverSQLite,
			dsn:        path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		}, nil
	default:
		return DBConfig{}, fmt.Errorf("persistence driver %q is not backed by a SQL database", cfg.Persistence.Driver)
	}
}
