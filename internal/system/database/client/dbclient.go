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


package client

import (
	"context"
	"database/sql"
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	ExecuteQuery(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error)
	Execute(ctx context.Context, query string, args ...interface{}) (int64, error)
	InitDatabase(ctx context.Context, statements ...string) error
	DBType() string
	Close() error
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db     *sql.DB
	dbType string
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
// dbType selects the query dialect, see the scripts package.
func NewDBClient(db *sql.DB, dbType string) DBClientInterface {

	return &DBClient{
		db:     db,
		dbType: dbType,
	}
}

func (client *DBClient) DBType() string {
	return client.dbType
}

// InitDatabase runs the given schema statements in order.
func (client *DBClient) InitDatabase(ctx context.Context, statements ...string) error {

	for _, statement := range statements {
		if strings.TrimSpace(statement) == "" {
			continue
		}
		if _, err := client.db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	log.GetLogger().Info("Database schema is ready", log.String("dbType", client.dbType))
	return nil
}

// ExecuteQuery executes a SELECT query and returns the result as a slice of maps.
func (client *DBClient) ExecuteQuery(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error) {

	rows, err := client.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	for rows.Next() {
		row := make([]interface{}, len(columns))
		rowPointers := make([]interface{}, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := map[string]interface{}{}
		for i, col := range columns {
			// Normalize column names to lowercase for consistency.
			result[strings.ToLower(col)] = row[i]
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// Execute runs a statement that returns no rows and reports the affected row count.
func (client *DBClient) Execute(ctx context.Context, query string, args ...interface{}) (int64, error) {

	result, err := client.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Close closes the database connection.
func (client *DBClient) Close() error {
	return client.db.Close()
}
