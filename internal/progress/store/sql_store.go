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


package store

import (
	"context"
	"fmt"

	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/database/client"
	"github.com/wso2/gdpr-notice-generator/internal/system/database/scripts"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

// SQLProgressStore keeps one row per partition in the questionnaire_progress table.
// It serves both PostgreSQL and SQLite through the shared DB client.
type SQLProgressStore struct {
	dbClient client.DBClientInterface
}

func NewSQLProgressStore(dbClient client.DBClientInterface) *SQLProgressStore {
	return &SQLProgressStore{dbClient: dbClient}
}

func (s *SQLProgressStore) Driver() string {
	return s.dbClient.DBType()
}

func (s *SQLProgressStore) Get(ctx context.Context, partitionKey string) (*model.ProgressRecord, error) {

	query := scripts.GetProgressByPartition[s.dbClient.DBType()]
	results, err := s.dbClient.ExecuteQuery(ctx, query, partitionKey)
	if err != nil {
		log.GetLogger().Debug("Failed to read progress row", log.String("partition", partitionKey), log.Error(err))
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	row := results[0]
	return &model.ProgressRecord{
		PartitionKey: asString(row["partition_key"]),
		LastUpdated:  parseTimestamp(asString(row["last_updated"])),
		State:        asString(row["state"]),
	}, nil
}

func (s *SQLProgressStore) Upsert(ctx context.Context, record model.ProgressRecord) error {

	query := scripts.UpsertProgress[s.dbClient.DBType()]
	_, err := s.dbClient.Execute(ctx, query, record.PartitionKey, formatTimestamp(record.LastUpdated), record.State)
	return err
}

func (s *SQLProgressStore) List(ctx context.Context) ([]model.PartitionSummary, error) {

	results, err := s.dbClient.ExecuteQuery(ctx, scripts.ListProgressPartitions[s.dbClient.DBType()])
	if err != nil {
		return nil, err
	}
	summaries := make([]model.PartitionSummary, 0, len(results))
	for _, row := range results {
		summaries = append(summaries, model.PartitionSummary{
			PartitionKey: asString(row["partition_key"]),
			LastUpdated:  parseTimestamp(asString(row["last_updated"])),
		})
	}
	return summaries, nil
}

// Ping runs a trivial query against the database.
func (s *SQLProgressStore) Ping(ctx context.Context) error {
	_, err := s.dbClient.ExecuteQuery(ctx, "SELECT 1")
	return err
}

func (s *SQLProgressStore) Close(_ context.Context) error {
	return s.dbClient.Close()
}

// asString reads a text column, which drivers return either as string or []byte.
func asString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
