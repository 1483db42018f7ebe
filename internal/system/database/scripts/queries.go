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


package scripts

// Statements are keyed by database type. PostgreSQL uses $n placeholders, SQLite uses ?.

var CreateProgressTable = map[string]string{
	"postgres": `
		CREATE TABLE IF NOT EXISTS questionnaire_progress (
			partition_key VARCHAR(100) PRIMARY KEY,
			last_updated  VARCHAR(32) NOT NULL,
			state         TEXT NOT NULL
		)`,
	"sqlite": `
		CREATE TABLE IF NOT EXISTS questionnaire_progress (
			partition_key TEXT PRIMARY KEY,
			last_updated  TEXT NOT NULL,
			state         TEXT NOT NULL
		)`,
}

var GetProgressByPartition = map[string]string{
	"postgres": `SELECT partition_key, last_updated, state FROM questionnaire_progress WHERE partition_key = $1`,
	"sqlite":   `SELECT partition_key, last_updated, state FROM questionnaire_progress WHERE partition_key = ?`,
}

var UpsertProgress = map[string]string{
	"postgres": `
		INSERT INTO questionnaire_progress (partition_key, last_updated, state)
		VALUES ($1, $2, $3)
		ON CONFLICT (partition_key)
		DO UPDATE SET last_updated = EXCLUDED.last_updated, state = EXCLUDED.state`,
	"sqlite": `
		INSERT INTO questionnaire_progress (partition_key, last_updated, state)
		VALUES (?, ?, ?)
		ON CONFLICT (partition_key)
		DO UPDATE SET last_updated = excluded.last_updated, state = excluded.state`,
}

var ListProgressPartitions = map[string]string{
	"postgres": `SELECT partition_key, last_updated FROM questionnaire_progress ORDER BY partition_key`,
	"sqlite":   `SELECT partition_key, last_updated FROM questionnaire_progress ORDER BY partition_key`,
}
