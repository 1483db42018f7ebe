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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
)

// exerciseProgressStore runs the behaviour every backend shares.
func exerciseProgressStore(t *testing.T, s ProgressStoreInterface) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))

	missing, err := s.Get(ctx, "Nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	first := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, s.Upsert(ctx, model.ProgressRecord{PartitionKey: "Acme Corp", LastUpdated: first, State: `{"company_name":"v1"}`}))
	require.NoError(t, s.Upsert(ctx, model.ProgressRecord{PartitionKey: "Acme Corp", LastUpdated: first.Add(time.Hour), State: `{"company_name":"v2"}`}))
	require.NoError(t, s.Upsert(ctx, model.ProgressRecord{PartitionKey: "Globex", LastUpdated: first, State: `{}`}))

	record, err := s.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Acme Corp", record.PartitionKey)
	assert.JSONEq(t, `{"company_name":"v2"}`, record.State)
	assert.True(t, record.LastUpdated.Equal(first.Add(time.Hour)), record.LastUpdated.String())

	summaries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Acme Corp", summaries[0].PartitionKey)
	assert.Equal(t, "Globex", summaries[1].PartitionKey)
}

func TestMemoryProgressStore(t *testing.T) {
	exerciseProgressStore(t, NewMemoryProgressStore())
}

func TestSQLiteProgressStore(t *testing.T) {
	cfg := config.Config{
		Persistence: config.PersistenceConfig{Driver: "sqlite"},
		SQLite:      config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "nested", "progress.db")},
	}
	s, err := OpenProgressStore(context.Background(), "", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	assert.Equal(t, "sqlite", s.Driver())
	exerciseProgressStore(t, s)
}

func TestSQLiteProgressStore_SchemaIsIdempotent(t *testing.T) {
	cfg := config.Config{
		Persistence: config.PersistenceConfig{Driver: "sqlite"},
		SQLite:      config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "progress.db")},
	}
	ctx := context.Background()
	first, err := OpenProgressStore(ctx, "", cfg)
	require.NoError(t, err)
	require.NoError(t, first.Upsert(ctx, model.ProgressRecord{PartitionKey: "Acme Corp", LastUpdated: time.Now(), State: `{}`}))
	require.NoError(t, first.Close(ctx))

	second, err := OpenProgressStore(ctx, "", cfg)
	require.NoError(t, err)
	defer second.Close(ctx)
	record, err := second.Get(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestOpenProgressStore_UnknownDriver(t *testing.T) {
	_, err := OpenProgressStore(context.Background(), "", config.Config{Persistence: config.PersistenceConfig{Driver: "gsheets"}})
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), parseTimestamp("2026-01-02 03:04:05"))
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), parseTimestamp("2026-01-02T03:04:05Z"))
	assert.True(t, parseTimestamp("yesterday").IsZero())
}
