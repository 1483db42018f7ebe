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
	"sort"

	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/cache"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

// MemoryProgressStore keeps progress in process memory.
type MemoryProgressStore struct {
	records *cache.Cache[model.ProgressRecord]
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{
		records: cache.NewCache[model.ProgressRecord](0),
	}
}

func (s *MemoryProgressStore) Driver() string {
	return constants.DriverMemory
}

func (s *MemoryProgressStore) Get(_ context.Context, partitionKey string) (*model.ProgressRecord, error) {
	record, ok := s.records.Get(partitionKey)
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *MemoryProgressStore) Upsert(_ context.Context, record model.ProgressRecord) error {
	s.records.Set(record.PartitionKey, record)
	return nil
}

func (s *MemoryProgressStore) List(_ context.Context) ([]model.PartitionSummary, error) {
	keys := s.records.Keys()
	summaries := make([]model.PartitionSummary, 0, len(keys))
	for _, key := range keys {
		if record, ok := s.records.Get(key); ok {
			summaries = append(summaries, model.PartitionSummary{PartitionKey: key, LastUpdated: record.LastUpdated})
		}
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].PartitionKey < summaries[j].PartitionKey })
	return summaries, nil
}

func (s *MemoryProgressStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryProgressStore) Close(_ context.Context) error {
	return nil
}
