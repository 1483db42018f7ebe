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
	"time"

	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

// ProgressStoreInterface is the key/value persistence behind saved progress.
// Get returns nil without an error when the partition holds nothing.
type ProgressStoreInterface interface {
	Driver() string
	Get(ctx context.Context, partitionKey string) (*model.ProgressRecord, error)
	Upsert(ctx context.Context, record model.ProgressRecord) error
	List(ctx context.Context) ([]model.PartitionSummary, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.ProgressTimestampLayout)
}

// parseTimestamp accepts the stored layout and RFC 3339. Unreadable values give the zero time.
func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{constants.ProgressTimestampLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
