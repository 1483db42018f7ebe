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


package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/progress/store"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/metrics"
)

// ProgressServiceInterface loads and saves questionnaire progress per organization.
type ProgressServiceInterface interface {
	Load(ctx context.Context, organization string) (map[string]json.RawMessage, bool, error)
	Save(ctx context.Context, organization string, snapshot map[string]interface{}) error
	List(ctx context.Context) ([]model.PartitionSummary, error)
	Ping(ctx context.Context) error
}

// ProgressService is the default implementation of ProgressServiceInterface.
type ProgressService struct {
	store store.ProgressStoreInterface
	now   func() time.Time
}

func NewProgressService(progressStore store.ProgressStoreInterface) *ProgressService {
	return &ProgressService{store: progressStore, now: time.Now}
}

// Load returns the saved mapping for the organization and whether anything usable was found.
// A missing partition or an unreadable blob is an empty mapping. Only backend failures are errors.
func (ps *ProgressService) Load(ctx context.Context, organization string) (map[string]json.RawMessage, bool, error) {

	logger := log.GetLogger()
	partition := SanitizePartitionName(organization)
	record, err := ps.store.Get(ctx, partition)
	if err != nil {
		metrics.ProgressLoads.WithLabelValues(ps.store.Driver(), metrics.OutcomeFailure).Inc()
		logger.Warn("Could not load saved progress", log.String("partition", partition), log.Error(err))
		return map[string]json.RawMessage{}, false, errors2.NewServerError(errors2.LOAD_PROGRESS, err)
	}
	if record == nil {
		metrics.ProgressLoads.WithLabelValues(ps.store.Driver(), metrics.OutcomeEmpty).Inc()
		logger.Debug("No saved progress", log.String("partition", partition))
		return map[string]json.RawMessage{}, false, nil
	}

	var saved map[string]json.RawMessage
	if err := json.Unmarshal([]byte(record.State), &saved); err != nil || saved == nil {
		metrics.ProgressLoads.WithLabelValues(ps.store.Driver(), metrics.OutcomeEmpty).Inc()
		logger.Warn("Ignoring malformed saved progress", log.String("partition", partition), log.Error(err))
		return map[string]json.RawMessage{}, false, nil
	}
	metrics.ProgressLoads.WithLabelValues(ps.store.Driver(), metrics.OutcomeSuccess).Inc()
	return saved, len(saved) > 0, nil
}

// Save serializes the mapping and upserts the organization's single record.
func (ps *ProgressService) Save(ctx context.Context, organization string, snapshot map[string]interface{}) error {

	partition := SanitizePartitionName(organization)
	blob, err := json.Marshal(snapshot)
	if err != nil {
		return errors2.NewServerError(errors2.MARSHAL_JSON, err)
	}
	record := model.ProgressRecord{
		PartitionKey: partition,
		LastUpdated:  ps.now().UTC().Truncate(time.Second),
		State:        string(blob),
	}
	if err := ps.store.Upsert(ctx, record); err != nil {
		metrics.ProgressSaves.WithLabelValues(ps.store.Driver(), metrics.OutcomeFailure).Inc()
		log.GetLogger().Error("Could not save progress", log.String("partition", partition), log.Error(err))
		return errors2.NewServerError(errors2.SAVE_PROGRESS, err)
	}
	metrics.ProgressSaves.WithLabelValues(ps.store.Driver(), metrics.OutcomeSuccess).Inc()
	return nil
}

// List returns the saved partitions.
func (ps *ProgressService) List(ctx context.Context) ([]model.PartitionSummary, error) {

	summaries, err := ps.store.List(ctx)
	if err != nil {
		return nil, errors2.NewServerError(errors2.LOAD_PROGRESS, err)
	}
	return summaries, nil
}

// Ping reports whether the backend is reachable.
func (ps *ProgressService) Ping(ctx context.Context) error {
	if err := ps.store.Ping(ctx); err != nil {
		return errors2.NewServerError(errors2.LOAD_PROGRESS, err)
	}
	return nil
}
