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
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/progress/store"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
)

type mockProgressStore struct {
	mock.Mock
}

func (m *mockProgressStore) Driver() string { return "mock" }

func (m *mockProgressStore) Get(ctx context.Context, partitionKey string) (*model.ProgressRecord, error) {
	args := m.Called(ctx, partitionKey)
	record, _ := args.Get(0).(*model.ProgressRecord)
	return record, args.Error(1)
}

func (m *mockProgressStore) Upsert(ctx context.Context, record model.ProgressRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockProgressStore) List(ctx context.Context) ([]model.PartitionSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]model.PartitionSummary)
	return summaries, args.Error(1)
}

func (m *mockProgressStore) Ping(ctx context.Context) error { return nil }

func (m *mockProgressStore) Close(ctx context.Context) error { return nil }

func payrollState() *questionnaire.QuestionnaireState {
	state := questionnaire.NewQuestionnaireState()
	state.CompanyName = "Acme Corp"
	state.SubjectCategory = "Employees"
	detail := questionnaire.NewDetail()
	detail.Categories = []string{"Financial details", "Profession and job"}
	detail.DirectPerCategory["Financial details"] = false
	detail.IndirectSource = "Bank feed"
	detail.Retention = "7 years"
	detail.Shared = "Accounting firm"
	detail.Transfers = "Yes (Outside EU/UK)"
	state.Purposes = append(state.Purposes, questionnaire.Purpose{Title: "Payroll", Description: "Pay employees", Details: detail})
	state.MarkPresent("company_name", "subject_cat", "purposes")
	return state
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	svc := NewProgressService(store.NewMemoryProgressStore())
	ctx := context.Background()
	original := payrollState()

	require.NoError(t, svc.Save(ctx, "Acme: Corp", original.Snapshot()))

	saved, found, err := svc.Load(ctx, "Acme: Corp")
	require.NoError(t, err)
	assert.True(t, found)

	restored := questionnaire.NewQuestionnaireState()
	restored.Restore(saved)
	if diff := cmp.Diff(original, restored, cmp.AllowUnexported(questionnaire.QuestionnaireState{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_OverwritesSingleRecord(t *testing.T) {
	memory := store.NewMemoryProgressStore()
	svc := NewProgressService(memory)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "Acme Corp", map[string]interface{}{"company_name": "v1"}))
	require.NoError(t, svc.Save(ctx, "Acme Corp", map[string]interface{}{"company_name": "v2"}))

	summaries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Acme Corp", summaries[0].PartitionKey)

	saved, _, err := svc.Load(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.JSONEq(t, `"v2"`, string(saved["company_name"]))
}

func TestLoad_MissingPartitionIsEmpty(t *testing.T) {
	svc := NewProgressService(store.NewMemoryProgressStore())

	saved, found, err := svc.Load(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, saved)
}

func TestLoad_MalformedBlobIsEmpty(t *testing.T) {
	for _, blob := range []string{"not json", "[1,2]", "null", ""} {
		m := &mockProgressStore{}
		m.On("Get", mock.Anything, "Acme Corp").Return(&model.ProgressRecord{PartitionKey: "Acme Corp", State: blob}, nil)

		saved, found, err := NewProgressService(m).Load(context.Background(), "Acme Corp")
		require.NoError(t, err, blob)
		assert.False(t, found, blob)
		assert.Empty(t, saved, blob)
	}
}

func TestLoad_BackendFailure(t *testing.T) {
	m := &mockProgressStore{}
	m.On("Get", mock.Anything, "Acme Corp").Return(nil, errors.New("connection refused"))

	saved, found, err := NewProgressService(m).Load(context.Background(), "Acme Corp")

	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors2.LOAD_PROGRESS.Code, serverErr.Code)
	assert.False(t, found)
	assert.NotNil(t, saved)
}

func TestSave_BackendFailure(t *testing.T) {
	m := &mockProgressStore{}
	m.On("Upsert", mock.Anything, mock.MatchedBy(func(record model.ProgressRecord) bool {
		return record.PartitionKey == "Acme-Corp" && json.Valid([]byte(record.State))
	})).Return(errors.New("timeout"))

	svc := NewProgressService(m)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	err := svc.Save(context.Background(), "Acme/Corp", map[string]interface{}{"company_name": "Acme"})

	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors2.SAVE_PROGRESS.Code, serverErr.Code)
	m.AssertExpectations(t)
}
