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


package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogService "github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	catalogStore "github.com/wso2/gdpr-notice-generator/internal/catalog/store"
	progressService "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	progressStore "github.com/wso2/gdpr-notice-generator/internal/progress/store"
	"github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/questionnaire/service"
	sessionService "github.com/wso2/gdpr-notice-generator/internal/session/service"
	sessionStore "github.com/wso2/gdpr-notice-generator/internal/session/store"
	"github.com/wso2/gdpr-notice-generator/internal/system/authn"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
)

type testServer struct {
	mux      *http.ServeMux
	token    string
	progress *progressService.ProgressService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	catalog, err := catalogStore.LoadDefaultCatalog()
	require.NoError(t, err)
	tokens, err := authn.NewTokenIssuer(config.SessionConfig{SigningKey: "test-key", Issuer: "gdpr-notice-generator", TTLMinutes: 30})
	require.NoError(t, err)
	sessions := sessionService.NewSessionService(sessionStore.NewSessionStore(30*time.Minute), tokens)
	progress := progressService.NewProgressService(progressStore.NewMemoryProgressStore())

	h := NewQuestionnaireHandler(sessions,
		service.NewQuestionnaireService(catalogService.NewCatalogService(*catalog)), progress)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /questionnaire", h.GetQuestionnaire)
	mux.HandleFunc("PUT /questionnaire/general", h.UpdateGeneralInfo)
	mux.HandleFunc("POST /questionnaire/save", h.SaveProgress)
	mux.HandleFunc("POST /questionnaire/purposes", h.AddPurpose)
	mux.HandleFunc("DELETE /questionnaire/purposes/{index}", h.RemovePurpose)
	mux.HandleFunc("PATCH /questionnaire/purposes/{index}/details", h.UpdateDetails)
	mux.HandleFunc("POST /questionnaire/purposes/{index}/custom-categories", h.AddCustomCategory)
	mux.HandleFunc("DELETE /questionnaire/purposes/{index}/custom-categories/{position}", h.RemoveCustomCategory)

	_, token, _, err := sessions.Open("Acme Corp")
	require.NoError(t, err)
	return &testServer{mux: mux, token: token, progress: progress}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) model.QuestionnaireState {
	t.Helper()
	var state model.QuestionnaireState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

func TestQuestionnaire_RequiresSession(t *testing.T) {
	s := newTestServer(t)
	s.token = ""

	rec := s.do(t, http.MethodGet, "/questionnaire", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.token = "garbage"
	rec = s.do(t, http.MethodPost, "/questionnaire/purposes", `{"title":"Payroll"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQuestionnaire_EditFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/questionnaire/general",
		`{"company_name":"Acme Corp","subject_cat":"Customers","activities":"Retail"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Customers", decodeState(t, rec).SubjectCategory)

	rec = s.do(t, http.MethodPost, "/questionnaire/purposes", `{"title":"Billing","desc":"Invoice customers"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var purpose model.Purpose
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purpose))
	assert.Equal(t, "Billing", purpose.Title)
	assert.Equal(t, "Internal use only", purpose.Details.Shared)

	rec = s.do(t, http.MethodPatch, "/questionnaire/purposes/0/details",
		`{"categories":["Financial details"],"direct_per_cat":{"Financial details":false},"indirect_source":"Bank feed","international_transfers":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/questionnaire/purposes/0/custom-categories", `{"name":"Loyalty points"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purpose))
	assert.Equal(t, []string{"Loyalty points"}, purpose.Details.ExtraCategories)
	assert.Equal(t, "Loyalty points", purpose.Details.Comment)

	rec = s.do(t, http.MethodGet, "/questionnaire", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	require.Len(t, state.Purposes, 1)
	details := state.Purposes[0].Details
	assert.Equal(t, []string{"Financial details"}, details.Categories)
	assert.False(t, details.DirectPerCategory["Financial details"])
	assert.Equal(t, "Bank feed", details.IndirectSource)
	assert.Equal(t, "Yes (Outside EU/UK)", details.Transfers)

	rec = s.do(t, http.MethodDelete, "/questionnaire/purposes/0/custom-categories/0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purpose))
	assert.Empty(t, purpose.Details.ExtraCategories)

	rec = s.do(t, http.MethodDelete, "/questionnaire/purposes/0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeState(t, s.do(t, http.MethodGet, "/questionnaire", "")).Purposes)
}

func TestQuestionnaire_Rejections(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/questionnaire/purposes", `{"title":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/questionnaire/purposes", `{"title":"Billing","unknown":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodDelete, "/questionnaire/purposes/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodDelete, "/questionnaire/purposes/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.do(t, http.MethodPost, "/questionnaire/purposes", `{"title":"Billing"}`)
	rec = s.do(t, http.MethodPatch, "/questionnaire/purposes/0/details", `{"categories":["Star sign"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/questionnaire/purposes/0/details",
		`{"shared_with_third_parties":true,"recipients":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuestionnaire_SaveProgress(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPut, "/questionnaire/general", `{"company_name":"Acme Corp","subject_cat":"","activities":""}`)
	s.do(t, http.MethodPost, "/questionnaire/purposes", `{"title":"Billing"}`)

	rec := s.do(t, http.MethodPost, "/questionnaire/save", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var result SaveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Acme Corp", result.Organization)
	assert.Equal(t, progressService.SanitizePartitionName("Acme Corp"), result.Partition)
	assert.Contains(t, result.SavedKeys, "purposes")

	saved, found, err := s.progress.Load(context.Background(), "Acme Corp")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, strings.Contains(string(saved["purposes"]), "Billing"))
}
