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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogService "github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	catalogStore "github.com/wso2/gdpr-notice-generator/internal/catalog/store"
	"github.com/wso2/gdpr-notice-generator/internal/notice/model"
	"github.com/wso2/gdpr-notice-generator/internal/notice/service"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	sessionModel "github.com/wso2/gdpr-notice-generator/internal/session/model"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
)

type staticSessions struct {
	session *sessionModel.Session
}

func (s staticSessions) Resume(token string) (*sessionModel.Session, error) {
	if token != "valid" {
		return nil, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized)
	}
	return s.session, nil
}

func newNoticeHandler(t *testing.T) *NoticeHandler {
	t.Helper()
	catalog, err := catalogStore.LoadDefaultCatalog()
	require.NoError(t, err)

	session := sessionModel.NewSession("session-1", "Acme Corp", time.Now())
	require.NoError(t, session.Update(func(state *questionnaire.QuestionnaireState) error {
		state.CompanyName = "Acme Corp"
		detail := questionnaire.NewDetail()
		detail.Categories = []string{"Financial details"}
		detail.Transfers = "Yes (Outside EU/UK)"
		state.Purposes = append(state.Purposes, questionnaire.Purpose{Title: "Billing", Description: "Invoice customers", Details: detail})
		state.MarkPresent("company_name", "purposes")
		return nil
	}))
	return NewNoticeHandler(staticSessions{session}, service.NewNoticeService(catalogService.NewCatalogService(*catalog)))
}

func getNotice(h *NoticeHandler, url, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.GetNotice(rec, req)
	return rec
}

func TestGetNotice_JSON(t *testing.T) {
	rec := getNotice(newNoticeHandler(t), "/notice", "valid")
	require.Equal(t, http.StatusOK, rec.Code)

	var notice model.Notice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notice))
	assert.Equal(t, "Data Protection Notice: Acme Corp", notice.Title)
	require.Len(t, notice.Categories, 1)
	assert.Equal(t, "Financial details", notice.Categories[0].Category)
	assert.NotEmpty(t, notice.Categories[0].TransferWarning)
	assert.Len(t, notice.Rights, 5)
}

func TestGetNotice_Markdown(t *testing.T) {
	rec := getNotice(newNoticeHandler(t), "/notice?format=markdown", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rec.Body.String(), "### Category: Financial details")
}

func TestGetNotice_Rejections(t *testing.T) {
	h := newNoticeHandler(t)
	assert.Equal(t, http.StatusUnauthorized, getNotice(h, "/notice", "").Code)
	assert.Equal(t, http.StatusBadRequest, getNotice(h, "/notice?format=pdf", "valid").Code)
}
