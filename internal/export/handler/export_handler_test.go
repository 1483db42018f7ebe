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
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/gdpr-notice-generator/internal/export/model"
	"github.com/wso2/gdpr-notice-generator/internal/export/service"
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

func acmeSession(t *testing.T) *sessionModel.Session {
	t.Helper()
	session := sessionModel.NewSession("session-1", "Acme Corp", time.Now())
	require.NoError(t, session.Update(func(state *questionnaire.QuestionnaireState) error {
		state.CompanyName = "Acme Corp"
		state.SubjectCategory = "Customers"
		detail := questionnaire.NewDetail()
		detail.Categories = []string{"Financial details"}
		state.Purposes = append(state.Purposes, questionnaire.Purpose{Title: "Billing", Details: detail})
		state.MarkPresent("company_name", "subject_cat", "purposes")
		return nil
	}))
	return session
}

func get(t *testing.T, h *ExportHandler, url, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.GetExport(rec, req)
	return rec
}

func TestGetExport_Workbook(t *testing.T) {
	h := NewExportHandler(staticSessions{acmeSession(t)}, service.NewExportService())

	rec := get(t, h, "/export", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), service.FileName("Acme Corp", "", "xlsx"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestGetExport_JSON(t *testing.T) {
	h := NewExportHandler(staticSessions{acmeSession(t)}, service.NewExportService())

	rec := get(t, h, "/export?format=json", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	var export model.Export
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &export))
	require.Len(t, export.Processing, 1)
	assert.Equal(t, "Billing", export.Processing[0].Purpose)
	assert.Equal(t, "Acme Corp", export.Company.CompanyName)
}

func TestGetExport_Rejections(t *testing.T) {
	h := NewExportHandler(staticSessions{acmeSession(t)}, service.NewExportService())

	assert.Equal(t, http.StatusUnauthorized, get(t, h, "/export", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, h, "/export", "expired").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/export?format=pdf", "valid").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/export?format=csv&sheet=summary", "valid").Code)
}

func TestGetExport_ContentDispositionNonASCII(t *testing.T) {
	session := sessionModel.NewSession("session-2", "Müller Café", time.Now())
	h := NewExportHandler(staticSessions{session}, service.NewExportService())

	rec := get(t, h, "/export?format=csv", "valid")
	require.Equal(t, http.StatusOK, rec.Code)

	header := rec.Header().Get("Content-Disposition")
	assert.NotContains(t, header, `\u`)
	disposition, params, err := mime.ParseMediaType(header)
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, service.FileName("Müller Café", "processing", "csv"), params["filename"])
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="gdpr_Acme Corp.xlsx"`, contentDisposition("gdpr_Acme Corp.xlsx"))
	assert.Equal(t, "attachment; filename=gdpr_acme.json", contentDisposition("gdpr_acme.json"))
}
