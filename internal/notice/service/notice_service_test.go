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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogService "github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	"github.com/wso2/gdpr-notice-generator/internal/catalog/store"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
)

func newTestNoticeService(t *testing.T) *NoticeService {
	t.Helper()
	catalog, err := store.LoadDefaultCatalog()
	require.NoError(t, err)
	return NewNoticeService(catalogService.NewCatalogService(*catalog))
}

func noticeState() *questionnaire.QuestionnaireState {
	state := questionnaire.NewQuestionnaireState()
	state.CompanyName = "Acme Corp"

	payroll := questionnaire.Purpose{Title: "Payroll", Description: "Pay employees", Details: questionnaire.NewDetail()}
	payroll.Details.Categories = []string{"Financial details"}
	payroll.Details.ExtraCategories = []string{"Timesheets"}
	payroll.Details.DirectPerCategory = map[string]bool{"Financial details": false}
	payroll.Details.Retention = "7 years"
	payroll.Details.Shared = "Accounting firm"
	payroll.Details.Transfers = "Yes (Outside EU/UK)"

	events := questionnaire.Purpose{Title: "Events", Description: "Company events", Details: questionnaire.NewDetail()}
	state.Purposes = []questionnaire.Purpose{payroll, events}
	return state
}

func TestRender(t *testing.T) {
	svc := newTestNoticeService(t)

	notice := svc.Render(noticeState())

	assert.Equal(t, "Data Protection Notice: Acme Corp", notice.Title)
	require.Len(t, notice.Purposes, 2)
	assert.Equal(t, "Events", notice.Purposes[1].Title)

	require.Len(t, notice.Categories, 2)
	financial := notice.Categories[0]
	assert.Equal(t, "Financial details", financial.Category)
	assert.NotEqual(t, "Financial details", financial.Specifics)
	assert.NotEmpty(t, financial.Specifics)
	assert.Equal(t, "Payroll", financial.Purpose)
	assert.Equal(t, "7 years", financial.Retention)
	assert.Equal(t, "Accounting firm", financial.DisclosedTo)
	assert.Equal(t, "Not obtained directly from you - Not specified", financial.Source)
	assert.Equal(t, "Note: This data is transferred outside the EU/UK.", financial.TransferWarning)

	custom := notice.Categories[1]
	assert.Equal(t, "Timesheets", custom.Specifics)
	assert.Equal(t, "Obtained directly from you.", custom.Source)

	assert.Len(t, notice.Rights, 5)
}

func TestRender_IndirectSourceAndNoTransfer(t *testing.T) {
	svc := newTestNoticeService(t)
	state := noticeState()
	state.Purposes[0].Details.IndirectSource = "  Bank feed "
	state.Purposes[0].Details.Transfers = "No"

	notice := svc.Render(state)

	assert.Equal(t, "Not obtained directly from you - Bank feed", notice.Categories[0].Source)
	assert.Empty(t, notice.Categories[0].TransferWarning)
}

func TestRender_EmptyState(t *testing.T) {
	notice := newTestNoticeService(t).Render(questionnaire.NewQuestionnaireState())

	assert.Equal(t, "Data Protection Notice: ", notice.Title)
	assert.Empty(t, notice.Purposes)
	assert.Empty(t, notice.Categories)
	assert.Len(t, notice.Rights, 5)
}

func TestRenderMarkdown(t *testing.T) {
	svc := newTestNoticeService(t)

	markdown := svc.RenderMarkdown(svc.Render(noticeState()))

	assert.True(t, strings.HasPrefix(markdown, "# Data Protection Notice: Acme Corp\n"))
	assert.Contains(t, markdown, "## Why do we process your personal data?")
	assert.Contains(t, markdown, "### Category: Timesheets")
	assert.Contains(t, markdown, "- **Source:** Not obtained directly from you - Not specified")
	assert.Contains(t, markdown, "> **Warning:** Note: This data is transferred outside the EU/UK.")
	assert.Contains(t, markdown, "- **Right to Data Portability**: Transfer your data to another organization.")
	assert.Less(t, strings.Index(markdown, "Why do we process"), strings.Index(markdown, "Which personal data"))
	assert.Less(t, strings.Index(markdown, "Which personal data"), strings.Index(markdown, "What rights"))
}
