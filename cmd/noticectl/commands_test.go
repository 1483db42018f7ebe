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


package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	catalogService "github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	catalogStore "github.com/wso2/gdpr-notice-generator/internal/catalog/store"
	progressService "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	progressStore "github.com/wso2/gdpr-notice-generator/internal/progress/store"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
)

func newTestApp(t *testing.T) (*app, *progressService.ProgressService) {
	t.Helper()
	catalog, err := catalogStore.LoadDefaultCatalog()
	require.NoError(t, err)
	progress := progressService.NewProgressService(progressStore.NewMemoryProgressStore())
	a := &app{
		openBackend: func(ctx context.Context, home string) (progressService.ProgressServiceInterface,
			catalogService.CatalogServiceInterface, func(), error) {
			return progress, catalogService.NewCatalogService(*catalog), func() {}, nil
		},
	}
	return a, progress
}

func saveAcme(t *testing.T, progress *progressService.ProgressService) {
	t.Helper()
	state := questionnaire.NewQuestionnaireState()
	state.CompanyName = "Acme Corp"
	state.SubjectCategory = "Customers"
	state.Activities = "Retail"
	detail := questionnaire.NewDetail()
	detail.Categories = []string{"Financial details"}
	detail.DirectPerCategory["Financial details"] = false
	detail.IndirectSource = "Bank feed"
	detail.Transfers = "Yes (Outside EU/UK)"
	state.Purposes = append(state.Purposes, questionnaire.Purpose{Title: "Billing", Description: "Invoice customers", Details: detail})
	state.MarkPresent("company_name", "subject_cat", "activities", "purposes")
	require.NoError(t, progress.Save(context.Background(), "Acme Corp", state.Snapshot()))
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSanitize(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := execute(t, a, "sanitize", "Acme Corp / EU")
	require.NoError(t, err)
	assert.Equal(t, progressService.SanitizePartitionName("Acme Corp / EU")+"\n", out)
}

func TestExport_WritesWorkbook(t *testing.T) {
	a, progress := newTestApp(t)
	saveAcme(t, progress)
	target := filepath.Join(t.TempDir(), "out", "acme.xlsx")

	out, err := execute(t, a, "export", "--org", "Acme Corp", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	workbook, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer workbook.Close()
	rows, err := workbook.GetRows("Processing Details")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Billing", rows[1][2])
}

func TestExport_CSVToStdout(t *testing.T) {
	a, progress := newTestApp(t)
	saveAcme(t, progress)

	out, err := execute(t, a, "export", "--org", "Acme Corp", "--format", "csv", "--sheet", "company", "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Corp,Customers,Retail")
}

func TestExport_NothingSaved(t *testing.T) {
	a, _ := newTestApp(t)
	_, err := execute(t, a, "export", "--org", "Globex", "--out", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved progress")
}

func TestExport_RequiresOrg(t *testing.T) {
	a, _ := newTestApp(t)
	_, err := execute(t, a, "export")
	assert.Error(t, err)
}

func TestNotice_Plain(t *testing.T) {
	a, progress := newTestApp(t)
	saveAcme(t, progress)

	out, err := execute(t, a, "notice", "--org", "Acme Corp", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Data Protection Notice: Acme Corp")
	assert.Contains(t, out, "### Category: Financial details")
	assert.Contains(t, out, "Not obtained directly from you - Bank feed")
	assert.Contains(t, out, "transferred outside the EU/UK")
}

func TestNotice_Rendered(t *testing.T) {
	a, progress := newTestApp(t)
	saveAcme(t, progress)

	out, err := execute(t, a, "notice", "--org", "Acme Corp", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Financial details")
}

func TestList(t *testing.T) {
	a, progress := newTestApp(t)
	saveAcme(t, progress)

	out, err := execute(t, a, "list")
	require.NoError(t, err)
	assert.Contains(t, out, progressService.SanitizePartitionName("Acme Corp"))
}
