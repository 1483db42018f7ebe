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
	"fmt"
	"net/http"
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/export/model"
	progressService "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/metrics"
)

// Sheet selectors accepted by Render for single sheet formats.
const (
	SheetProcessing = "processing"
	SheetCompany    = "company"
)

// ExportServiceInterface defines the export operations.
type ExportServiceInterface interface {
	Build(state *questionnaire.QuestionnaireState) model.Export
	Render(state *questionnaire.QuestionnaireState, organization, format, sheet string) (*model.File, error)
}

// ExportService flattens questionnaires into the processing and company tables.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildProcessingRows returns one row per (purpose, category) pair, standard categories first.
// A purpose without categories still yields a single row with the category columns left empty.
func BuildProcessingRows(state *questionnaire.QuestionnaireState) []model.ProcessingRow {

	rows := make([]model.ProcessingRow, 0, len(state.Purposes))
	for _, purpose := range state.Purposes {
		detail := purpose.Details
		base := model.ProcessingRow{
			Company:         state.CompanyName,
			SubjectCategory: state.SubjectCategory,
			Purpose:         purpose.Title,
			Description:     purpose.Description,
			Sharing:         detail.Shared,
			Retention:       detail.Retention,
			Transfers:       detail.Transfers,
		}
		categories := detail.AllCategories()
		if len(categories) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, category := range categories {
			row := base
			row.DataCategory = category
			if detail.IsDirect(category) {
				row.ObtainedDirect = constants.AnswerYes
			} else {
				row.ObtainedDirect = constants.AnswerNo
				row.IndirectSource = detail.IndirectSource
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// BuildCompanyRow returns the company level summary row.
func BuildCompanyRow(state *questionnaire.QuestionnaireState) model.CompanyRow {
	return model.CompanyRow{
		CompanyName:  state.CompanyName,
		DataSubjects: state.SubjectCategory,
		Activities:   state.Activities,
	}
}

// FileName returns the export file name for an organization, e.g. "gdpr_Acme Corp.xlsx".
func FileName(organization, suffix, extension string) string {
	name := "gdpr_" + progressService.SanitizePartitionName(organization)
	if suffix != "" {
		name += "_" + suffix
	}
	return name + "." + extension
}

func (es *ExportService) Build(state *questionnaire.QuestionnaireState) model.Export {
	return model.Export{
		Processing: BuildProcessingRows(state),
		Company:    BuildCompanyRow(state),
	}
}

// Render produces the export in the requested format. The workbook carries both sheets; csv
// holds one sheet, "processing" unless sheet says otherwise; json carries both tables unless a
// sheet is named.
func (es *ExportService) Render(state *questionnaire.QuestionnaireState, organization, format,
	sheet string) (*model.File, error) {

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = constants.FormatXLSX
	}
	sheet = strings.ToLower(strings.TrimSpace(sheet))
	if sheet != "" && sheet != SheetProcessing && sheet != SheetCompany {
		return nil, errors2.NewClientError(errors2.WithDescription(errors2.UNSUPPORTED_EXPORT_FORMAT,
			fmt.Sprintf("Unknown sheet '%s'. Use '%s' or '%s'.", sheet, SheetProcessing, SheetCompany)),
			http.StatusBadRequest)
	}

	export := es.Build(state)
	var (
		file *model.File
		err  error
	)
	switch format {
	case constants.FormatXLSX:
		file, err = writeWorkbook(export, FileName(organization, "", "xlsx"))
	case constants.FormatCSV:
		if sheet == "" {
			sheet = SheetProcessing
		}
		file, err = writeCSV(export, sheet, FileName(organization, sheet, "csv"))
	case constants.FormatJSON:
		file, err = writeJSON(export, sheet, FileName(organization, sheet, "json"))
	default:
		return nil, errors2.NewClientError(errors2.WithDescription(errors2.UNSUPPORTED_EXPORT_FORMAT,
			fmt.Sprintf("Format '%s' is not supported. Use xlsx, csv or json.", format)), http.StatusBadRequest)
	}
	if err != nil {
		return nil, err
	}

	metrics.Exports.WithLabelValues(format).Inc()
	log.GetLogger().Debug("Export generated", log.String("organization", organization),
		log.String("format", format), log.Int("rows", len(export.Processing)))
	return file, nil
}
