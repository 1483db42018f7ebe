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
	"bytes"
	"encoding/csv"
	"encoding/json"

	"github.com/wso2/gdpr-notice-generator/internal/export/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/xuri/excelize/v2"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeJSON = "application/json"
)

func writeWorkbook(export model.Export, name string) (*model.File, error) {

	workbook := excelize.NewFile()
	defer func() { _ = workbook.Close() }()

	if err := workbook.SetSheetName(workbook.GetSheetName(0), constants.SheetProcessingDetails); err != nil {
		return nil, errors2.NewServerError(errors2.GENERATE_EXPORT, err)
	}
	if _, err := workbook.NewSheet(constants.SheetCompanyInfo); err != nil {
		return nil, errors2.NewServerError(errors2.GENERATE_EXPORT, err)
	}

	processing := make([][]string, 0, len(export.Processing))
	for _, row := range export.Processing {
		processing = append(processing, row.Values())
	}
	if err := writeSheet(workbook, constants.SheetProcessingDetails, model.ProcessingColumns, processing); err != nil {
		return nil, errors2.NewServerError(errors2.GENERATE_EXPORT, err)
	}
	company := [][]string{export.Company.Values()}
	if err := writeSheet(workbook, constants.SheetCompanyInfo, model.CompanyColumns, company); err != nil {
		return nil, errors2.NewServerError(errors2.GENERATE_EXPORT, err)
	}
	workbook.SetActiveSheet(0)

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, errors2.NewServerError(errors2.GENERATE_EXPORT, err)
	}
	return &model.File{Name: name, ContentType: contentTypeXLSX, Content: buf.Bytes()}, nil
}

// writeSheet writes a bold header row followed by the data rows.
func writeSheet(workbook *excelize.File, sheet string, header []string, rows [][]string) error {

	bold, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, values := range append([][]string{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		cells := make([]interface{}, len(values))
		for j, value := range values {
			cells[j] = value
		}
		if err := workbook.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return workbook.SetCellStyle(sheet, "A1", last, bold)
}

func writeCSV(export model.Export, sheet, name string) (*model.File, error) {

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	var records [][]string
	if sheet == SheetCompany {
		records = [][]string{model.CompanyColumns, export.Company.Values()}
	} else {
		records = append(records, model.ProcessingColumns)
		for _, row := range export.Processing {
			records = append(records, row.Values())
		}
	}
	if err := writer.WriteAll(records); err != nil {
		return nil, errors2.NewServerError(errors2.GENERATE_EXPORT, err)
	}
	return &model.File{Name: name, ContentType: contentTypeCSV, Content: buf.Bytes()}, nil
}

func writeJSON(export model.Export, sheet, name string) (*model.File, error) {

	var payload interface{} = export
	switch sheet {
	case SheetProcessing:
		payload = export.Processing
	case SheetCompany:
		payload = export.Company
	}
	content, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, errors2.NewServerError(errors2.MARSHAL_JSON, err)
	}
	return &model.File{Name: name, ContentType: contentTypeJSON, Content: content}, nil
}
