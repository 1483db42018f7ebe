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


package questionnaire

import (
	exportModel "github.com/wso2/gdpr-notice-generator/internal/export/model"
	noticeModel "github.com/wso2/gdpr-notice-generator/internal/notice/model"
	questionnaireModel "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/pagination"
)

// gdpr_list_progress
type ListProgressInput struct {
	Count  int    `json:"count,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type ListProgressOutput struct {
	Partitions []SavedPartition      `json:"partitions"`
	Pagination pagination.Pagination `json:"pagination"`
}

// SavedPartition is a saved partition with its timestamp in the stored layout.
type SavedPartition struct {
	PartitionKey string `json:"partition_key"`
	LastUpdated  string `json:"last_updated"`
}

// gdpr_get_progress
type GetProgressInput struct {
	Organization string `json:"organization"`
}

type GetProgressOutput struct {
	Organization string                                 `json:"organization"`
	Found        bool                                   `json:"found"`
	State        *questionnaireModel.QuestionnaireState `json:"state"`
}

// gdpr_export_rows
type ExportRowsInput struct {
	Organization string `json:"organization"`
}

type ExportRowsOutput struct {
	Organization string             `json:"organization"`
	Export       exportModel.Export `json:"export"`
}

// gdpr_render_notice
type RenderNoticeInput struct {
	Organization string `json:"organization"`
}

type RenderNoticeOutput struct {
	Notice   noticeModel.Notice `json:"notice"`
	Markdown string             `json:"markdown"`
}
