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
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	exportSvc "github.com/wso2/gdpr-notice-generator/internal/export/service"
	noticeSvc "github.com/wso2/gdpr-notice-generator/internal/notice/service"
	progressModel "github.com/wso2/gdpr-notice-generator/internal/progress/model"
	progressSvc "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	questionnaireModel "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	"github.com/wso2/gdpr-notice-generator/internal/system/pagination"
)

// Tools exposes saved questionnaires read-only.
type Tools struct {
	progress progressSvc.ProgressServiceInterface
	export   exportSvc.ExportServiceInterface
	notice   noticeSvc.NoticeServiceInterface
}

func NewTools(progress progressSvc.ProgressServiceInterface, export exportSvc.ExportServiceInterface,
	notice noticeSvc.NoticeServiceInterface) *Tools {
	return &Tools{progress: progress, export: export, notice: notice}
}

func (t *Tools) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "gdpr_list_progress",
		Description: "List the organizations with saved questionnaire progress.",
		InputSchema: listProgressInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "List Saved Progress",
			ReadOnlyHint: true,
		},
	}, t.listProgress)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gdpr_get_progress",
		Description: "Retrieve the saved questionnaire of an organization.",
		InputSchema: organizationInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "Get Saved Progress",
			ReadOnlyHint: true,
		},
	}, t.getProgress)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gdpr_export_rows",
		Description: "Flatten the saved questionnaire of an organization into processing detail and company rows.",
		InputSchema: organizationInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "Export Rows",
			ReadOnlyHint: true,
		},
	}, t.exportRows)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gdpr_render_notice",
		Description: "Render the data protection notice of an organization from its saved questionnaire.",
		InputSchema: organizationInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "Render Notice",
			ReadOnlyHint: true,
		},
	}, t.renderNotice)
}

func (t *Tools) listProgress(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ListProgressInput,
) (*mcp.CallToolResult, ListProgressOutput, error) {

	partitions, err := t.progress.List(ctx)
	if err != nil {
		return nil, ListProgressOutput{}, fmt.Errorf("failed to list saved progress: %w", err)
	}
	page, pageInfo, err := pagination.Paginate(partitions, input.Count, input.Cursor,
		func(p progressModel.PartitionSummary) pagination.Cursor {
			return pagination.Cursor{UpdatedAt: p.LastUpdated, Key: p.PartitionKey}
		})
	if err != nil {
		return nil, ListProgressOutput{}, err
	}
	output := ListProgressOutput{Partitions: make([]SavedPartition, 0, len(page)), Pagination: pageInfo}
	for _, partition := range page {
		output.Partitions = append(output.Partitions, SavedPartition{
			PartitionKey: partition.PartitionKey,
			LastUpdated:  partition.LastUpdated.UTC().Format(constants.ProgressTimestampLayout),
		})
	}
	return nil, output, nil
}

func (t *Tools) getProgress(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input GetProgressInput,
) (*mcp.CallToolResult, GetProgressOutput, error) {

	organization, state, found, err := t.loadState(ctx, input.Organization)
	if err != nil {
		return nil, GetProgressOutput{}, err
	}
	return nil, GetProgressOutput{Organization: organization, Found: found, State: state}, nil
}

func (t *Tools) exportRows(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ExportRowsInput,
) (*mcp.CallToolResult, ExportRowsOutput, error) {

	organization, state, _, err := t.loadState(ctx, input.Organization)
	if err != nil {
		return nil, ExportRowsOutput{}, err
	}
	return nil, ExportRowsOutput{Organization: organization, Export: t.export.Build(state)}, nil
}

func (t *Tools) renderNotice(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input RenderNoticeInput,
) (*mcp.CallToolResult, RenderNoticeOutput, error) {

	_, state, _, err := t.loadState(ctx, input.Organization)
	if err != nil {
		return nil, RenderNoticeOutput{}, err
	}
	notice := t.notice.Render(state)
	return nil, RenderNoticeOutput{Notice: notice, Markdown: t.notice.RenderMarkdown(notice)}, nil
}

// loadState restores the saved questionnaire of an organization into a fresh state.
func (t *Tools) loadState(ctx context.Context, organization string) (string,
	*questionnaireModel.QuestionnaireState, bool, error) {

	organization = strings.TrimSpace(organization)
	if organization == "" {
		return "", nil, false, fmt.Errorf("organization is required")
	}
	saved, found, err := t.progress.Load(ctx, organization)
	if err != nil {
		return "", nil, false, fmt.Errorf("failed to load saved progress: %w", err)
	}
	state := questionnaireModel.NewQuestionnaireState()
	state.Restore(saved)
	return organization, state, found, nil
}
