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
	"strings"

	catalogService "github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	"github.com/wso2/gdpr-notice-generator/internal/notice/model"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

const (
	titlePrefix = "Data Protection Notice: "

	headingPurposes   = "Why do we process your personal data?"
	headingCategories = "Which personal data do we use?"
	headingRights     = "What rights do you have over your data?"

	sourceDirect   = "Obtained directly from you."
	sourceIndirect = "Not obtained directly from you - "

	transferWarning = "Note: This data is transferred outside the EU/UK."
)

var dataSubjectRights = []model.Right{
	{Name: "Right to Access", Description: "Request a copy of your data."},
	{Name: "Right to Correct", Description: "Update inaccurate information."},
	{Name: "Right to Erasure", Description: "Request deletion when no longer necessary."},
	{Name: "Right to Object", Description: "Restrict processing under certain conditions."},
	{Name: "Right to Data Portability", Description: "Transfer your data to another organization."},
}

// NoticeServiceInterface defines the notice rendering operations.
type NoticeServiceInterface interface {
	Render(state *questionnaire.QuestionnaireState) model.Notice
	RenderMarkdown(notice model.Notice) string
}

// NoticeService renders notices, describing categories from the catalog.
type NoticeService struct {
	catalog catalogService.CatalogServiceInterface
}

func NewNoticeService(catalog catalogService.CatalogServiceInterface) *NoticeService {
	return &NoticeService{catalog: catalog}
}

// Render builds the notice sections. Categories outside the catalog are described by their name.
func (s *NoticeService) Render(state *questionnaire.QuestionnaireState) model.Notice {

	notice := model.Notice{
		Title:      titlePrefix + state.CompanyName,
		Purposes:   make([]model.PurposeSection, 0, len(state.Purposes)),
		Categories: []model.CategorySection{},
		Rights:     append([]model.Right{}, dataSubjectRights...),
	}
	for _, purpose := range state.Purposes {
		notice.Purposes = append(notice.Purposes, model.PurposeSection{
			Title:       purpose.Title,
			Description: purpose.Description,
		})
	}
	for _, purpose := range state.Purposes {
		detail := purpose.Details
		for _, category := range detail.AllCategories() {
			section := model.CategorySection{
				Category:    category,
				Specifics:   s.catalog.Describe(category),
				Purpose:     purpose.Title,
				Retention:   detail.Retention,
				DisclosedTo: detail.Shared,
				Source:      sourceLine(detail, category),
			}
			if detail.IsInternationalTransfer() {
				section.TransferWarning = transferWarning
			}
			notice.Categories = append(notice.Categories, section)
		}
	}
	return notice
}

func sourceLine(detail questionnaire.Detail, category string) string {
	if detail.IsDirect(category) {
		return sourceDirect
	}
	source := strings.TrimSpace(detail.IndirectSource)
	if source == "" {
		source = constants.SourceNotSpecified
	}
	return sourceIndirect + source
}

// RenderMarkdown formats a notice as a markdown document.
func (s *NoticeService) RenderMarkdown(notice model.Notice) string {

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", notice.Title)

	fmt.Fprintf(&b, "## %s\n\n", headingPurposes)
	for _, purpose := range notice.Purposes {
		fmt.Fprintf(&b, "### %s\n\n", purpose.Title)
		if purpose.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", purpose.Description)
		}
	}

	fmt.Fprintf(&b, "## %s\n\n", headingCategories)
	for _, section := range notice.Categories {
		fmt.Fprintf(&b, "### Category: %s\n\n", section.Category)
		fmt.Fprintf(&b, "- **Specifics:** %s\n", section.Specifics)
		fmt.Fprintf(&b, "- **Purpose:** %s\n", section.Purpose)
		fmt.Fprintf(&b, "- **How long we keep it:** %s\n", section.Retention)
		fmt.Fprintf(&b, "- **Disclosed to:** %s\n", section.DisclosedTo)
		fmt.Fprintf(&b, "- **Source:** %s\n\n", section.Source)
		if section.TransferWarning != "" {
			fmt.Fprintf(&b, "> **Warning:** %s\n\n", section.TransferWarning)
		}
	}

	fmt.Fprintf(&b, "## %s\n\n", headingRights)
	for _, right := range notice.Rights {
		fmt.Fprintf(&b, "- **%s**: %s\n", right.Name, right.Description)
	}
	return b.String()
}
