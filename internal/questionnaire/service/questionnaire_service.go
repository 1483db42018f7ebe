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

	catalogService "github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	"github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
)

// QuestionnaireServiceInterface defines the editor operations on a questionnaire state.
type QuestionnaireServiceInterface interface {
	UpdateGeneralInfo(state *model.QuestionnaireState, info model.GeneralInfo) error
	AddPurpose(state *model.QuestionnaireState, title, description string) (*model.Purpose, error)
	RemovePurpose(state *model.QuestionnaireState, index int) (*model.Purpose, error)
	SelectCategories(state *model.QuestionnaireState, index int, names []string) error
	AddCustomCategory(state *model.QuestionnaireState, index int, name string) error
	RemoveCustomCategory(state *model.QuestionnaireState, index, position int) error
	SetDirectCollection(state *model.QuestionnaireState, index int, category string, direct bool) error
	SetIndirectSource(state *model.QuestionnaireState, index int, source string) error
	SetSharing(state *model.QuestionnaireState, index int, thirdParties bool, recipients string) error
	SetRetention(state *model.QuestionnaireState, index int, retention string) error
	SetTransfers(state *model.QuestionnaireState, index int, international bool) error
	UpdateDetails(state *model.QuestionnaireState, index int, patch model.DetailsPatch) (*model.Purpose, error)
}

// QuestionnaireService is the default implementation.
type QuestionnaireService struct {
	catalog catalogService.CatalogServiceInterface
}

// NewQuestionnaireService returns an editor that validates categories against the given catalog.
func NewQuestionnaireService(catalog catalogService.CatalogServiceInterface) *QuestionnaireService {
	return &QuestionnaireService{catalog: catalog}
}

// UpdateGeneralInfo replaces the company level answers.
func (qs *QuestionnaireService) UpdateGeneralInfo(state *model.QuestionnaireState, info model.GeneralInfo) error {

	company := strings.TrimSpace(info.CompanyName)
	if company == "" {
		return errors2.NewClientError(errors2.WithDescription(errors2.GENERAL_INFO_VALIDATION,
			"company_name is required."), http.StatusBadRequest)
	}
	subject := strings.TrimSpace(info.SubjectCategory)
	if subject == "" {
		subject = constants.DefaultSubjectCategory
	}

	state.CompanyName = company
	state.SubjectCategory = subject
	state.Activities = strings.TrimSpace(info.Activities)
	state.MarkPresent(constants.StateKeyCompanyName, constants.StateKeySubjectCategory, constants.StateKeyActivities)
	return nil
}

// AddPurpose appends a purpose with default details.
func (qs *QuestionnaireService) AddPurpose(state *model.QuestionnaireState, title, description string) (*model.Purpose, error) {

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors2.NewClientError(errors2.WithDescription(errors2.PURPOSE_VALIDATION,
			"Purpose title is required."), http.StatusBadRequest)
	}
	purpose := model.Purpose{
		Title:       title,
		Description: strings.TrimSpace(description),
		Details:     model.NewDetail(),
	}
	state.Purposes = append(state.Purposes, purpose)
	state.MarkPresent(constants.StateKeyPurposes)
	added := purpose.Clone()
	return &added, nil
}

// RemovePurpose deletes the purpose at the given position and returns it.
func (qs *QuestionnaireService) RemovePurpose(state *model.QuestionnaireState, index int) (*model.Purpose, error) {

	if _, err := purposeAt(state, index); err != nil {
		return nil, err
	}
	removed := state.Purposes[index]
	state.Purposes = append(state.Purposes[:index], state.Purposes[index+1:]...)
	state.MarkPresent(constants.StateKeyPurposes)
	return &removed, nil
}

// SelectCategories replaces the standard categories of a purpose. Legacy names are normalized.
func (qs *QuestionnaireService) SelectCategories(state *model.QuestionnaireState, index int, names []string) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	categories, err := qs.resolveCategories(names)
	if err != nil {
		return err
	}
	purpose.Details.Categories = categories
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

// AddCustomCategory appends a free text category. Duplicates are ignored.
func (qs *QuestionnaireService) AddCustomCategory(state *model.QuestionnaireState, index int, name string) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors2.NewClientError(errors2.WithDescription(errors2.CUSTOM_CATEGORY_VALIDATION,
			"Custom category name is required."), http.StatusBadRequest)
	}
	for _, existing := range purpose.Details.ExtraCategories {
		if existing == name {
			return nil
		}
	}
	purpose.Details.ExtraCategories = append(purpose.Details.ExtraCategories, name)
	purpose.Details.RefreshComment()
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

// RemoveCustomCategory deletes the custom category at the given position.
func (qs *QuestionnaireService) RemoveCustomCategory(state *model.QuestionnaireState, index, position int) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	extras := purpose.Details.ExtraCategories
	if position < 0 || position >= len(extras) {
		return errors2.NewClientError(errors2.WithDescription(errors2.CUSTOM_CATEGORY_NOT_FOUND,
			fmt.Sprintf("Purpose %d has no custom category at position %d.", index, position)), http.StatusNotFound)
	}
	purpose.Details.ExtraCategories = append(extras[:position:position], extras[position+1:]...)
	purpose.Details.RefreshComment()
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

// SetDirectCollection records whether a selected category is collected from the data subject.
func (qs *QuestionnaireService) SetDirectCollection(state *model.QuestionnaireState, index int, category string, direct bool) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	if err := setDirect(&purpose.Details, category, direct); err != nil {
		return err
	}
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

// SetIndirectSource sets the source note shared by every indirectly collected category.
func (qs *QuestionnaireService) SetIndirectSource(state *model.QuestionnaireState, index int, source string) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	purpose.Details.IndirectSource = strings.TrimSpace(source)
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

// SetSharing stores either internal use or the named third party recipients.
func (qs *QuestionnaireService) SetSharing(state *model.QuestionnaireState, index int, thirdParties bool, recipients string) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	if err := setSharing(&purpose.Details, thirdParties, recipients); err != nil {
		return err
	}
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

func (qs *QuestionnaireService) SetRetention(state *model.QuestionnaireState, index int, retention string) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	purpose.Details.Retention = strings.TrimSpace(retention)
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

func (qs *QuestionnaireService) SetTransfers(state *model.QuestionnaireState, index int, international bool) error {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return err
	}
	purpose.Details.Transfers = transfersValue(international)
	state.MarkPresent(constants.StateKeyPurposes)
	return nil
}

// UpdateDetails applies a partial update. Either every change in the patch is applied or none is.
func (qs *QuestionnaireService) UpdateDetails(state *model.QuestionnaireState, index int, patch model.DetailsPatch) (*model.Purpose, error) {

	purpose, err := purposeAt(state, index)
	if err != nil {
		return nil, err
	}

	// Changes are staged on a copy of the purpose and committed together.
	staged := model.NewQuestionnaireState()
	staged.Purposes = append(staged.Purposes, purpose.Clone())
	const at = 0

	if patch.Categories != nil {
		if err := qs.SelectCategories(staged, at, *patch.Categories); err != nil {
			return nil, err
		}
	}
	for category, direct := range patch.DirectPerCategory {
		if err := qs.SetDirectCollection(staged, at, category, direct); err != nil {
			return nil, err
		}
	}
	if patch.IndirectSource != nil {
		if err := qs.SetIndirectSource(staged, at, *patch.IndirectSource); err != nil {
			return nil, err
		}
	}
	if patch.SharedWithThirdParties != nil || patch.Recipients != nil {
		current := staged.Purposes[at].Details
		thirdParties := true
		if patch.SharedWithThirdParties != nil {
			thirdParties = *patch.SharedWithThirdParties
		}
		recipients := current.Shared
		if patch.Recipients != nil {
			recipients = *patch.Recipients
		} else if !current.SharedWithThirdParties() {
			recipients = ""
		}
		if err := qs.SetSharing(staged, at, thirdParties, recipients); err != nil {
			return nil, err
		}
	}
	if patch.Retention != nil {
		if err := qs.SetRetention(staged, at, *patch.Retention); err != nil {
			return nil, err
		}
	}
	if patch.InternationalTransfers != nil {
		if err := qs.SetTransfers(staged, at, *patch.InternationalTransfers); err != nil {
			return nil, err
		}
	}

	purpose.Details = staged.Purposes[at].Details
	state.MarkPresent(constants.StateKeyPurposes)
	updated := purpose.Clone()
	return &updated, nil
}

func (qs *QuestionnaireService) resolveCategories(names []string) ([]string, error) {

	categories := make([]string, 0, len(names))
	seen := map[string]bool{}
	var unknown []string
	for _, name := range names {
		resolved, ok := qs.catalog.Resolve(strings.TrimSpace(name))
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !seen[resolved] {
			seen[resolved] = true
			categories = append(categories, resolved)
		}
	}
	if len(unknown) > 0 {
		return nil, errors2.NewClientError(errors2.WithDescription(errors2.UNKNOWN_CATEGORY,
			fmt.Sprintf("Unknown data categories: %s.", strings.Join(unknown, ", "))), http.StatusBadRequest)
	}
	return categories, nil
}

func purposeAt(state *model.QuestionnaireState, index int) (*model.Purpose, error) {
	if index < 0 || index >= len(state.Purposes) {
		return nil, errors2.NewClientError(errors2.WithDescription(errors2.PURPOSE_NOT_FOUND,
			fmt.Sprintf("No purpose exists at position %d.", index)), http.StatusNotFound)
	}
	return &state.Purposes[index], nil
}

func setDirect(detail *model.Detail, category string, direct bool) error {
	if !detail.HasCategory(category) {
		return errors2.NewClientError(errors2.WithDescription(errors2.CATEGORY_NOT_SELECTED,
			fmt.Sprintf("Category '%s' is not selected for this purpose.", category)), http.StatusBadRequest)
	}
	if detail.DirectPerCategory == nil {
		detail.DirectPerCategory = map[string]bool{}
	}
	detail.DirectPerCategory[category] = direct
	return nil
}

func setSharing(detail *model.Detail, thirdParties bool, recipients string) error {
	if !thirdParties {
		detail.Shared = constants.SharingInternalOnly
		return nil
	}
	recipients = strings.TrimSpace(recipients)
	if recipients == "" || recipients == constants.SharingInternalOnly {
		return errors2.NewClientError(errors2.WithDescription(errors2.PURPOSE_VALIDATION,
			"Recipients are required when data is shared with third parties."), http.StatusBadRequest)
	}
	detail.Shared = recipients
	return nil
}

func transfersValue(international bool) string {
	if international {
		return constants.TransfersInternational
	}
	return constants.TransfersNone
}
