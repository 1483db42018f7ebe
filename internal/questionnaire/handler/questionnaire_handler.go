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
	"net/http"

	progressService "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	"github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/questionnaire/service"
	sessionModel "github.com/wso2/gdpr-notice-generator/internal/session/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/security"
	"github.com/wso2/gdpr-notice-generator/internal/system/utils"
)

type QuestionnaireHandler struct {
	sessions security.SessionResolver
	service  service.QuestionnaireServiceInterface
	progress progressService.ProgressServiceInterface
}

func NewQuestionnaireHandler(sessions security.SessionResolver, questionnaireService service.QuestionnaireServiceInterface,
	progress progressService.ProgressServiceInterface) *QuestionnaireHandler {
	return &QuestionnaireHandler{sessions: sessions, service: questionnaireService, progress: progress}
}

// SaveResult acknowledges a saved questionnaire.
type SaveResult struct {
	Organization string   `json:"organization"`
	Partition    string   `json:"partition"`
	SavedKeys    []string `json:"saved_keys"`
}

// GetQuestionnaire handles GET /questionnaire
func (h *QuestionnaireHandler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {

	session, err := security.AuthenticateSession(r, h.sessions)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, session.Snapshot())
}

// UpdateGeneralInfo handles PUT /questionnaire/general
func (h *QuestionnaireHandler) UpdateGeneralInfo(w http.ResponseWriter, r *http.Request) {

	var info model.GeneralInfo
	h.mutate(w, r, &info, http.StatusOK, func(_ *sessionModel.Session, state *model.QuestionnaireState) (interface{}, error) {
		if err := h.service.UpdateGeneralInfo(state, info); err != nil {
			return nil, err
		}
		return state.Clone(), nil
	})
}

// AddPurpose handles POST /questionnaire/purposes
func (h *QuestionnaireHandler) AddPurpose(w http.ResponseWriter, r *http.Request) {

	var request model.PurposeRequest
	h.mutate(w, r, &request, http.StatusCreated, func(session *sessionModel.Session, state *model.QuestionnaireState) (interface{}, error) {
		purpose, err := h.service.AddPurpose(state, request.Title, request.Description)
		if err != nil {
			return nil, err
		}
		auditPurpose(session, log.ActionAddPurpose, purpose.Title, len(state.Purposes)-1)
		return purpose, nil
	})
}

// RemovePurpose handles DELETE /questionnaire/purposes/{index}
func (h *QuestionnaireHandler) RemovePurpose(w http.ResponseWriter, r *http.Request) {

	index, err := utils.PathIndex(r, "index", errors.BAD_REQUEST)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.mutate(w, r, nil, http.StatusOK, func(session *sessionModel.Session, state *model.QuestionnaireState) (interface{}, error) {
		removed, err := h.service.RemovePurpose(state, index)
		if err != nil {
			return nil, err
		}
		auditPurpose(session, log.ActionRemovePurpose, removed.Title, index)
		return removed, nil
	})
}

// UpdateDetails handles PATCH /questionnaire/purposes/{index}/details
func (h *QuestionnaireHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {

	index, err := utils.PathIndex(r, "index", errors.BAD_REQUEST)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	var patch model.DetailsPatch
	h.mutate(w, r, &patch, http.StatusOK, func(_ *sessionModel.Session, state *model.QuestionnaireState) (interface{}, error) {
		return h.service.UpdateDetails(state, index, patch)
	})
}

// AddCustomCategory handles POST /questionnaire/purposes/{index}/custom-categories
func (h *QuestionnaireHandler) AddCustomCategory(w http.ResponseWriter, r *http.Request) {

	index, err := utils.PathIndex(r, "index", errors.BAD_REQUEST)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	var request model.CustomCategoryRequest
	h.mutate(w, r, &request, http.StatusCreated, func(_ *sessionModel.Session, state *model.QuestionnaireState) (interface{}, error) {
		if err := h.service.AddCustomCategory(state, index, request.Name); err != nil {
			return nil, err
		}
		return state.Purposes[index].Clone(), nil
	})
}

// RemoveCustomCategory handles DELETE /questionnaire/purposes/{index}/custom-categories/{position}
func (h *QuestionnaireHandler) RemoveCustomCategory(w http.ResponseWriter, r *http.Request) {

	index, err := utils.PathIndex(r, "index", errors.BAD_REQUEST)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	position, err := utils.PathIndex(r, "position", errors.BAD_REQUEST)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.mutate(w, r, nil, http.StatusOK, func(_ *sessionModel.Session, state *model.QuestionnaireState) (interface{}, error) {
		if err := h.service.RemoveCustomCategory(state, index, position); err != nil {
			return nil, err
		}
		return state.Purposes[index].Clone(), nil
	})
}

// SaveProgress handles POST /questionnaire/save
func (h *QuestionnaireHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {

	session, err := security.AuthenticateSession(r, h.sessions)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	state := session.Snapshot()
	if err := h.progress.Save(r.Context(), session.Organization, state.Snapshot()); err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   session.Organization,
		InitiatorType: log.InitiatorTypeOrganization,
		TargetID:      progressService.SanitizePartitionName(session.Organization),
		TargetType:    log.TargetTypeProgress,
		ActionID:      log.ActionSaveProgress,
	})
	utils.WriteJSONResponse(w, http.StatusOK, SaveResult{
		Organization: session.Organization,
		Partition:    progressService.SanitizePartitionName(session.Organization),
		SavedKeys:    state.PresentKeys(),
	})
}

// mutate authenticates the request, decodes the body into target when given and applies fn to
// the session state under the session lock.
func (h *QuestionnaireHandler) mutate(w http.ResponseWriter, r *http.Request, target interface{}, status int,
	fn func(session *sessionModel.Session, state *model.QuestionnaireState) (interface{}, error)) {

	session, err := security.AuthenticateSession(r, h.sessions)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if target != nil {
		if err := utils.DecodeJSONBody(r, target, errors.BAD_REQUEST, "questionnaire"); err != nil {
			utils.HandleError(w, err)
			return
		}
	}
	var response interface{}
	err = session.Update(func(state *model.QuestionnaireState) error {
		var err error
		response, err = fn(session, state)
		return err
	})
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, status, response)
}

func auditPurpose(session *sessionModel.Session, action, title string, index int) {
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   session.Organization,
		InitiatorType: log.InitiatorTypeOrganization,
		TargetID:      session.ID,
		TargetType:    log.TargetTypeQuestionnaire,
		ActionID:      action,
		Data:          map[string]interface{}{"title": title, "index": index},
	})
}
