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

	"github.com/wso2/gdpr-notice-generator/internal/organization/model"
	"github.com/wso2/gdpr-notice-generator/internal/organization/service"
	"github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/security"
	"github.com/wso2/gdpr-notice-generator/internal/system/utils"
)

type OrganizationHandler struct {
	sessions security.SessionResolver
	service  service.OrganizationServiceInterface
}

func NewOrganizationHandler(sessions security.SessionResolver,
	organizationService service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{sessions: sessions, service: organizationService}
}

// Unlock handles POST /sessions. A request that already carries a session token of the same
// organization keeps its session.
func (h *OrganizationHandler) Unlock(w http.ResponseWriter, r *http.Request) {

	var request model.UnlockRequest
	if err := utils.DecodeJSONBody(r, &request, errors.BAD_REQUEST, "unlock request"); err != nil {
		utils.HandleError(w, err)
		return
	}
	existing := security.OptionalSession(r, h.sessions)
	result, err := h.service.Unlock(r.Context(), request.AccessCode, existing)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	status := http.StatusCreated
	if existing != nil && existing.Organization == result.Organization {
		status = http.StatusOK
	}
	utils.WriteJSONResponse(w, status, result)
}

// Reset handles DELETE /sessions/current
func (h *OrganizationHandler) Reset(w http.ResponseWriter, r *http.Request) {

	session, err := security.AuthenticateSession(r, h.sessions)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	h.service.Reset(r.Context(), session)
	w.WriteHeader(http.StatusNoContent)
}
