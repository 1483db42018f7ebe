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
	"mime"
	"net/http"

	"github.com/wso2/gdpr-notice-generator/internal/export/service"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/security"
	"github.com/wso2/gdpr-notice-generator/internal/system/utils"
)

type ExportHandler struct {
	sessions security.SessionResolver
	service  service.ExportServiceInterface
}

func NewExportHandler(sessions security.SessionResolver, exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{sessions: sessions, service: exportService}
}

// GetExport handles GET /export?format=xlsx|csv|json&sheet=processing|company
func (h *ExportHandler) GetExport(w http.ResponseWriter, r *http.Request) {

	session, err := security.AuthenticateSession(r, h.sessions)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	query := r.URL.Query()
	file, err := h.service.Render(session.Snapshot(), session.Organization, query.Get("format"), query.Get("sheet"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   session.Organization,
		InitiatorType: log.InitiatorTypeOrganization,
		TargetID:      file.Name,
		TargetType:    log.TargetTypeExport,
		ActionID:      log.ActionGenerateExport,
	})
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", contentDisposition(file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

// contentDisposition formats an attachment header per RFC 6266. Non-ASCII names are carried in
// the RFC 2231 extended form.
func contentDisposition(fileName string) string {
	if value := mime.FormatMediaType("attachment", map[string]string{"filename": fileName}); value != "" {
		return value
	}
	return "attachment"
}
