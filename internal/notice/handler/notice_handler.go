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
	"fmt"
	"net/http"
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/notice/service"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	"github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/security"
	"github.com/wso2/gdpr-notice-generator/internal/system/utils"
)

type NoticeHandler struct {
	sessions security.SessionResolver
	service  service.NoticeServiceInterface
}

func NewNoticeHandler(sessions security.SessionResolver, noticeService service.NoticeServiceInterface) *NoticeHandler {
	return &NoticeHandler{sessions: sessions, service: noticeService}
}

// GetNotice handles GET /notice?format=json|markdown
func (h *NoticeHandler) GetNotice(w http.ResponseWriter, r *http.Request) {

	session, err := security.AuthenticateSession(r, h.sessions)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	notice := h.service.Render(session.Snapshot())

	switch format := strings.ToLower(r.URL.Query().Get("format")); format {
	case "", constants.FormatJSON:
		utils.WriteJSONResponse(w, http.StatusOK, notice)
	case constants.FormatMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(h.service.RenderMarkdown(notice)))
	default:
		utils.HandleError(w, errors.NewClientError(errors.WithDescription(errors.UNSUPPORTED_EXPORT_FORMAT,
			fmt.Sprintf("Format '%s' is not supported. Use json or markdown.", format)), http.StatusBadRequest))
	}
}
