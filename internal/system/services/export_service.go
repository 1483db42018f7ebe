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


package services

import (
	"fmt"
	"net/http"

	exportHandler "github.com/wso2/gdpr-notice-generator/internal/export/handler"
	exportProvider "github.com/wso2/gdpr-notice-generator/internal/export/provider"
	noticeHandler "github.com/wso2/gdpr-notice-generator/internal/notice/handler"
	noticeProvider "github.com/wso2/gdpr-notice-generator/internal/notice/provider"
	sessionProvider "github.com/wso2/gdpr-notice-generator/internal/session/provider"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

// ExportService serves the spreadsheet export and the rendered notice.
type ExportService struct {
	exportHandler *exportHandler.ExportHandler
	noticeHandler *noticeHandler.NoticeHandler
}

func NewExportService(mux *http.ServeMux, apiBasePath string) *ExportService {
	sessions := sessionProvider.NewSessionProvider().GetSessionService()
	instance := &ExportService{
		exportHandler: exportHandler.NewExportHandler(sessions, exportProvider.NewExportProvider().GetExportService()),
		noticeHandler: noticeHandler.NewNoticeHandler(sessions, noticeProvider.NewNoticeProvider().GetNoticeService()),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *ExportService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s%s", apiBasePath, constants.ExportApiPath), s.exportHandler.GetExport)
	mux.HandleFunc(fmt.Sprintf("GET %s%s", apiBasePath, constants.NoticeApiPath), s.noticeHandler.GetNotice)
}
