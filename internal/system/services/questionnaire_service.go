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

	progressProvider "github.com/wso2/gdpr-notice-generator/internal/progress/provider"
	"github.com/wso2/gdpr-notice-generator/internal/questionnaire/handler"
	questionnaireProvider "github.com/wso2/gdpr-notice-generator/internal/questionnaire/provider"
	sessionProvider "github.com/wso2/gdpr-notice-generator/internal/session/provider"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

type QuestionnaireService struct {
	handler *handler.QuestionnaireHandler
}

func NewQuestionnaireService(mux *http.ServeMux, apiBasePath string) *QuestionnaireService {
	instance := &QuestionnaireService{
		handler: handler.NewQuestionnaireHandler(
			sessionProvider.NewSessionProvider().GetSessionService(),
			questionnaireProvider.NewQuestionnaireProvider().GetQuestionnaireService(),
			progressProvider.NewProgressProvider().GetProgressService()),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *QuestionnaireService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	base := apiBasePath + constants.QuestionnaireApiPath
	mux.HandleFunc(fmt.Sprintf("GET %s", base), s.handler.GetQuestionnaire)
	mux.HandleFunc(fmt.Sprintf("PUT %s/general", base), s.handler.UpdateGeneralInfo)
	mux.HandleFunc(fmt.Sprintf("POST %s/save", base), s.handler.SaveProgress)
	mux.HandleFunc(fmt.Sprintf("POST %s/purposes", base), s.handler.AddPurpose)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/purposes/{index}", base), s.handler.RemovePurpose)
	mux.HandleFunc(fmt.Sprintf("PATCH %s/purposes/{index}/details", base), s.handler.UpdateDetails)
	mux.HandleFunc(fmt.Sprintf("POST %s/purposes/{index}/custom-categories", base), s.handler.AddCustomCategory)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/purposes/{index}/custom-categories/{position}", base), s.handler.RemoveCustomCategory)
}
