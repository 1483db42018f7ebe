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

package provider

import (
	catalogProvider "github.com/wso2/gdpr-notice-generator/internal/catalog/provider"
	"github.com/wso2/gdpr-notice-generator/internal/questionnaire/service"
)

// QuestionnaireProviderInterface defines the interface for the questionnaire provider.
type QuestionnaireProviderInterface interface {
	GetQuestionnaireService() service.QuestionnaireServiceInterface
}

// QuestionnaireProvider is the default implementation of the QuestionnaireProviderInterface.
type QuestionnaireProvider struct{}

// NewQuestionnaireProvider creates a new instance of QuestionnaireProvider.
func NewQuestionnaireProvider() QuestionnaireProviderInterface {
	return &QuestionnaireProvider{}
}

// GetQuestionnaireService returns an editor bound to the configured category catalog.
func (qp *QuestionnaireProvider) GetQuestionnaireService() service.QuestionnaireServiceInterface {
	return service.NewQuestionnaireService(catalogProvider.NewCatalogProvider().GetCatalogService())
}
