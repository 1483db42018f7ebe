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
	"sync"

	"github.com/wso2/gdpr-notice-generator/internal/organization/service"
	progressProvider "github.com/wso2/gdpr-notice-generator/internal/progress/provider"
	sessionProvider "github.com/wso2/gdpr-notice-generator/internal/session/provider"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

var (
	organizationService *service.OrganizationService
	organizationOnce    sync.Once
)

// OrganizationProviderInterface defines the interface for the organization provider.
type OrganizationProviderInterface interface {
	GetOrganizationService() service.OrganizationServiceInterface
}

// OrganizationProvider is the default implementation of the OrganizationProviderInterface.
type OrganizationProvider struct{}

// NewOrganizationProvider creates a new instance of OrganizationProvider.
func NewOrganizationProvider() OrganizationProviderInterface {
	return &OrganizationProvider{}
}

// GetOrganizationService returns the access gate over the configured organization directory.
func (op *OrganizationProvider) GetOrganizationService() service.OrganizationServiceInterface {

	organizationOnce.Do(func() {
		directory := config.GetRuntime().Config.Organizations
		if len(directory) == 0 {
			log.GetLogger().Warn("No organizations are configured, every access code will be rejected.")
		}
		organizationService = service.NewOrganizationService(directory,
			sessionProvider.NewSessionProvider().GetSessionService(),
			progressProvider.NewProgressProvider().GetProgressService())
	})
	return organizationService
}
