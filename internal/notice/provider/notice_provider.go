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
	"github.com/wso2/gdpr-notice-generator/internal/notice/service"
)

// NoticeProviderInterface defines the interface for the notice provider.
type NoticeProviderInterface interface {
	GetNoticeService() service.NoticeServiceInterface
}

// NoticeProvider is the default implementation of the NoticeProviderInterface.
type NoticeProvider struct{}

// NewNoticeProvider creates a new instance of NoticeProvider.
func NewNoticeProvider() NoticeProviderInterface {
	return &NoticeProvider{}
}

// GetNoticeService returns a renderer describing categories from the configured catalog.
func (np *NoticeProvider) GetNoticeService() service.NoticeServiceInterface {
	return service.NewNoticeService(catalogProvider.NewCatalogProvider().GetCatalogService())
}
