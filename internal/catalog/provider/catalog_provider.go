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
	"path/filepath"
	"sync"

	"github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	"github.com/wso2/gdpr-notice-generator/internal/catalog/store"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

var (
	catalogService *service.CatalogService
	catalogOnce    sync.Once
)

// CatalogProviderInterface defines the interface for the catalog provider.
type CatalogProviderInterface interface {
	GetCatalogService() service.CatalogServiceInterface
}

// CatalogProvider is the default implementation of the CatalogProviderInterface.
type CatalogProvider struct{}

// NewCatalogProvider creates a new instance of CatalogProvider.
func NewCatalogProvider() CatalogProviderInterface {
	return &CatalogProvider{}
}

// GetCatalogService returns the catalog service, loading the configured catalog on first use.
// A catalog file that cannot be read falls back to the bundled catalog.
func (cp *CatalogProvider) GetCatalogService() service.CatalogServiceInterface {

	catalogOnce.Do(func() {
		runtime := config.GetRuntime()
		path := runtime.Config.Catalog.File
		if path != "" && !filepath.IsAbs(path) && runtime.Home != "" {
			path = filepath.Join(runtime.Home, path)
		}

		logger := log.GetLogger()
		catalog, err := store.LoadCatalog(path)
		if err != nil {
			logger.Error("Failed to load the configured category catalog, using the bundled catalog",
				log.String("file", path), log.Error(err))
			catalog, err = store.LoadDefaultCatalog()
			if err != nil {
				logger.Fatal("Bundled category catalog is invalid", log.Error(err))
			}
		}
		catalogService = service.NewCatalogService(*catalog)
	})
	return catalogService
}
