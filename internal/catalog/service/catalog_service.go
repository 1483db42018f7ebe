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

package service

import (
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/catalog/model"
)

// CatalogServiceInterface defines the read-only operations over the category catalog.
type CatalogServiceInterface interface {
	GetCatalog() model.Catalog
	Names() []string
	Resolve(name string) (string, bool)
	Describe(name string) string
}

// CatalogService is the default implementation of CatalogServiceInterface.
type CatalogService struct {
	catalog      model.Catalog
	descriptions map[string]string
	canonical    map[string]string
}

// NewCatalogService indexes the given catalog.
func NewCatalogService(catalog model.Catalog) *CatalogService {

	s := &CatalogService{
		catalog:      catalog,
		descriptions: make(map[string]string, len(catalog.Categories)),
		canonical:    make(map[string]string, len(catalog.Categories)),
	}
	for _, category := range catalog.Categories {
		s.descriptions[category.Name] = category.Description
		s.canonical[category.Name] = category.Name
	}
	// Aliases never shadow a current name.
	for _, category := range catalog.Categories {
		for _, alias := range category.Aliases {
			if _, taken := s.canonical[alias]; !taken {
				s.canonical[alias] = category.Name
			}
		}
	}
	return s
}

// GetCatalog returns a copy of the catalog.
func (s *CatalogService) GetCatalog() model.Catalog {
	categories := make([]model.Category, len(s.catalog.Categories))
	copy(categories, s.catalog.Categories)
	return model.Catalog{Version: s.catalog.Version, Categories: categories}
}

// Names returns the category names in catalog order.
func (s *CatalogService) Names() []string {
	names := make([]string, 0, len(s.catalog.Categories))
	for _, category := range s.catalog.Categories {
		names = append(names, category.Name)
	}
	return names
}

// Resolve maps a current or legacy category name onto its current name.
func (s *CatalogService) Resolve(name string) (string, bool) {
	canonical, ok := s.canonical[strings.TrimSpace(name)]
	return canonical, ok
}

// Describe returns what a category covers. Names outside the catalog, such as custom
// categories, describe themselves.
func (s *CatalogService) Describe(name string) string {
	if canonical, ok := s.Resolve(name); ok {
		return s.descriptions[canonical]
	}
	return name
}
