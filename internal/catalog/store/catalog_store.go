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

package store

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/catalog/model"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"gopkg.in/yaml.v2"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// LoadDefaultCatalog returns the catalog bundled with the binary.
func LoadDefaultCatalog() (*model.Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog from the given YAML file. An empty path selects the bundled catalog.
func LoadCatalog(path string) (*model.Catalog, error) {

	logger := log.GetLogger()
	if strings.TrimSpace(path) == "" {
		logger.Debug("No catalog file configured, using the bundled catalog")
		return LoadDefaultCatalog()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to read category catalog file: %s", path)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.WithDescription(errors2.LOAD_CATALOG, errorMsg), err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog parses and validates a YAML catalog.
func ParseCatalog(raw []byte) (*model.Catalog, error) {

	var catalog model.Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, errors2.NewServerError(errors2.WithDescription(errors2.LOAD_CATALOG,
			"Category catalog is not valid YAML."), err)
	}

	seen := make(map[string]bool, len(catalog.Categories))
	for _, category := range catalog.Categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			return nil, errors2.NewServerError(errors2.WithDescription(errors2.LOAD_CATALOG,
				"Category catalog contains an entry without a name."), nil)
		}
		if seen[name] {
			return nil, errors2.NewServerError(errors2.WithDescription(errors2.LOAD_CATALOG,
				fmt.Sprintf("Category catalog lists %q more than once.", name)), nil)
		}
		seen[name] = true
	}
	log.GetLogger().Debug("Loaded category catalog", log.String("version", catalog.Version),
		log.Int("categories", len(catalog.Categories)))
	return &catalog, nil
}
