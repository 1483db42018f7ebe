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

package model

// Category is a standard data category that a purpose may process.
type Category struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"` // Names used by earlier catalog versions
}

// Catalog is the versioned, read-only table of standard data categories.
type Catalog struct {
	Version    string     `json:"version" yaml:"version"`
	Categories []Category `json:"categories" yaml:"categories"`
}
