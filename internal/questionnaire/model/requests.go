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

type GeneralInfo struct {
	CompanyName     string `json:"company_name"`
	SubjectCategory string `json:"subject_cat"`
	Activities      string `json:"activities"`
}

type PurposeRequest struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
}

type CustomCategoryRequest struct {
	Name string `json:"name"`
}

// DetailsPatch carries a partial update of a purpose detail. Nil fields are left unchanged.
type DetailsPatch struct {
	Categories             *[]string       `json:"categories,omitempty"`
	DirectPerCategory      map[string]bool `json:"direct_per_cat,omitempty"`
	IndirectSource         *string         `json:"indirect_source,omitempty"`
	SharedWithThirdParties *bool           `json:"shared_with_third_parties,omitempty"`
	Recipients             *string         `json:"recipients,omitempty"`
	Retention              *string         `json:"retention,omitempty"`
	InternationalTransfers *bool           `json:"international_transfers,omitempty"`
}
