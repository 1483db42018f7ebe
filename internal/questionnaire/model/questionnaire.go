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

import (
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

// Detail describes how the data of one purpose is collected, shared, kept and transferred.
type Detail struct {
	Categories        []string        `json:"categories"`      // Standard catalog categories
	ExtraCategories   []string        `json:"extra_cats"`      // Custom free-text categories
	Comment           string          `json:"comment"`         // Custom categories joined with ", "
	DirectPerCategory map[string]bool `json:"direct_per_cat"`  // Absent entries mean "collected directly"
	IndirectSource    string          `json:"indirect_source"` // One note shared by all indirect categories
	Shared            string          `json:"shared"`          // "Internal use only" or the named recipients
	Retention         string          `json:"retention"`
	Transfers         string          `json:"transfers"` // "No" or "Yes (Outside EU/UK)"
}

// Purpose is one purpose of processing.
type Purpose struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
	Details     Detail `json:"details"`
}

// NewDetail returns the detail a freshly added purpose starts with.
func NewDetail() Detail {
	return Detail{
		Categories:        []string{},
		ExtraCategories:   []string{},
		DirectPerCategory: map[string]bool{},
		Shared:            constants.SharingInternalOnly,
		Transfers:         constants.TransfersNone,
	}
}

// AllCategories returns the standard categories followed by the custom ones.
func (d Detail) AllCategories() []string {
	all := make([]string, 0, len(d.Categories)+len(d.ExtraCategories))
	all = append(all, d.Categories...)
	return append(all, d.ExtraCategories...)
}

// HasCategory reports whether the category is currently selected, standard or custom.
func (d Detail) HasCategory(name string) bool {
	for _, category := range d.AllCategories() {
		if category == name {
			return true
		}
	}
	return false
}

// IsDirect reports whether the category is collected directly from the data subject.
func (d Detail) IsDirect(category string) bool {
	direct, ok := d.DirectPerCategory[category]
	if !ok {
		return true
	}
	return direct
}

// SharedWithThirdParties reports whether data leaves the organization.
func (d Detail) SharedWithThirdParties() bool {
	shared := strings.TrimSpace(d.Shared)
	return shared != "" && shared != constants.SharingInternalOnly
}

// IsInternationalTransfer reports whether data is transferred outside the EU/UK.
func (d Detail) IsInternationalTransfer() bool {
	transfers := strings.TrimSpace(d.Transfers)
	return transfers != "" && transfers != constants.TransfersNone
}

// Clone returns a deep copy of the detail.
func (d Detail) Clone() Detail {
	clone := d
	clone.Categories = append([]string{}, d.Categories...)
	clone.ExtraCategories = append([]string{}, d.ExtraCategories...)
	clone.DirectPerCategory = make(map[string]bool, len(d.DirectPerCategory))
	for category, direct := range d.DirectPerCategory {
		clone.DirectPerCategory[category] = direct
	}
	return clone
}

// RefreshComment keeps the legacy comment field in step with the custom categories.
func (d *Detail) RefreshComment() {
	d.Comment = strings.Join(d.ExtraCategories, ", ")
}

// Clone returns a deep copy of the purpose.
func (p Purpose) Clone() Purpose {
	clone := p
	clone.Details = p.Details.Clone()
	return clone
}
