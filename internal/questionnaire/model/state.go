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
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

// QuestionnaireState is everything a company has answered so far.
// Only keys marked present are persisted and protected from being overwritten by a restore.
type QuestionnaireState struct {
	CompanyName     string    `json:"company_name"`
	SubjectCategory string    `json:"subject_cat"`
	Activities      string    `json:"activities"`
	Purposes        []Purpose `json:"purposes"`

	present map[string]bool
}

var stateKeys = []string{
	constants.StateKeyCompanyName,
	constants.StateKeySubjectCategory,
	constants.StateKeyActivities,
	constants.StateKeyPurposes,
}

func NewQuestionnaireState() *QuestionnaireState {
	return &QuestionnaireState{
		Purposes: []Purpose{},
		present:  map[string]bool{},
	}
}

// MarkPresent records that the given top level keys hold a value.
func (s *QuestionnaireState) MarkPresent(keys ...string) {
	if s.present == nil {
		s.present = map[string]bool{}
	}
	for _, key := range keys {
		s.present[key] = true
	}
}

func (s *QuestionnaireState) IsPresent(key string) bool {
	return s.present[key]
}

// PresentKeys returns the present top level keys in a stable order.
func (s *QuestionnaireState) PresentKeys() []string {
	keys := make([]string, 0, len(s.present))
	for _, key := range stateKeys {
		if s.present[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

// Clone returns a deep copy including presence information.
func (s *QuestionnaireState) Clone() *QuestionnaireState {
	clone := &QuestionnaireState{
		CompanyName:     s.CompanyName,
		SubjectCategory: s.SubjectCategory,
		Activities:      s.Activities,
		Purposes:        make([]Purpose, 0, len(s.Purposes)),
		present:         make(map[string]bool, len(s.present)),
	}
	for _, purpose := range s.Purposes {
		clone.Purposes = append(clone.Purposes, purpose.Clone())
	}
	for key, ok := range s.present {
		clone.present[key] = ok
	}
	return clone
}

// Snapshot returns the persistable mapping of all present keys.
func (s *QuestionnaireState) Snapshot() map[string]interface{} {
	snapshot := map[string]interface{}{}
	for _, key := range s.PresentKeys() {
		switch key {
		case constants.StateKeyCompanyName:
			snapshot[key] = s.CompanyName
		case constants.StateKeySubjectCategory:
			snapshot[key] = s.SubjectCategory
		case constants.StateKeyActivities:
			snapshot[key] = s.Activities
		case constants.StateKeyPurposes:
			purposes := make([]Purpose, 0, len(s.Purposes))
			for _, purpose := range s.Purposes {
				purposes = append(purposes, purpose.Clone())
			}
			snapshot[key] = purposes
		}
	}
	return snapshot
}

// Restore merges a saved mapping into the state. Keys already present are never overwritten.
// Values of an unexpected shape are replaced by their defaults. It returns the restored keys.
func (s *QuestionnaireState) Restore(saved map[string]json.RawMessage) []string {
	var restored []string
	for _, key := range stateKeys {
		raw, ok := saved[key]
		if !ok || s.IsPresent(key) {
			continue
		}
		switch key {
		case constants.StateKeyCompanyName:
			s.CompanyName = decodeString(raw, "")
		case constants.StateKeySubjectCategory:
			s.SubjectCategory = decodeString(raw, "")
		case constants.StateKeyActivities:
			s.Activities = decodeString(raw, "")
		case constants.StateKeyPurposes:
			s.Purposes = decodePurposes(raw)
			applyLegacyExtraCategories(s.Purposes, saved)
		}
		s.MarkPresent(key)
		restored = append(restored, key)
	}
	return restored
}

// applyLegacyExtraCategories fills custom categories kept under "extra_cats_<i>" by older saves.
func applyLegacyExtraCategories(purposes []Purpose, saved map[string]json.RawMessage) {
	var legacyKeys []string
	for key := range saved {
		if strings.HasPrefix(key, constants.LegacyExtraCategoriesKeyPrefix) {
			legacyKeys = append(legacyKeys, key)
		}
	}
	sort.Strings(legacyKeys)
	for _, key := range legacyKeys {
		index, err := strconv.Atoi(strings.TrimPrefix(key, constants.LegacyExtraCategoriesKeyPrefix))
		if err != nil || index < 0 || index >= len(purposes) {
			continue
		}
		detail := &purposes[index].Details
		if len(detail.ExtraCategories) > 0 {
			continue
		}
		detail.ExtraCategories = decodeStrings(saved[key])
		if detail.Comment == "" {
			detail.RefreshComment()
		}
	}
}

func decodePurposes(raw json.RawMessage) []Purpose {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Purpose{}
	}
	purposes := make([]Purpose, 0, len(items))
	for _, item := range items {
		fields, ok := decodeObject(item)
		if !ok {
			continue
		}
		purposes = append(purposes, Purpose{
			Title:       decodeString(fields["title"], ""),
			Description: decodeString(fields["desc"], ""),
			Details:     decodeDetail(fields["details"]),
		})
	}
	return purposes
}

func decodeDetail(raw json.RawMessage) Detail {
	detail := NewDetail()
	fields, ok := decodeObject(raw)
	if !ok {
		return detail
	}
	detail.Categories = decodeStrings(fields["categories"])
	detail.ExtraCategories = decodeStrings(fields["extra_cats"])
	detail.Comment = decodeString(fields["comment"], "")
	detail.DirectPerCategory = decodeFlags(fields["direct_per_cat"])
	detail.IndirectSource = decodeString(fields["indirect_source"], "")
	detail.Shared = decodeString(fields["shared"], constants.SharingInternalOnly)
	detail.Retention = decodeString(fields["retention"], "")
	detail.Transfers = decodeString(fields["transfers"], constants.TransfersNone)
	if len(detail.ExtraCategories) == 0 && detail.Comment != "" {
		detail.ExtraCategories = splitComment(detail.Comment)
	}
	return detail
}

func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// decodeString reads a JSON string. Absent, null and non-string values give the fallback.
func decodeString(raw json.RawMessage, fallback string) string {
	if trimmed := strings.TrimSpace(string(raw)); trimmed == "" || trimmed == "null" {
		return fallback
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// decodeStrings keeps the string elements of a JSON array and drops everything else.
func decodeStrings(raw json.RawMessage) []string {
	values := []string{}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return values
	}
	for _, item := range items {
		var value string
		if err := json.Unmarshal(item, &value); err == nil && strings.TrimSpace(value) != "" {
			values = append(values, value)
		}
	}
	return values
}

func decodeFlags(raw json.RawMessage) map[string]bool {
	flags := map[string]bool{}
	fields, ok := decodeObject(raw)
	if !ok {
		return flags
	}
	for category, value := range fields {
		var flag bool
		if err := json.Unmarshal(value, &flag); err == nil {
			flags[category] = flag
		}
	}
	return flags
}

func splitComment(comment string) []string {
	values := []string{}
	for _, part := range strings.Split(comment, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
