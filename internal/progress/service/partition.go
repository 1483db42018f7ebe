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
	"unicode/utf8"

	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

// SanitizePartitionName turns an organization name into a storage partition name: characters
// the backing store rejects become "-", surrounding single quotes are dropped and the result is
// cut to MaxPartitionNameLength characters.
func SanitizePartitionName(name string) string {
	safe := name
	for _, ch := range constants.IllegalPartitionCharacters {
		safe = strings.ReplaceAll(safe, ch, "-")
	}
	safe = strings.Trim(safe, "'")
	if utf8.RuneCountInString(safe) > constants.MaxPartitionNameLength {
		safe = string([]rune(safe)[:constants.MaxPartitionNameLength])
	}
	return safe
}
