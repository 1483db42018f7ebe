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


package pagination

import "sort"

// Paginate orders items newest first, ties broken by key, and returns the page after the cursor.
func Paginate[T any](items []T, count int, cursor string, cursorOf func(T) Cursor) ([]T, Pagination, error) {

	pageSize, err := NormalizeCount(count)
	if err != nil {
		return nil, Pagination{}, err
	}
	after, err := DecodeCursor(cursor)
	if err != nil {
		return nil, Pagination{}, err
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return precedes(cursorOf(sorted[i]), cursorOf(sorted[j]))
	})

	start := 0
	if after != nil {
		start = sort.Search(len(sorted), func(i int) bool {
			return precedes(*after, cursorOf(sorted[i]))
		})
	}
	end := start + pageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	page := sorted[start:end]
	result := Pagination{Count: len(page), PageSize: pageSize}
	if end < len(sorted) && len(page) > 0 {
		result.NextCursor = EncodeCursor(cursorOf(page[len(page)-1]))
	}
	return page, result, nil
}

func precedes(a, b Cursor) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.Key < b.Key
}
