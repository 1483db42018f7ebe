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

import "fmt"

const (
	defaultCount = 20
	maxCount     = 200
)

// NormalizeCount applies the default page size to an unset count and caps large ones.
func NormalizeCount(v int) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("invalid count")
	}
	if v == 0 {
		return defaultCount, nil
	}
	if v > maxCount {
		v = maxCount
	}
	return v, nil
}
