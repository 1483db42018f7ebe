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

import "time"

type UnlockRequest struct {
	AccessCode string `json:"access_code"`
}

// UnlockResult is returned to the client after a successful unlock.
type UnlockResult struct {
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
	Organization   string    `json:"organization"`
	ProgressLoaded bool      `json:"progress_loaded"`
	RestoredKeys   []string  `json:"restored_keys"`
	LoadWarning    string    `json:"load_warning,omitempty"`
}
