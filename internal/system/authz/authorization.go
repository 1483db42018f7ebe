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


package authz

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/system/authn"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/utils"
)

// ValidateAPIKey checks the presented key against every configured key in constant time.
// Blank configured keys are ignored.
func ValidateAPIKey(presented string, keys []string) bool {

	if presented == "" {
		return false
	}
	matched := false
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(presented)) == 1 {
			matched = true
		}
	}
	return matched
}

// Enabled reports whether at least one usable key is configured.
func Enabled(keys []string) bool {
	for _, key := range keys {
		if strings.TrimSpace(key) != "" {
			return true
		}
	}
	return false
}

// RequireAPIKey admits requests carrying a configured key as their bearer token. Without any
// configured key every request is admitted.
func RequireAPIKey(keys []string, next http.Handler) http.Handler {

	if !Enabled(keys) {
		log.GetLogger().Warn("No API keys configured, the endpoint is not protected.")
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := authn.BearerToken(r)
		if !ok || !ValidateAPIKey(token, keys) {
			log.GetLogger().Debug("Rejected request without a valid API key", log.String("path", r.URL.Path))
			utils.HandleError(w, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized))
			return
		}
		next.ServeHTTP(w, r)
	})
}
