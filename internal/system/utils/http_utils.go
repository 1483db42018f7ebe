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

package utils

import (
	"encoding/json"
	"errors" // Standard Go errors package
	"fmt"
	"net/http"
	"strconv"

	customerrors "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	w.Header().Set("Content-Type", "application/json")
	if ok := errors.As(err, &clientError); ok {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			Code:        clientError.ErrorMessage.Code,
			Message:     clientError.ErrorMessage.Message,
			Description: clientError.ErrorMessage.Description,
		})
		return
	}

	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		logger := log.GetLogger()
		logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}{
			Code:    serverError.ErrorMessage.Code,
			Message: serverError.ErrorMessage.Message,
		})
		return
	}

	log.GetLogger().Error("Unhandled error", log.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteJSONResponse writes data as a JSON body with the given status.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSONBody decodes the request body into target, rejecting unknown fields. Decode failures are
// returned as a bad request client error carrying the given error message code.
func DecodeJSONBody(r *http.Request, target interface{}, msg customerrors.ErrorMessage, resourceName string) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return customerrors.NewClientError(customerrors.WithDescription(msg,
			HandleDecodeError(err, resourceName)), http.StatusBadRequest)
	}
	return nil
}

// PathIndex parses a zero based position from a path wildcard.
func PathIndex(r *http.Request, name string, msg customerrors.ErrorMessage) (int, error) {
	raw := r.PathValue(name)
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, customerrors.NewClientError(customerrors.WithDescription(msg,
			fmt.Sprintf("Path parameter '%s' must be a non-negative integer.", name)), http.StatusBadRequest)
	}
	return index, nil
}
