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


package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/gdpr-notice-generator/internal/health_check/handler"
	"github.com/wso2/gdpr-notice-generator/internal/health_check/provider"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	"github.com/wso2/gdpr-notice-generator/internal/system/metrics"
)

// HealthService serves liveness, readiness and the prometheus metrics.
type HealthService struct {
	handler *handler.HealthHandler
}

// NewHealthService creates a new HealthService instance.
func NewHealthService(mux *http.ServeMux, apiBasePath string) *HealthService {
	instance := &HealthService{
		handler: handler.NewHealthHandler(provider.NewHealthCheckProvider().GetHealthCheckService()),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *HealthService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s%s", apiBasePath, constants.HealthApiPath), s.handler.HandleHealth)
	mux.HandleFunc(fmt.Sprintf("GET %s%s", apiBasePath, constants.ReadyApiPath), s.handler.HandleReadiness)
	mux.Handle(fmt.Sprintf("GET %s", constants.MetricsApiPath), metrics.Handler())
}
