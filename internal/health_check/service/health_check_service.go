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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

const readinessTimeout = 3 * time.Second

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	progress Pinger
}

// NewHealthCheckService returns a readiness check over the progress backend.
func NewHealthCheckService(progress Pinger) HealthCheckServiceInterface {
	return &HealthCheckService{progress: progress}
}

func (h *HealthCheckService) CheckReadiness(ctx context.Context) error {
	logger := log.GetLogger()
	if logger == nil {
		return errors.New("logger not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	if err := h.progress.Ping(ctx); err != nil {
		return fmt.Errorf("progress store connectivity check failed: %v", err)
	}
	return nil
}
