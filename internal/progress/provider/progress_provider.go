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


package provider

import (
	"context"
	"sync"

	"github.com/wso2/gdpr-notice-generator/internal/progress/service"
	"github.com/wso2/gdpr-notice-generator/internal/progress/store"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

var (
	progressStore store.ProgressStoreInterface
	progressOnce  sync.Once
)

// ProgressProviderInterface defines the interface for the progress provider.
type ProgressProviderInterface interface {
	GetProgressService() service.ProgressServiceInterface
	Close(ctx context.Context) error
}

// ProgressProvider is the default implementation of the ProgressProviderInterface.
type ProgressProvider struct{}

// NewProgressProvider creates a new instance of ProgressProvider.
func NewProgressProvider() ProgressProviderInterface {
	return &ProgressProvider{}
}

// GetProgressService returns a service over the configured backend, opening it on first use.
func (pp *ProgressProvider) GetProgressService() service.ProgressServiceInterface {

	progressOnce.Do(func() {
		runtime := config.GetRuntime()
		var err error
		progressStore, err = store.OpenProgressStore(context.Background(), runtime.Home, runtime.Config)
		if err != nil {
			log.GetLogger().Fatal("Failed to open the progress store",
				log.String("driver", runtime.Config.Persistence.Driver), log.Error(err))
		}
		log.GetLogger().Info("Progress store is ready", log.String("driver", progressStore.Driver()))
	})
	return service.NewProgressService(progressStore)
}

// Close releases the backend if it was opened.
func (pp *ProgressProvider) Close(ctx context.Context) error {
	if progressStore == nil {
		return nil
	}
	return progressStore.Close(ctx)
}
