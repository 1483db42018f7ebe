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
	"sync"

	"github.com/wso2/gdpr-notice-generator/internal/session/service"
	"github.com/wso2/gdpr-notice-generator/internal/session/store"
	"github.com/wso2/gdpr-notice-generator/internal/system/authn"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

var (
	sessionService *service.SessionService
	sessionOnce    sync.Once
)

// SessionProviderInterface defines the interface for the session provider.
type SessionProviderInterface interface {
	GetSessionService() service.SessionServiceInterface
}

// SessionProvider is the default implementation of the SessionProviderInterface.
type SessionProvider struct{}

// NewSessionProvider creates a new instance of SessionProvider.
func NewSessionProvider() SessionProviderInterface {
	return &SessionProvider{}
}

// GetSessionService returns the process wide session service.
func (sp *SessionProvider) GetSessionService() service.SessionServiceInterface {

	sessionOnce.Do(func() {
		tokens, err := authn.NewTokenIssuer(config.GetRuntime().Config.Session)
		if err != nil {
			log.GetLogger().Fatal("Failed to initialize the session token issuer", log.Error(err))
		}
		sessionService = service.NewSessionService(store.NewSessionStore(tokens.TTL()), tokens)
	})
	return sessionService
}
