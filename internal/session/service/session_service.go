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
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/gdpr-notice-generator/internal/session/model"
	"github.com/wso2/gdpr-notice-generator/internal/session/store"
	"github.com/wso2/gdpr-notice-generator/internal/system/authn"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

// SessionServiceInterface defines the session lifecycle operations.
type SessionServiceInterface interface {
	Open(organization string) (*model.Session, string, time.Time, error)
	Resume(token string) (*model.Session, error)
	Refresh(session *model.Session) (string, time.Time, error)
	Close(sessionID string)
	PurgeExpired() int
}

// SessionService issues signed tokens for sessions held in a session store.
type SessionService struct {
	store  store.SessionStoreInterface
	tokens *authn.TokenIssuer
	now    func() time.Time
}

func NewSessionService(sessionStore store.SessionStoreInterface, tokens *authn.TokenIssuer) *SessionService {
	return &SessionService{store: sessionStore, tokens: tokens, now: time.Now}
}

// Open starts an empty session for the organization and returns it with its token and expiry.
func (ss *SessionService) Open(organization string) (*model.Session, string, time.Time, error) {

	session := model.NewSession(uuid.New().String(), organization, ss.now())
	token, expiresAt, err := ss.tokens.Issue(session.ID, organization)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	ss.store.Put(session)
	log.GetLogger().Debug("Session opened", log.String("sessionId", session.ID))
	return session, token, expiresAt, nil
}

// Resume returns the live session a token refers to.
func (ss *SessionService) Resume(token string) (*model.Session, error) {

	claims, err := ss.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	session, ok := ss.store.Get(claims.Subject)
	if !ok || session.Organization != claims.Organization {
		return nil, errors2.NewClientError(errors2.SESSION_NOT_FOUND, http.StatusUnauthorized)
	}
	return session, nil
}

// Refresh issues a new token for a live session and extends its lifetime to match.
func (ss *SessionService) Refresh(session *model.Session) (string, time.Time, error) {

	token, expiresAt, err := ss.tokens.Issue(session.ID, session.Organization)
	if err != nil {
		return "", time.Time{}, err
	}
	ss.store.Put(session)
	return token, expiresAt, nil
}

// Close discards a session and everything it holds.
func (ss *SessionService) Close(sessionID string) {
	ss.store.Delete(sessionID)
	log.GetLogger().Debug("Session closed", log.String("sessionId", sessionID))
}

// PurgeExpired drops sessions whose lifetime has ended and returns how many were dropped.
func (ss *SessionService) PurgeExpired() int {
	return ss.store.PurgeExpired()
}
