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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/session/store"
	"github.com/wso2/gdpr-notice-generator/internal/system/authn"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
)

func newTestSessionService(t *testing.T, now func() time.Time) *SessionService {
	t.Helper()
	tokens, err := authn.NewTokenIssuer(config.SessionConfig{SigningKey: "k", Issuer: "test", TTLMinutes: 60})
	require.NoError(t, err)
	tokens.WithClock(now)
	sessions := store.NewSessionStore(tokens.TTL()).WithClock(now)
	svc := NewSessionService(sessions, tokens)
	svc.now = now
	return svc
}

func TestOpenAndResume(t *testing.T) {
	svc := newTestSessionService(t, time.Now)

	opened, token, _, err := svc.Open("Acme Corp")
	require.NoError(t, err)
	require.NoError(t, opened.Update(func(state *questionnaire.QuestionnaireState) error {
		state.CompanyName = "Acme Corp"
		return nil
	}))

	resumed, err := svc.Resume(token)
	require.NoError(t, err)
	assert.Same(t, opened, resumed)
	assert.Equal(t, "Acme Corp", resumed.Snapshot().CompanyName)
}

func TestResume_AfterClose(t *testing.T) {
	svc := newTestSessionService(t, time.Now)
	opened, token, _, err := svc.Open("Acme Corp")
	require.NoError(t, err)

	svc.Close(opened.ID)
	_, err = svc.Resume(token)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.SESSION_NOT_FOUND.Code, clientErr.Code)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}

func TestResume_Expired(t *testing.T) {
	now := time.Now()
	svc := newTestSessionService(t, func() time.Time { return now })
	_, token, _, err := svc.Open("Acme Corp")
	require.NoError(t, err)

	now = now.Add(61 * time.Minute)
	_, err = svc.Resume(token)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors2.UN_AUTHORIZED.Code, clientErr.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := newTestSessionService(t, time.Now)
	a, _, _, err := svc.Open("Acme Corp")
	require.NoError(t, err)
	b, _, _, err := svc.Open("Acme Corp")
	require.NoError(t, err)

	require.NoError(t, a.Update(func(state *questionnaire.QuestionnaireState) error {
		state.Activities = "Retail"
		return nil
	}))
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "", b.Snapshot().Activities)
}

func TestRefresh_ExtendsLifetime(t *testing.T) {
	now := time.Now()
	svc := newTestSessionService(t, func() time.Time { return now })
	opened, _, _, err := svc.Open("Acme Corp")
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	token, expiresAt, err := svc.Refresh(opened)
	require.NoError(t, err)
	assert.Equal(t, now.Add(60*time.Minute).Unix(), expiresAt.Unix())

	now = now.Add(50 * time.Minute)
	resumed, err := svc.Resume(token)
	require.NoError(t, err)
	assert.Same(t, opened, resumed)
}
