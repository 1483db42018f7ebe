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

package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
)

func newIssuer(t *testing.T, key string) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(config.SessionConfig{SigningKey: key, Issuer: "gdpr-notice-generator", TTLMinutes: 30})
	require.NoError(t, err)
	return issuer
}

func TestIssueAndValidate(t *testing.T) {
	issuer := newIssuer(t, "secret")

	token, expiresAt, err := issuer.Issue("session-1", "Acme Corp")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.Subject)
	assert.Equal(t, "Acme Corp", claims.Organization)
}

func TestValidate_Expired(t *testing.T) {
	now := time.Now()
	issuer := newIssuer(t, "secret").WithClock(func() time.Time { return now })
	token, _, err := issuer.Issue("session-1", "Acme Corp")
	require.NoError(t, err)

	now = now.Add(31 * time.Minute)
	_, err = issuer.Validate(token)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}

func TestValidate_WrongKeyOrIssuer(t *testing.T) {
	token, _, err := newIssuer(t, "secret").Issue("session-1", "Acme Corp")
	require.NoError(t, err)

	_, err = newIssuer(t, "other").Validate(token)
	assert.Error(t, err)

	other, err := NewTokenIssuer(config.SessionConfig{SigningKey: "secret", Issuer: "someone-else", TTLMinutes: 30})
	require.NoError(t, err)
	_, err = other.Validate(token)
	assert.Error(t, err)

	_, err = newIssuer(t, "secret").Validate("not-a-token")
	assert.Error(t, err)
}

func TestEphemeralKey(t *testing.T) {
	a := newIssuer(t, "")
	b := newIssuer(t, "")
	token, _, err := a.Issue("session-1", "Acme Corp")
	require.NoError(t, err)

	_, err = a.Validate(token)
	assert.NoError(t, err)
	_, err = b.Validate(token)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := BearerToken(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Basic abc")
	_, ok = BearerToken(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	token, ok := BearerToken(r)
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)
}
