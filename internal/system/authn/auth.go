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
	"crypto/rand"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	Organization string `json:"org"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 session tokens.
type TokenIssuer struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer builds an issuer from the session configuration. Without a configured signing
// key a random key is generated, so tokens do not survive a restart.
func NewTokenIssuer(cfg config.SessionConfig) (*TokenIssuer, error) {

	key := []byte(strings.TrimSpace(cfg.SigningKey))
	if len(key) == 0 {
		log.GetLogger().Warn("No session signing key configured, generating an ephemeral key.")
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, errors2.NewServerError(errors2.ISSUE_SESSION, err)
		}
	}
	return &TokenIssuer{
		key:    key,
		issuer: cfg.Issuer,
		ttl:    time.Duration(cfg.TTLMinutes) * time.Minute,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source used for issuing and validating tokens.
func (ti *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	ti.now = now
	return ti
}

func (ti *TokenIssuer) TTL() time.Duration {
	return ti.ttl
}

// Issue signs a token for the given session and organization.
func (ti *TokenIssuer) Issue(sessionID, organization string) (string, time.Time, error) {

	issuedAt := ti.now()
	expiresAt := issuedAt.Add(ti.ttl)
	claims := SessionClaims{
		Organization: organization,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    ti.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.key)
	if err != nil {
		return "", time.Time{}, errors2.NewServerError(errors2.ISSUE_SESSION, err)
	}
	return signed, expiresAt, nil
}

// Validate verifies the signature, issuer and expiry of a token and returns its claims.
func (ti *TokenIssuer) Validate(token string) (*SessionClaims, error) {

	logger := log.GetLogger()
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ti.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil || !parsed.Valid {
		logger.Debug("Session token rejected.", log.Error(err))
		return nil, unauthorizedError()
	}
	if claims.Subject == "" || claims.Organization == "" {
		logger.Debug("Session token is missing the subject or organization claim.")
		return nil, unauthorizedError()
	}
	return claims, nil
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized)
}
