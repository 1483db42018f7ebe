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


package security

import (
	"net/http"

	"github.com/wso2/gdpr-notice-generator/internal/session/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/authn"
	systemContext "github.com/wso2/gdpr-notice-generator/internal/system/context"
	"github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

const TraceIDHeader = "X-Trace-Id"

// SessionResolver resolves the session a bearer token was issued for.
type SessionResolver interface {
	Resume(token string) (*model.Session, error)
}

// AuthenticateSession performs authentication for the given HTTP request and returns the
// unlocked session it belongs to.
func AuthenticateSession(r *http.Request, sessions SessionResolver) (*model.Session, error) {

	token, ok := authn.BearerToken(r)
	if !ok {
		return nil, errors.NewClientError(errors.WithDescription(errors.UN_AUTHORIZED,
			"Missing or invalid Authorization header"), http.StatusUnauthorized)
	}
	session, err := sessions.Resume(token)
	if err != nil {
		log.GetLogger().Debug("Rejected request with an unknown session.",
			log.String("traceId", systemContext.GetTraceID(r.Context())))
		return nil, err
	}
	return session, nil
}

// OptionalSession returns the session behind the request's bearer token, or nil when the request
// carries no usable token.
func OptionalSession(r *http.Request, sessions SessionResolver) *model.Session {
	if _, ok := authn.BearerToken(r); !ok {
		return nil
	}
	session, err := AuthenticateSession(r, sessions)
	if err != nil {
		return nil
	}
	return session
}

// WithTrace attaches a trace ID to every request, reusing a well-formed X-Trace-Id from the caller.
func WithTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := systemContext.ResolveTraceID(r.Header.Get(TraceIDHeader))
		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(systemContext.WithTraceID(r.Context(), traceID)))
	})
}
