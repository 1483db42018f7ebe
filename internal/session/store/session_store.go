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


package store

import (
	"time"

	"github.com/wso2/gdpr-notice-generator/internal/session/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/cache"
)

// SessionStoreInterface keeps unlocked sessions by id.
type SessionStoreInterface interface {
	Put(session *model.Session)
	Get(id string) (*model.Session, bool)
	Delete(id string)
	PurgeExpired() int
}

// SessionStore keeps sessions in process memory for as long as their token is valid.
type SessionStore struct {
	sessions *cache.Cache[*model.Session]
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{sessions: cache.NewCache[*model.Session](ttl)}
}

// WithClock replaces the time source of the underlying cache.
func (ss *SessionStore) WithClock(now func() time.Time) *SessionStore {
	ss.sessions.WithClock(now)
	return ss
}

func (ss *SessionStore) Put(session *model.Session) {
	ss.sessions.Set(session.ID, session)
}

func (ss *SessionStore) Get(id string) (*model.Session, bool) {
	return ss.sessions.Get(id)
}

func (ss *SessionStore) Delete(id string) {
	ss.sessions.Delete(id)
}

func (ss *SessionStore) PurgeExpired() int {
	return ss.sessions.PurgeExpired()
}
