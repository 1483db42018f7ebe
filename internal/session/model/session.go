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

package model

import (
	"sync"
	"time"

	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
)

// Session is an unlocked questionnaire session. It exclusively owns its questionnaire state.
type Session struct {
	ID           string
	Organization string
	CreatedAt    time.Time

	mu    sync.Mutex
	state *questionnaire.QuestionnaireState
}

func NewSession(id, organization string, createdAt time.Time) *Session {
	return &Session{
		ID:           id,
		Organization: organization,
		CreatedAt:    createdAt,
		state:        questionnaire.NewQuestionnaireState(),
	}
}

// Update runs fn with exclusive access to the session state.
func (s *Session) Update(fn func(state *questionnaire.QuestionnaireState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() *questionnaire.QuestionnaireState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
