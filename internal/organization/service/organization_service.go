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
	"crypto/subtle"
	"net/http"
	"sort"
	"strings"

	"github.com/wso2/gdpr-notice-generator/internal/organization/model"
	progressService "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	sessionModel "github.com/wso2/gdpr-notice-generator/internal/session/model"
	sessionService "github.com/wso2/gdpr-notice-generator/internal/session/service"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	errors2 "github.com/wso2/gdpr-notice-generator/internal/system/errors"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/metrics"
)

const loadWarningMessage = "Could not load saved data. You can continue and save again later."

// OrganizationServiceInterface defines the access gate operations.
type OrganizationServiceInterface interface {
	Lookup(code string) (string, bool)
	Unlock(ctx context.Context, code string, existing *sessionModel.Session) (*model.UnlockResult, error)
	Reset(ctx context.Context, session *sessionModel.Session)
}

// OrganizationService resolves access codes against a static directory.
type OrganizationService struct {
	directory map[string]string
	codes     []string
	sessions  sessionService.SessionServiceInterface
	progress  progressService.ProgressServiceInterface
}

func NewOrganizationService(directory map[string]string, sessions sessionService.SessionServiceInterface,
	progress progressService.ProgressServiceInterface) *OrganizationService {

	codes := make([]string, 0, len(directory))
	for code := range directory {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &OrganizationService{directory: directory, codes: codes, sessions: sessions, progress: progress}
}

// Lookup returns the organization an access code belongs to. Every configured code is compared
// in constant time.
func (s *OrganizationService) Lookup(code string) (string, bool) {

	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	var match string
	found := false
	for _, candidate := range s.codes {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1 {
			match = s.directory[candidate]
			found = true
		}
	}
	return match, found
}

// Unlock checks the code, opens or reuses a session and merges saved progress into it. Saved
// values never overwrite keys the session already holds. A load failure leaves the session
// unlocked and is reported through LoadWarning.
func (s *OrganizationService) Unlock(ctx context.Context, code string, existing *sessionModel.Session) (*model.UnlockResult, error) {

	logger := log.GetLogger()
	organization, ok := s.Lookup(code)
	if !ok {
		metrics.UnlockAttempts.WithLabelValues(metrics.OutcomeFailure).Inc()
		logger.Audit(log.AuditEvent{
			InitiatorType: log.InitiatorTypeAnonymous,
			TargetType:    log.TargetTypeSession,
			ActionID:      log.ActionUnlockFailure,
		})
		return nil, errors2.NewClientError(errors2.INVALID_ACCESS_CODE, http.StatusUnauthorized)
	}

	session := existing
	if session != nil && session.Organization != organization {
		session = nil
	}
	result := &model.UnlockResult{Organization: organization, RestoredKeys: []string{}}
	if session == nil {
		opened, token, expiresAt, err := s.sessions.Open(organization)
		if err != nil {
			return nil, err
		}
		metrics.ActiveSessions.Inc()
		session = opened
		result.Token = token
		result.ExpiresAt = expiresAt
	} else {
		token, expiresAt, err := s.sessions.Refresh(session)
		if err != nil {
			return nil, err
		}
		result.Token = token
		result.ExpiresAt = expiresAt
	}

	saved, found, err := s.progress.Load(ctx, organization)
	if err != nil {
		logger.Warn("Unlocked without saved progress", log.String("organization", organization), log.Error(err))
		result.LoadWarning = loadWarningMessage
	} else if found {
		logger.Audit(log.AuditEvent{
			InitiatorID:   organization,
			InitiatorType: log.InitiatorTypeOrganization,
			TargetID:      organization,
			TargetType:    log.TargetTypeProgress,
			ActionID:      log.ActionLoadProgress,
		})
	}
	_ = session.Update(func(state *questionnaire.QuestionnaireState) error {
		result.RestoredKeys = append(result.RestoredKeys, state.Restore(saved)...)
		if !state.IsPresent(constants.StateKeyCompanyName) {
			state.CompanyName = organization
			state.MarkPresent(constants.StateKeyCompanyName)
		}
		return nil
	})
	result.ProgressLoaded = found && len(result.RestoredKeys) > 0

	metrics.UnlockAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Audit(log.AuditEvent{
		InitiatorID:   organization,
		InitiatorType: log.InitiatorTypeOrganization,
		TargetID:      session.ID,
		TargetType:    log.TargetTypeSession,
		ActionID:      log.ActionUnlockSuccess,
		Data:          map[string]interface{}{"restoredKeys": result.RestoredKeys},
	})
	return result, nil
}

// Reset discards the session and its state. The organization has to unlock again.
func (s *OrganizationService) Reset(_ context.Context, session *sessionModel.Session) {

	s.sessions.Close(session.ID)
	metrics.ActiveSessions.Dec()
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   session.Organization,
		InitiatorType: log.InitiatorTypeOrganization,
		TargetID:      session.ID,
		TargetType:    log.TargetTypeSession,
		ActionID:      log.ActionResetSession,
	})
}
