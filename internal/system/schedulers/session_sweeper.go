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


package schedulers

import (
	"context"
	"time"

	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/metrics"
)

// SessionPurger drops expired sessions.
type SessionPurger interface {
	PurgeExpired() int
}

// StartSessionSweeper periodically drops expired sessions until the context is cancelled.
func StartSessionSweeper(ctx context.Context, sessions SessionPurger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepSessions(sessions)
		}
	}
}

func sweepSessions(sessions SessionPurger) {
	purged := sessions.PurgeExpired()
	if purged == 0 {
		return
	}
	metrics.ActiveSessions.Sub(float64(purged))
	log.GetLogger().Info("Expired sessions purged", log.Int("count", purged))
}
