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
	"context"
	"fmt"

	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	"github.com/wso2/gdpr-notice-generator/internal/system/database/provider"
)

// OpenProgressStore opens the backend selected by persistence.driver.
func OpenProgressStore(ctx context.Context, home string, cfg config.Config) (ProgressStoreInterface, error) {

	switch cfg.Persistence.Driver {
	case constants.DriverMemory:
		return NewMemoryProgressStore(), nil
	case constants.DriverPostgres, constants.DriverSQLite:
		dbClient, err := provider.NewDBProvider(home, cfg).GetDBClient(ctx)
		if err != nil {
			return nil, err
		}
		return NewSQLProgressStore(dbClient), nil
	case constants.DriverMongoDB:
		return ConnectMongoProgressStore(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Collection)
	case constants.DriverS3:
		return OpenS3ProgressStore(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported persistence driver %q", cfg.Persistence.Driver)
	}
}
