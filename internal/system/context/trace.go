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


package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

const maxTraceIDLength = 64

// ResolveTraceID keeps a caller supplied trace ID when it is short and made of URL-safe
// characters, and generates a new one otherwise.
func ResolveTraceID(incoming string) string {
	if incoming == "" || len(incoming) > maxTraceIDLength {
		return GenerateTraceID()
	}
	for _, ch := range incoming {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_', ch == '.':
		default:
			return GenerateTraceID()
		}
	}
	return incoming
}

func GenerateTraceID() string {
	return uuid.New().String()
}

// GetTraceID returns the request's trace ID, or "" outside a traced request.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(constants.TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, constants.TraceIDContextKey, traceID)
}
