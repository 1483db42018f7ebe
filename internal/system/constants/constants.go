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

package constants

const ApiBasePath = "/api/v1"
const SessionsApiPath = "/sessions"
const QuestionnaireApiPath = "/questionnaire"
const ExportApiPath = "/export"
const NoticeApiPath = "/notice"
const CategoriesApiPath = "/categories"
const HealthApiPath = "/health"
const ReadyApiPath = "/ready"
const MetricsApiPath = "/metrics"
const MCPEndpointPath = "/mcp"


type contextKey string

const TraceIDContextKey contextKey = "traceId"

// Top level keys of a saved questionnaire.
const (
	StateKeyCompanyName     = "company_name"
	StateKeySubjectCategory = "subject_cat"
	StateKeyActivities      = "activities"
	StateKeyPurposes        = "purposes"

	// LegacyExtraCategoriesKeyPrefix prefixes per purpose custom category lists written by
	// earlier versions of the questionnaire ("extra_cats_0", "extra_cats_1", ...).
	LegacyExtraCategoriesKeyPrefix = "extra_cats_"
)

// Data subject categories offered by the questionnaire. Any other value is free text.
var SubjectCategoryOptions = []string{
	"Employees",
	"Customers",
	"Website Users",
	"Event Participants",
	"Loyalty Card Holders",
	"Athletes",
	"Other",
}

const DefaultSubjectCategory = "Employees"

const (
	SharingInternalOnly = "Internal use only"

	TransfersNone          = "No"
	TransfersInternational = "Yes (Outside EU/UK)"
)

const (
	AnswerYes = "Yes"
	AnswerNo  = "No"

	SourceNotSpecified = "Not specified"
)

// MaxPartitionNameLength bounds the sanitized storage partition name.
const MaxPartitionNameLength = 100

// Characters that the backing store does not accept in a partition name.
var IllegalPartitionCharacters = []string{"\\", "/", "?", "*", "[", "]", ":"}

const ProgressTimestampLayout = "2006-01-02 15:04:05"

// Persistence drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongoDB  = "mongodb"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Export formats and sheets
const (
	FormatXLSX     = "xlsx"
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"

	SheetProcessingDetails = "Processing Details"
	SheetCompanyInfo       = "Company Info"
)
