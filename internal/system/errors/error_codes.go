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

package errors

const errorPrefix = "GDPR-"

var (
	// Server error codes

	LOAD_PROGRESS = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while loading saved progress.",
	}

	SAVE_PROGRESS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while saving progress.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Unable to initialize database client.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while marshalling JSON.",
	}

	ISSUE_SESSION = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while issuing the session token.",
	}

	GENERATE_EXPORT = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while generating the export file.",
	}

	LOAD_CATALOG = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while loading the category catalog.",
	}

	// Client error codes
	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Session information was invalid or missing from your request.",
	}

	INVALID_ACCESS_CODE = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Incorrect access code.",
		Description: "Incorrect access code. Please try again.",
	}

	SESSION_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Session not found.",
		Description: "The session has expired or was reset. Unlock again with your access code.",
	}

	PURPOSE_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Purpose validation failed.",
	}

	PURPOSE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Purpose not found.",
	}

	UNKNOWN_CATEGORY = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Unknown data category.",
	}

	CATEGORY_NOT_SELECTED = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Data category is not selected for this purpose.",
	}

	CUSTOM_CATEGORY_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Custom category validation failed.",
	}

	CUSTOM_CATEGORY_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Custom category not found.",
	}

	GENERAL_INFO_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11011",
		Message: "General information validation failed.",
	}

	UNSUPPORTED_EXPORT_FORMAT = ErrorMessage{
		Code:    errorPrefix + "11012",
		Message: "Unsupported export format.",
	}
)
