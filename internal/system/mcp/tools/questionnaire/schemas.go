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


package questionnaire

import "github.com/google/jsonschema-go/jsonschema"

var organizationProperty = &jsonschema.Schema{
	Type:        "string",
	Description: "Organization display name, as configured for its access code.",
}

var listProgressInputSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"count": {
			Type:        "integer",
			Description: "Maximum number of partitions to return, newest first. Defaults to 20, capped at 200.",
		},
		"cursor": {
			Type:        "string",
			Description: "next_cursor from a previous call, to continue listing.",
		},
	},
}

var organizationInputSchema = &jsonschema.Schema{
	Type: "object",
	Required: []string{
		"organization",
	},
	Properties: map[string]*jsonschema.Schema{
		"organization": organizationProperty,
	},
}
