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

// Notice is the human readable data protection notice of a questionnaire.
type Notice struct {
	Title      string            `json:"title"`
	Purposes   []PurposeSection  `json:"purposes"`
	Categories []CategorySection `json:"categories"`
	Rights     []Right           `json:"rights"`
}

// PurposeSection explains why data is processed.
type PurposeSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategorySection describes one data category processed for one purpose.
type CategorySection struct {
	Category        string `json:"category"`
	Specifics       string `json:"specifics"`
	Purpose         string `json:"purpose"`
	Retention       string `json:"retention"`
	DisclosedTo     string `json:"disclosed_to"`
	Source          string `json:"source"`
	TransferWarning string `json:"transfer_warning,omitempty"`
}

type Right struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
