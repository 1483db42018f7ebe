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

import "time"

// ProgressRecord is the single saved record of one organization partition.
type ProgressRecord struct {
	PartitionKey string    `json:"partition_key" bson:"_id"`
	LastUpdated  time.Time `json:"last_updated" bson:"last_updated"`
	State        string    `json:"state" bson:"state"` // JSON encoded questionnaire mapping
}

// PartitionSummary describes a saved partition without its state.
type PartitionSummary struct {
	PartitionKey string    `json:"partition_key"`
	LastUpdated  time.Time `json:"last_updated"`
}
