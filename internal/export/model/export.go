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

// Column headers of the "Processing Details" sheet, in sheet order.
var ProcessingColumns = []string{
	"Company",
	"Subject Category",
	"Purpose",
	"Description",
	"Data Category",
	"Obtained Directly from Data Subject",
	"Source if Not Direct",
	"Sharing",
	"Retention",
	"Transfers",
}

// Column headers of the "Company Info" sheet, in sheet order.
var CompanyColumns = []string{
	"Company Name",
	"Data Subjects",
	"Company Activities",
}

// ProcessingRow is one (purpose, data category) line of the export.
type ProcessingRow struct {
	Company         string `json:"Company"`
	SubjectCategory string `json:"Subject Category"`
	Purpose         string `json:"Purpose"`
	Description     string `json:"Description"`
	DataCategory    string `json:"Data Category"`
	ObtainedDirect  string `json:"Obtained Directly from Data Subject"`
	IndirectSource  string `json:"Source if Not Direct"`
	Sharing         string `json:"Sharing"`
	Retention       string `json:"Retention"`
	Transfers       string `json:"Transfers"`
}

// Values returns the row cells in ProcessingColumns order.
func (r ProcessingRow) Values() []string {
	return []string{
		r.Company, r.SubjectCategory, r.Purpose, r.Description, r.DataCategory,
		r.ObtainedDirect, r.IndirectSource, r.Sharing, r.Retention, r.Transfers,
	}
}

// CompanyRow summarizes the company level answers.
type CompanyRow struct {
	CompanyName  string `json:"Company Name"`
	DataSubjects string `json:"Data Subjects"`
	Activities   string `json:"Company Activities"`
}

// Values returns the row cells in CompanyColumns order.
func (r CompanyRow) Values() []string {
	return []string{r.CompanyName, r.DataSubjects, r.Activities}
}

// Export is the tabular form of a questionnaire.
type Export struct {
	Processing []ProcessingRow `json:"processing_details"`
	Company    CompanyRow      `json:"company_info"`
}

// File is a rendered export ready to be served or written to disk.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}
