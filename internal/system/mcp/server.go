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


package mcp

import (
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	exportSvc "github.com/wso2/gdpr-notice-generator/internal/export/service"
	noticeSvc "github.com/wso2/gdpr-notice-generator/internal/notice/service"
	progressSvc "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	questionnaireTools "github.com/wso2/gdpr-notice-generator/internal/system/mcp/tools/questionnaire"
)

const (
	serverName    = "gdpr-notice-generator-mcp"
	serverVersion = "1.0.0"
)

// server holds dependencies for MCP tool registration.
type server struct {
	progress progressSvc.ProgressServiceInterface
	export   exportSvc.ExportServiceInterface
	notice   noticeSvc.NoticeServiceInterface

	// cached MCP server instance
	mcp  *mcpsdk.Server
	once sync.Once
}

func newServer(progress progressSvc.ProgressServiceInterface, export exportSvc.ExportServiceInterface,
	notice noticeSvc.NoticeServiceInterface) *server {
	return &server{
		progress: progress,
		export:   export,
		notice:   notice,
	}
}

// getMCPServer builds (once) and returns the MCP server with the questionnaire tools registered.
func (s *server) getMCPServer() *mcpsdk.Server {
	s.once.Do(func() {
		mcpServer := mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil)

		qt := questionnaireTools.NewTools(s.progress, s.export, s.notice)
		qt.RegisterTools(mcpServer)

		s.mcp = mcpServer
	})
	return s.mcp
}
