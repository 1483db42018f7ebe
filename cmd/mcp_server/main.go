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


package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	exportProvider "github.com/wso2/gdpr-notice-generator/internal/export/provider"
	noticeProvider "github.com/wso2/gdpr-notice-generator/internal/notice/provider"
	progressProvider "github.com/wso2/gdpr-notice-generator/internal/progress/provider"
	"github.com/wso2/gdpr-notice-generator/internal/system/authz"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/mcp"
	"github.com/wso2/gdpr-notice-generator/internal/system/security"
)

func main() {
	mux := http.NewServeMux()
	home := resolveHome()

	cfg, _, err := config.Bootstrap(home)
	if err != nil {
		fmt.Println("Failed to start the MCP server.", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := log.InitWithWriter(cfg.Log.LogLevel, cfg.Log.Format, os.Stdout); err != nil {
		fmt.Println("Failed to initialize logger.", err)
		os.Exit(1)
	}

	progress := progressProvider.NewProgressProvider()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = progress.Close(ctx)
	}()

	// Register MCP routes (/mcp)
	mcp.Initialize(mux, progress.GetProgressService(),
		exportProvider.NewExportProvider().GetExportService(),
		noticeProvider.NewNoticeProvider().GetNoticeService())

	addr := cfg.MCP.Addr
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("GDPR MCP server listening on %s", addr))
	server := &http.Server{Addr: addr, Handler: security.WithTrace(authz.RequireAPIKey(cfg.MCP.APIKeys, mux)), ReadHeaderTimeout: 10 * time.Second}
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Failed to start the MCP server.", log.Error(err))
	}
}

// resolveHome parses flags and determines the home directory.
func resolveHome() string {
	homeFlag := flag.String("home", "", "Path to the notice generator home directory")

	// Parse flags once (only if not already parsed)
	if !flag.Parsed() {
		flag.Parse()
	}

	if *homeFlag != "" {
		fmt.Printf("Using %s from command line argument\n", *homeFlag)
		return *homeFlag
	}

	// Fallback to environment variable
	if envHome := os.Getenv("GDPR_HOME"); envHome != "" {
		fmt.Printf("Using GDPR_HOME from environment: %s\n", envHome)
		return envHome
	}

	// Fallback to working directory
	dir, err := os.Getwd()
	if err != nil {
		fmt.Println("Failed to get current working directory", err)
		os.Exit(1)
	}
	return dir
}
