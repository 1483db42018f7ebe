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
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	progressProvider "github.com/wso2/gdpr-notice-generator/internal/progress/provider"
	sessionProvider "github.com/wso2/gdpr-notice-generator/internal/session/provider"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
	"github.com/wso2/gdpr-notice-generator/internal/system/managers"
	"github.com/wso2/gdpr-notice-generator/internal/system/schedulers"
	"github.com/wso2/gdpr-notice-generator/internal/system/security"
)

const (
	sessionSweepInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

func main() {
	home := getHome()

	cfg, envFiles, err := config.Bootstrap(home)
	if err != nil {
		fmt.Println("Failed to start the notice generator.", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := log.InitWithWriter(cfg.Log.LogLevel, cfg.Log.Format, os.Stdout); err != nil {
		fmt.Println("Failed to initialize logger.", err)
		os.Exit(1)
	}
	logger := log.GetLogger()
	if len(envFiles) == 0 {
		logger.Warn("No .env files found in the config directory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the progress store before taking traffic.
	progress := progressProvider.NewProgressProvider()
	progress.GetProgressService()
	go schedulers.StartSessionSweeper(ctx, sessionProvider.NewSessionProvider().GetSessionService(), sessionSweepInterval)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	handler := security.WithTrace(enableCORS(cfg.Auth.CORSAllowedOrigins, initMultiplexer()))
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start the listener", log.String("address", serverAddr), log.Error(err))
	}

	server := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("GDPR notice generator started", log.String("address", serverAddr),
		log.String("persistence", cfg.Persistence.Driver))
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to serve requests.", log.Error(err))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := progress.Close(closeCtx); err != nil {
		logger.Warn("Failed to close the progress store", log.Error(err))
	}
	logger.Info("GDPR notice generator stopped")
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services.", log.Error(err))
	}

	return mux
}

// enableCORS allows the configured browser origins. An empty list allows none.
func enableCORS(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (slices.Contains(allowedOrigins, origin) || slices.Contains(allowedOrigins, "*")) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, "+security.TraceIDHeader)
			w.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Disposition, "+security.TraceIDHeader)
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getHome() string {

	// Parse project directory from command line arguments.
	homeFlag := flag.String("home", "", "Path to the notice generator home directory")
	flag.Parse()

	if *homeFlag != "" {
		fmt.Printf("Using %s from command line argument\n", *homeFlag)
		return *homeFlag
	}
	if envHome := os.Getenv("GDPR_HOME"); envHome != "" {
		return envHome
	}
	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		fmt.Println("Failed to get current working directory", err)
		os.Exit(1)
	}
	return dir
}
