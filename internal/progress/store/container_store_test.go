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


package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
)

// startContainer starts a throwaway container, skipping the test when Docker is unavailable.
func startContainer(t *testing.T, req testcontainers.ContainerRequest) (string, int) {
	t.Helper()
	if testing.Short() {
		t.Skip("container tests are skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port(req.ExposedPorts[0]))
	require.NoError(t, err)
	return host, port.Int()
}

func TestPostgresProgressStore(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	})

	cfg := config.Config{
		Persistence: config.PersistenceConfig{Driver: "postgres"},
		DataSource: config.DataSourceConfig{
			Hostname: host,
			Port:     port,
			Name:     "testdb",
			Username: "testuser",
			Password: "testpass",
			SSLMode:  "disable",
		},
	}
	s, err := OpenProgressStore(context.Background(), "", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	assert.Equal(t, "postgres", s.Driver())
	exerciseProgressStore(t, s)
}

func TestMongoProgressStore(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})

	cfg := config.Config{
		Persistence: config.PersistenceConfig{Driver: "mongodb"},
		MongoDB: config.MongoDBConfig{
			URI:        fmt.Sprintf("mongodb://%s:%d", host, port),
			Database:   "gdpr_notice_test",
			Collection: "questionnaire_progress",
		},
	}
	s, err := OpenProgressStore(context.Background(), "", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	assert.Equal(t, "mongodb", s.Driver())
	exerciseProgressStore(t, s)
}
