/*
 * Copyright (c) 2026, Halcyon Project.
 *
 * Halcyon Project licenses this file to you under the Apache License,
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfigYAML = `
server:
  hostname: "localhost"
  port: 8090
oauth:
  jwt:
    issuer: "halcyon"
    validity_period: 3600
    secret: "test-secret"
  authorization_code:
    length: 24
    validity_period: 60
    store: "memory"
database:
  runtime:
    type: "sqlite"
    path: "runtimedb.db"
clients:
  - client_id: "sample_app"
    client_secret: "secret"
    redirect_uris:
      - "http://localhost:3000/callback"
    type: "confidential"
users:
  - id: "user-1"
    username: "admin"
    password: "admin"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "halcyon.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTestConfig(t))
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Hostname)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "halcyon", cfg.OAuth.JWT.Issuer)
	assert.Equal(t, int64(3600), cfg.OAuth.JWT.ValidityPeriod)
	assert.Equal(t, 24, cfg.OAuth.AuthorizationCode.Length)
	assert.Equal(t, "memory", cfg.OAuth.AuthorizationCode.Store)
	assert.Equal(t, "sqlite", cfg.Database.Runtime.Type)
	assert.Len(t, cfg.Clients, 1)
	assert.Equal(t, "sample_app", cfg.Clients[0].ClientID)
	assert.Equal(t, []string{"http://localhost:3000/callback"}, cfg.Clients[0].RedirectURIs)
	assert.Len(t, cfg.Users, 1)
	assert.Equal(t, "admin", cfg.Users[0].Username)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/halcyon.yaml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestRuntimeSingleton(t *testing.T) {
	ResetHalcyonRuntime()
	defer ResetHalcyonRuntime()

	assert.NoError(t, InitializeHalcyonRuntime("/opt/halcyon", &Config{
		Server: ServerConfig{Port: 8090},
	}))

	runtime := GetHalcyonRuntime()
	assert.Equal(t, "/opt/halcyon", runtime.HalcyonHome)
	assert.Equal(t, 8090, runtime.Config.Server.Port)

	// A second initialization does not replace the loaded configuration.
	assert.NoError(t, InitializeHalcyonRuntime("/other", &Config{}))
	assert.Equal(t, "/opt/halcyon", GetHalcyonRuntime().HalcyonHome)
}

func TestGetRuntimePanicsWhenUninitialized(t *testing.T) {
	ResetHalcyonRuntime()
	defer ResetHalcyonRuntime()

	assert.Panics(t, func() {
		GetHalcyonRuntime()
	})
}
