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

// Package provider provides access to configured database clients.
package provider

import (
	"database/sql"
	"fmt"

	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/system/database/client"
)

// DBProviderInterface defines the interface for retrieving database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct{}

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider() DBProviderInterface {
	return &DBProvider{}
}

// GetDBClient returns a database client for the named data source.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	cfg := config.GetHalcyonRuntime().Config

	var dataSource config.DataSource
	switch dbName {
	case "runtime":
		dataSource = cfg.Database.Runtime
	default:
		return nil, fmt.Errorf("unknown database name: %s", dbName)
	}

	driverName, dsn, err := buildDSN(dataSource)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	return client.NewDBClient(db, dataSource.Type), nil
}

// buildDSN constructs the driver name and connection string for the given data source.
func buildDSN(dataSource config.DataSource) (string, string, error) {
	switch dataSource.Type {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Name, dataSource.Username,
			dataSource.Password, dataSource.SSLMode)
		return "postgres", dsn, nil
	case "sqlite":
		dsn := dataSource.Path
		if dataSource.Options != "" {
			dsn += "?" + dataSource.Options
		}
		return "sqlite", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
