/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"path"
	"sync"

	"github.com/openportal/gate/internal/system/config"
	"github.com/openportal/gate/internal/system/database/client"
	"github.com/openportal/gate/internal/system/database/model"
	"github.com/openportal/gate/internal/system/log"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	identityClient client.DBClientInterface
	identityMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case "identity":
		identityDBConfig := config.GetGateRuntime().Config.Database.Identity
		return d.getOrInitClient(&d.identityClient, &d.identityMutex, identityDBConfig)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(clientPtr *client.DBClientInterface, mutex *sync.RWMutex,
	dsConfig config.DataSource) (client.DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		defer mutex.RUnlock()
		return *clientPtr, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	dbClient, err := initializeClient(dsConfig)
	if err != nil {
		return nil, err
	}
	*clientPtr = dbClient

	return dbClient, nil
}

// initializeClient opens a database connection for the given datasource configuration.
func initializeClient(dsConfig config.DataSource) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	driverName, dsn, err := buildDSN(dsConfig)
	if err != nil {
		logger.Error("Failed to build the datasource name", log.Error(err))
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		logger.Error("Failed to open database connection", log.String("type", dsConfig.Type), log.Error(err))
		return nil, err
	}

	if err := db.Ping(); err != nil {
		logger.Error("Failed to verify database connection", log.String("type", dsConfig.Type), log.Error(err))
		return nil, err
	}

	return client.NewDBClient(model.NewDB(db), dsConfig.Type), nil
}

// buildDSN builds the driver name and datasource name for the configured database type.
func buildDSN(dsConfig config.DataSource) (string, string, error) {
	switch dsConfig.Type {
	case dataSourceTypePostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dsConfig.Hostname, dsConfig.Port, dsConfig.Username, dsConfig.Password,
			dsConfig.Name, dsConfig.SSLMode)
		if dsConfig.Options != "" {
			dsn += " " + dsConfig.Options
		}
		return "postgres", dsn, nil
	case dataSourceTypeSQLite:
		dsn := path.Clean(dsConfig.Path)
		if dsConfig.Options != "" {
			dsn += "?" + dsConfig.Options
		}
		return "sqlite", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database type: %s", dsConfig.Type)
	}
}
