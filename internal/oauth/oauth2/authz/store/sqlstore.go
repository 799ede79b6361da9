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

package store

import (
	"fmt"
	"time"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/model"
	"github.com/halcyonauth/halcyon/internal/system/database/provider"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

const sqlStoreLoggerComponentName = "AuthorizationCodeSQLStore"

// SQLAuthorizationCodeStore implements the store against the runtime database.
type SQLAuthorizationCodeStore struct {
	DBProvider provider.DBProviderInterface
}

// NewSQLAuthorizationCodeStore creates a new SQL backed authorization code store.
func NewSQLAuthorizationCodeStore() AuthorizationCodeStoreInterface {
	return &SQLAuthorizationCodeStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// InsertAuthorizationCode inserts a new authorization code row.
func (s *SQLAuthorizationCodeStore) InsertAuthorizationCode(authzCode model.AuthorizationCode) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, sqlStoreLoggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	_, err = dbClient.Execute(constants.QueryInsertAuthorizationCode, authzCode.CodeID, authzCode.Code,
		authzCode.ClientID, authzCode.RedirectURI, authzCode.AuthorizedUserID,
		utils.JoinScopes(authzCode.Scopes), authzCode.TimeCreated.UTC().Format(time.RFC3339Nano),
		authzCode.ExpiryTime.UTC().Format(time.RFC3339Nano), authzCode.State)
	if err != nil {
		logger.Error("Failed to insert authorization code", log.Error(err))
		return fmt.Errorf("failed to insert authorization code: %w", err)
	}

	return nil
}

// GetAuthorizationCodeByValue retrieves an authorization code row by its code value.
func (s *SQLAuthorizationCodeStore) GetAuthorizationCodeByValue(codeValue string) (
	*model.AuthorizationCode, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, sqlStoreLoggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(constants.QueryGetAuthorizationCodeByValue, codeValue)
	if err != nil {
		return nil, fmt.Errorf("error while retrieving authorization code: %w", err)
	}
	if len(results) == 0 {
		return nil, constants.ErrAuthorizationCodeNotFound
	}

	return buildAuthorizationCode(results[0])
}

// ConsumeAuthorizationCode retrieves the code and marks it inactive. The
// conditional update settles concurrent consumers on a single winner.
func (s *SQLAuthorizationCodeStore) ConsumeAuthorizationCode(codeValue string) (
	*model.AuthorizationCode, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, sqlStoreLoggerComponentName))

	authzCode, err := s.GetAuthorizationCodeByValue(codeValue)
	if err != nil {
		return nil, err
	}

	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(constants.QueryDeactivateAuthorizationCode,
		constants.AuthCodeStateInactive, codeValue, constants.AuthCodeStateActive)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate authorization code: %w", err)
	}
	if rowsAffected == 0 {
		// Another caller already consumed the code.
		return nil, constants.ErrAuthorizationCodeNotFound
	}

	return authzCode, nil
}

// DeleteAuthorizationCode deletes an authorization code row by its identifier.
func (s *SQLAuthorizationCodeStore) DeleteAuthorizationCode(codeID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, sqlStoreLoggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	if _, err := dbClient.Execute(constants.QueryDeleteAuthorizationCode, codeID); err != nil {
		return fmt.Errorf("failed to delete authorization code: %w", err)
	}
	return nil
}

// CountAuthorizationCodes counts the stored authorization code rows.
func (s *SQLAuthorizationCodeStore) CountAuthorizationCodes() (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, sqlStoreLoggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return 0, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(constants.QueryCountAuthorizationCodes)
	if err != nil {
		return 0, fmt.Errorf("failed to count authorization codes: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	total, err := parseInt64Column(results[0]["total"])
	if err != nil {
		return 0, err
	}
	return total, nil
}

// buildAuthorizationCode maps a result row onto the authorization code model.
func buildAuthorizationCode(row map[string]interface{}) (*model.AuthorizationCode, error) {
	timeCreated, err := parseTimeColumn(row["time_created"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse time_created: %w", err)
	}
	expiryTime, err := parseTimeColumn(row["expiry_time"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse expiry_time: %w", err)
	}

	return &model.AuthorizationCode{
		CodeID:           parseStringColumn(row["code_id"]),
		Code:             parseStringColumn(row["code"]),
		ClientID:         parseStringColumn(row["client_id"]),
		RedirectURI:      parseStringColumn(row["redirect_uri"]),
		AuthorizedUserID: parseStringColumn(row["authorized_user_id"]),
		Scopes:           utils.ParseScopes(parseStringColumn(row["scopes"])),
		TimeCreated:      timeCreated,
		ExpiryTime:       expiryTime,
		State:            parseStringColumn(row["state"]),
	}, nil
}

// parseStringColumn coerces a column value returned by the driver into a string.
func parseStringColumn(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// parseTimeColumn coerces a column value into a time, accepting native and textual timestamps.
func parseTimeColumn(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return time.Parse(time.RFC3339Nano, v)
	case []byte:
		return time.Parse(time.RFC3339Nano, string(v))
	default:
		return time.Time{}, fmt.Errorf("unsupported time column type: %T", value)
	}
}

// parseInt64Column coerces a column value into an int64.
func parseInt64Column(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("unsupported count column type: %T", value)
	}
}
