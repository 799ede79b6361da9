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

// Package authz provides management of single-use OAuth2 authorization codes.
package authz

import (
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/model"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/store"
	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/system/log"
)

const managerLoggerComponentName = "AuthorizationCodeManager"

// AuthorizationCodeManagerInterface defines the contract for issuing and
// redeeming authorization codes.
type AuthorizationCodeManagerInterface interface {
	GenerateAuthorizationCode(clientID, authorizedUserID, redirectURI string,
		scopes []string) (*model.AuthorizationCode, error)
	ConsumeAuthorizationCode(codeValue string) (*model.AuthorizationCode, error)
}

// AuthorizationCodeManager is the default implementation of AuthorizationCodeManagerInterface.
type AuthorizationCodeManager struct {
	Generator AuthorizationCodeGeneratorInterface
	Store     store.AuthorizationCodeStoreInterface
}

// NewAuthorizationCodeManager creates an authorization code manager backed by
// the store configured at runtime.
func NewAuthorizationCodeManager() AuthorizationCodeManagerInterface {
	codeConfig := config.GetHalcyonRuntime().Config.OAuth.AuthorizationCode

	var codeStore store.AuthorizationCodeStoreInterface
	if codeConfig.Store == "database" {
		codeStore = store.NewSQLAuthorizationCodeStore()
	} else {
		codeStore = store.NewInMemoryAuthorizationCodeStore()
	}

	return &AuthorizationCodeManager{
		Generator: NewAuthorizationCodeGenerator(),
		Store:     codeStore,
	}
}

// GenerateAuthorizationCode issues a new authorization code and persists it.
func (m *AuthorizationCodeManager) GenerateAuthorizationCode(clientID, authorizedUserID,
	redirectURI string, scopes []string) (*model.AuthorizationCode, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, managerLoggerComponentName))

	authzCode, err := m.Generator.GenerateAuthorizationCode(clientID, authorizedUserID,
		redirectURI, scopes)
	if err != nil {
		logger.Error("Failed to generate authorization code", log.Error(err))
		return nil, err
	}
	if err := m.Store.InsertAuthorizationCode(authzCode); err != nil {
		logger.Error("Failed to persist authorization code", log.Error(err),
			log.String("clientID", clientID))
		return nil, err
	}

	if logger.IsDebugEnabled() {
		logger.Debug("Issued authorization code", log.String("clientID", clientID),
			log.String("codeID", authzCode.CodeID))
	}
	return &authzCode, nil
}

// ConsumeAuthorizationCode redeems an authorization code. The code is retired
// on redemption, so a second call with the same value fails. Expired codes are
// indistinguishable from unknown ones.
func (m *AuthorizationCodeManager) ConsumeAuthorizationCode(codeValue string) (
	*model.AuthorizationCode, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, managerLoggerComponentName))

	authzCode, err := m.Store.ConsumeAuthorizationCode(codeValue)
	if err != nil {
		return nil, err
	}

	if authzCode.IsExpired() {
		if err := m.Store.DeleteAuthorizationCode(authzCode.CodeID); err != nil {
			logger.Error("Failed to delete expired authorization code", log.Error(err))
		}
		return nil, constants.ErrAuthorizationCodeNotFound
	}

	return authzCode, nil
}
