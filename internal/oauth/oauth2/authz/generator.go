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

package authz

import (
	"time"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/model"
	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

// AuthorizationCodeGeneratorInterface defines the contract for generating authorization codes.
type AuthorizationCodeGeneratorInterface interface {
	GenerateAuthorizationCode(clientID, authorizedUserID, redirectURI string,
		scopes []string) (model.AuthorizationCode, error)
}

// AuthorizationCodeGenerator generates random single-use authorization codes.
type AuthorizationCodeGenerator struct{}

// NewAuthorizationCodeGenerator creates a new authorization code generator.
func NewAuthorizationCodeGenerator() AuthorizationCodeGeneratorInterface {
	return &AuthorizationCodeGenerator{}
}

// GenerateAuthorizationCode builds a fresh active authorization code bound to the
// given client, user, redirect URI and scopes.
func (g *AuthorizationCodeGenerator) GenerateAuthorizationCode(clientID, authorizedUserID,
	redirectURI string, scopes []string) (model.AuthorizationCode, error) {
	codeConfig := config.GetHalcyonRuntime().Config.OAuth.AuthorizationCode

	codeLength := codeConfig.Length
	if codeLength <= 0 {
		codeLength = constants.DefaultCodeLength
	}
	validityPeriod := codeConfig.ValidityPeriod
	if validityPeriod <= 0 {
		validityPeriod = constants.DefaultCodeValiditySeconds
	}

	codeValue, err := utils.GenerateRandomString(codeLength)
	if err != nil {
		return model.AuthorizationCode{}, err
	}

	now := time.Now()
	return model.AuthorizationCode{
		CodeID:           utils.GenerateUUID(),
		Code:             codeValue,
		ClientID:         clientID,
		RedirectURI:      redirectURI,
		AuthorizedUserID: authorizedUserID,
		Scopes:           scopes,
		TimeCreated:      now,
		ExpiryTime:       now.Add(time.Duration(validityPeriod) * time.Second),
		State:            constants.AuthCodeStateActive,
	}, nil
}
