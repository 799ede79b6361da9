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

// Package granthandlers provides the token endpoint grant type handlers.
package granthandlers

import (
	"github.com/halcyonauth/halcyon/internal/client"
	authzmodel "github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/model"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/user"
)

// GrantHandlerInterface defines the contract for serving one token endpoint
// grant type.
type GrantHandlerInterface interface {
	ValidateGrant(tokenRequest *model.TokenRequest, c *client.Client) *model.ErrorResponse
	HandleGrant(tokenRequest *model.TokenRequest, c *client.Client) (
		*model.TokenResponse, *model.ErrorResponse)
}

// AccessTokenIssuerInterface is the slice of the token service the grant
// handlers need.
type AccessTokenIssuerInterface interface {
	GenerateAccessToken(u *user.User, scopes []string) (*model.Token, error)
}

// AuthorizationCodeRedeemerInterface is the slice of the authorization code
// manager the code exchange needs.
type AuthorizationCodeRedeemerInterface interface {
	ConsumeAuthorizationCode(codeValue string) (*authzmodel.AuthorizationCode, error)
}
