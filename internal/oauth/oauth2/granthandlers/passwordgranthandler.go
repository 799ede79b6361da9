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

package granthandlers

import (
	"github.com/halcyonauth/halcyon/internal/client"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/system/utils"
	"github.com/halcyonauth/halcyon/internal/user"
)

const passwordGrantLoggerComponentName = "PasswordGrantHandler"

// PasswordGrantHandler serves the resource owner password credentials grant.
// The grant never participates in browser authorization; it exists for the
// token endpoint only.
type PasswordGrantHandler struct {
	AuthService  user.AuthenticationServiceInterface
	TokenService AccessTokenIssuerInterface
}

// NewPasswordGrantHandler creates a new password grant handler.
func NewPasswordGrantHandler(authService user.AuthenticationServiceInterface,
	tokenService AccessTokenIssuerInterface) GrantHandlerInterface {
	return &PasswordGrantHandler{
		AuthService:  authService,
		TokenService: tokenService,
	}
}

// ValidateGrant checks the request shape before authentication is attempted.
func (h *PasswordGrantHandler) ValidateGrant(tokenRequest *model.TokenRequest,
	c *client.Client) *model.ErrorResponse {
	if tokenRequest.GrantType != string(constants.GrantTypePassword) {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnsupportedGrantType,
			ErrorDescription: "Unsupported grant type",
		}
	}
	if tokenRequest.Username == "" || tokenRequest.Password == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Username and password are required",
		}
	}
	return nil
}

// HandleGrant authenticates the resource owner and issues an access token.
func (h *PasswordGrantHandler) HandleGrant(tokenRequest *model.TokenRequest,
	c *client.Client) (*model.TokenResponse, *model.ErrorResponse) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, passwordGrantLoggerComponentName))

	authenticatedUser, err := h.AuthService.Authenticate(tokenRequest.Username,
		tokenRequest.Password)
	if err != nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Invalid username or password",
		}
	}

	scopes := utils.ParseScopes(tokenRequest.Scope)
	accessToken, err := h.TokenService.GenerateAccessToken(authenticatedUser, scopes)
	if err != nil {
		logger.Error("Failed to issue access token", log.Error(err))
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "Failed to issue access token",
		}
	}

	expiresIn, _ := accessToken.ExpiresIn()
	return &model.TokenResponse{
		AccessToken: accessToken.Value,
		TokenType:   accessToken.TokenType,
		ExpiresIn:   expiresIn,
		Scope:       accessToken.Scope,
	}, nil
}
