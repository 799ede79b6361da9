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
	"errors"

	"github.com/halcyonauth/halcyon/internal/client"
	authzconstants "github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/user"
)

const authzCodeGrantLoggerComponentName = "AuthorizationCodeGrantHandler"

// AuthorizationCodeGrantHandler exchanges a previously issued authorization
// code for an access token.
type AuthorizationCodeGrantHandler struct {
	AuthzCodeManager AuthorizationCodeRedeemerInterface
	TokenService     AccessTokenIssuerInterface
	UserStore        user.StoreInterface
}

// NewAuthorizationCodeGrantHandler creates a new authorization code grant handler.
func NewAuthorizationCodeGrantHandler(authzCodeManager AuthorizationCodeRedeemerInterface,
	tokenService AccessTokenIssuerInterface, userStore user.StoreInterface) GrantHandlerInterface {
	return &AuthorizationCodeGrantHandler{
		AuthzCodeManager: authzCodeManager,
		TokenService:     tokenService,
		UserStore:        userStore,
	}
}

// ValidateGrant checks the request shape before the code is redeemed.
func (h *AuthorizationCodeGrantHandler) ValidateGrant(tokenRequest *model.TokenRequest,
	c *client.Client) *model.ErrorResponse {
	if tokenRequest.GrantType != string(constants.GrantTypeAuthorizationCode) {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnsupportedGrantType,
			ErrorDescription: "Unsupported grant type",
		}
	}
	if tokenRequest.Code == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Authorization code is required",
		}
	}
	return nil
}

// HandleGrant redeems the authorization code and issues an access token for
// the user who approved it. The code is single use: redemption retires it, so
// replays and expired or unknown codes all fail the same way.
func (h *AuthorizationCodeGrantHandler) HandleGrant(tokenRequest *model.TokenRequest,
	c *client.Client) (*model.TokenResponse, *model.ErrorResponse) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, authzCodeGrantLoggerComponentName))

	authzCode, err := h.AuthzCodeManager.ConsumeAuthorizationCode(tokenRequest.Code)
	if err != nil {
		if !errors.Is(err, authzconstants.ErrAuthorizationCodeNotFound) {
			logger.Error("Failed to consume authorization code", log.Error(err))
		}
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Invalid authorization code",
		}
	}

	if authzCode.ClientID != c.ClientID {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Authorization code was issued to another client",
		}
	}
	if authzCode.RedirectURI != tokenRequest.RedirectURI {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Redirect URI does not match the authorization request",
		}
	}

	authorizedUser, ok := h.UserStore.GetUserByID(authzCode.AuthorizedUserID)
	if !ok {
		logger.Error("Authorized user no longer exists",
			log.String("userID", authzCode.AuthorizedUserID))
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Invalid authorization code",
		}
	}

	accessToken, err := h.TokenService.GenerateAccessToken(authorizedUser, authzCode.Scopes)
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
