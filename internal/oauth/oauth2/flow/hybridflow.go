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

package flow

import (
	"time"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/token"
	"github.com/halcyonauth/halcyon/internal/oauth/oidc"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/user"
)

const hybridFlowLoggerComponentName = "HybridFlowHandler"

// HybridFlowHandler handles OIDC hybrid requests carrying multiple response
// types. Every requested artifact is produced and attached to the combined
// token; the set of requested types never short-circuits issuance.
type HybridFlowHandler struct {
	AuthzCodeManager AuthorizationCodeIssuerInterface
	TokenService     token.TokenServiceInterface
	IDTokenGenerator oidc.IDTokenGeneratorInterface
}

// NewHybridFlowHandler creates a new hybrid flow handler.
func NewHybridFlowHandler(authzCodeManager AuthorizationCodeIssuerInterface,
	tokenService token.TokenServiceInterface,
	idTokenGenerator oidc.IDTokenGeneratorInterface) FlowHandlerInterface {
	return &HybridFlowHandler{
		AuthzCodeManager: authzCodeManager,
		TokenService:     tokenService,
		IDTokenGenerator: idTokenGenerator,
	}
}

// HandleFlow issues every artifact the request asks for and returns them as a
// single combined token. Artifacts other than the access token travel in the
// token extras.
func (h *HybridFlowHandler) HandleFlow(request *model.AuthorizationRequest,
	u *user.User) (*model.Token, *model.ErrorResponse) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, hybridFlowLoggerComponentName))

	combined := &model.Token{
		Kind:   model.TokenKindHybrid,
		Extras: make(map[string]interface{}),
	}

	if request.HasResponseType(constants.ResponseTypeCode) {
		authzCode, err := h.AuthzCodeManager.GenerateAuthorizationCode(request.ClientID, u.ID,
			request.RedirectURI, request.Scopes)
		if err != nil {
			logger.Error("Failed to issue authorization code", log.Error(err),
				log.String("clientID", request.ClientID))
			return nil, &model.ErrorResponse{
				Error:            constants.ErrorServerError,
				ErrorDescription: "Failed to issue authorization code",
			}
		}
		combined.SetExtra(constants.Code, authzCode.Code)
	}

	if request.HasResponseType(constants.ResponseTypeToken) {
		accessToken, err := h.TokenService.GenerateAccessToken(u, request.Scopes)
		if err != nil {
			logger.Error("Failed to issue access token", log.Error(err),
				log.String("clientID", request.ClientID))
			return nil, &model.ErrorResponse{
				Error:            constants.ErrorServerError,
				ErrorDescription: "Failed to issue access token",
			}
		}

		combined.Value = accessToken.Value
		combined.TokenType = accessToken.TokenType
		combined.IssuedAt = accessToken.IssuedAt
		combined.ExpiresAt = accessToken.ExpiresAt
		combined.Scope = accessToken.Scope
		combined.Claims = accessToken.Claims

		combined.SetExtra(constants.AccessToken, accessToken.Value)
		combined.SetExtra(constants.TokenType, accessToken.TokenType)
		if expiresIn, ok := accessToken.ExpiresIn(); ok {
			combined.SetExtra(constants.ExpiresIn, expiresIn)
		}
	}

	if request.HasResponseType(constants.ResponseTypeIDToken) {
		idToken, err := h.IDTokenGenerator.GenerateIDToken(u, request.ClientID, request.Scopes,
			time.Now())
		if err != nil {
			logger.Error("Failed to issue ID token", log.Error(err),
				log.String("clientID", request.ClientID))
			return nil, &model.ErrorResponse{
				Error:            constants.ErrorServerError,
				ErrorDescription: "Failed to issue ID token",
			}
		}
		combined.SetExtra(constants.IDToken, idToken.Value)
	}

	return combined, nil
}
