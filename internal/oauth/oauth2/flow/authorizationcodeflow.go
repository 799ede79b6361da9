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
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/user"
)

const authzCodeFlowLoggerComponentName = "AuthorizationCodeFlowHandler"

// AuthorizationCodeFlowHandler handles the authorization code flow. It issues
// a single-use code; tokens are minted later at the token endpoint.
type AuthorizationCodeFlowHandler struct {
	AuthzCodeManager AuthorizationCodeIssuerInterface
}

// NewAuthorizationCodeFlowHandler creates a new authorization code flow handler.
func NewAuthorizationCodeFlowHandler(
	authzCodeManager AuthorizationCodeIssuerInterface) FlowHandlerInterface {
	return &AuthorizationCodeFlowHandler{
		AuthzCodeManager: authzCodeManager,
	}
}

// HandleFlow issues an authorization code for the authenticated user.
func (h *AuthorizationCodeFlowHandler) HandleFlow(request *model.AuthorizationRequest,
	u *user.User) (*model.Token, *model.ErrorResponse) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, authzCodeFlowLoggerComponentName))

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

	return &model.Token{
		Kind:      model.TokenKindAuthorizationCode,
		Value:     authzCode.Code,
		IssuedAt:  authzCode.TimeCreated,
		ExpiresAt: authzCode.ExpiryTime,
	}, nil
}
