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
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/token"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/user"
)

const implicitFlowLoggerComponentName = "ImplicitFlowHandler"

// ImplicitFlowHandler handles the implicit flow, returning the access token
// directly in the redirect.
type ImplicitFlowHandler struct {
	TokenService token.TokenServiceInterface
}

// NewImplicitFlowHandler creates a new implicit flow handler.
func NewImplicitFlowHandler(tokenService token.TokenServiceInterface) FlowHandlerInterface {
	return &ImplicitFlowHandler{
		TokenService: tokenService,
	}
}

// HandleFlow issues an access token for the authenticated user.
func (h *ImplicitFlowHandler) HandleFlow(request *model.AuthorizationRequest,
	u *user.User) (*model.Token, *model.ErrorResponse) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, implicitFlowLoggerComponentName))

	accessToken, err := h.TokenService.GenerateAccessToken(u, request.Scopes)
	if err != nil {
		logger.Error("Failed to issue access token", log.Error(err),
			log.String("clientID", request.ClientID))
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "Failed to issue access token",
		}
	}

	return accessToken, nil
}
