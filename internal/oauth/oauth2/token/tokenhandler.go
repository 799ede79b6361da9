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

package token

import (
	"encoding/json"
	"net/http"

	"github.com/halcyonauth/halcyon/internal/client"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/credentials"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/granthandlers"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

const tokenHandlerLoggerComponentName = "TokenHandler"

// TokenHandler serves POST /oauth2/token.
type TokenHandler struct {
	ClientStore         client.StoreInterface
	CredentialsResolver credentials.ResolverInterface
	GrantProvider       granthandlers.GrantHandlerProviderInterface
}

// NewTokenHandler creates a new token endpoint handler.
func NewTokenHandler(clientStore client.StoreInterface,
	credentialsResolver credentials.ResolverInterface,
	grantProvider granthandlers.GrantHandlerProviderInterface) *TokenHandler {
	return &TokenHandler{
		ClientStore:         clientStore,
		CredentialsResolver: credentialsResolver,
		GrantProvider:       grantProvider,
	}
}

// HandleTokenRequest authenticates the client, dispatches to the grant
// handler for the requested grant type and writes the token response.
func (h *TokenHandler) HandleTokenRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, tokenHandlerLoggerComponentName))

	if err := r.ParseForm(); err != nil {
		utils.WriteJSONError(w, constants.ErrorInvalidRequest, "Failed to parse request body",
			http.StatusBadRequest, nil)
		return
	}

	creds, ok := h.CredentialsResolver.Resolve(r)
	if !ok {
		utils.WriteJSONError(w, constants.ErrorInvalidClient, "Client authentication is required",
			http.StatusUnauthorized, []map[string]string{{"WWW-Authenticate": "Basic"}})
		return
	}

	c, ok := h.ClientStore.GetClientByID(creds.ClientID)
	if !ok || !c.ValidateSecret(creds.ClientSecret) {
		utils.WriteJSONError(w, constants.ErrorInvalidClient, "Invalid client credentials",
			http.StatusUnauthorized, []map[string]string{{"WWW-Authenticate": "Basic"}})
		return
	}

	tokenRequest := &model.TokenRequest{
		GrantType:    r.PostFormValue(constants.GrantTypeParam),
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Scope:        r.PostFormValue(constants.Scope),
		Username:     r.PostFormValue(constants.Username),
		Password:     r.PostFormValue(constants.Password),
		Code:         r.PostFormValue(constants.Code),
		RedirectURI:  r.PostFormValue(constants.RedirectURI),
	}

	grantHandler, ok := h.GrantProvider.GetGrantHandler(constants.GrantType(tokenRequest.GrantType))
	if !ok {
		utils.WriteJSONError(w, constants.ErrorUnsupportedGrantType, "Unsupported grant type",
			http.StatusBadRequest, nil)
		return
	}

	if errResp := grantHandler.ValidateGrant(tokenRequest, c); errResp != nil {
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription, http.StatusBadRequest, nil)
		return
	}

	tokenResponse, errResp := grantHandler.HandleGrant(tokenRequest, c)
	if errResp != nil {
		statusCode := http.StatusBadRequest
		if errResp.Error == constants.ErrorServerError {
			statusCode = http.StatusInternalServerError
		}
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription, statusCode, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	if err := json.NewEncoder(w).Encode(tokenResponse); err != nil {
		logger.Error("Failed to encode token response", log.Error(err))
	}
}
