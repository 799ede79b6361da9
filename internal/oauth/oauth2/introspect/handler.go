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

package introspect

import (
	"encoding/json"
	"net/http"

	"github.com/halcyonauth/halcyon/internal/client"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/credentials"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

const handlerLoggerComponentName = "IntrospectionHandler"

// Handler serves POST /oauth2/introspect.
type Handler struct {
	ClientStore         client.StoreInterface
	CredentialsResolver credentials.ResolverInterface
	Service             ServiceInterface
}

// NewHandler creates a new introspection endpoint handler.
func NewHandler(clientStore client.StoreInterface,
	credentialsResolver credentials.ResolverInterface, service ServiceInterface) *Handler {
	return &Handler{
		ClientStore:         clientStore,
		CredentialsResolver: credentialsResolver,
		Service:             service,
	}
}

// HandleIntrospectionRequest authenticates the caller and introspects the
// submitted token.
func (h *Handler) HandleIntrospectionRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

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

	token := r.PostFormValue("token")
	response := h.Service.IntrospectToken(token)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode introspection response", log.Error(err))
	}
}
