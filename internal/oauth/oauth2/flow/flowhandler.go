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

// Package flow provides the authorization flow handlers and their dispatch.
package flow

import (
	authzmodel "github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/model"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/user"
)

// FlowHandlerInterface defines the contract for handling an authorization flow
// for an already authenticated user.
type FlowHandlerInterface interface {
	HandleFlow(request *model.AuthorizationRequest, u *user.User) (*model.Token, *model.ErrorResponse)
}

// AuthorizationCodeIssuerInterface is the slice of the authorization code
// manager that code-bearing flows need.
type AuthorizationCodeIssuerInterface interface {
	GenerateAuthorizationCode(clientID, authorizedUserID, redirectURI string,
		scopes []string) (*authzmodel.AuthorizationCode, error)
}
