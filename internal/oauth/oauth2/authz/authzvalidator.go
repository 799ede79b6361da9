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
	"github.com/halcyonauth/halcyon/internal/client"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/granttype"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
)

// AuthorizationValidatorInterface validates inbound authorization requests.
type AuthorizationValidatorInterface interface {
	ValidateInitialAuthorizationRequest(request *model.AuthorizationRequest) (
		*model.ErrorResponse, bool)
}

// AuthorizationValidator validates authorization requests against the client
// registry and the grant type registry.
type AuthorizationValidator struct {
	ClientStore       client.StoreInterface
	GrantTypeResolver granttype.ResolverInterface
}

// NewAuthorizationValidator creates a new authorization request validator.
func NewAuthorizationValidator(clientStore client.StoreInterface,
	grantTypeResolver granttype.ResolverInterface) AuthorizationValidatorInterface {
	return &AuthorizationValidator{
		ClientStore:       clientStore,
		GrantTypeResolver: grantTypeResolver,
	}
}

// ValidateInitialAuthorizationRequest validates the request. The boolean
// reports whether the error may be delivered to the redirect URI: client and
// redirect URI failures must never redirect, since the destination itself is
// not trusted yet.
func (v *AuthorizationValidator) ValidateInitialAuthorizationRequest(
	request *model.AuthorizationRequest) (*model.ErrorResponse, bool) {
	if request.ClientID == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Missing client_id parameter",
		}, false
	}

	c, ok := v.ClientStore.GetClientByID(request.ClientID)
	if !ok {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidClient,
			ErrorDescription: "Unknown client",
		}, false
	}

	if request.RedirectURI == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRedirectURI,
			ErrorDescription: "Missing redirect_uri parameter",
		}, false
	}
	if !c.IsValidRedirectURI(request.RedirectURI) {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRedirectURI,
			ErrorDescription: "Redirect URI is not registered for the client",
		}, false
	}

	// The redirect URI is trusted from here on; remaining failures redirect.
	if len(request.ResponseTypes) == 0 {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Missing response_type parameter",
		}, true
	}
	for _, responseType := range request.ResponseTypes {
		if !constants.IsValidResponseType(string(responseType)) {
			return &model.ErrorResponse{
				Error:            constants.ErrorUnsupportedResponseType,
				ErrorDescription: "Unsupported response type: " + string(responseType),
			}, true
		}
	}

	if v.GrantTypeResolver.ResolveGrantType(request.ResponseTypes) == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnsupportedResponseType,
			ErrorDescription: "No grant type supports the requested response types",
		}, true
	}

	if request.Prompt != "" && !constants.IsValidPromptType(string(request.Prompt)) {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Invalid prompt parameter",
		}, true
	}

	return nil, false
}
