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

// Package model defines the data structures used in the OAuth2 module.
package model

import (
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
)

// AuthorizationRequest represents an inbound authorization request.
// It is immutable once built and held for the duration of the interaction.
type AuthorizationRequest struct {
	ClientID      string                   `json:"client_id"`
	ResponseTypes []constants.ResponseType `json:"response_types"`
	GrantType     constants.GrantType      `json:"grant_type"`
	RedirectURI   string                   `json:"redirect_uri"`
	Scopes        []string                 `json:"scopes"`
	State         string                   `json:"state,omitempty"`
	Prompt        constants.PromptType     `json:"prompt,omitempty"`
}

// HasResponseType reports whether the request carries the given response type.
func (r *AuthorizationRequest) HasResponseType(responseType constants.ResponseType) bool {
	for _, rt := range r.ResponseTypes {
		if rt == responseType {
			return true
		}
	}
	return false
}

// TokenRequest represents the OAuth2 token request.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Scope        string `json:"scope,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	Code         string `json:"code,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
}

// TokenResponse represents the OAuth2 token response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

// ErrorResponse represents an OAuth2 protocol error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
