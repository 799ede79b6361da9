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

// Package constants defines constants used across the OAuth2 module.
package constants

// OAuth2 request parameters. GrantTypeParam and ResponseTypeParam carry the
// Param suffix to keep the names distinct from the typed enums below.
const (
	GrantTypeParam    = "grant_type"
	ClientID          = "client_id"
	ClientSecret      = "client_secret"
	RedirectURI       = "redirect_uri"
	Username          = "username"
	Password          = "password"
	Scope             = "scope"
	Code              = "code"
	ResponseTypeParam = "response_type"
	State             = "state"
	Prompt            = "prompt"
	AccessToken       = "access_token"
	IDToken           = "id_token"
	TokenType         = "token_type"
	ExpiresIn         = "expires_in"
	Error             = "error"
	ErrorDescription  = "error_description"
)

// Server OAuth constants.
const (
	SessionDataKey     = "sessionDataKey"
	RememberedAccounts = "rememberedAccounts"
)

// OAuth2 endpoints.
const (
	OAuth2TokenEndpoint         = "/oauth2/token" // #nosec G101
	OAuth2AuthorizationEndpoint = "/oauth2/authorize"
	OAuth2LoginEndpoint         = "/oauth2/login"
	OAuth2IntrospectionEndpoint = "/oauth2/introspect"
)

// GrantType defines the OAuth2 grant types.
type GrantType string

// OAuth2 grant types.
const (
	GrantTypeAuthorizationCode GrantType = "authorization_code"
	GrantTypeImplicit          GrantType = "implicit"
	GrantTypePassword          GrantType = "password"
	// GrantTypeMultiple covers OIDC hybrid requests carrying more than one response type.
	GrantTypeMultiple GrantType = "multiple"
)

// ResponseType defines the OAuth2 response types.
type ResponseType string

// OAuth2 response types.
const (
	ResponseTypeCode    ResponseType = "code"
	ResponseTypeToken   ResponseType = "token"
	ResponseTypeIDToken ResponseType = "id_token"
)

// FlowSideType describes whether a response type value is safely exposed in a browser redirect.
type FlowSideType string

// Flow side types.
const (
	FlowSideClient FlowSideType = "client_side"
	FlowSideServer FlowSideType = "server_side"
	FlowSideBoth   FlowSideType = "both"
)

// responseTypeFlowSides maps each known response type to its flow side.
var responseTypeFlowSides = map[ResponseType]FlowSideType{
	ResponseTypeCode:    FlowSideServer,
	ResponseTypeToken:   FlowSideClient,
	ResponseTypeIDToken: FlowSideBoth,
}

// FlowSide returns the flow side of the response type, or an empty value for unknown types.
func (rt ResponseType) FlowSide() FlowSideType {
	return responseTypeFlowSides[rt]
}

// IsValidResponseType reports whether the given value is a known response type.
func IsValidResponseType(value string) bool {
	_, ok := responseTypeFlowSides[ResponseType(value)]
	return ok
}

// PromptType defines the OIDC prompt types.
type PromptType string

// OIDC prompt types.
const (
	PromptTypeNone          PromptType = "none"
	PromptTypeLogin         PromptType = "login"
	PromptTypeConsent       PromptType = "consent"
	PromptTypeSelectAccount PromptType = "select_account"
	// PromptTypeCombined resolves to one of the other prompts based on the remembered accounts.
	PromptTypeCombined PromptType = "combined"
)

// IsValidPromptType reports whether the given value is a known prompt type.
func IsValidPromptType(value string) bool {
	switch PromptType(value) {
	case PromptTypeNone, PromptTypeLogin, PromptTypeConsent, PromptTypeSelectAccount, PromptTypeCombined:
		return true
	}
	return false
}

// OAuth2 token types.
const (
	TokenTypeBearer = "Bearer"
)

// OAuth2 error codes.
const (
	ErrorInvalidRequest          = "invalid_request"
	ErrorInvalidClient           = "invalid_client"
	ErrorInvalidGrant            = "invalid_grant"
	ErrorInvalidRedirectURI      = "invalid_redirect_uri"
	ErrorUnauthorizedClient      = "unauthorized_client"
	ErrorUnsupportedGrantType    = "unsupported_grant_type"
	ErrorInvalidScope            = "invalid_scope"
	ErrorServerError             = "server_error"
	ErrorUnsupportedResponseType = "unsupported_response_type"
	ErrorAccessDenied            = "access_denied"
	ErrorInteractionRequired     = "interaction_required"
)
