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

package redirect

import (
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

// AuthorizationCodeRedirectURLService builds redirect URLs for the
// authorization code flow.
type AuthorizationCodeRedirectURLService struct{}

// NewAuthorizationCodeRedirectURLService creates a redirect URL service for
// the authorization code flow.
func NewAuthorizationCodeRedirectURLService() RedirectURLCreationServiceInterface {
	return &AuthorizationCodeRedirectURLService{}
}

// SupportedGrantType returns the grant type this service serves.
func (s *AuthorizationCodeRedirectURLService) SupportedGrantType() constants.GrantType {
	return constants.GrantTypeAuthorizationCode
}

// CreateRedirectURL appends the authorization code, and the state when the
// client sent one, to the registered redirect URI.
func (s *AuthorizationCodeRedirectURLService) CreateRedirectURL(
	request *model.AuthorizationRequest, token *model.Token) (string, error) {
	if token == nil || token.Kind != model.TokenKindAuthorizationCode {
		return "", ErrUnsupportedTokenKind
	}

	queryParams := map[string]string{
		constants.Code: token.Value,
	}
	if request.State != "" {
		queryParams[constants.State] = request.State
	}

	return utils.GetURIWithQueryParams(request.RedirectURI, queryParams)
}
