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
	"strconv"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

// ImplicitRedirectURLService builds redirect URLs for the implicit flow.
type ImplicitRedirectURLService struct{}

// NewImplicitRedirectURLService creates a redirect URL service for the
// implicit flow.
func NewImplicitRedirectURLService() RedirectURLCreationServiceInterface {
	return &ImplicitRedirectURLService{}
}

// SupportedGrantType returns the grant type this service serves.
func (s *ImplicitRedirectURLService) SupportedGrantType() constants.GrantType {
	return constants.GrantTypeImplicit
}

// CreateRedirectURL appends the access token, its type, its lifetime when
// known, and the state when the client sent one.
func (s *ImplicitRedirectURLService) CreateRedirectURL(request *model.AuthorizationRequest,
	token *model.Token) (string, error) {
	if token == nil || token.Kind != model.TokenKindAccess {
		return "", ErrUnsupportedTokenKind
	}

	queryParams := map[string]string{
		constants.AccessToken: token.Value,
		constants.TokenType:   token.TokenType,
	}
	if expiresIn, ok := token.ExpiresIn(); ok {
		queryParams[constants.ExpiresIn] = strconv.FormatInt(expiresIn, 10)
	}
	if request.State != "" {
		queryParams[constants.State] = request.State
	}

	return utils.GetURIWithQueryParams(request.RedirectURI, queryParams)
}
