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
	"fmt"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

// MultipleResponseTypesRedirectURLService builds redirect URLs for hybrid
// requests carrying more than one response type. Only the artifacts the flow
// actually produced appear in the URL.
type MultipleResponseTypesRedirectURLService struct{}

// NewMultipleResponseTypesRedirectURLService creates a redirect URL service
// for hybrid requests.
func NewMultipleResponseTypesRedirectURLService() RedirectURLCreationServiceInterface {
	return &MultipleResponseTypesRedirectURLService{}
}

// SupportedGrantType returns the grant type this service serves.
func (s *MultipleResponseTypesRedirectURLService) SupportedGrantType() constants.GrantType {
	return constants.GrantTypeMultiple
}

// CreateRedirectURL appends every artifact present on the combined token, and
// the state when the client sent one.
func (s *MultipleResponseTypesRedirectURLService) CreateRedirectURL(
	request *model.AuthorizationRequest, token *model.Token) (string, error) {
	if token == nil || token.Kind != model.TokenKindHybrid {
		return "", ErrUnsupportedTokenKind
	}
	if len(request.ResponseTypes) < 2 {
		return "", ErrInvalidResponseTypes
	}

	queryParams := make(map[string]string)
	for _, key := range []string{constants.Code, constants.AccessToken, constants.TokenType,
		constants.ExpiresIn, constants.IDToken} {
		value, ok := token.Extra(key)
		if !ok {
			continue
		}
		queryParams[key] = fmt.Sprintf("%v", value)
	}
	if request.State != "" {
		queryParams[constants.State] = request.State
	}

	return utils.GetURIWithQueryParams(request.RedirectURI, queryParams)
}
