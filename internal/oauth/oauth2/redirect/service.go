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

// Package redirect builds the redirect URLs that carry flow results back to clients.
package redirect

import (
	"errors"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
)

// Errors returned by the redirect URL creation services.
var (
	// ErrUnsupportedTokenKind is returned when a service receives a token of a
	// kind it cannot render into a redirect.
	ErrUnsupportedTokenKind = errors.New("unsupported token kind for redirect URL creation")
	// ErrInvalidResponseTypes is returned when the request's response types do
	// not match the service.
	ErrInvalidResponseTypes = errors.New("invalid response types for redirect URL creation")
)

// RedirectURLCreationServiceInterface builds the redirect URL for a completed
// flow of the grant type it supports.
type RedirectURLCreationServiceInterface interface {
	SupportedGrantType() constants.GrantType
	CreateRedirectURL(request *model.AuthorizationRequest, token *model.Token) (string, error)
}
