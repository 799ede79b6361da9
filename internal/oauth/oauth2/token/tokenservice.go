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

// Package token provides access token issuance for the OAuth2 flows.
package token

import (
	"github.com/halcyonauth/halcyon/internal/oauth/jwt"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/utils"
	"github.com/halcyonauth/halcyon/internal/user"
)

// TokenServiceInterface defines the contract for issuing access tokens.
type TokenServiceInterface interface {
	GenerateAccessToken(u *user.User, scopes []string) (*model.Token, error)
}

// TokenService issues bearer access tokens as signed JWTs.
type TokenService struct {
	JWTService jwt.ServiceInterface
}

// NewTokenService creates a new access token service.
func NewTokenService(jwtService jwt.ServiceInterface) TokenServiceInterface {
	return &TokenService{
		JWTService: jwtService,
	}
}

// GenerateAccessToken issues a bearer access token for the user covering the
// given scopes.
func (s *TokenService) GenerateAccessToken(u *user.User, scopes []string) (*model.Token, error) {
	scope := utils.JoinScopes(scopes)

	claims := map[string]interface{}{
		"scope": scope,
	}
	metadata, err := s.JWTService.Issue(u, claims)
	if err != nil {
		return nil, err
	}

	return &model.Token{
		Kind:      model.TokenKindAccess,
		Value:     metadata.Token,
		TokenType: constants.TokenTypeBearer,
		IssuedAt:  metadata.IssuedAt,
		ExpiresAt: metadata.ExpiresAt,
		Scope:     scope,
		Claims:    metadata.Claims,
	}, nil
}
