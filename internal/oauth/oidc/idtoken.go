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

package oidc

import (
	"time"

	"github.com/halcyonauth/halcyon/internal/oauth/jwt"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/user"
)

// IDTokenGeneratorInterface defines the contract for issuing OIDC ID tokens.
type IDTokenGeneratorInterface interface {
	GenerateIDToken(u *user.User, clientID string, scopes []string,
		authTime time.Time) (*model.Token, error)
}

// IDTokenGenerator issues ID tokens, enriching the claims through the
// registered scope claim handlers.
type IDTokenGenerator struct {
	JWTService    jwt.ServiceInterface
	claimHandlers map[string]ScopeClaimHandlerInterface
}

// NewIDTokenGenerator creates an ID token generator with the default scope
// claim handlers.
func NewIDTokenGenerator(jwtService jwt.ServiceInterface) IDTokenGeneratorInterface {
	handlers := []ScopeClaimHandlerInterface{
		NewEmailScopeClaimHandler(),
		NewProfileScopeClaimHandler(),
	}
	byScope := make(map[string]ScopeClaimHandlerInterface, len(handlers))
	for _, handler := range handlers {
		byScope[handler.SupportedScope()] = handler
	}

	return &IDTokenGenerator{
		JWTService:    jwtService,
		claimHandlers: byScope,
	}
}

// GenerateIDToken issues a signed ID token for the user and client. Scopes
// with a registered claim handler contribute additional claims.
func (g *IDTokenGenerator) GenerateIDToken(u *user.User, clientID string, scopes []string,
	authTime time.Time) (*model.Token, error) {
	jwtConfig := config.GetHalcyonRuntime().Config.OAuth.JWT

	claims := map[string]interface{}{
		"iss":       jwtConfig.Issuer,
		"aud":       clientID,
		"auth_time": authTime.Unix(),
	}
	for _, scope := range scopes {
		handler, ok := g.claimHandlers[scope]
		if !ok {
			continue
		}
		for key, value := range handler.CreateClaims(u) {
			claims[key] = value
		}
	}

	metadata, err := g.JWTService.Issue(u, claims)
	if err != nil {
		return nil, err
	}

	return &model.Token{
		Kind:      model.TokenKindID,
		Value:     metadata.Token,
		IssuedAt:  metadata.IssuedAt,
		ExpiresAt: metadata.ExpiresAt,
		Claims:    metadata.Claims,
	}, nil
}
