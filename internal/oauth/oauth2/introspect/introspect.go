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

// Package introspect implements token introspection.
package introspect

import (
	"github.com/halcyonauth/halcyon/internal/oauth/jwt"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
)

// IntrospectionResponse is the introspection result. Inactive tokens expose
// the active flag and nothing else.
type IntrospectionResponse struct {
	Active    bool   `json:"active"`
	Scope     string `json:"scope,omitempty"`
	Sub       string `json:"sub,omitempty"`
	Aud       string `json:"aud,omitempty"`
	Iss       string `json:"iss,omitempty"`
	TokenType string `json:"token_type,omitempty"`
	Exp       int64  `json:"exp,omitempty"`
	Iat       int64  `json:"iat,omitempty"`
}

// ServiceInterface defines the contract for token introspection.
type ServiceInterface interface {
	IntrospectToken(token string) IntrospectionResponse
}

// Service implements introspection over the JWT service.
type Service struct {
	JWTService jwt.ServiceInterface
}

// NewService creates a new introspection service.
func NewService(jwtService jwt.ServiceInterface) ServiceInterface {
	return &Service{
		JWTService: jwtService,
	}
}

// IntrospectToken inspects the token. Every failure mode, from a bad
// signature to plain expiry, collapses to an inactive result so callers
// learn nothing about why.
func (s *Service) IntrospectToken(token string) IntrospectionResponse {
	metadata, ok := s.JWTService.Parse(token)
	if !ok {
		return IntrospectionResponse{Active: false}
	}

	response := IntrospectionResponse{
		Active:    true,
		TokenType: constants.TokenTypeBearer,
	}
	if sub, ok := metadata.Claims["sub"].(string); ok {
		response.Sub = sub
	}
	if scope, ok := metadata.Claims["scope"].(string); ok {
		response.Scope = scope
	}
	if aud, ok := metadata.Claims["aud"].(string); ok {
		response.Aud = aud
	}
	if iss, ok := metadata.Claims["iss"].(string); ok {
		response.Iss = iss
	}
	if !metadata.ExpiresAt.IsZero() {
		response.Exp = metadata.ExpiresAt.Unix()
	}
	if !metadata.IssuedAt.IsZero() {
		response.Iat = metadata.IssuedAt.Unix()
	}
	return response
}
