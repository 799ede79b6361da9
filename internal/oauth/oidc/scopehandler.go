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

// Package oidc provides OpenID Connect ID token issuance and scope based claims.
package oidc

import (
	"github.com/halcyonauth/halcyon/internal/user"
)

// OIDC scopes with dedicated claim handlers.
const (
	ScopeOpenID  = "openid"
	ScopeEmail   = "email"
	ScopeProfile = "profile"
)

// ScopeClaimHandlerInterface maps a granted scope onto the ID token claims it unlocks.
type ScopeClaimHandlerInterface interface {
	SupportedScope() string
	CreateClaims(u *user.User) map[string]interface{}
}

// EmailScopeClaimHandler contributes the email claims.
type EmailScopeClaimHandler struct{}

// NewEmailScopeClaimHandler creates a claim handler for the email scope.
func NewEmailScopeClaimHandler() ScopeClaimHandlerInterface {
	return &EmailScopeClaimHandler{}
}

// SupportedScope returns the scope this handler serves.
func (h *EmailScopeClaimHandler) SupportedScope() string {
	return ScopeEmail
}

// CreateClaims returns the email claims for the user. Users without an email
// attribute get the literal "null" with email_verified false.
func (h *EmailScopeClaimHandler) CreateClaims(u *user.User) map[string]interface{} {
	email, ok := u.AdditionalInfo["email"].(string)
	if !ok || email == "" {
		return map[string]interface{}{
			"email":          "null",
			"email_verified": false,
		}
	}

	verified, _ := u.AdditionalInfo["email_verified"].(bool)
	return map[string]interface{}{
		"email":          email,
		"email_verified": verified,
	}
}

// ProfileScopeClaimHandler contributes the profile claims.
type ProfileScopeClaimHandler struct{}

// NewProfileScopeClaimHandler creates a claim handler for the profile scope.
func NewProfileScopeClaimHandler() ScopeClaimHandlerInterface {
	return &ProfileScopeClaimHandler{}
}

// SupportedScope returns the scope this handler serves.
func (h *ProfileScopeClaimHandler) SupportedScope() string {
	return ScopeProfile
}

// CreateClaims returns the profile claims for the user.
func (h *ProfileScopeClaimHandler) CreateClaims(u *user.User) map[string]interface{} {
	claims := map[string]interface{}{
		"preferred_username": u.Username,
	}
	for _, key := range []string{"name", "given_name", "family_name", "picture", "locale"} {
		if value, ok := u.AdditionalInfo[key].(string); ok && value != "" {
			claims[key] = value
		}
	}
	return claims
}
