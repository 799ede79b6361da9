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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/halcyonauth/halcyon/internal/oauth/jwt"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/user"
)

type OIDCTestSuite struct {
	suite.Suite
	jwtService jwt.ServiceInterface
	generator  IDTokenGeneratorInterface
}

func TestOIDCSuite(t *testing.T) {
	suite.Run(t, new(OIDCTestSuite))
}

func (suite *OIDCTestSuite) SetupTest() {
	config.ResetHalcyonRuntime()
	err := config.InitializeHalcyonRuntime("", &config.Config{
		OAuth: config.OAuthConfig{
			JWT: config.JWTConfig{
				Issuer:         "https://halcyon.example",
				ValidityPeriod: 3600,
				Secret:         "oidc-test-secret",
			},
		},
	})
	assert.NoError(suite.T(), err)

	suite.jwtService, err = jwt.NewService()
	assert.NoError(suite.T(), err)
	suite.generator = NewIDTokenGenerator(suite.jwtService)
}

func (suite *OIDCTestSuite) TearDownTest() {
	config.ResetHalcyonRuntime()
}

func (suite *OIDCTestSuite) TestGenerateIDToken() {
	u := &user.User{
		ID:       "user-1",
		Username: "alice",
		AdditionalInfo: map[string]interface{}{
			"email":          "alice@example.com",
			"email_verified": true,
		},
	}
	authTime := time.Now().Add(-time.Minute)

	idToken, err := suite.generator.GenerateIDToken(u, "client-1",
		[]string{ScopeOpenID, ScopeEmail}, authTime)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.TokenKindID, idToken.Kind)

	parsed, ok := suite.jwtService.Parse(idToken.Value)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "https://halcyon.example", parsed.Claims["iss"])
	assert.Equal(suite.T(), "client-1", parsed.Claims["aud"])
	assert.Equal(suite.T(), "user-1", parsed.Claims["sub"])
	assert.Equal(suite.T(), float64(authTime.Unix()), parsed.Claims["auth_time"])
	assert.Equal(suite.T(), "alice@example.com", parsed.Claims["email"])
	assert.Equal(suite.T(), true, parsed.Claims["email_verified"])
}

func (suite *OIDCTestSuite) TestGenerateIDTokenWithoutClaimScopes() {
	u := &user.User{ID: "user-1", Username: "alice"}

	idToken, err := suite.generator.GenerateIDToken(u, "client-1", []string{ScopeOpenID},
		time.Now())
	assert.NoError(suite.T(), err)

	parsed, ok := suite.jwtService.Parse(idToken.Value)
	assert.True(suite.T(), ok)
	_, hasEmail := parsed.Claims["email"]
	assert.False(suite.T(), hasEmail)
}

func (suite *OIDCTestSuite) TestEmailClaimsWithoutEmailAttribute() {
	handler := NewEmailScopeClaimHandler()
	claims := handler.CreateClaims(&user.User{ID: "user-1", Username: "alice"})

	assert.Equal(suite.T(), "null", claims["email"])
	assert.Equal(suite.T(), false, claims["email_verified"])
}

func (suite *OIDCTestSuite) TestEmailClaimsUnverifiedByDefault() {
	handler := NewEmailScopeClaimHandler()
	claims := handler.CreateClaims(&user.User{
		ID: "user-1",
		AdditionalInfo: map[string]interface{}{
			"email": "bob@example.com",
		},
	})

	assert.Equal(suite.T(), "bob@example.com", claims["email"])
	assert.Equal(suite.T(), false, claims["email_verified"])
}

func (suite *OIDCTestSuite) TestProfileClaims() {
	handler := NewProfileScopeClaimHandler()
	claims := handler.CreateClaims(&user.User{
		ID:       "user-1",
		Username: "alice",
		AdditionalInfo: map[string]interface{}{
			"name":   "Alice Doe",
			"locale": "en-US",
		},
	})

	assert.Equal(suite.T(), "alice", claims["preferred_username"])
	assert.Equal(suite.T(), "Alice Doe", claims["name"])
	assert.Equal(suite.T(), "en-US", claims["locale"])
	_, hasPicture := claims["picture"]
	assert.False(suite.T(), hasPicture)
}
