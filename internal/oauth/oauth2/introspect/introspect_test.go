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

package introspect

import (
	"testing"
	"time"

	golangjwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/halcyonauth/halcyon/internal/oauth/jwt"
	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/user"
)

type IntrospectTestSuite struct {
	suite.Suite
	jwtService jwt.ServiceInterface
	service    ServiceInterface
}

func TestIntrospectSuite(t *testing.T) {
	suite.Run(t, new(IntrospectTestSuite))
}

func (suite *IntrospectTestSuite) SetupTest() {
	config.ResetHalcyonRuntime()
	err := config.InitializeHalcyonRuntime("", &config.Config{
		OAuth: config.OAuthConfig{
			JWT: config.JWTConfig{
				Issuer:         "halcyon",
				ValidityPeriod: 3600,
				Secret:         "introspection-test-secret",
			},
		},
	})
	assert.NoError(suite.T(), err)

	suite.jwtService, err = jwt.NewService()
	assert.NoError(suite.T(), err)
	suite.service = NewService(suite.jwtService)
}

func (suite *IntrospectTestSuite) TearDownTest() {
	config.ResetHalcyonRuntime()
}

func (suite *IntrospectTestSuite) TestActiveToken() {
	metadata, err := suite.jwtService.Issue(&user.User{ID: "user-1"},
		map[string]interface{}{"scope": "read write"})
	assert.NoError(suite.T(), err)

	response := suite.service.IntrospectToken(metadata.Token)
	assert.True(suite.T(), response.Active)
	assert.Equal(suite.T(), "user-1", response.Sub)
	assert.Equal(suite.T(), "read write", response.Scope)
	assert.Equal(suite.T(), "halcyon", response.Iss)
	assert.Equal(suite.T(), metadata.ExpiresAt.Unix(), response.Exp)
	assert.Equal(suite.T(), metadata.IssuedAt.Unix(), response.Iat)
}

func (suite *IntrospectTestSuite) TestMalformedTokenIsInactive() {
	response := suite.service.IntrospectToken("not-a-jwt")
	assert.Equal(suite.T(), IntrospectionResponse{Active: false}, response)
}

func (suite *IntrospectTestSuite) TestEmptyTokenIsInactive() {
	response := suite.service.IntrospectToken("")
	assert.Equal(suite.T(), IntrospectionResponse{Active: false}, response)
}

func (suite *IntrospectTestSuite) TestExpiredTokenIsInactive() {
	expired := golangjwt.NewWithClaims(golangjwt.SigningMethodHS256, golangjwt.MapClaims{
		"sub":   "user-1",
		"scope": "read write",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("introspection-test-secret"))
	assert.NoError(suite.T(), err)

	response := suite.service.IntrospectToken(signed)
	assert.Equal(suite.T(), IntrospectionResponse{Active: false}, response)
}

func (suite *IntrospectTestSuite) TestTamperedTokenIsInactive() {
	metadata, err := suite.jwtService.Issue(&user.User{ID: "user-1"}, nil)
	assert.NoError(suite.T(), err)

	tampered := metadata.Token[:len(metadata.Token)-4] + "AAAA"
	response := suite.service.IntrospectToken(tampered)
	assert.Equal(suite.T(), IntrospectionResponse{Active: false}, response)
}
