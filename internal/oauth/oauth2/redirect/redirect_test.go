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
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
)

type RedirectTestSuite struct {
	suite.Suite
}

func TestRedirectSuite(t *testing.T) {
	suite.Run(t, new(RedirectTestSuite))
}

func parseQuery(t *testing.T, rawURL string) url.Values {
	parsed, err := url.Parse(rawURL)
	assert.NoError(t, err)
	return parsed.Query()
}

func redirectRequest(state string, responseTypes ...constants.ResponseType) *model.AuthorizationRequest {
	return &model.AuthorizationRequest{
		ClientID:      "client-1",
		ResponseTypes: responseTypes,
		RedirectURI:   "https://example.com/callback",
		State:         state,
	}
}

func (suite *RedirectTestSuite) TestAuthorizationCodeRedirect() {
	service := NewAuthorizationCodeRedirectURLService()
	token := &model.Token{Kind: model.TokenKindAuthorizationCode, Value: "abc123"}

	redirectURL, err := service.CreateRedirectURL(
		redirectRequest("xyz", constants.ResponseTypeCode), token)
	assert.NoError(suite.T(), err)

	query := parseQuery(suite.T(), redirectURL)
	assert.Equal(suite.T(), "abc123", query.Get(constants.Code))
	assert.Equal(suite.T(), "xyz", query.Get(constants.State))
	assert.Len(suite.T(), query, 2)
}

func (suite *RedirectTestSuite) TestAuthorizationCodeRedirectWithoutState() {
	service := NewAuthorizationCodeRedirectURLService()
	token := &model.Token{Kind: model.TokenKindAuthorizationCode, Value: "abc123"}

	redirectURL, err := service.CreateRedirectURL(
		redirectRequest("", constants.ResponseTypeCode), token)
	assert.NoError(suite.T(), err)

	query := parseQuery(suite.T(), redirectURL)
	assert.False(suite.T(), query.Has(constants.State))
	assert.Len(suite.T(), query, 1)
}

func (suite *RedirectTestSuite) TestAuthorizationCodeRedirectWrongTokenKind() {
	service := NewAuthorizationCodeRedirectURLService()
	token := &model.Token{Kind: model.TokenKindAccess, Value: "abc123"}

	redirectURL, err := service.CreateRedirectURL(
		redirectRequest("", constants.ResponseTypeCode), token)
	assert.Empty(suite.T(), redirectURL)
	assert.ErrorIs(suite.T(), err, ErrUnsupportedTokenKind)
}

func (suite *RedirectTestSuite) TestImplicitRedirect() {
	service := NewImplicitRedirectURLService()
	now := time.Now()
	token := &model.Token{
		Kind:      model.TokenKindAccess,
		Value:     "token-value",
		TokenType: constants.TokenTypeBearer,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}

	redirectURL, err := service.CreateRedirectURL(
		redirectRequest("xyz", constants.ResponseTypeToken), token)
	assert.NoError(suite.T(), err)

	query := parseQuery(suite.T(), redirectURL)
	assert.Equal(suite.T(), "token-value", query.Get(constants.AccessToken))
	assert.Equal(suite.T(), constants.TokenTypeBearer, query.Get(constants.TokenType))
	assert.Equal(suite.T(), "3600", query.Get(constants.ExpiresIn))
	assert.Equal(suite.T(), "xyz", query.Get(constants.State))
	assert.Len(suite.T(), query, 4)
}

func (suite *RedirectTestSuite) TestImplicitRedirectWithoutLifetime() {
	service := NewImplicitRedirectURLService()
	token := &model.Token{
		Kind:      model.TokenKindAccess,
		Value:     "token-value",
		TokenType: constants.TokenTypeBearer,
	}

	redirectURL, err := service.CreateRedirectURL(
		redirectRequest("", constants.ResponseTypeToken), token)
	assert.NoError(suite.T(), err)

	query := parseQuery(suite.T(), redirectURL)
	assert.False(suite.T(), query.Has(constants.ExpiresIn))
	assert.Len(suite.T(), query, 2)
}

func (suite *RedirectTestSuite) TestImplicitRedirectWrongTokenKind() {
	service := NewImplicitRedirectURLService()
	token := &model.Token{Kind: model.TokenKindHybrid}

	_, err := service.CreateRedirectURL(redirectRequest("", constants.ResponseTypeToken), token)
	assert.ErrorIs(suite.T(), err, ErrUnsupportedTokenKind)
}

func (suite *RedirectTestSuite) TestMultipleRedirectCarriesPresentArtifactsOnly() {
	service := NewMultipleResponseTypesRedirectURLService()
	token := &model.Token{Kind: model.TokenKindHybrid}
	token.SetExtra(constants.Code, "abc123")
	token.SetExtra(constants.IDToken, "id-token-value")

	redirectURL, err := service.CreateRedirectURL(
		redirectRequest("xyz", constants.ResponseTypeCode, constants.ResponseTypeIDToken), token)
	assert.NoError(suite.T(), err)

	query := parseQuery(suite.T(), redirectURL)
	assert.Equal(suite.T(), "abc123", query.Get(constants.Code))
	assert.Equal(suite.T(), "id-token-value", query.Get(constants.IDToken))
	assert.Equal(suite.T(), "xyz", query.Get(constants.State))
	assert.False(suite.T(), query.Has(constants.AccessToken))
	assert.False(suite.T(), query.Has(constants.TokenType))
	assert.Len(suite.T(), query, 3)
}

func (suite *RedirectTestSuite) TestMultipleRedirectWithAccessToken() {
	service := NewMultipleResponseTypesRedirectURLService()
	token := &model.Token{Kind: model.TokenKindHybrid}
	token.SetExtra(constants.AccessToken, "token-value")
	token.SetExtra(constants.TokenType, constants.TokenTypeBearer)
	token.SetExtra(constants.ExpiresIn, int64(3600))
	token.SetExtra(constants.Code, "abc123")

	redirectURL, err := service.CreateRedirectURL(
		redirectRequest("", constants.ResponseTypeCode, constants.ResponseTypeToken), token)
	assert.NoError(suite.T(), err)

	query := parseQuery(suite.T(), redirectURL)
	assert.Equal(suite.T(), "token-value", query.Get(constants.AccessToken))
	assert.Equal(suite.T(), "3600", query.Get(constants.ExpiresIn))
	assert.Equal(suite.T(), "abc123", query.Get(constants.Code))
}

func (suite *RedirectTestSuite) TestMultipleRedirectRequiresSeveralResponseTypes() {
	service := NewMultipleResponseTypesRedirectURLService()
	token := &model.Token{Kind: model.TokenKindHybrid}

	_, err := service.CreateRedirectURL(redirectRequest("", constants.ResponseTypeCode), token)
	assert.ErrorIs(suite.T(), err, ErrInvalidResponseTypes)
}

func (suite *RedirectTestSuite) TestMultipleRedirectWrongTokenKind() {
	service := NewMultipleResponseTypesRedirectURLService()
	token := &model.Token{Kind: model.TokenKindAccess}

	_, err := service.CreateRedirectURL(
		redirectRequest("", constants.ResponseTypeCode, constants.ResponseTypeToken), token)
	assert.ErrorIs(suite.T(), err, ErrUnsupportedTokenKind)
}

func (suite *RedirectTestSuite) TestProviderRejectsDuplicateServices() {
	provider, err := NewRedirectURLProvider([]RedirectURLCreationServiceInterface{
		NewImplicitRedirectURLService(),
		NewImplicitRedirectURLService(),
	})
	assert.Nil(suite.T(), provider)
	assert.Error(suite.T(), err)
}

func (suite *RedirectTestSuite) TestProviderLookup() {
	provider, err := NewRedirectURLProvider([]RedirectURLCreationServiceInterface{
		NewAuthorizationCodeRedirectURLService(),
		NewImplicitRedirectURLService(),
		NewMultipleResponseTypesRedirectURLService(),
	})
	assert.NoError(suite.T(), err)

	service, ok := provider.GetRedirectURLCreationService(constants.GrantTypeMultiple)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), constants.GrantTypeMultiple, service.SupportedGrantType())

	_, ok = provider.GetRedirectURLCreationService(constants.GrantTypePassword)
	assert.False(suite.T(), ok)
}
