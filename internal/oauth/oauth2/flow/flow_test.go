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

package flow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	authzmodel "github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/model"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/user"
)

type fakeAuthzCodeManager struct {
	issued int
	fail   bool
}

func (m *fakeAuthzCodeManager) GenerateAuthorizationCode(clientID, authorizedUserID,
	redirectURI string, scopes []string) (*authzmodel.AuthorizationCode, error) {
	if m.fail {
		return nil, errors.New("store unavailable")
	}
	m.issued++
	now := time.Now()
	return &authzmodel.AuthorizationCode{
		CodeID:           fmt.Sprintf("id-%d", m.issued),
		Code:             fmt.Sprintf("code-%d", m.issued),
		ClientID:         clientID,
		RedirectURI:      redirectURI,
		AuthorizedUserID: authorizedUserID,
		Scopes:           scopes,
		TimeCreated:      now,
		ExpiryTime:       now.Add(time.Minute),
		State:            "ACTIVE",
	}, nil
}

func (m *fakeAuthzCodeManager) ConsumeAuthorizationCode(codeValue string) (
	*authzmodel.AuthorizationCode, error) {
	return nil, errors.New("not implemented")
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(u *user.User, scopes []string) (*model.Token, error) {
	now := time.Now()
	return &model.Token{
		Kind:      model.TokenKindAccess,
		Value:     "access-token-value",
		TokenType: constants.TokenTypeBearer,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
		Scope:     "read",
	}, nil
}

type fakeIDTokenGenerator struct{}

func (fakeIDTokenGenerator) GenerateIDToken(u *user.User, clientID string, scopes []string,
	authTime time.Time) (*model.Token, error) {
	return &model.Token{
		Kind:  model.TokenKindID,
		Value: "id-token-value",
	}, nil
}

type FlowTestSuite struct {
	suite.Suite
	testUser *user.User
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowTestSuite))
}

func (suite *FlowTestSuite) SetupTest() {
	suite.testUser = &user.User{ID: "user-1", Username: "alice"}
}

func hybridRequest(responseTypes ...constants.ResponseType) *model.AuthorizationRequest {
	return &model.AuthorizationRequest{
		ClientID:      "client-1",
		ResponseTypes: responseTypes,
		GrantType:     constants.GrantTypeMultiple,
		RedirectURI:   "https://example.com/callback",
		Scopes:        []string{"read"},
	}
}

func (suite *FlowTestSuite) TestAuthorizationCodeFlow() {
	handler := NewAuthorizationCodeFlowHandler(&fakeAuthzCodeManager{})

	request := hybridRequest(constants.ResponseTypeCode)
	request.GrantType = constants.GrantTypeAuthorizationCode

	token, errResp := handler.HandleFlow(request, suite.testUser)
	assert.Nil(suite.T(), errResp)
	assert.Equal(suite.T(), model.TokenKindAuthorizationCode, token.Kind)
	assert.Equal(suite.T(), "code-1", token.Value)
}

func (suite *FlowTestSuite) TestAuthorizationCodeFlowStoreFailure() {
	handler := NewAuthorizationCodeFlowHandler(&fakeAuthzCodeManager{fail: true})

	token, errResp := handler.HandleFlow(hybridRequest(constants.ResponseTypeCode), suite.testUser)
	assert.Nil(suite.T(), token)
	assert.Equal(suite.T(), constants.ErrorServerError, errResp.Error)
}

func (suite *FlowTestSuite) TestImplicitFlow() {
	handler := NewImplicitFlowHandler(fakeTokenService{})

	request := hybridRequest(constants.ResponseTypeToken)
	request.GrantType = constants.GrantTypeImplicit

	token, errResp := handler.HandleFlow(request, suite.testUser)
	assert.Nil(suite.T(), errResp)
	assert.Equal(suite.T(), model.TokenKindAccess, token.Kind)
	assert.Equal(suite.T(), constants.TokenTypeBearer, token.TokenType)
}

func (suite *FlowTestSuite) TestHybridFlowProducesEveryRequestedArtifact() {
	allResponseTypes := []constants.ResponseType{
		constants.ResponseTypeCode, constants.ResponseTypeToken, constants.ResponseTypeIDToken,
	}

	// Every non-empty subset of the response types yields exactly the
	// artifacts it asked for.
	for mask := 1; mask < 1<<len(allResponseTypes); mask++ {
		var responseTypes []constants.ResponseType
		for i, rt := range allResponseTypes {
			if mask&(1<<i) != 0 {
				responseTypes = append(responseTypes, rt)
			}
		}

		handler := NewHybridFlowHandler(&fakeAuthzCodeManager{}, fakeTokenService{},
			fakeIDTokenGenerator{})
		request := hybridRequest(responseTypes...)

		token, errResp := handler.HandleFlow(request, suite.testUser)
		assert.Nil(suite.T(), errResp)
		assert.Equal(suite.T(), model.TokenKindHybrid, token.Kind)

		_, hasCode := token.Extra(constants.Code)
		assert.Equal(suite.T(), request.HasResponseType(constants.ResponseTypeCode), hasCode,
			"code artifact for %v", responseTypes)

		_, hasAccessToken := token.Extra(constants.AccessToken)
		assert.Equal(suite.T(), request.HasResponseType(constants.ResponseTypeToken),
			hasAccessToken, "access token artifact for %v", responseTypes)

		_, hasIDToken := token.Extra(constants.IDToken)
		assert.Equal(suite.T(), request.HasResponseType(constants.ResponseTypeIDToken),
			hasIDToken, "id token artifact for %v", responseTypes)

		if request.HasResponseType(constants.ResponseTypeToken) {
			assert.Equal(suite.T(), "access-token-value", token.Value)
			assert.Equal(suite.T(), constants.TokenTypeBearer, token.TokenType)
		} else {
			assert.Empty(suite.T(), token.Value)
		}
	}
}

func (suite *FlowTestSuite) TestProviderRejectsDuplicateRegistration() {
	handler := NewImplicitFlowHandler(fakeTokenService{})

	provider, err := NewFlowHandlerProvider([]RegisteredFlowHandler{
		{GrantType: constants.GrantTypeImplicit, Handler: handler},
		{GrantType: constants.GrantTypeImplicit, Handler: handler},
	})
	assert.Nil(suite.T(), provider)
	assert.Error(suite.T(), err)
}

func (suite *FlowTestSuite) TestProviderLookup() {
	handler := NewImplicitFlowHandler(fakeTokenService{})
	provider, err := NewFlowHandlerProvider([]RegisteredFlowHandler{
		{GrantType: constants.GrantTypeImplicit, Handler: handler},
	})
	assert.NoError(suite.T(), err)

	resolved, ok := provider.GetFlowHandler(constants.GrantTypeImplicit)
	assert.True(suite.T(), ok)
	assert.NotNil(suite.T(), resolved)

	_, ok = provider.GetFlowHandler(constants.GrantTypeAuthorizationCode)
	assert.False(suite.T(), ok)
}
