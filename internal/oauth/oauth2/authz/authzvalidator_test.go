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

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/halcyonauth/halcyon/internal/client"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/granttype"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator AuthorizationValidatorInterface
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (suite *ValidatorTestSuite) SetupTest() {
	clientStore := client.NewInMemoryStore()
	clientStore.AddClient(client.Client{
		ClientID:     "client-1",
		ClientSecret: "secret",
		RedirectURIs: []string{"https://example.com/callback"},
		Type:         client.TypeConfidential,
	})

	suite.validator = NewAuthorizationValidator(clientStore, granttype.NewResolver())
}

func validAuthorizationRequest() *model.AuthorizationRequest {
	return &model.AuthorizationRequest{
		ClientID:      "client-1",
		ResponseTypes: []constants.ResponseType{constants.ResponseTypeCode},
		RedirectURI:   "https://example.com/callback",
		Scopes:        []string{"read"},
		State:         "xyz",
	}
}

func (suite *ValidatorTestSuite) TestValidRequest() {
	errResp, _ := suite.validator.ValidateInitialAuthorizationRequest(validAuthorizationRequest())
	assert.Nil(suite.T(), errResp)
}

func (suite *ValidatorTestSuite) TestMissingClientID() {
	request := validAuthorizationRequest()
	request.ClientID = ""

	errResp, redirectSafe := suite.validator.ValidateInitialAuthorizationRequest(request)
	assert.NotNil(suite.T(), errResp)
	assert.Equal(suite.T(), constants.ErrorInvalidRequest, errResp.Error)
	assert.False(suite.T(), redirectSafe)
}

func (suite *ValidatorTestSuite) TestUnknownClient() {
	request := validAuthorizationRequest()
	request.ClientID = "nobody"

	errResp, redirectSafe := suite.validator.ValidateInitialAuthorizationRequest(request)
	assert.NotNil(suite.T(), errResp)
	assert.Equal(suite.T(), constants.ErrorInvalidClient, errResp.Error)
	assert.False(suite.T(), redirectSafe)
}

func (suite *ValidatorTestSuite) TestUnregisteredRedirectURINeverRedirects() {
	request := validAuthorizationRequest()
	request.RedirectURI = "https://attacker.example/callback"

	errResp, redirectSafe := suite.validator.ValidateInitialAuthorizationRequest(request)
	assert.NotNil(suite.T(), errResp)
	assert.Equal(suite.T(), constants.ErrorInvalidRedirectURI, errResp.Error)
	assert.False(suite.T(), redirectSafe)
}

func (suite *ValidatorTestSuite) TestMissingRedirectURI() {
	request := validAuthorizationRequest()
	request.RedirectURI = ""

	errResp, redirectSafe := suite.validator.ValidateInitialAuthorizationRequest(request)
	assert.NotNil(suite.T(), errResp)
	assert.Equal(suite.T(), constants.ErrorInvalidRedirectURI, errResp.Error)
	assert.False(suite.T(), redirectSafe)
}

func (suite *ValidatorTestSuite) TestMissingResponseType() {
	request := validAuthorizationRequest()
	request.ResponseTypes = nil

	errResp, redirectSafe := suite.validator.ValidateInitialAuthorizationRequest(request)
	assert.NotNil(suite.T(), errResp)
	assert.Equal(suite.T(), constants.ErrorInvalidRequest, errResp.Error)
	assert.True(suite.T(), redirectSafe)
}

func (suite *ValidatorTestSuite) TestUnsupportedResponseType() {
	request := validAuthorizationRequest()
	request.ResponseTypes = []constants.ResponseType{"device_code"}

	errResp, redirectSafe := suite.validator.ValidateInitialAuthorizationRequest(request)
	assert.NotNil(suite.T(), errResp)
	assert.Equal(suite.T(), constants.ErrorUnsupportedResponseType, errResp.Error)
	assert.True(suite.T(), redirectSafe)
}

func (suite *ValidatorTestSuite) TestInvalidPrompt() {
	request := validAuthorizationRequest()
	request.Prompt = "create"

	errResp, redirectSafe := suite.validator.ValidateInitialAuthorizationRequest(request)
	assert.NotNil(suite.T(), errResp)
	assert.Equal(suite.T(), constants.ErrorInvalidRequest, errResp.Error)
	assert.True(suite.T(), redirectSafe)
}
