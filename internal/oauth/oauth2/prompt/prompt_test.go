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

package prompt

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/oauth/session"
)

type PromptTestSuite struct {
	suite.Suite
	provider PromptHandlerProviderInterface
}

func TestPromptSuite(t *testing.T) {
	suite.Run(t, new(PromptTestSuite))
}

func (suite *PromptTestSuite) SetupTest() {
	suite.provider = NewPromptHandlerProvider()
}

func promptRequest(state string) *model.AuthorizationRequest {
	return &model.AuthorizationRequest{
		ClientID:    "client-1",
		RedirectURI: "https://example.com/callback",
		State:       state,
	}
}

func accounts(n int) []session.RememberedAccount {
	result := make([]session.RememberedAccount, n)
	for i := range result {
		result[i] = session.RememberedAccount{UserID: "user", Username: "user"}
	}
	return result
}

func (suite *PromptTestSuite) handle(promptType constants.PromptType,
	remembered []session.RememberedAccount, state string) *InteractionResult {
	handler, ok := suite.provider.GetPromptHandler(promptType)
	assert.True(suite.T(), ok)

	result, err := handler.HandlePrompt(promptRequest(state), remembered)
	assert.NoError(suite.T(), err)
	return result
}

func (suite *PromptTestSuite) TestLoginPromptAlwaysShowsLogin() {
	for _, n := range []int{0, 1, 3} {
		result := suite.handle(constants.PromptTypeLogin, accounts(n), "")
		assert.Equal(suite.T(), InteractionTypeView, result.Type)
		assert.Equal(suite.T(), ViewLogin, result.View)
	}
}

func (suite *PromptTestSuite) TestConsentPromptAlwaysShowsConsent() {
	result := suite.handle(constants.PromptTypeConsent, accounts(1), "")
	assert.Equal(suite.T(), InteractionTypeView, result.Type)
	assert.Equal(suite.T(), ViewConsent, result.View)
}

func (suite *PromptTestSuite) TestSelectAccountPromptShowsChooser() {
	result := suite.handle(constants.PromptTypeSelectAccount, accounts(2), "")
	assert.Equal(suite.T(), InteractionTypeView, result.Type)
	assert.Equal(suite.T(), ViewSelectAccount, result.View)
}

func (suite *PromptTestSuite) TestNonePromptWithSingleRememberedAccount() {
	remembered := []session.RememberedAccount{{UserID: "user-1", Username: "alice"}}

	result := suite.handle(constants.PromptTypeNone, remembered, "")
	assert.Equal(suite.T(), InteractionTypeAuthenticated, result.Type)
	assert.Equal(suite.T(), "user-1", result.AuthenticatedUser.UserID)
}

func (suite *PromptTestSuite) TestNonePromptWithoutRememberedAccounts() {
	result := suite.handle(constants.PromptTypeNone, nil, "xyz")
	assert.Equal(suite.T(), InteractionTypeRedirect, result.Type)

	parsed, err := url.Parse(result.RedirectURL)
	assert.NoError(suite.T(), err)
	query := parsed.Query()
	assert.Equal(suite.T(), constants.ErrorInteractionRequired, query.Get(constants.Error))
	assert.Equal(suite.T(), "xyz", query.Get(constants.State))
}

func (suite *PromptTestSuite) TestNonePromptWithSeveralRememberedAccounts() {
	result := suite.handle(constants.PromptTypeNone, accounts(2), "")
	assert.Equal(suite.T(), InteractionTypeRedirect, result.Type)

	parsed, err := url.Parse(result.RedirectURL)
	assert.NoError(suite.T(), err)
	query := parsed.Query()
	assert.Equal(suite.T(), constants.ErrorInteractionRequired, query.Get(constants.Error))
	assert.False(suite.T(), query.Has(constants.State))
}

func (suite *PromptTestSuite) TestCombinedPromptTransitions() {
	testCases := []struct {
		remembered int
		expected   ViewType
	}{
		{0, ViewLogin},
		{1, ViewConsent},
		{2, ViewSelectAccount},
		{5, ViewSelectAccount},
	}

	for _, tc := range testCases {
		result := suite.handle(constants.PromptTypeCombined, accounts(tc.remembered), "")
		assert.Equal(suite.T(), InteractionTypeView, result.Type)
		assert.Equal(suite.T(), tc.expected, result.View, "remembered=%d", tc.remembered)
	}
}

func (suite *PromptTestSuite) TestProviderCoversAllPromptTypes() {
	for _, promptType := range []constants.PromptType{
		constants.PromptTypeNone, constants.PromptTypeLogin, constants.PromptTypeConsent,
		constants.PromptTypeSelectAccount, constants.PromptTypeCombined,
	} {
		handler, ok := suite.provider.GetPromptHandler(promptType)
		assert.True(suite.T(), ok, "prompt=%s", promptType)
		assert.NotNil(suite.T(), handler)
	}

	_, ok := suite.provider.GetPromptHandler("create")
	assert.False(suite.T(), ok)
}
