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
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/oauth/session"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

// LoginPromptHandler always sends the user to the login page.
type LoginPromptHandler struct{}

// NewLoginPromptHandler creates a login prompt handler.
func NewLoginPromptHandler() PromptHandlerInterface {
	return &LoginPromptHandler{}
}

// HandlePrompt requires a fresh login regardless of remembered accounts.
func (h *LoginPromptHandler) HandlePrompt(_ *model.AuthorizationRequest,
	_ []session.RememberedAccount) (*InteractionResult, error) {
	return &InteractionResult{
		Type: InteractionTypeView,
		View: ViewLogin,
	}, nil
}

// ConsentPromptHandler always sends the user to the consent page.
type ConsentPromptHandler struct{}

// NewConsentPromptHandler creates a consent prompt handler.
func NewConsentPromptHandler() PromptHandlerInterface {
	return &ConsentPromptHandler{}
}

// HandlePrompt requires explicit consent.
func (h *ConsentPromptHandler) HandlePrompt(_ *model.AuthorizationRequest,
	_ []session.RememberedAccount) (*InteractionResult, error) {
	return &InteractionResult{
		Type: InteractionTypeView,
		View: ViewConsent,
	}, nil
}

// SelectAccountPromptHandler always sends the user to the account chooser.
type SelectAccountPromptHandler struct{}

// NewSelectAccountPromptHandler creates a select-account prompt handler.
func NewSelectAccountPromptHandler() PromptHandlerInterface {
	return &SelectAccountPromptHandler{}
}

// HandlePrompt requires the user to pick an account.
func (h *SelectAccountPromptHandler) HandlePrompt(_ *model.AuthorizationRequest,
	_ []session.RememberedAccount) (*InteractionResult, error) {
	return &InteractionResult{
		Type: InteractionTypeView,
		View: ViewSelectAccount,
	}, nil
}

// NonePromptHandler handles prompt=none, where no interaction page may be shown.
type NonePromptHandler struct{}

// NewNonePromptHandler creates a none prompt handler.
func NewNonePromptHandler() PromptHandlerInterface {
	return &NonePromptHandler{}
}

// HandlePrompt continues silently when exactly one remembered account exists.
// Otherwise the user agent is sent back to the client with an
// interaction_required error, carrying the state when the client sent one.
func (h *NonePromptHandler) HandlePrompt(request *model.AuthorizationRequest,
	rememberedAccounts []session.RememberedAccount) (*InteractionResult, error) {
	if len(rememberedAccounts) == 1 {
		account := rememberedAccounts[0]
		return &InteractionResult{
			Type:              InteractionTypeAuthenticated,
			AuthenticatedUser: &account,
		}, nil
	}

	queryParams := map[string]string{
		constants.Error: constants.ErrorInteractionRequired,
	}
	if request.State != "" {
		queryParams[constants.State] = request.State
	}
	redirectURL, err := utils.GetURIWithQueryParams(request.RedirectURI, queryParams)
	if err != nil {
		return nil, err
	}

	return &InteractionResult{
		Type:        InteractionTypeRedirect,
		RedirectURL: redirectURL,
	}, nil
}

// CombinedPromptHandler handles the compound prompt, picking the interaction
// page from the remembered accounts: none remembered means login, exactly one
// means consent, several mean the account chooser.
type CombinedPromptHandler struct{}

// NewCombinedPromptHandler creates a combined prompt handler.
func NewCombinedPromptHandler() PromptHandlerInterface {
	return &CombinedPromptHandler{}
}

// HandlePrompt resolves the compound prompt to a concrete interaction page.
func (h *CombinedPromptHandler) HandlePrompt(_ *model.AuthorizationRequest,
	rememberedAccounts []session.RememberedAccount) (*InteractionResult, error) {
	var view ViewType
	switch {
	case len(rememberedAccounts) == 0:
		view = ViewLogin
	case len(rememberedAccounts) == 1:
		view = ViewConsent
	default:
		view = ViewSelectAccount
	}

	return &InteractionResult{
		Type: InteractionTypeView,
		View: view,
	}, nil
}
