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

// Package prompt decides what interaction, if any, the user owes before an
// authorization request may complete.
package prompt

import (
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/oauth/session"
)

// InteractionType classifies the outcome of prompt handling.
type InteractionType string

// Interaction outcomes.
const (
	// InteractionTypeView sends the user to an interaction page.
	InteractionTypeView InteractionType = "view"
	// InteractionTypeRedirect sends the user agent straight back to the client.
	InteractionTypeRedirect InteractionType = "redirect"
	// InteractionTypeAuthenticated continues silently with a remembered account.
	InteractionTypeAuthenticated InteractionType = "authenticated"
)

// ViewType names the interaction pages.
type ViewType string

// Interaction pages.
const (
	ViewLogin         ViewType = "login"
	ViewConsent       ViewType = "consent"
	ViewSelectAccount ViewType = "select_account"
)

// InteractionResult is the resolved next step for an authorization request.
type InteractionResult struct {
	Type              InteractionType
	View              ViewType
	RedirectURL       string
	AuthenticatedUser *session.RememberedAccount
}

// PromptHandlerInterface resolves the next interaction step for one prompt value.
type PromptHandlerInterface interface {
	HandlePrompt(request *model.AuthorizationRequest,
		rememberedAccounts []session.RememberedAccount) (*InteractionResult, error)
}
