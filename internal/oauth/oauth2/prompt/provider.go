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
)

// PromptHandlerProviderInterface resolves the handler for a prompt value.
type PromptHandlerProviderInterface interface {
	GetPromptHandler(promptType constants.PromptType) (PromptHandlerInterface, bool)
}

// PromptHandlerProvider holds the prompt handlers. The table is built once at
// construction and never mutated afterwards, so lookups need no locking.
type PromptHandlerProvider struct {
	handlers map[constants.PromptType]PromptHandlerInterface
}

// NewPromptHandlerProvider creates a provider with the full prompt handler table.
func NewPromptHandlerProvider() PromptHandlerProviderInterface {
	return &PromptHandlerProvider{
		handlers: map[constants.PromptType]PromptHandlerInterface{
			constants.PromptTypeNone:          NewNonePromptHandler(),
			constants.PromptTypeLogin:         NewLoginPromptHandler(),
			constants.PromptTypeConsent:       NewConsentPromptHandler(),
			constants.PromptTypeSelectAccount: NewSelectAccountPromptHandler(),
			constants.PromptTypeCombined:      NewCombinedPromptHandler(),
		},
	}
}

// GetPromptHandler returns the handler for the prompt value.
func (p *PromptHandlerProvider) GetPromptHandler(promptType constants.PromptType) (
	PromptHandlerInterface, bool) {
	handler, ok := p.handlers[promptType]
	return handler, ok
}
