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

package granthandlers

import (
	"fmt"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
)

// GrantHandlerProviderInterface resolves the grant handler for a grant type.
type GrantHandlerProviderInterface interface {
	GetGrantHandler(grantType constants.GrantType) (GrantHandlerInterface, bool)
}

// GrantHandlerProvider holds the registered grant handlers keyed by grant type.
type GrantHandlerProvider struct {
	handlers map[constants.GrantType]GrantHandlerInterface
}

// RegisteredGrantHandler pairs a grant type with the handler that serves it.
type RegisteredGrantHandler struct {
	GrantType constants.GrantType
	Handler   GrantHandlerInterface
}

// NewGrantHandlerProvider creates a provider from the given registrations.
// Registering two handlers for the same grant type is a construction error.
func NewGrantHandlerProvider(registrations []RegisteredGrantHandler) (
	GrantHandlerProviderInterface, error) {
	handlers := make(map[constants.GrantType]GrantHandlerInterface, len(registrations))
	for _, registration := range registrations {
		if registration.Handler == nil {
			return nil, fmt.Errorf("nil grant handler registered for grant type: %s",
				registration.GrantType)
		}
		if _, exists := handlers[registration.GrantType]; exists {
			return nil, fmt.Errorf("duplicate grant handler registered for grant type: %s",
				registration.GrantType)
		}
		handlers[registration.GrantType] = registration.Handler
	}

	return &GrantHandlerProvider{
		handlers: handlers,
	}, nil
}

// GetGrantHandler returns the handler registered for the grant type.
func (p *GrantHandlerProvider) GetGrantHandler(grantType constants.GrantType) (
	GrantHandlerInterface, bool) {
	handler, ok := p.handlers[grantType]
	return handler, ok
}
