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
	"fmt"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
)

// FlowHandlerProviderInterface defines the contract for resolving a flow
// handler from a grant type.
type FlowHandlerProviderInterface interface {
	GetFlowHandler(grantType constants.GrantType) (FlowHandlerInterface, bool)
}

// FlowHandlerProvider holds the registered flow handlers keyed by grant type.
// The table is fixed at construction time.
type FlowHandlerProvider struct {
	handlers map[constants.GrantType]FlowHandlerInterface
}

// RegisteredFlowHandler pairs a grant type with the handler that serves it.
type RegisteredFlowHandler struct {
	GrantType constants.GrantType
	Handler   FlowHandlerInterface
}

// NewFlowHandlerProvider creates a provider from the given registrations.
// Registering two handlers for the same grant type is a construction error.
func NewFlowHandlerProvider(registrations []RegisteredFlowHandler) (FlowHandlerProviderInterface, error) {
	handlers := make(map[constants.GrantType]FlowHandlerInterface, len(registrations))
	for _, registration := range registrations {
		if registration.Handler == nil {
			return nil, fmt.Errorf("nil flow handler registered for grant type: %s",
				registration.GrantType)
		}
		if _, exists := handlers[registration.GrantType]; exists {
			return nil, fmt.Errorf("duplicate flow handler registered for grant type: %s",
				registration.GrantType)
		}
		handlers[registration.GrantType] = registration.Handler
	}

	return &FlowHandlerProvider{
		handlers: handlers,
	}, nil
}

// GetFlowHandler returns the handler registered for the grant type.
func (p *FlowHandlerProvider) GetFlowHandler(grantType constants.GrantType) (
	FlowHandlerInterface, bool) {
	handler, ok := p.handlers[grantType]
	return handler, ok
}
