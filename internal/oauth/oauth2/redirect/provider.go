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
	"fmt"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
)

// RedirectURLProviderInterface resolves the redirect URL creation service for
// a grant type.
type RedirectURLProviderInterface interface {
	GetRedirectURLCreationService(grantType constants.GrantType) (
		RedirectURLCreationServiceInterface, bool)
}

// RedirectURLProvider holds the registered services keyed by their supported
// grant type. The table is fixed at construction time.
type RedirectURLProvider struct {
	services map[constants.GrantType]RedirectURLCreationServiceInterface
}

// NewRedirectURLProvider creates a provider from the given services, keyed by
// each service's supported grant type. Two services claiming the same grant
// type is a construction error.
func NewRedirectURLProvider(services []RedirectURLCreationServiceInterface) (
	RedirectURLProviderInterface, error) {
	byGrantType := make(map[constants.GrantType]RedirectURLCreationServiceInterface, len(services))
	for _, service := range services {
		grantType := service.SupportedGrantType()
		if _, exists := byGrantType[grantType]; exists {
			return nil, fmt.Errorf("duplicate redirect URL creation service for grant type: %s",
				grantType)
		}
		byGrantType[grantType] = service
	}

	return &RedirectURLProvider{
		services: byGrantType,
	}, nil
}

// GetRedirectURLCreationService returns the service for the grant type.
func (p *RedirectURLProvider) GetRedirectURLCreationService(grantType constants.GrantType) (
	RedirectURLCreationServiceInterface, bool) {
	service, ok := p.services[grantType]
	return service, ok
}
