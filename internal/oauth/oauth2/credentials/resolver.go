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

// Package credentials resolves client credentials from incoming requests.
package credentials

import (
	"net/http"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

// ClientCredentials carries the client identifier and secret presented on a request.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// ResolverInterface extracts client credentials from a request.
type ResolverInterface interface {
	Resolve(r *http.Request) (*ClientCredentials, bool)
}

// BasicAuthResolver reads credentials from the Authorization header.
type BasicAuthResolver struct{}

// Resolve extracts credentials from HTTP Basic authentication.
func (BasicAuthResolver) Resolve(r *http.Request) (*ClientCredentials, bool) {
	clientID, clientSecret, err := utils.ExtractBasicAuthCredentials(r)
	if err != nil || clientID == "" {
		return nil, false
	}
	return &ClientCredentials{ClientID: clientID, ClientSecret: clientSecret}, true
}

// FormBodyResolver reads credentials from the urlencoded request body.
type FormBodyResolver struct{}

// Resolve extracts credentials from the form body.
func (FormBodyResolver) Resolve(r *http.Request) (*ClientCredentials, bool) {
	clientID := r.PostFormValue(constants.ClientID)
	if clientID == "" {
		return nil, false
	}
	return &ClientCredentials{
		ClientID:     clientID,
		ClientSecret: r.PostFormValue(constants.ClientSecret),
	}, true
}

// QueryParamResolver reads credentials from the request query string.
type QueryParamResolver struct{}

// Resolve extracts credentials from the query parameters.
func (QueryParamResolver) Resolve(r *http.Request) (*ClientCredentials, bool) {
	query := r.URL.Query()
	clientID := query.Get(constants.ClientID)
	if clientID == "" {
		return nil, false
	}
	return &ClientCredentials{
		ClientID:     clientID,
		ClientSecret: query.Get(constants.ClientSecret),
	}, true
}

// ChainResolver tries each resolver in order and returns the first match.
type ChainResolver struct {
	resolvers []ResolverInterface
}

// NewChainResolver creates the default resolution chain: the Authorization
// header wins over the form body, which wins over the query string.
func NewChainResolver() ResolverInterface {
	return &ChainResolver{
		resolvers: []ResolverInterface{
			BasicAuthResolver{},
			FormBodyResolver{},
			QueryParamResolver{},
		},
	}
}

// Resolve walks the chain until a resolver yields credentials.
func (c *ChainResolver) Resolve(r *http.Request) (*ClientCredentials, bool) {
	for _, resolver := range c.resolvers {
		if creds, ok := resolver.Resolve(r); ok {
			return creds, true
		}
	}
	return nil, false
}
