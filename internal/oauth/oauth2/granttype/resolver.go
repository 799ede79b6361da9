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

// Package granttype provides resolution from requested response types to a grant type.
package granttype

import (
	"sort"
	"strings"
	"sync"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/system/log"
)

const loggerComponentName = "GrantTypeResolver"

// grantTypeEntry binds a grant type to the exact set of response types it supports.
type grantTypeEntry struct {
	grantType constants.GrantType
	supported []constants.ResponseType
}

// grantTypeTable enumerates the grant types resolvable at the authorization endpoint.
// The password grant is a token-endpoint-only grant and supports no response types.
var grantTypeTable = []grantTypeEntry{
	{constants.GrantTypeAuthorizationCode, []constants.ResponseType{constants.ResponseTypeCode}},
	{constants.GrantTypeImplicit, []constants.ResponseType{constants.ResponseTypeToken}},
	{constants.GrantTypeMultiple, []constants.ResponseType{
		constants.ResponseTypeCode, constants.ResponseTypeToken, constants.ResponseTypeIDToken}},
}

// ResolverInterface defines the interface for grant type resolution.
type ResolverInterface interface {
	ResolveGrantType(responseTypes []constants.ResponseType) constants.GrantType
}

// Resolver implements the ResolverInterface.
// Resolution results are memoized by the canonical form of the requested set.
type Resolver struct {
	sortedGrantTypes []grantTypeEntry
	cache            map[string]constants.GrantType
	mu               sync.RWMutex
}

// NewResolver creates a new grant type resolver.
func NewResolver() ResolverInterface {
	// Stable sort keeps declaration order as the tie-break between
	// grant types with equally sized supported sets.
	sorted := make([]grantTypeEntry, len(grantTypeTable))
	copy(sorted, grantTypeTable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].supported) < len(sorted[j].supported)
	})

	return &Resolver{
		sortedGrantTypes: sorted,
		cache:            make(map[string]constants.GrantType),
	}
}

// ResolveGrantType returns the first grant type whose supported response types
// form a superset of the requested ones, preferring single-response-type grants.
// An empty grant type is returned when no grant type covers the request.
func (r *Resolver) ResolveGrantType(responseTypes []constants.ResponseType) constants.GrantType {
	if len(responseTypes) == 0 {
		return ""
	}

	cacheKey := canonicalKey(responseTypes)

	r.mu.RLock()
	cached, ok := r.cache[cacheKey]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	for _, entry := range r.sortedGrantTypes {
		if supportsAll(entry.supported, responseTypes) {
			logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
			logger.Debug("Resolved grant type", log.String(log.LoggerKeyGrantType, string(entry.grantType)),
				log.String("responseTypes", cacheKey))

			r.mu.Lock()
			r.cache[cacheKey] = entry.grantType
			r.mu.Unlock()
			return entry.grantType
		}
	}

	return ""
}

// canonicalKey builds a cache key that is independent of the input order
// and of duplicated response types.
func canonicalKey(responseTypes []constants.ResponseType) string {
	names := make([]string, 0, len(responseTypes))
	seen := make(map[constants.ResponseType]bool, len(responseTypes))
	for _, rt := range responseTypes {
		if seen[rt] {
			continue
		}
		seen[rt] = true
		names = append(names, string(rt))
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// supportsAll reports whether every requested response type is in the supported set.
func supportsAll(supported, requested []constants.ResponseType) bool {
	for _, rt := range requested {
		found := false
		for _, s := range supported {
			if s == rt {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
