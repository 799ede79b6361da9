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

package model

import "time"

// TokenKind discriminates the variants of an issued token.
type TokenKind string

// Token kinds.
const (
	TokenKindAccess            TokenKind = "access_token"
	TokenKindID                TokenKind = "id_token"
	TokenKindAuthorizationCode TokenKind = "authorization_code"
	// TokenKindHybrid carries several simultaneously issued artifacts in Extras
	// and doubles as an access token when its own value fields are populated.
	TokenKindHybrid TokenKind = "hybrid"
)

// Token is the single token type covering access tokens, ID tokens,
// authorization codes and hybrid-flow combined tokens.
type Token struct {
	Kind      TokenKind              `json:"kind"`
	Value     string                 `json:"value"`
	TokenType string                 `json:"token_type,omitempty"`
	IssuedAt  time.Time              `json:"issued_at,omitempty"`
	ExpiresAt time.Time              `json:"expires_at,omitempty"`
	Scope     string                 `json:"scope,omitempty"`
	Claims    map[string]interface{} `json:"claims,omitempty"`
	Extras    map[string]interface{} `json:"extras,omitempty"`
}

// ExpiresIn returns the token lifetime in seconds.
// The second return value is false when either timestamp is absent.
func (t *Token) ExpiresIn() (int64, bool) {
	if t.IssuedAt.IsZero() || t.ExpiresAt.IsZero() {
		return 0, false
	}
	return int64(t.ExpiresAt.Sub(t.IssuedAt).Seconds()), true
}

// Extra returns the side-channel value stored under the given key.
func (t *Token) Extra(key string) (interface{}, bool) {
	if t.Extras == nil {
		return nil, false
	}
	value, ok := t.Extras[key]
	return value, ok
}

// SetExtra stores a side-channel value under the given key.
func (t *Token) SetExtra(key string, value interface{}) {
	if t.Extras == nil {
		t.Extras = make(map[string]interface{})
	}
	t.Extras[key] = value
}
