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

// Package client provides the OAuth2 client model and registry.
package client

import "crypto/subtle"

// Type describes whether a client can keep its secret confidential.
type Type string

// Client types.
const (
	TypePublic       Type = "public"
	TypeConfidential Type = "confidential"
)

// Client represents a registered OAuth2 client application.
type Client struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"-"`
	RedirectURIs []string `json:"redirect_uris"`
	Type         Type     `json:"type"`
}

// IsValidRedirectURI reports whether the given redirect URI is in the client's allow-list.
func (c *Client) IsValidRedirectURI(redirectURI string) bool {
	for _, uri := range c.RedirectURIs {
		if uri == redirectURI {
			return true
		}
	}
	return false
}

// ValidateSecret compares the given secret against the registered one in constant time.
func (c *Client) ValidateSecret(secret string) bool {
	if c.Type == TypePublic {
		return secret == ""
	}
	return subtle.ConstantTimeCompare([]byte(c.ClientSecret), []byte(secret)) == 1
}
