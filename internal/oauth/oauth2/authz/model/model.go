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

// Package model defines the data structures used for authorization code handling.
package model

import "time"

// AuthorizationCode represents a one-time authorization code bound to a user and client.
type AuthorizationCode struct {
	CodeID           string    `json:"code_id"`
	Code             string    `json:"code"`
	ClientID         string    `json:"client_id"`
	RedirectURI      string    `json:"redirect_uri"`
	AuthorizedUserID string    `json:"authorized_user_id"`
	Scopes           []string  `json:"scopes"`
	TimeCreated      time.Time `json:"time_created"`
	ExpiryTime       time.Time `json:"expiry_time"`
	State            string    `json:"state"`
}

// IsExpired reports whether the code has passed its expiry time.
func (c *AuthorizationCode) IsExpired() bool {
	return time.Now().After(c.ExpiryTime)
}
