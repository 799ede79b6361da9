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

// Package session holds in-flight authorization request state between the
// initial authorize call and the completion of user interaction.
package session

import (
	"time"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
)

// SessionData is the state parked for one authorization request while the
// user interacts with the server.
type SessionData struct {
	SessionID            string
	AuthorizationRequest *model.AuthorizationRequest
	AuthenticatedUserID  string
	LoginTime            time.Time
	CreatedAt            time.Time
	ExpiresAt            time.Time
}

// IsExpired reports whether the session data has outlived its validity.
func (s *SessionData) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// RememberedAccount is an account previously authenticated in this browser
// session and eligible for silent or select-account sign-in.
type RememberedAccount struct {
	UserID   string
	Username string
}
