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

package session

import (
	"sync"
	"time"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/system/utils"
)

// defaultSessionValidity bounds how long a parked authorization request stays redeemable.
const defaultSessionValidity = 10 * time.Minute

// SessionDataStoreInterface defines the contract for parking and redeeming
// in-flight authorization request state.
type SessionDataStoreInterface interface {
	AddSession(request *model.AuthorizationRequest) string
	GetSession(sessionID string) (*SessionData, bool)
	UpdateSession(data *SessionData) bool
	ClearSession(sessionID string)
}

// SessionDataStore is an in-memory session data store. Expired entries are
// dropped lazily on access.
type SessionDataStore struct {
	mu       sync.RWMutex
	sessions map[string]*SessionData
	validity time.Duration
}

// NewSessionDataStore creates a new in-memory session data store.
func NewSessionDataStore() SessionDataStoreInterface {
	return &SessionDataStore{
		sessions: make(map[string]*SessionData),
		validity: defaultSessionValidity,
	}
}

// AddSession parks the authorization request and returns the session data key
// identifying it.
func (s *SessionDataStore) AddSession(request *model.AuthorizationRequest) string {
	sessionID := utils.GenerateUUID()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &SessionData{
		SessionID:            sessionID,
		AuthorizationRequest: request,
		CreatedAt:            now,
		ExpiresAt:            now.Add(s.validity),
	}
	return sessionID
}

// GetSession returns the parked session data for the key, dropping it when expired.
func (s *SessionDataStore) GetSession(sessionID string) (*SessionData, bool) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if data.IsExpired() {
		s.ClearSession(sessionID)
		return nil, false
	}
	return data, true
}

// UpdateSession replaces the parked session data. It returns false when the
// session no longer exists.
func (s *SessionDataStore) UpdateSession(data *SessionData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[data.SessionID]; !ok {
		return false
	}
	s.sessions[data.SessionID] = data
	return true
}

// ClearSession removes the parked session data for the key.
func (s *SessionDataStore) ClearSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// RememberedAccountsStoreInterface tracks the accounts previously signed in
// from a browser session.
type RememberedAccountsStoreInterface interface {
	GetRememberedAccounts(browserSessionID string) []RememberedAccount
	RememberAccount(browserSessionID string, account RememberedAccount)
	ForgetAccounts(browserSessionID string)
}

// RememberedAccountsStore is an in-memory remembered accounts store.
type RememberedAccountsStore struct {
	mu       sync.RWMutex
	accounts map[string][]RememberedAccount
}

// NewRememberedAccountsStore creates a new in-memory remembered accounts store.
func NewRememberedAccountsStore() RememberedAccountsStoreInterface {
	return &RememberedAccountsStore{
		accounts: make(map[string][]RememberedAccount),
	}
}

// GetRememberedAccounts returns the accounts remembered for the browser session.
func (s *RememberedAccountsStore) GetRememberedAccounts(browserSessionID string) []RememberedAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := s.accounts[browserSessionID]
	result := make([]RememberedAccount, len(accounts))
	copy(result, accounts)
	return result
}

// RememberAccount adds the account to the browser session, replacing an
// earlier entry for the same user.
func (s *RememberedAccountsStore) RememberAccount(browserSessionID string,
	account RememberedAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.accounts[browserSessionID]
	for i, existing := range accounts {
		if existing.UserID == account.UserID {
			accounts[i] = account
			return
		}
	}
	s.accounts[browserSessionID] = append(accounts, account)
}

// ForgetAccounts drops all remembered accounts for the browser session.
func (s *RememberedAccountsStore) ForgetAccounts(browserSessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, browserSessionID)
}
