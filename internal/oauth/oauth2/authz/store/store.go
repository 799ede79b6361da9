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

// Package store provides authorization code persistence and retrieval.
package store

import (
	"sync"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/model"
)

// AuthorizationCodeStoreInterface defines the interface for managing authorization codes.
type AuthorizationCodeStoreInterface interface {
	// InsertAuthorizationCode persists a new authorization code.
	// A code value collision is rejected with ErrDuplicateAuthorizationCode.
	InsertAuthorizationCode(authzCode model.AuthorizationCode) error
	// GetAuthorizationCodeByValue retrieves an authorization code by its code value.
	GetAuthorizationCodeByValue(codeValue string) (*model.AuthorizationCode, error)
	// ConsumeAuthorizationCode atomically retrieves and invalidates an active
	// authorization code. At most one concurrent caller succeeds per code value.
	ConsumeAuthorizationCode(codeValue string) (*model.AuthorizationCode, error)
	// DeleteAuthorizationCode removes an authorization code by its identifier.
	DeleteAuthorizationCode(codeID string) error
	// CountAuthorizationCodes returns the number of stored authorization codes.
	CountAuthorizationCodes() (int64, error)
}

// InMemoryAuthorizationCodeStore implements the store over a mutex guarded map.
type InMemoryAuthorizationCodeStore struct {
	codes map[string]model.AuthorizationCode
	mu    sync.RWMutex
}

// NewInMemoryAuthorizationCodeStore creates a new in-memory authorization code store.
func NewInMemoryAuthorizationCodeStore() AuthorizationCodeStoreInterface {
	return &InMemoryAuthorizationCodeStore{
		codes: make(map[string]model.AuthorizationCode),
	}
}

// InsertAuthorizationCode persists a new authorization code keyed by its code value.
func (s *InMemoryAuthorizationCodeStore) InsertAuthorizationCode(authzCode model.AuthorizationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.codes[authzCode.Code]; exists {
		return constants.ErrDuplicateAuthorizationCode
	}
	s.codes[authzCode.Code] = authzCode
	return nil
}

// GetAuthorizationCodeByValue retrieves an authorization code by its code value.
func (s *InMemoryAuthorizationCodeStore) GetAuthorizationCodeByValue(codeValue string) (
	*model.AuthorizationCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code, exists := s.codes[codeValue]
	if !exists {
		return nil, constants.ErrAuthorizationCodeNotFound
	}
	return &code, nil
}

// ConsumeAuthorizationCode removes and returns the code under a single lock,
// so two concurrent consumers can never both succeed.
func (s *InMemoryAuthorizationCodeStore) ConsumeAuthorizationCode(codeValue string) (
	*model.AuthorizationCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, exists := s.codes[codeValue]
	if !exists || code.State != constants.AuthCodeStateActive {
		return nil, constants.ErrAuthorizationCodeNotFound
	}
	delete(s.codes, codeValue)
	return &code, nil
}

// DeleteAuthorizationCode removes an authorization code by its identifier.
func (s *InMemoryAuthorizationCodeStore) DeleteAuthorizationCode(codeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for value, code := range s.codes {
		if code.CodeID == codeID {
			delete(s.codes, value)
			return nil
		}
	}
	return nil
}

// CountAuthorizationCodes returns the number of stored authorization codes.
func (s *InMemoryAuthorizationCodeStore) CountAuthorizationCodes() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.codes)), nil
}
