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

package user

import "sync"

// StoreInterface defines the interface for user lookup and registration.
type StoreInterface interface {
	AddUser(user User)
	GetUserByID(id string) (*User, bool)
	GetUserByUsername(username string) (*User, bool)
}

// InMemoryStore is a thread safe in-memory implementation of StoreInterface.
type InMemoryStore struct {
	usersByID       map[string]User
	usersByUsername map[string]User
	mu              sync.RWMutex
}

// NewInMemoryStore creates a new in-memory user store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		usersByID:       make(map[string]User),
		usersByUsername: make(map[string]User),
	}
}

// AddUser registers a user in the store.
func (s *InMemoryStore) AddUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.usersByID[user.ID] = user
	s.usersByUsername[user.Username] = user
}

// GetUserByID retrieves a user by its identifier.
func (s *InMemoryStore) GetUserByID(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByID[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

// GetUserByUsername retrieves a user by its username.
func (s *InMemoryStore) GetUserByUsername(username string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByUsername[username]
	if !ok {
		return nil, false
	}
	return &u, true
}
