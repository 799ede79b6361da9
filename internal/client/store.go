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

package client

import "sync"

// StoreInterface defines the interface for client lookup and registration.
type StoreInterface interface {
	AddClient(client Client)
	GetClientByID(clientID string) (*Client, bool)
}

// InMemoryStore is a thread safe in-memory implementation of StoreInterface.
type InMemoryStore struct {
	clients map[string]Client
	mu      sync.RWMutex
}

// NewInMemoryStore creates a new in-memory client store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		clients: make(map[string]Client),
	}
}

// AddClient registers a client in the store.
func (s *InMemoryStore) AddClient(client Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[client.ClientID] = client
}

// GetClientByID retrieves a client by its identifier.
func (s *InMemoryStore) GetClientByID(clientID string) (*Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[clientID]
	if !ok {
		return nil, false
	}
	return &c, true
}
