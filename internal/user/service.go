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

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username or password does not match a known user.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthenticationServiceInterface defines the interface for user authentication.
type AuthenticationServiceInterface interface {
	Authenticate(username, password string) (*User, error)
}

// AuthenticationService implements AuthenticationServiceInterface against a user store.
type AuthenticationService struct {
	store StoreInterface
}

// NewAuthenticationService creates a new AuthenticationService.
func NewAuthenticationService(store StoreInterface) AuthenticationServiceInterface {
	return &AuthenticationService{
		store: store,
	}
}

// Authenticate verifies the given credentials and returns the matching user.
func (s *AuthenticationService) Authenticate(username, password string) (*User, error) {
	u, ok := s.store.GetUserByUsername(username)
	if !ok {
		// Burn a comparison so unknown users take as long as bad passwords.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$000000000000000000000uGyUvPMnWPXON5Wp6pBJBEbbLvlcoJO"),
			[]byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
