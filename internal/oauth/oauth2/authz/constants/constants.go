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

// Package constants defines constants used for authorization code handling.
package constants

import "errors"

// Authorization code states.
const (
	AuthCodeStateActive   = "ACTIVE"
	AuthCodeStateInactive = "INACTIVE"
)

// Default authorization code parameters.
const (
	// DefaultCodeLength is the default length of a generated authorization code value.
	DefaultCodeLength = 24
	// DefaultCodeValiditySeconds is the default lifetime of an authorization code.
	DefaultCodeValiditySeconds = 60
)

// ErrAuthorizationCodeNotFound is returned when no usable authorization code matches a lookup.
// Expired and already consumed codes are reported the same way as absent ones.
var ErrAuthorizationCodeNotFound = errors.New("authorization code not found")

// ErrDuplicateAuthorizationCode is returned when a generated code value collides with a stored one.
var ErrDuplicateAuthorizationCode = errors.New("authorization code value already exists")
