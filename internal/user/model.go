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

// Package user provides the user model and user authentication.
package user

// User represents an end-user account.
type User struct {
	ID             string                 `json:"id"`
	Username       string                 `json:"username"`
	HashedPassword string                 `json:"-"`
	Authorities    []string               `json:"authorities,omitempty"`
	AdditionalInfo map[string]interface{} `json:"additional_info,omitempty"`
}
