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

package utils

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const randomStringCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateUUID generates a new random UUID string.
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateRandomString generates a cryptographically random alphabetic string of the given length.
func GenerateRandomString(length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomStringCharset))))
		if err != nil {
			return "", err
		}
		result[i] = randomStringCharset[index.Int64()]
	}
	return string(result), nil
}

// ParseScopes splits a space-separated scope string into a slice of scopes.
func ParseScopes(scope string) []string {
	trimmed := strings.TrimSpace(scope)
	if trimmed == "" {
		return []string{}
	}
	return strings.Fields(trimmed)
}

// JoinScopes joins a slice of scopes into a space-separated scope string.
func JoinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}
