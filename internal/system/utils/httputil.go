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

// Package utils provides common utility functions used across the server.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// ExtractBasicAuthCredentials extracts the client credentials from the Basic authorization header.
func ExtractBasicAuthCredentials(r *http.Request) (string, string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", "", errors.New("authorization header is missing")
	}
	if !strings.HasPrefix(authHeader, "Basic ") {
		return "", "", errors.New("authorization header is not a basic auth header")
	}

	username, password, ok := r.BasicAuth()
	if !ok {
		return "", "", errors.New("failed to decode basic auth header")
	}
	return username, password, nil
}

// WriteJSONError writes a JSON error response with the given error code and description.
func WriteJSONError(w http.ResponseWriter, code, desc string, statusCode int, respHeaders []map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	for _, header := range respHeaders {
		for key, value := range header {
			w.Header().Set(key, value)
		}
	}
	w.WriteHeader(statusCode)

	resp := map[string]string{
		"error":             code,
		"error_description": desc,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// ParseURL parses the given string into a URL and validates its structure.
func ParseURL(urlStr string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(urlStr)
	if err != nil {
		return nil, err
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("invalid URL: missing scheme or host")
	}
	return parsedURL, nil
}

// GetURIWithQueryParams appends the given query parameters to the URI.
// Parameter order in the result is stable (alphabetical by key).
func GetURIWithQueryParams(uri string, queryParams map[string]string) (string, error) {
	parsedURL, err := url.Parse(uri)
	if err != nil {
		return "", err
	}

	query := parsedURL.Query()
	for key, value := range queryParams {
		query.Set(key, value)
	}
	parsedURL.RawQuery = query.Encode()

	return parsedURL.String(), nil
}
