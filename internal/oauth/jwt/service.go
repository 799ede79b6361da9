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

// Package jwt provides functionality for generating and validating JWT tokens.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/user"
)

const loggerComponentName = "JWTService"

// defaultTokenValidity is the default validity period of one hour.
const defaultTokenValidity = 3600

// TokenMetadata holds an issued or parsed token together with its claims and timestamps.
type TokenMetadata struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Claims    map[string]interface{}
}

// ValidationResult reports whether a token is valid and, when it is not, why.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// ServiceInterface defines the interface for JWT operations.
type ServiceInterface interface {
	Issue(u *user.User, claims map[string]interface{}) (*TokenMetadata, error)
	Parse(token string) (*TokenMetadata, bool)
	Validate(token string) ValidationResult
}

// Service implements the ServiceInterface over a symmetric secret.
type Service struct {
	secret         []byte
	issuer         string
	validityPeriod int64
}

// NewService creates a new JWT service from the runtime configuration.
func NewService() (ServiceInterface, error) {
	jwtConfig := config.GetHalcyonRuntime().Config.OAuth.JWT
	if jwtConfig.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}

	validityPeriod := jwtConfig.ValidityPeriod
	if validityPeriod <= 0 {
		validityPeriod = defaultTokenValidity
	}

	return &Service{
		secret:         []byte(jwtConfig.Secret),
		issuer:         jwtConfig.Issuer,
		validityPeriod: validityPeriod,
	}, nil
}

// Issue signs a token for the given user, merging the caller-supplied claims
// with the mandatory subject and issued-at claims.
func (s *Service) Issue(u *user.User, claims map[string]interface{}) (*TokenMetadata, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	issuedAt := time.Now()
	expiresAt := issuedAt.Add(time.Duration(s.validityPeriod) * time.Second)

	merged := make(map[string]interface{}, len(claims)+3)
	for key, value := range claims {
		merged[key] = value
	}
	if _, ok := merged["sub"]; !ok {
		merged["sub"] = u.ID
	}
	if _, ok := merged["iss"]; !ok && s.issuer != "" {
		merged["iss"] = s.issuer
	}
	merged["iat"] = issuedAt.Unix()
	merged["exp"] = expiresAt.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(merged))
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenMetadata{
		Token:     signed,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
		Claims:    merged,
	}, nil
}

// Parse validates the token and returns its claims. It fails closed: any
// signature mismatch, malformed structure, unsupported algorithm or expiry
// yields an invalid result instead of an error.
func (s *Service) Parse(token string) (*TokenMetadata, bool) {
	result := s.Validate(token)
	if !result.Valid {
		return nil, false
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return nil, false
	}

	metadata := &TokenMetadata{
		Token:  token,
		Claims: map[string]interface{}(claims),
	}
	if iat, ok := numericClaim(claims, "iat"); ok {
		metadata.IssuedAt = time.Unix(iat, 0)
	}
	if exp, ok := numericClaim(claims, "exp"); ok {
		metadata.ExpiresAt = time.Unix(exp, 0)
	}

	return metadata, true
}

// Validate checks the token signature, structure and expiry. The distinct
// failure reasons are kept for diagnostics and collapsed to a boolean for
// protocol responses.
func (s *Service) Validate(token string) ValidationResult {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if token == "" {
		return ValidationResult{Valid: false, Reason: "token is empty"}
	}

	_, err := jwt.Parse(token, s.keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err == nil {
		return ValidationResult{Valid: true}
	}

	reason := classifyValidationError(err)
	logger.Debug("Token validation failed", log.String("reason", reason))
	return ValidationResult{Valid: false, Reason: reason}
}

// keyFunc returns the symmetric secret for HMAC signed tokens.
func (s *Service) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}

// classifyValidationError maps library errors onto the distinct failure reasons.
func classifyValidationError(err error) string {
	var validationErr *jwt.ValidationError
	if !errors.As(err, &validationErr) {
		return "invalid token: " + err.Error()
	}

	switch {
	case validationErr.Errors&jwt.ValidationErrorMalformed != 0:
		return "malformed token: " + err.Error()
	case validationErr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
		return "invalid token signature: " + err.Error()
	case validationErr.Errors&jwt.ValidationErrorExpired != 0:
		return "token is expired: " + err.Error()
	case validationErr.Errors&jwt.ValidationErrorUnverifiable != 0:
		return "unsupported token: " + err.Error()
	case validationErr.Errors&jwt.ValidationErrorClaimsInvalid != 0:
		return "invalid token claims: " + err.Error()
	default:
		return "invalid token: " + err.Error()
	}
}

// numericClaim reads an integer claim that may be decoded as float64 or json.Number.
func numericClaim(claims jwt.MapClaims, key string) (int64, bool) {
	value, ok := claims[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}
