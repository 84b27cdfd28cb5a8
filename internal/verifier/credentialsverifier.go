/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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

package verifier

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"github.com/openportal/gate/internal/system/database/provider"
	"github.com/openportal/gate/internal/system/error/serviceerror"
	"github.com/openportal/gate/internal/system/log"
)

const loggerComponentName = "CredentialsVerifier"

// credentialsVerifier is the SQL-backed implementation of VerifierInterface.
type credentialsVerifier struct {
	dbProvider provider.DBProviderInterface
}

// NewCredentialsVerifier creates a verifier backed by the identity database.
// A nil provider falls back to the shared database provider.
func NewCredentialsVerifier(dbProvider provider.DBProviderInterface) VerifierInterface {
	if dbProvider == nil {
		dbProvider = provider.GetDBProvider()
	}
	return &credentialsVerifier{dbProvider: dbProvider}
}

// Login verifies the credentials against the user store.
func (cv *credentialsVerifier) Login(credentials Credentials, opts Options) (
	*SessionToken, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	username := credentials["username"]
	password := credentials["password"]
	if username == "" || password == "" {
		return nil, &ErrorEmptyCredentials
	}

	dbClient, err := cv.dbProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, &ErrorVerifierUnavailable
	}

	results, err := dbClient.Query(QueryGetUserByUsername, username)
	if err != nil {
		logger.Error("Failed to query user credentials", log.Error(err))
		return nil, &ErrorVerifierUnavailable
	}
	if len(results) == 0 {
		logger.Debug("No active user found for username", log.String("username", log.MaskString(username)))
		return nil, &ErrorInvalidCredentials
	}

	row := results[0]
	userID := readInt64Column(row, "user_id")
	storedHash := readStringColumn(row, "password_hash")
	salt := readStringColumn(row, "password_salt")
	groups := readStringColumn(row, "user_groups")

	if !verifyPassword(password, salt, storedHash) {
		logger.Debug("Password mismatch", log.String("username", log.MaskString(username)))
		return nil, &ErrorInvalidCredentials
	}

	if opts.Group != "" && !hasGroup(groups, opts.Group) {
		logger.Debug("User not in required group",
			log.String("username", log.MaskString(username)), log.String("group", opts.Group))
		return nil, &ErrorInsufficientPrivileges
	}

	return &SessionToken{
		UserID:   userID,
		Username: username,
		IssuedAt: time.Now(),
	}, nil
}

// Logout removes the sessions for the given user and client scope.
func (cv *credentialsVerifier) Logout(userID int, clientScope int) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := cv.dbProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return &ErrorVerifierUnavailable
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteSessions, clientScope, userID)
	if err != nil {
		logger.Error("Failed to delete sessions", log.Error(err))
		return &ErrorVerifierUnavailable
	}

	logger.Debug("Deleted user sessions", log.Int(log.LoggerKeyUserID, userID),
		log.Int("clientScope", clientScope), log.Int("count", int(rowsAffected)))
	return nil
}

// verifyPassword compares the salted SHA-256 digest of the submitted password
// with the stored hash in constant time.
func verifyPassword(password, salt, storedHash string) bool {
	digest := sha256.Sum256([]byte(salt + password))
	computed := hex.EncodeToString(digest[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(strings.ToLower(storedHash))) == 1
}

// hasGroup reports whether the comma-separated group list contains the group.
func hasGroup(groups, group string) bool {
	for _, g := range strings.Split(groups, ",") {
		if strings.TrimSpace(g) == group {
			return true
		}
	}
	return false
}

// readStringColumn reads a column value as a string, tolerating byte-slice values.
func readStringColumn(row map[string]interface{}, column string) string {
	switch v := row[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// readInt64Column reads a column value as an int64.
func readInt64Column(row map[string]interface{}, column string) int64 {
	switch v := row[column].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
