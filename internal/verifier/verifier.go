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

// Package verifier defines the core authentication verifier boundary and its
// SQL-backed default implementation.
package verifier

import (
	"time"

	"github.com/openportal/gate/internal/system/error/serviceerror"
)

// Credentials is the opaque key-value credential bag assembled per request.
// It is passed by value into verification calls and never persisted.
type Credentials map[string]string

// Options carries the verification options for a single login attempt.
type Options struct {
	Action            string
	AuthenticatorName string
	Group             string
	Autoregister      bool
	EntryURL          string
}

// SessionToken is the success outcome of a login verification.
type SessionToken struct {
	UserID   int64
	Username string
	IssuedAt time.Time
}

// VerifierInterface is the system boundary to the core authentication service.
// Bad credentials are reported as a client ServiceError, never as a fault;
// verifier-level faults are normalized to a server ServiceError at this boundary.
type VerifierInterface interface {
	// Login verifies the credentials and returns a session token on success.
	Login(credentials Credentials, opts Options) (*SessionToken, *serviceerror.ServiceError)
	// Logout de-authenticates the given user (0 = current session user) within
	// the given client scope.
	Logout(userID int, clientScope int) *serviceerror.ServiceError
}
